package ledger

import (
	"encoding/hex"

	"github.com/lunfardo314/easyfl"
	"golang.org/x/crypto/blake2b"
)

const HashLength = blake2b.Size256

type (
	// Hash is Blake2b-256 digest. Genesis (block0) hash is a Hash
	Hash [HashLength]byte
	// TransactionID is the hash of the canonical encoding of the unwitnessed transaction
	TransactionID Hash
)

func HashBytes(data ...[]byte) (ret Hash) {
	h, err := blake2b.New256(nil)
	easyfl.AssertNoError(err)
	for _, d := range data {
		h.Write(d)
	}
	copy(ret[:], h.Sum(nil))
	return
}

func HashFromBytes(data []byte) (ret Hash, err error) {
	if len(data) != HashLength {
		err = Errorf(ERR_DECODE, "hash: wrong data length %d", len(data))
		return
	}
	copy(ret[:], data)
	return
}

func HashFromHex(s string) (Hash, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, Errorf(ERR_DECODE, "hash: %v", err)
	}
	return HashFromBytes(data)
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func TransactionIDFromBytes(data []byte) (TransactionID, error) {
	h, err := HashFromBytes(data)
	return TransactionID(h), err
}

func TransactionIDFromHex(s string) (TransactionID, error) {
	h, err := HashFromHex(s)
	return TransactionID(h), err
}

func (txid TransactionID) Bytes() []byte {
	return txid[:]
}

func (txid TransactionID) String() string {
	return hex.EncodeToString(txid[:])
}
