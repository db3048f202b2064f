package ledger

import (
	"fmt"
	"math"

	"github.com/lunfardo314/easytx"
)

// SpendingCounter is the per-account anti-replay nonce. It is supplied by the caller,
// the engine never persists nor increments it
type SpendingCounter uint32

func SpendingCounterZero() SpendingCounter {
	return 0
}

func SpendingCounterFromUint32(c uint32) SpendingCounter {
	return SpendingCounter(c)
}

func (c SpendingCounter) Next() (SpendingCounter, error) {
	if c == math.MaxUint32 {
		return 0, Errorf(ERR_VALUE_OVERFLOW, "spending counter exhausted")
	}
	return c + 1, nil
}

func (c SpendingCounter) Bytes() []byte {
	return easytx.EncodeInteger(uint32(c))
}

type WitnessKind byte

const (
	WitnessUtxo    WitnessKind = 1
	WitnessAccount WitnessKind = 2
)

func (k WitnessKind) String() string {
	switch k {
	case WitnessUtxo:
		return "utxo"
	case WitnessAccount:
		return "account"
	}
	return fmt.Sprintf("WitnessKind(%d)", byte(k))
}

// InputKind a witness of this kind can authorize
func (k WitnessKind) InputKind() InputKind {
	if k == WitnessAccount {
		return InputAccount
	}
	return InputUtxo
}

// Witness is the authorization of one input: a signature over the data binding it
// to the ledger (genesis hash), the transaction and, for accounts, the spending counter
type Witness struct {
	kind      WitnessKind
	signature Signature
}

func utxoWitnessData(genesis Hash, txid TransactionID) []byte {
	ret := make([]byte, 0, 1+2*HashLength)
	ret = append(ret, byte(WitnessUtxo))
	ret = append(ret, genesis[:]...)
	return append(ret, txid[:]...)
}

func accountWitnessData(genesis Hash, txid TransactionID, counter SpendingCounter) []byte {
	ret := make([]byte, 0, 1+2*HashLength+4)
	ret = append(ret, byte(WitnessAccount))
	ret = append(ret, genesis[:]...)
	ret = append(ret, txid[:]...)
	return append(ret, counter.Bytes()...)
}

func WitnessForUtxo(genesis Hash, txid TransactionID, key *PrivateKey) Witness {
	return Witness{
		kind:      WitnessUtxo,
		signature: key.Sign(utxoWitnessData(genesis, txid)),
	}
}

func WitnessForAccount(genesis Hash, txid TransactionID, key *PrivateKey, counter SpendingCounter) Witness {
	return Witness{
		kind:      WitnessAccount,
		signature: key.Sign(accountWitnessData(genesis, txid, counter)),
	}
}

func VerifyUtxoWitness(w Witness, pub PublicKey, genesis Hash, txid TransactionID) bool {
	return w.kind == WitnessUtxo && pub.Verify(utxoWitnessData(genesis, txid), w.signature)
}

func VerifyAccountWitness(w Witness, pub PublicKey, genesis Hash, txid TransactionID, counter SpendingCounter) bool {
	return w.kind == WitnessAccount && pub.Verify(accountWitnessData(genesis, txid, counter), w.signature)
}

func (w Witness) Kind() WitnessKind {
	return w.kind
}

func (w Witness) Signature() Signature {
	return w.signature
}

// Bytes of the witness: kind || signature
func (w Witness) Bytes() []byte {
	return append([]byte{byte(w.kind)}, w.signature[:]...)
}

func WitnessFromBytes(data []byte) (Witness, error) {
	if len(data) != 1+SignatureSize {
		return Witness{}, Errorf(ERR_DECODE, "witness: wrong length %d", len(data))
	}
	kind := WitnessKind(data[0])
	if kind != WitnessUtxo && kind != WitnessAccount {
		return Witness{}, Errorf(ERR_DECODE, "witness: unknown kind %d", data[0])
	}
	ret := Witness{kind: kind}
	copy(ret.signature[:], data[1:])
	return ret, nil
}

// CheckWitnessKind fails if the witness can't authorize an input of the given kind
func CheckWitnessKind(w Witness, in InputKind) error {
	if w.kind.InputKind() != in || (w.kind != WitnessUtxo && w.kind != WitnessAccount) {
		return Errorf(ERR_WITNESS_KIND_MISMATCH, "%s witness for %s input", w.kind, in)
	}
	return nil
}
