package testutil

import (
	"github.com/lunfardo314/easyfl"
	"github.com/lunfardo314/easytx"
	"github.com/lunfardo314/easytx/ledger"
	"golang.org/x/crypto/blake2b"
)

const deterministicSeed = "1234567890987654321"

func seedFor(n uint16) []byte {
	seed := blake2b.Sum256(append([]byte(deterministicSeed), easytx.EncodeInteger(n)...))
	return seed[:]
}

// GenerateKey returns the same normal ed25519 key for the same n
func GenerateKey(n uint16) *ledger.PrivateKey {
	ret, err := ledger.NewPrivateKeyFromSeed(seedFor(n))
	easyfl.AssertNoError(err)
	return ret
}

// GenerateExtendedKey returns the same extended ed25519 key for the same n
func GenerateExtendedKey(n uint16) *ledger.PrivateKey {
	ret, err := ledger.NewExtendedPrivateKeyFromSeed(seedFor(n))
	easyfl.AssertNoError(err)
	return ret
}

func SingleAddress(key *ledger.PrivateKey) ledger.Address {
	return ledger.NewSingleAddress(ledger.DiscriminationTest, key.PublicKey())
}

func AccountAddress(key *ledger.PrivateKey) ledger.Address {
	return ledger.NewAccountAddress(ledger.DiscriminationTest, key.PublicKey())
}

func AccountID(key *ledger.PrivateKey) ledger.AccountIdentifier {
	return ledger.AccountIdentifierFromPublicKey(key.PublicKey())
}

// RandomTransactionID is deterministic in n, it points to no real transaction
func RandomTransactionID(n uint16) ledger.TransactionID {
	return ledger.TransactionID(ledger.HashBytes([]byte("txid"), easytx.EncodeInteger(n)))
}

// GenesisHash used by tests
func GenesisHash() ledger.Hash {
	return ledger.HashBytes([]byte("test genesis block"))
}
