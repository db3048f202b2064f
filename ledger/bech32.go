package ledger

import (
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// human-readable prefixes of keys
const (
	Bech32PrefixSecretKey         = "ed25519_sk"
	Bech32PrefixExtendedSecretKey = "ed25519e_sk"
	Bech32PrefixPublicKey         = "ed25519_pk"
)

func encodeBech32(hrp string, data []byte) (string, error) {
	conv, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, conv)
}

// decodeBech32 does not enforce the 90 characters limit: extended keys are longer
func decodeBech32(s string) (string, []byte, error) {
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, Errorf(ERR_DECODE, "bech32: %v", err)
	}
	conv, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, Errorf(ERR_DECODE, "bech32: %v", err)
	}
	return hrp, conv, nil
}
