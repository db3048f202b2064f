package ledger_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/lunfardo314/easytx/ledger"
	"github.com/stretchr/testify/require"
)

func keyForTest(t *testing.T, n byte, extended bool) *ledger.PrivateKey {
	seed := ledger.HashBytes([]byte("seed"), []byte{n})
	var ret *ledger.PrivateKey
	var err error
	if extended {
		ret, err = ledger.NewExtendedPrivateKeyFromSeed(seed[:])
	} else {
		ret, err = ledger.NewPrivateKeyFromSeed(seed[:])
	}
	require.NoError(t, err)
	return ret
}

func TestKeys(t *testing.T) {
	msg := []byte("message to sign")
	t.Run("normal key", func(t *testing.T) {
		k := keyForTest(t, 1, false)
		require.Equal(t, ledger.KeyNormal, k.Kind())
		sig := k.Sign(msg)
		require.True(t, k.PublicKey().Verify(msg, sig))
		require.False(t, k.PublicKey().Verify([]byte("other"), sig))

		seed := ledger.HashBytes([]byte("seed"), []byte{1})
		std := ed25519.NewKeyFromSeed(seed[:])
		require.EqualValues(t, std.Public().(ed25519.PublicKey), k.PublicKey().Bytes())
		require.EqualValues(t, ed25519.Sign(std, msg), sig[:])
	})
	t.Run("extended key", func(t *testing.T) {
		k := keyForTest(t, 2, true)
		require.Equal(t, ledger.KeyExtended, k.Kind())
		require.Len(t, k.Bytes(), ledger.ExtendedSecretKeySize)
		sig := k.Sign(msg)
		require.True(t, k.PublicKey().Verify(msg, sig))
		require.True(t, ed25519.Verify(k.PublicKey().Bytes(), msg, sig[:]))
		require.False(t, keyForTest(t, 3, true).PublicKey().Verify(msg, sig))
	})
	t.Run("extended key is deterministic", func(t *testing.T) {
		k1 := keyForTest(t, 4, true)
		k2 := keyForTest(t, 4, true)
		require.Equal(t, k1.PublicKey(), k2.PublicKey())
		require.Equal(t, k1.Sign(msg), k2.Sign(msg))
	})
	t.Run("extended key must be clamped", func(t *testing.T) {
		data := keyForTest(t, 5, true).Bytes()
		data[0] |= 1
		_, err := ledger.NewExtendedPrivateKey(data)
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
		_, err = ledger.NewExtendedPrivateKey(data[:32])
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
	})
	t.Run("bech32", func(t *testing.T) {
		for _, extended := range []bool{false, true} {
			k := keyForTest(t, 6, extended)
			s := k.Bech32()
			back, err := ledger.PrivateKeyFromBech32(s)
			require.NoError(t, err)
			require.Equal(t, k.Kind(), back.Kind())
			require.Equal(t, k.PublicKey(), back.PublicKey())
			require.EqualValues(t, k.Bytes(), back.Bytes())
		}
		k := keyForTest(t, 7, false)
		require.Contains(t, k.Bech32(), ledger.Bech32PrefixSecretKey+"1")
		pk, err := ledger.PublicKeyFromBech32(k.PublicKey().Bech32())
		require.NoError(t, err)
		require.Equal(t, k.PublicKey(), pk)

		_, err = ledger.PublicKeyFromBech32(k.Bech32())
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
		_, err = ledger.PrivateKeyFromBech32(k.PublicKey().Bech32())
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
		_, err = ledger.PrivateKeyFromBech32("not a bech32 string")
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
	})
}
