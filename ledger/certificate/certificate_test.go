package certificate_test

import (
	"testing"

	"github.com/lunfardo314/easytx/ledger"
	"github.com/lunfardo314/easytx/ledger/certificate"
	"github.com/stretchr/testify/require"
)

func TestCertificates(t *testing.T) {
	account := ledger.AccountIdentifier(ledger.HashBytes([]byte("account")))
	pool := ledger.HashBytes([]byte("pool"))

	t.Run("stake delegation", func(t *testing.T) {
		cert, err := certificate.NewStakeDelegation(account, pool).Certificate()
		require.NoError(t, err)
		require.Equal(t, certificate.KindStakeDelegation, cert.Kind)

		back, err := certificate.Decode(cert)
		require.NoError(t, err)
		d, ok := back.(*certificate.StakeDelegation)
		require.True(t, ok)
		id, err := d.AccountID()
		require.NoError(t, err)
		require.Equal(t, account, id)
		p, err := d.Pool()
		require.NoError(t, err)
		require.Equal(t, pool, p)
	})
	t.Run("deterministic encoding", func(t *testing.T) {
		c1, err := certificate.NewStakeDelegation(account, pool).Certificate()
		require.NoError(t, err)
		c2, err := certificate.NewStakeDelegation(account, pool).Certificate()
		require.NoError(t, err)
		require.True(t, c1.Equal(c2))
	})
	t.Run("pool retirement", func(t *testing.T) {
		cert, err := certificate.NewPoolRetirement(pool, 1337).Certificate()
		require.NoError(t, err)
		back, err := certificate.Decode(cert)
		require.NoError(t, err)
		r, ok := back.(*certificate.PoolRetirement)
		require.True(t, ok)
		require.EqualValues(t, 1337, r.RetirementTime)
		p, err := r.Pool()
		require.NoError(t, err)
		require.Equal(t, pool, p)
	})
	t.Run("in transaction", func(t *testing.T) {
		cert, err := certificate.NewPoolRetirement(pool, 1).Certificate()
		require.NoError(t, err)
		tx, err := ledger.NewTransaction(nil, nil, ledger.CertificateExtra{Certificate: cert})
		require.NoError(t, err)
		back, err := ledger.TransactionFromBytes(tx.Bytes())
		require.NoError(t, err)
		c, ok := back.Certificate()
		require.True(t, ok)
		_, err = certificate.Decode(c)
		require.NoError(t, err)
	})
	t.Run("wrong", func(t *testing.T) {
		_, err := certificate.Decode(ledger.NewCertificate(99, nil))
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
		_, err = certificate.Decode(ledger.NewCertificate(certificate.KindStakeDelegation, []byte{0xff, 0x00}))
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
		bad := &certificate.StakeDelegation{Account: []byte{1, 2}, PoolID: pool[:]}
		cert, err := bad.Certificate()
		require.NoError(t, err)
		_, err = certificate.Decode(cert)
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
	})
}
