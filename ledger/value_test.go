package ledger_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lunfardo314/easytx/ledger"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		v, err := ledger.Value(2).Add(3)
		require.NoError(t, err)
		require.EqualValues(t, 5, v)
	})
	t.Run("add overflow", func(t *testing.T) {
		_, err := ledger.Value(math.MaxUint64).Add(1)
		require.True(t, errors.Is(err, ledger.ErrValueOverflow))
	})
	t.Run("sub underflow", func(t *testing.T) {
		_, err := ledger.Value(1).Sub(2)
		require.True(t, errors.Is(err, ledger.ErrValueUnderflow))
		v, err := ledger.Value(2).Sub(2)
		require.NoError(t, err)
		require.EqualValues(t, 0, v)
	})
	t.Run("sum", func(t *testing.T) {
		v, err := ledger.SumValues(1, 2, 3)
		require.NoError(t, err)
		require.EqualValues(t, 6, v)
		v, err = ledger.SumValues()
		require.NoError(t, err)
		require.EqualValues(t, 0, v)
		_, err = ledger.SumValues(math.MaxUint64, 1)
		require.Equal(t, ledger.ERR_VALUE_OVERFLOW, ledger.CodeOf(err))
	})
}

func TestBalance(t *testing.T) {
	t.Run("positive", func(t *testing.T) {
		b := ledger.ComputeBalance(1000, 711)
		require.True(t, b.IsPositive())
		require.EqualValues(t, 289, b.Value())
		require.Equal(t, "positive", b.Sign().String())
		require.Equal(t, "+289", b.String())
	})
	t.Run("negative", func(t *testing.T) {
		b := ledger.ComputeBalance(50, 111)
		require.True(t, b.IsNegative())
		require.EqualValues(t, 61, b.Value())
		require.Equal(t, "negative", b.Sign().String())
		require.Equal(t, "-61", b.String())
	})
	t.Run("zero", func(t *testing.T) {
		b := ledger.ComputeBalance(7, 7)
		require.True(t, b.IsZero())
		require.EqualValues(t, 0, b.Value())
		require.Equal(t, "zero", b.Sign().String())
		require.Equal(t, ledger.Balance{}, b)
	})
	t.Run("balance of zero value is zero", func(t *testing.T) {
		require.True(t, ledger.BalanceOf(ledger.BalancePositive, 0).IsZero())
		require.True(t, ledger.BalanceOf(ledger.BalanceNegative, 5).IsNegative())
	})
}

func TestErrors(t *testing.T) {
	err := ledger.Errorf(ledger.ERR_MISSING_WITNESS, "no witness for input %d", 3)
	require.True(t, errors.Is(err, ledger.ErrMissingWitness))
	require.False(t, errors.Is(err, ledger.ErrDecode))
	require.Equal(t, ledger.ERR_MISSING_WITNESS, ledger.CodeOf(err))
	require.Contains(t, err.Error(), "input 3")
	require.Equal(t, ledger.ErrorCode(""), ledger.CodeOf(errors.New("other")))
}
