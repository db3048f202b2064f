package ledger_test

import (
	"errors"
	"testing"

	"github.com/lunfardo314/easytx/ledger"
	"github.com/stretchr/testify/require"
)

func utxoInputForTest(t *testing.T, n byte, idx byte, v ledger.Value) ledger.Input {
	txid := ledger.TransactionID(ledger.HashBytes([]byte("tx"), []byte{n}))
	p, err := ledger.NewUtxoPointer(txid, idx, v)
	require.NoError(t, err)
	return ledger.InputFromUtxo(p)
}

func TestInputOutput(t *testing.T) {
	t.Run("utxo input", func(t *testing.T) {
		in := utxoInputForTest(t, 1, 5, 1000)
		require.Equal(t, ledger.InputUtxo, in.Kind())
		require.EqualValues(t, 1000, in.Value())
		p, ok := in.Utxo()
		require.True(t, ok)
		require.EqualValues(t, 5, p.OutputIndex)
		_, ok = in.Account()
		require.False(t, ok)

		back, err := ledger.InputFromBytes(in.Bytes())
		require.NoError(t, err)
		require.Equal(t, in, back)
	})
	t.Run("account input", func(t *testing.T) {
		id := ledger.AccountIdentifierFromPublicKey(keyForTest(t, 1, false).PublicKey())
		in := ledger.InputFromAccount(id, 42)
		require.Equal(t, ledger.InputAccount, in.Kind())
		back, err := ledger.InputFromBytes(in.Bytes())
		require.NoError(t, err)
		require.Equal(t, in, back)
	})
	t.Run("reserved output index", func(t *testing.T) {
		_, err := ledger.NewUtxoPointer(ledger.TransactionID{}, 0xff, 1)
		require.Equal(t, ledger.ERR_RESERVED_OUTPUT_INDEX, ledger.CodeOf(err))
		require.True(t, errors.Is(err, ledger.ErrReservedOutputIndex))
		data := utxoInputForTest(t, 1, 0, 1).Bytes()
		data[len(data)-1] = 0xff
		_, err = ledger.InputFromBytes(data)
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
	})
	t.Run("wrong input bytes", func(t *testing.T) {
		_, err := ledger.InputFromBytes([]byte{0, 1, 2})
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
		data := utxoInputForTest(t, 1, 0, 1).Bytes()
		data[0] = 7
		_, err = ledger.InputFromBytes(data)
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
	})
	t.Run("output", func(t *testing.T) {
		o := ledger.NewOutput(ledger.NewAccountAddress(ledger.DiscriminationTest, keyForTest(t, 2, false).PublicKey()), 314)
		back, err := ledger.OutputFromBytes(o.Bytes())
		require.NoError(t, err)
		require.Equal(t, o, back)
		_, err = ledger.OutputFromBytes(o.Bytes()[:8])
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
	})
}

func TestTransaction(t *testing.T) {
	addr := ledger.NewSingleAddress(ledger.DiscriminationTest, keyForTest(t, 1, false).PublicKey())
	inputs := []ledger.Input{utxoInputForTest(t, 1, 0, 1000), utxoInputForTest(t, 2, 3, 10)}
	outputs := []ledger.Output{ledger.NewOutput(addr, 700), ledger.NewOutput(addr, 299)}

	t.Run("empty", func(t *testing.T) {
		tx, err := ledger.NewTransaction(nil, nil, nil)
		require.NoError(t, err)
		require.EqualValues(t, 0, tx.NumInputs())
		require.EqualValues(t, 0, tx.NumOutputs())
		require.Equal(t, ledger.NoExtra{}, tx.Extra())
		back, err := ledger.TransactionFromBytes(tx.Bytes())
		require.NoError(t, err)
		require.Equal(t, tx.ID(), back.ID())
	})
	t.Run("id is deterministic", func(t *testing.T) {
		tx1, err := ledger.NewTransaction(inputs, outputs, ledger.NoExtra{})
		require.NoError(t, err)
		tx2, err := ledger.NewTransaction(inputs, outputs, ledger.NoExtra{})
		require.NoError(t, err)
		require.Equal(t, tx1.ID(), tx2.ID())
		require.EqualValues(t, tx1.Bytes(), tx2.Bytes())
		require.Equal(t, ledger.TransactionID(ledger.HashBytes(tx1.Bytes())), tx1.ID())
	})
	t.Run("id depends on content", func(t *testing.T) {
		tx1, err := ledger.NewTransaction(inputs, outputs, ledger.NoExtra{})
		require.NoError(t, err)
		tx2, err := ledger.NewTransaction([]ledger.Input{inputs[1], inputs[0]}, outputs, ledger.NoExtra{})
		require.NoError(t, err)
		require.NotEqual(t, tx1.ID(), tx2.ID())
		tx3, err := ledger.NewTransaction(inputs, outputs[:1], ledger.NoExtra{})
		require.NoError(t, err)
		require.NotEqual(t, tx1.ID(), tx3.ID())
		cert := ledger.NewCertificate(1, []byte{1, 2, 3})
		tx4, err := ledger.NewTransaction(inputs, outputs, ledger.CertificateExtra{Certificate: cert})
		require.NoError(t, err)
		require.NotEqual(t, tx1.ID(), tx4.ID())
	})
	t.Run("immutable", func(t *testing.T) {
		ins := append([]ledger.Input(nil), inputs...)
		tx, err := ledger.NewTransaction(ins, outputs, ledger.NoExtra{})
		require.NoError(t, err)
		id := tx.ID()
		ins[0] = utxoInputForTest(t, 9, 9, 9)
		require.Equal(t, inputs[0], tx.Input(0))
		b := tx.Bytes()
		b[0] ^= 0xff
		require.Equal(t, id, ledger.TransactionID(ledger.HashBytes(tx.Bytes())))
	})
	t.Run("certificate payload not shared", func(t *testing.T) {
		payload := []byte{1, 2, 3}
		tx, err := ledger.NewTransaction(inputs, outputs, ledger.CertificateExtra{Certificate: ledger.Certificate{Kind: 1, Payload: payload}})
		require.NoError(t, err)
		id := tx.ID()
		payload[0] = 0xff

		c, ok := tx.Certificate()
		require.True(t, ok)
		c.Payload[0] = 0xee
		e, ok := tx.Extra().(ledger.CertificateExtra)
		require.True(t, ok)
		e.Certificate.Payload[1] = 0xee

		back, err := ledger.TransactionFromBytes(tx.Bytes())
		require.NoError(t, err)
		require.Equal(t, id, back.ID())
		cBack, ok := back.Certificate()
		require.True(t, ok)
		c, ok = tx.Certificate()
		require.True(t, ok)
		require.True(t, c.Equal(cBack))
		require.EqualValues(t, []byte{1, 2, 3}, c.Payload)
	})
	t.Run("parse", func(t *testing.T) {
		cert := ledger.NewCertificate(2, []byte("payload"))
		tx, err := ledger.NewTransaction(inputs, outputs, ledger.CertificateExtra{Certificate: cert})
		require.NoError(t, err)
		back, err := ledger.TransactionFromBytes(tx.Bytes())
		require.NoError(t, err)
		require.Equal(t, tx.ID(), back.ID())
		require.Equal(t, tx.Inputs(), back.Inputs())
		require.Equal(t, tx.Outputs(), back.Outputs())
		c, ok := back.Certificate()
		require.True(t, ok)
		require.True(t, cert.Equal(c))
		require.Equal(t, ledger.TransactionShape{NumInputs: 2, NumOutputs: 2, HasCertificate: true}, back.Shape())
	})
	t.Run("parse rubbish", func(t *testing.T) {
		tx, err := ledger.NewTransaction(inputs, outputs, ledger.NoExtra{})
		require.NoError(t, err)
		data := tx.Bytes()
		_, err = ledger.TransactionFromBytes(data[:len(data)-1])
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
		_, err = ledger.TransactionFromBytes(append(data, 0))
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
		_, err = ledger.TransactionFromBytes([]byte("rubbish"))
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
	})
	t.Run("too many inputs", func(t *testing.T) {
		ins := make([]ledger.Input, ledger.MaxInputs+1)
		for i := range ins {
			ins[i] = utxoInputForTest(t, 1, 0, 1)
		}
		_, err := ledger.NewTransaction(ins, nil, nil)
		require.Equal(t, ledger.ERR_TOO_MANY_INPUTS, ledger.CodeOf(err))
		_, err = ledger.NewTransaction(ins[:ledger.MaxInputs], nil, nil)
		require.NoError(t, err)
	})
}

func TestWitness(t *testing.T) {
	genesis := ledger.HashBytes([]byte("genesis"))
	txid := ledger.TransactionID(ledger.HashBytes([]byte("transaction")))
	for _, extended := range []bool{false, true} {
		key := keyForTest(t, 1, extended)
		t.Run("utxo "+key.Kind().String(), func(t *testing.T) {
			w := ledger.WitnessForUtxo(genesis, txid, key)
			require.Equal(t, ledger.WitnessUtxo, w.Kind())
			require.True(t, ledger.VerifyUtxoWitness(w, key.PublicKey(), genesis, txid))
			require.False(t, ledger.VerifyUtxoWitness(w, key.PublicKey(), ledger.HashBytes([]byte("other")), txid))
			require.False(t, ledger.VerifyAccountWitness(w, key.PublicKey(), genesis, txid, 0))
			require.NoError(t, ledger.CheckWitnessKind(w, ledger.InputUtxo))
			require.Equal(t, ledger.ERR_WITNESS_KIND_MISMATCH, ledger.CodeOf(ledger.CheckWitnessKind(w, ledger.InputAccount)))
		})
		t.Run("account "+key.Kind().String(), func(t *testing.T) {
			w := ledger.WitnessForAccount(genesis, txid, key, 5)
			require.Equal(t, ledger.WitnessAccount, w.Kind())
			require.True(t, ledger.VerifyAccountWitness(w, key.PublicKey(), genesis, txid, 5))
			require.False(t, ledger.VerifyAccountWitness(w, key.PublicKey(), genesis, txid, 6))
			require.NoError(t, ledger.CheckWitnessKind(w, ledger.InputAccount))
			require.Equal(t, ledger.ERR_WITNESS_KIND_MISMATCH, ledger.CodeOf(ledger.CheckWitnessKind(w, ledger.InputUtxo)))
		})
	}
	t.Run("bytes", func(t *testing.T) {
		w := ledger.WitnessForAccount(genesis, txid, keyForTest(t, 2, false), 1)
		back, err := ledger.WitnessFromBytes(w.Bytes())
		require.NoError(t, err)
		require.Equal(t, w, back)

		data := w.Bytes()
		data[0] = 9
		_, err = ledger.WitnessFromBytes(data)
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
		_, err = ledger.WitnessFromBytes(data[:10])
		require.Equal(t, ledger.ERR_DECODE, ledger.CodeOf(err))
	})
	t.Run("spending counter", func(t *testing.T) {
		c, err := ledger.SpendingCounterZero().Next()
		require.NoError(t, err)
		require.EqualValues(t, 1, c)
		_, err = ledger.SpendingCounterFromUint32(0xffffffff).Next()
		require.Equal(t, ledger.ERR_VALUE_OVERFLOW, ledger.CodeOf(err))
	})
}

func TestLinearFee(t *testing.T) {
	fee := ledger.NewLinearFee(10, 1, 100)
	t.Run("one input one output", func(t *testing.T) {
		f, err := fee.CalculateFee(ledger.TransactionShape{NumInputs: 1, NumOutputs: 1})
		require.NoError(t, err)
		require.EqualValues(t, 11, f)
	})
	t.Run("outputs do not count", func(t *testing.T) {
		f1, err := fee.CalculateFee(ledger.TransactionShape{NumInputs: 3, NumOutputs: 1})
		require.NoError(t, err)
		f2, err := fee.CalculateFee(ledger.TransactionShape{NumInputs: 3, NumOutputs: 7})
		require.NoError(t, err)
		require.Equal(t, f1, f2)
		require.EqualValues(t, 13, f1)
	})
	t.Run("certificate", func(t *testing.T) {
		f, err := fee.CalculateFee(ledger.TransactionShape{NumInputs: 2, HasCertificate: true})
		require.NoError(t, err)
		require.EqualValues(t, 112, f)
	})
	t.Run("overflow", func(t *testing.T) {
		_, err := ledger.NewLinearFee(0, 1<<63, 0).CalculateFee(ledger.TransactionShape{NumInputs: 2})
		require.Equal(t, ledger.ERR_VALUE_OVERFLOW, ledger.CodeOf(err))
		_, err = ledger.NewLinearFee(1<<64-1, 1, 0).CalculateFee(ledger.TransactionShape{NumInputs: 1})
		require.Equal(t, ledger.ERR_VALUE_OVERFLOW, ledger.CodeOf(err))
	})
}
