package txbuilder

import (
	"github.com/lunfardo314/easytx/lazyslice"
	"github.com/lunfardo314/easytx/ledger"
)

// GeneratedTransaction is the fully witnessed transaction, ready for submission
type GeneratedTransaction struct {
	tx        *ledger.Transaction
	witnesses []ledger.Witness
}

const (
	genTxBody = iota
	genTxWitnesses
	genTxIndexMax
)

func (g *GeneratedTransaction) Transaction() *ledger.Transaction {
	return g.tx
}

func (g *GeneratedTransaction) Witnesses() []ledger.Witness {
	return append([]ledger.Witness(nil), g.witnesses...)
}

func (g *GeneratedTransaction) ID() ledger.TransactionID {
	return g.tx.ID()
}

// Bytes is the array of the canonical body (the bytes hashed into the ID) and the witnesses
func (g *GeneratedTransaction) Bytes() []byte {
	ws := lazyslice.EmptyArray(ledger.MaxInputs)
	for _, w := range g.witnesses {
		ws.Push(w.Bytes())
	}
	return lazyslice.MakeArray(g.tx.Bytes(), ws.Bytes()).Bytes()
}

func GeneratedTransactionFromBytes(data []byte) (*GeneratedTransaction, error) {
	arr, err := lazyslice.ParseArray(data, genTxIndexMax)
	if err != nil {
		return nil, ledger.Errorf(ledger.ERR_DECODE, "generated transaction: %v", err)
	}
	if arr.NumElements() != genTxIndexMax {
		return nil, ledger.Errorf(ledger.ERR_DECODE, "generated transaction: wrong number of elements %d", arr.NumElements())
	}
	tx, err := ledger.TransactionFromBytes(arr.At(genTxBody))
	if err != nil {
		return nil, err
	}
	ws, err := lazyslice.ParseArray(arr.At(genTxWitnesses), ledger.MaxInputs)
	if err != nil {
		return nil, ledger.Errorf(ledger.ERR_DECODE, "witnesses: %v", err)
	}
	if ws.NumElements() != tx.NumInputs() {
		return nil, ledger.Errorf(ledger.ERR_DECODE, "%d witnesses for %d inputs", ws.NumElements(), tx.NumInputs())
	}
	f := NewTransactionFinalizer(tx)
	for i := 0; i < ws.NumElements(); i++ {
		w, err := ledger.WitnessFromBytes(ws.At(i))
		if err != nil {
			return nil, err
		}
		if err = f.SetWitness(i, w); err != nil {
			return nil, err
		}
	}
	return f.Build()
}
