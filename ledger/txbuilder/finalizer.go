package txbuilder

import (
	"github.com/lunfardo314/easytx/ledger"
)

type FinalizerKind byte

const (
	FinalizerTransfer FinalizerKind = iota
	FinalizerCertificate
)

func (k FinalizerKind) String() string {
	if k == FinalizerCertificate {
		return "certificate"
	}
	return "transfer"
}

// TransactionFinalizer collects one witness per input of a finalized transaction.
// Not thread-safe: witnesses may be computed concurrently, SetWitness calls must be serialized
type TransactionFinalizer struct {
	tx        *ledger.Transaction
	kind      FinalizerKind
	witnesses []*ledger.Witness
	strict    bool
}

func NewTransactionFinalizer(tx *ledger.Transaction) *TransactionFinalizer {
	ret := &TransactionFinalizer{
		tx:        tx,
		witnesses: make([]*ledger.Witness, tx.NumInputs()),
	}
	switch tx.Extra().(type) {
	case ledger.NoExtra:
		ret.kind = FinalizerTransfer
	case ledger.CertificateExtra:
		ret.kind = FinalizerCertificate
	}
	return ret
}

// DisallowOverwrite makes SetWitness fail on an index which already has a witness.
// By default the last write wins
func (f *TransactionFinalizer) DisallowOverwrite() *TransactionFinalizer {
	f.strict = true
	return f
}

func (f *TransactionFinalizer) Kind() FinalizerKind {
	return f.kind
}

func (f *TransactionFinalizer) Transaction() *ledger.Transaction {
	return f.tx
}

// SetWitness binds the witness to the input slot. The witness kind must match the input kind
func (f *TransactionFinalizer) SetWitness(index int, w ledger.Witness) error {
	if index < 0 || index >= len(f.witnesses) {
		return ledger.Errorf(ledger.ERR_WITNESS_INDEX_OUT_OF_RANGE, "index %d, transaction has %d inputs", index, len(f.witnesses))
	}
	if err := ledger.CheckWitnessKind(w, f.tx.Input(index).Kind()); err != nil {
		return err
	}
	if f.strict && f.witnesses[index] != nil {
		return ledger.Errorf(ledger.ERR_WITNESS_ALREADY_SET, "index %d", index)
	}
	f.witnesses[index] = &w
	return nil
}

// TxID is the ID of the unwitnessed transaction. Witnesses sign it, so they never change it
func (f *TransactionFinalizer) TxID() ledger.TransactionID {
	return f.tx.ID()
}

// NumMissing is the number of input slots without witness
func (f *TransactionFinalizer) NumMissing() int {
	ret := 0
	for _, w := range f.witnesses {
		if w == nil {
			ret++
		}
	}
	return ret
}

// Build fails if any input has no witness. It does not consume the finalizer and
// returns equal results when called repeatedly
func (f *TransactionFinalizer) Build() (*GeneratedTransaction, error) {
	witnesses := make([]ledger.Witness, len(f.witnesses))
	for i, w := range f.witnesses {
		if w == nil {
			return nil, ledger.Errorf(ledger.ERR_MISSING_WITNESS, "no witness for input %d", i)
		}
		witnesses[i] = *w
	}
	return &GeneratedTransaction{
		tx:        f.tx,
		witnesses: witnesses,
	}, nil
}
