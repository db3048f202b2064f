package txbuilder

import (
	"context"

	"github.com/lunfardo314/easytx/ledger"
	"golang.org/x/sync/errgroup"
)

// WitnessRequest is what is needed to authorize one input.
// Counter is ignored for UTXO inputs
type WitnessRequest struct {
	Key     *ledger.PrivateKey
	Counter ledger.SpendingCounter
}

// ComputeWitnesses signs every input of the transaction concurrently.
// Witnesses are returned in the input order, the kind of each follows the kind of the input
func ComputeWitnesses(ctx context.Context, genesis ledger.Hash, tx *ledger.Transaction, reqs []WitnessRequest) ([]ledger.Witness, error) {
	if len(reqs) != tx.NumInputs() {
		return nil, ledger.Errorf(ledger.ERR_MISSING_WITNESS, "%d witness requests for %d inputs", len(reqs), tx.NumInputs())
	}
	for i := range reqs {
		if reqs[i].Key == nil {
			return nil, ledger.Errorf(ledger.ERR_MISSING_WITNESS, "no key for input %d", i)
		}
	}
	txid := tx.ID()
	ret := make([]ledger.Witness, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	for i := range reqs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			switch tx.Input(i).Kind() {
			case ledger.InputUtxo:
				ret[i] = ledger.WitnessForUtxo(genesis, txid, reqs[i].Key)
			case ledger.InputAccount:
				ret[i] = ledger.WitnessForAccount(genesis, txid, reqs[i].Key, reqs[i].Counter)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

// SignAndBuild computes all witnesses and binds them with a finalizer
func SignAndBuild(ctx context.Context, genesis ledger.Hash, tx *ledger.Transaction, reqs []WitnessRequest) (*GeneratedTransaction, error) {
	ws, err := ComputeWitnesses(ctx, genesis, tx, reqs)
	if err != nil {
		return nil, err
	}
	f := NewTransactionFinalizer(tx)
	for i, w := range ws {
		if err = f.SetWitness(i, w); err != nil {
			return nil, err
		}
	}
	return f.Build()
}
