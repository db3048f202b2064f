package txbuilder

import (
	"fmt"

	"github.com/lunfardo314/easyfl"
	"github.com/lunfardo314/easytx/ledger"
	"github.com/lunfardo314/easytx/ledger/certificate"
)

func GeneratedTransactionToString(g *GeneratedTransaction) string {
	tx := g.Transaction()
	txid := tx.ID()
	ret := fmt.Sprintf("TransactionID: %s\n", txid.String())
	f := NewTransactionFinalizer(tx)
	ret += fmt.Sprintf("Kind: %s\n", f.Kind())

	witnesses := g.Witnesses()
	ret += "inputs: \n"
	for i := 0; i < tx.NumInputs(); i++ {
		ret += fmt.Sprintf("  #%d: %s\n", i, tx.Input(i).String())
		if i < len(witnesses) {
			sig := witnesses[i].Signature()
			ret += fmt.Sprintf("     witness (%s): %s\n", witnesses[i].Kind(), easyfl.Fmt(sig[:]))
		}
	}
	ret += "outputs: \n"
	for i := 0; i < tx.NumOutputs(); i++ {
		ret += fmt.Sprintf("  #%d: %s\n", i, tx.Output(i).String())
	}
	if cert, ok := tx.Certificate(); ok {
		ret += certificateToString(cert)
	}
	return ret
}

func certificateToString(cert ledger.Certificate) string {
	c, err := certificate.Decode(cert)
	if err != nil {
		return fmt.Sprintf("%s (failed to decode: %v)\n", cert.String(), err)
	}
	switch c := c.(type) {
	case *certificate.StakeDelegation:
		id, _ := c.AccountID()
		pool, _ := c.Pool()
		return fmt.Sprintf("stake delegation: account %s to pool %s\n", id.String(), pool.String())
	case *certificate.PoolRetirement:
		pool, _ := c.Pool()
		return fmt.Sprintf("pool retirement: pool %s at %d\n", pool.String(), c.RetirementTime)
	}
	return cert.String() + "\n"
}
