package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/lunfardo314/easytx/ledger"
	"github.com/lunfardo314/easytx/ledger/certificate"
	"github.com/lunfardo314/easytx/ledger/txbuilder"
	"go.uber.org/zap"
)

// Draft is the TOML description of a transaction:
//
//	change = "<address>"    # surplus is forgotten when empty
//
//	[[input]]
//	utxo = "<txid hex>"
//	index = 0
//	value = 1000
//	key = "ed25519_sk1..."
//
//	[[input]]
//	account = "<account address>"
//	value = 500
//	counter = 3
//	key = "ed25519e_sk1..."
//
//	[[output]]
//	address = "<address>"
//	value = 700
//
//	[certificate]
//	kind = "stake_delegation"    # or "pool_retirement"
//	account = "<account address>"
//	pool = "<pool id hex>"
//	retirement_time = 0
type Draft struct {
	Change      string            `toml:"change"`
	Inputs      []DraftInput      `toml:"input"`
	Outputs     []DraftOutput     `toml:"output"`
	Certificate *DraftCertificate `toml:"certificate"`
}

type DraftInput struct {
	Utxo    string `toml:"utxo"`
	Index   uint8  `toml:"index"`
	Account string `toml:"account"`
	Value   uint64 `toml:"value"`
	Counter uint32 `toml:"counter"`
	Key     string `toml:"key"`
}

type DraftOutput struct {
	Address string `toml:"address"`
	Value   uint64 `toml:"value"`
}

type DraftCertificate struct {
	Kind           string `toml:"kind"`
	Account        string `toml:"account"`
	Pool           string `toml:"pool"`
	RetirementTime uint64 `toml:"retirement_time"`
}

// LoadDraft reads the draft file. Unknown keys are an error
func LoadDraft(path string) (*Draft, error) {
	ret := &Draft{}
	md, err := toml.DecodeFile(path, ret)
	if err == nil {
		err = checkUndecoded(md)
	}
	if err != nil {
		return nil, fmt.Errorf("draft %s: %w", path, err)
	}
	return ret, nil
}

func ParseDraft(data string) (*Draft, error) {
	ret := &Draft{}
	md, err := toml.Decode(data, ret)
	if err == nil {
		err = checkUndecoded(md)
	}
	if err != nil {
		return nil, fmt.Errorf("draft: %w", err)
	}
	return ret, nil
}

func (in *DraftInput) toInput() (ledger.Input, error) {
	switch {
	case in.Utxo != "" && in.Account != "":
		return ledger.Input{}, fmt.Errorf("input can't be both utxo and account")
	case in.Utxo != "":
		txid, err := ledger.TransactionIDFromHex(in.Utxo)
		if err != nil {
			return ledger.Input{}, err
		}
		p, err := ledger.NewUtxoPointer(txid, in.Index, ledger.Value(in.Value))
		if err != nil {
			return ledger.Input{}, err
		}
		return ledger.InputFromUtxo(p), nil
	case in.Account != "":
		addr, err := ledger.AddressFromString(in.Account)
		if err != nil {
			return ledger.Input{}, err
		}
		id, err := ledger.AccountIdentifierFromAddress(addr)
		if err != nil {
			return ledger.Input{}, err
		}
		return ledger.InputFromAccount(id, ledger.Value(in.Value)), nil
	}
	return ledger.Input{}, fmt.Errorf("input must be either utxo or account")
}

func (c *DraftCertificate) toCertificate() (ledger.Certificate, error) {
	pool, err := ledger.HashFromHex(c.Pool)
	if err != nil {
		return ledger.Certificate{}, err
	}
	switch c.Kind {
	case "stake_delegation":
		addr, err := ledger.AddressFromString(c.Account)
		if err != nil {
			return ledger.Certificate{}, err
		}
		id, err := ledger.AccountIdentifierFromAddress(addr)
		if err != nil {
			return ledger.Certificate{}, err
		}
		return certificate.NewStakeDelegation(id, pool).Certificate()
	case "pool_retirement":
		return certificate.NewPoolRetirement(pool, c.RetirementTime).Certificate()
	}
	return ledger.Certificate{}, fmt.Errorf("unknown certificate kind '%s'", c.Kind)
}

// Builder loads the draft into a new transaction builder
func (d *Draft) Builder(log *zap.SugaredLogger) (*txbuilder.TransactionBuilder, error) {
	ret := txbuilder.NewTransactionBuilder().WithLogger(log)
	if d.Certificate != nil {
		cert, err := d.Certificate.toCertificate()
		if err != nil {
			return nil, fmt.Errorf("certificate: %w", err)
		}
		if err = ret.SetCertificate(cert); err != nil {
			return nil, err
		}
	}
	for i := range d.Inputs {
		in, err := d.Inputs[i].toInput()
		if err != nil {
			return nil, fmt.Errorf("input #%d: %w", i, err)
		}
		if _, err = ret.AddInput(in); err != nil {
			return nil, fmt.Errorf("input #%d: %w", i, err)
		}
	}
	for i, o := range d.Outputs {
		addr, err := ledger.AddressFromString(o.Address)
		if err != nil {
			return nil, fmt.Errorf("output #%d: %w", i, err)
		}
		if _, err = ret.AddOutput(addr, ledger.Value(o.Value)); err != nil {
			return nil, fmt.Errorf("output #%d: %w", i, err)
		}
	}
	return ret, nil
}

func (d *Draft) OutputPolicy() (txbuilder.OutputPolicy, error) {
	if d.Change == "" {
		return txbuilder.OutputPolicyForget(), nil
	}
	addr, err := ledger.AddressFromString(d.Change)
	if err != nil {
		return nil, fmt.Errorf("change: %w", err)
	}
	return txbuilder.OutputPolicyOne(addr), nil
}

func (d *Draft) WitnessRequests() ([]txbuilder.WitnessRequest, error) {
	ret := make([]txbuilder.WitnessRequest, len(d.Inputs))
	for i, in := range d.Inputs {
		if in.Key == "" {
			return nil, fmt.Errorf("input #%d: no key", i)
		}
		key, err := ledger.PrivateKeyFromBech32(in.Key)
		if err != nil {
			return nil, fmt.Errorf("input #%d: %w", i, err)
		}
		ret[i] = txbuilder.WitnessRequest{
			Key:     key,
			Counter: ledger.SpendingCounterFromUint32(in.Counter),
		}
	}
	return ret, nil
}
