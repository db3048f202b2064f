package txbuilder

import (
	"github.com/lunfardo314/easyfl"
	"github.com/lunfardo314/easytx/ledger"
	"go.uber.org/zap"
)

// TransactionBuilder accumulates the draft of a transaction. It is owned by one caller
// and is consumed by Finalize or UncheckedFinalize, whatever the outcome
type TransactionBuilder struct {
	inputs   []ledger.Input
	outputs  []ledger.Output
	extra    ledger.Extra
	consumed bool
	log      *zap.SugaredLogger
}

func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		inputs:  make([]ledger.Input, 0),
		outputs: make([]ledger.Output, 0),
		extra:   ledger.NoExtra{},
		log:     zap.NewNop().Sugar(),
	}
}

func (b *TransactionBuilder) WithLogger(log *zap.SugaredLogger) *TransactionBuilder {
	if log != nil {
		b.log = log
	}
	return b
}

func (b *TransactionBuilder) checkNotConsumed() error {
	if b.consumed {
		return ledger.ErrBuilderConsumed
	}
	return nil
}

func (b *TransactionBuilder) consume() {
	b.consumed = true
	b.inputs = nil
	b.outputs = nil
	b.extra = nil
}

// SetCertificate turns the draft into a certificate-carrying one. At most one certificate
func (b *TransactionBuilder) SetCertificate(cert ledger.Certificate) error {
	if err := b.checkNotConsumed(); err != nil {
		return err
	}
	switch b.extra.(type) {
	case ledger.NoExtra:
		b.extra = ledger.CertificateExtra{Certificate: ledger.NewCertificate(cert.Kind, cert.Payload)}
		return nil
	case ledger.CertificateExtra:
		return ledger.Errorf(ledger.ERR_CERTIFICATE_ALREADY_SET, "there is already one certificate")
	}
	panic("SetCertificate: unknown extra")
}

// AddInput appends the input and returns its index. No deduplication
func (b *TransactionBuilder) AddInput(in ledger.Input) (byte, error) {
	if err := b.checkNotConsumed(); err != nil {
		return 0, err
	}
	if len(b.inputs) >= ledger.MaxInputs {
		return 0, ledger.Errorf(ledger.ERR_TOO_MANY_INPUTS, "max %d inputs", ledger.MaxInputs)
	}
	if p, isUtxo := in.Utxo(); isUtxo && p.OutputIndex > ledger.MaxOutputIndex {
		return 0, ledger.Errorf(ledger.ERR_RESERVED_OUTPUT_INDEX, "utxo pointer: output index %d is reserved", p.OutputIndex)
	}
	b.inputs = append(b.inputs, in)
	return byte(len(b.inputs) - 1), nil
}

// AddOutput appends the output and returns its index. The index becomes the output index
// future UTXO pointers refer to
func (b *TransactionBuilder) AddOutput(addr ledger.Address, v ledger.Value) (byte, error) {
	if err := b.checkNotConsumed(); err != nil {
		return 0, err
	}
	if len(b.outputs) >= ledger.MaxOutputs {
		return 0, ledger.Errorf(ledger.ERR_TOO_MANY_OUTPUTS, "max %d outputs", ledger.MaxOutputs)
	}
	b.outputs = append(b.outputs, ledger.NewOutput(addr, v))
	return byte(len(b.outputs) - 1), nil
}

func (b *TransactionBuilder) NumInputs() int {
	return len(b.inputs)
}

func (b *TransactionBuilder) NumOutputs() int {
	return len(b.outputs)
}

func (b *TransactionBuilder) Shape() ledger.TransactionShape {
	_, hasCert := b.extra.(ledger.CertificateExtra)
	return ledger.TransactionShape{
		NumInputs:      len(b.inputs),
		NumOutputs:     len(b.outputs),
		HasCertificate: hasCert,
	}
}

// EstimateFee applies the fee model to the current shape of the draft
func (b *TransactionBuilder) EstimateFee(fee ledger.FeeAlgorithm) (ledger.Value, error) {
	if err := b.checkNotConsumed(); err != nil {
		return 0, err
	}
	easyfl.Assert(fee != nil, "EstimateFee: fee algorithm can't be nil")
	return fee.CalculateFee(b.Shape())
}

// GetBalance is sum(inputs) - sum(outputs) - fee
func (b *TransactionBuilder) GetBalance(fee ledger.FeeAlgorithm) (ledger.Balance, error) {
	f, err := b.EstimateFee(fee)
	if err != nil {
		return ledger.Balance{}, err
	}
	return b.balance(f)
}

// GetBalanceWithoutFee is sum(inputs) - sum(outputs)
func (b *TransactionBuilder) GetBalanceWithoutFee() (ledger.Balance, error) {
	if err := b.checkNotConsumed(); err != nil {
		return ledger.Balance{}, err
	}
	return b.balance(0)
}

func (b *TransactionBuilder) balance(fee ledger.Value) (ledger.Balance, error) {
	in, err := b.totalInputs()
	if err != nil {
		return ledger.Balance{}, err
	}
	out, err := b.totalOutputs()
	if err != nil {
		return ledger.Balance{}, err
	}
	if out, err = out.Add(fee); err != nil {
		return ledger.Balance{}, err
	}
	return ledger.ComputeBalance(in, out), nil
}

func (b *TransactionBuilder) totalInputs() (ledger.Value, error) {
	values := make([]ledger.Value, len(b.inputs))
	for i, in := range b.inputs {
		values[i] = in.Value()
	}
	return ledger.SumValues(values...)
}

func (b *TransactionBuilder) totalOutputs() (ledger.Value, error) {
	values := make([]ledger.Value, len(b.outputs))
	for i, o := range b.outputs {
		values[i] = o.Value
	}
	return ledger.SumValues(values...)
}

// Finalize checks the balance including the fee and produces the immutable transaction.
// Negative balance fails with ERR_INSUFFICIENT_FUNDS, positive balance is resolved by the
// output policy, zero balance is taken as is. The builder is consumed even on failure
func (b *TransactionBuilder) Finalize(fee ledger.FeeAlgorithm, policy OutputPolicy) (*ledger.Transaction, error) {
	if err := b.checkNotConsumed(); err != nil {
		return nil, err
	}
	defer b.consume()

	easyfl.Assert(policy != nil, "Finalize: output policy can't be nil")
	bal, err := b.GetBalance(fee)
	if err != nil {
		return nil, err
	}
	outputs := b.outputs
	switch bal.Sign() {
	case ledger.BalanceNegative:
		b.log.Debugf("finalize: insufficient funds, missing %d", bal.Value())
		return nil, ledger.Errorf(ledger.ERR_INSUFFICIENT_FUNDS, "inputs can't cover outputs and fee, missing %d", bal.Value())
	case ledger.BalancePositive:
		if outputs, err = applyOutputPolicy(policy, outputs, bal.Value()); err != nil {
			return nil, err
		}
		b.log.Debugf("finalize: surplus %d resolved by %s", bal.Value(), policy)
	case ledger.BalanceZero:
		b.log.Debugf("finalize: exact balance")
	}
	tx, err := ledger.NewTransaction(b.inputs, outputs, b.extra)
	if err != nil {
		return nil, err
	}
	b.log.Debugf("finalize: transaction %s with %d inputs, %d outputs", tx.ID().String(), tx.NumInputs(), tx.NumOutputs())
	return tx, nil
}

// UncheckedFinalize produces the transaction from the draft as is.
// UNSAFE: neither the fee nor the balance invariant (inputs cover outputs plus fee) is checked,
// the caller must have validated the balance by other means. The builder is consumed
func (b *TransactionBuilder) UncheckedFinalize() (*ledger.Transaction, error) {
	if err := b.checkNotConsumed(); err != nil {
		return nil, err
	}
	defer b.consume()
	return ledger.NewTransaction(b.inputs, b.outputs, b.extra)
}
