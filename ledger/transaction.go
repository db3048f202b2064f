package ledger

import (
	"fmt"
	"strings"

	"github.com/lunfardo314/easytx/lazyslice"
)

const (
	MaxInputs  = 255
	MaxOutputs = MaxOutputIndex + 1
)

// indices of the transaction body elements
const (
	TxInputs = iota
	TxOutputs
	TxExtra
	TxTreeIndexMax
)

// Transaction is the immutable unwitnessed transaction body. Canonical bytes and the ID
// are computed once at construction, so the transaction can be read concurrently
type Transaction struct {
	inputs  []Input
	outputs []Output
	extra   Extra
	bytes   []byte
	id      TransactionID
}

// TransactionShape is everything the fee model is allowed to see of a transaction
type TransactionShape struct {
	NumInputs      int
	NumOutputs     int
	HasCertificate bool
}

func NewTransaction(inputs []Input, outputs []Output, extra Extra) (*Transaction, error) {
	if len(inputs) > MaxInputs {
		return nil, Errorf(ERR_TOO_MANY_INPUTS, "%d inputs, max %d", len(inputs), MaxInputs)
	}
	if len(outputs) > MaxOutputs {
		return nil, Errorf(ERR_TOO_MANY_OUTPUTS, "%d outputs, max %d", len(outputs), MaxOutputs)
	}
	ret := &Transaction{
		inputs:  append(make([]Input, 0, len(inputs)), inputs...),
		outputs: append(make([]Output, 0, len(outputs)), outputs...),
		extra:   copyExtra(extra),
	}
	ret.bytes = ret.toArray().Bytes()
	ret.id = TransactionID(HashBytes(ret.bytes))
	return ret, nil
}

func (tx *Transaction) toArray() *lazyslice.Array {
	ins := lazyslice.EmptyArray(MaxInputs)
	for _, in := range tx.inputs {
		ins.Push(in.Bytes())
	}
	outs := lazyslice.EmptyArray(MaxOutputs)
	for _, o := range tx.outputs {
		outs.Push(o.Bytes())
	}
	elems := make([][]byte, TxTreeIndexMax)
	elems[TxInputs] = ins.Bytes()
	elems[TxOutputs] = outs.Bytes()
	elems[TxExtra] = extraBytes(tx.extra)
	return lazyslice.MakeArray(elems...)
}

// TransactionFromBytes parses the canonical encoding. Any other encoding is rejected,
// so the ID of the parsed transaction is the hash of exactly the data
func TransactionFromBytes(data []byte) (*Transaction, error) {
	arr, err := lazyslice.ParseArray(data, TxTreeIndexMax)
	if err != nil {
		return nil, Errorf(ERR_DECODE, "transaction: %v", err)
	}
	if arr.NumElements() != TxTreeIndexMax {
		return nil, Errorf(ERR_DECODE, "transaction: wrong number of elements %d", arr.NumElements())
	}
	insArr, err := lazyslice.ParseArray(arr.At(TxInputs), MaxInputs)
	if err != nil {
		return nil, Errorf(ERR_DECODE, "transaction inputs: %v", err)
	}
	inputs := make([]Input, insArr.NumElements())
	for i := range inputs {
		if inputs[i], err = InputFromBytes(insArr.At(i)); err != nil {
			return nil, err
		}
	}
	outsArr, err := lazyslice.ParseArray(arr.At(TxOutputs), MaxOutputs)
	if err != nil {
		return nil, Errorf(ERR_DECODE, "transaction outputs: %v", err)
	}
	outputs := make([]Output, outsArr.NumElements())
	for i := range outputs {
		if outputs[i], err = OutputFromBytes(outsArr.At(i)); err != nil {
			return nil, err
		}
	}
	extra, err := extraFromBytes(arr.At(TxExtra))
	if err != nil {
		return nil, err
	}
	return NewTransaction(inputs, outputs, extra)
}

func (tx *Transaction) ID() TransactionID {
	return tx.id
}

func (tx *Transaction) Bytes() []byte {
	return append([]byte(nil), tx.bytes...)
}

func (tx *Transaction) NumInputs() int {
	return len(tx.inputs)
}

func (tx *Transaction) NumOutputs() int {
	return len(tx.outputs)
}

func (tx *Transaction) Input(idx int) Input {
	return tx.inputs[idx]
}

func (tx *Transaction) Output(idx int) Output {
	return tx.outputs[idx]
}

func (tx *Transaction) Inputs() []Input {
	return append([]Input(nil), tx.inputs...)
}

func (tx *Transaction) Outputs() []Output {
	return append([]Output(nil), tx.outputs...)
}

// Extra returns a copy, the certificate payload of the transaction can't be changed through it
func (tx *Transaction) Extra() Extra {
	return copyExtra(tx.extra)
}

func (tx *Transaction) Certificate() (Certificate, bool) {
	switch e := tx.extra.(type) {
	case CertificateExtra:
		return NewCertificate(e.Certificate.Kind, e.Certificate.Payload), true
	case NoExtra:
	}
	return Certificate{}, false
}

func copyExtra(e Extra) Extra {
	switch e := e.(type) {
	case CertificateExtra:
		return CertificateExtra{Certificate: NewCertificate(e.Certificate.Kind, e.Certificate.Payload)}
	case NoExtra:
	}
	return NoExtra{}
}

func (tx *Transaction) Shape() TransactionShape {
	_, hasCert := tx.Certificate()
	return TransactionShape{
		NumInputs:      len(tx.inputs),
		NumOutputs:     len(tx.outputs),
		HasCertificate: hasCert,
	}
}

func (tx *Transaction) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TransactionID: %s\n", tx.id.String())
	b.WriteString("inputs:\n")
	for i, in := range tx.inputs {
		fmt.Fprintf(&b, "  #%d: %s\n", i, in.String())
	}
	b.WriteString("outputs:\n")
	for i, o := range tx.outputs {
		fmt.Fprintf(&b, "  #%d: %s\n", i, o.String())
	}
	if cert, ok := tx.Certificate(); ok {
		fmt.Fprintf(&b, "%s\n", cert.String())
	}
	return b.String()
}
