package ledger

import (
	"fmt"

	"github.com/lunfardo314/easytx"
)

type (
	InputKind byte

	// UtxoPointer references an output of a previous transaction together with its value.
	// The value is supplied by the caller, it is not looked up
	UtxoPointer struct {
		TransactionID TransactionID
		OutputIndex   byte
		Value         Value
	}

	// AccountIdentifier is the public key of a single account
	AccountIdentifier PublicKey

	// Input is either a UTXO pointer or an account spending of a value.
	// Immutable once constructed
	Input struct {
		kind    InputKind
		utxo    UtxoPointer
		account AccountIdentifier
		value   Value
	}
)

const (
	InputUtxo InputKind = iota
	InputAccount
)

// MaxOutputIndex is the largest output index a UTXO pointer can reference
const MaxOutputIndex = 0xfe

const inputSerializedSize = 1 + 8 + 32 + 1

func (k InputKind) String() string {
	switch k {
	case InputUtxo:
		return "utxo"
	case InputAccount:
		return "account"
	}
	return fmt.Sprintf("InputKind(%d)", byte(k))
}

func NewUtxoPointer(txid TransactionID, outputIndex byte, value Value) (UtxoPointer, error) {
	if outputIndex > MaxOutputIndex {
		return UtxoPointer{}, Errorf(ERR_RESERVED_OUTPUT_INDEX, "utxo pointer: output index %d is reserved", outputIndex)
	}
	return UtxoPointer{TransactionID: txid, OutputIndex: outputIndex, Value: value}, nil
}

func (p UtxoPointer) String() string {
	return fmt.Sprintf("[%d]%s", p.OutputIndex, p.TransactionID.String())
}

func AccountIdentifierFromPublicKey(pk PublicKey) AccountIdentifier {
	return AccountIdentifier(pk)
}

// AccountIdentifierFromAddress only accepts account addresses
func AccountIdentifierFromAddress(addr Address) (AccountIdentifier, error) {
	if !addr.IsAccount() {
		return AccountIdentifier{}, Errorf(ERR_DECODE, "address is not account: %s address", addr.Kind())
	}
	key, _ := addr.AccountKey()
	return AccountIdentifier(key), nil
}

func (id AccountIdentifier) PublicKey() PublicKey {
	return PublicKey(id)
}

func (id AccountIdentifier) String() string {
	return PublicKey(id).String()
}

func InputFromUtxo(p UtxoPointer) Input {
	return Input{kind: InputUtxo, utxo: p, value: p.Value}
}

func InputFromAccount(id AccountIdentifier, v Value) Input {
	return Input{kind: InputAccount, account: id, value: v}
}

func (in Input) Kind() InputKind {
	return in.kind
}

func (in Input) Value() Value {
	return in.value
}

func (in Input) Utxo() (UtxoPointer, bool) {
	return in.utxo, in.kind == InputUtxo
}

func (in Input) Account() (AccountIdentifier, bool) {
	return in.account, in.kind == InputAccount
}

func (in Input) String() string {
	switch in.kind {
	case InputUtxo:
		return fmt.Sprintf("utxo %s value %d", in.utxo.String(), in.value)
	case InputAccount:
		return fmt.Sprintf("account %s value %d", in.account.String(), in.value)
	}
	return "invalid input"
}

// Bytes of the input: kind || value || txid or account key || output index (0 for accounts)
func (in Input) Bytes() []byte {
	ret := make([]byte, 0, inputSerializedSize)
	ret = append(ret, byte(in.kind))
	ret = append(ret, easytx.EncodeInteger(uint64(in.value))...)
	switch in.kind {
	case InputUtxo:
		ret = append(ret, in.utxo.TransactionID[:]...)
		ret = append(ret, in.utxo.OutputIndex)
	default:
		ret = append(ret, in.account[:]...)
		ret = append(ret, 0)
	}
	return ret
}

func InputFromBytes(data []byte) (Input, error) {
	if len(data) != inputSerializedSize {
		return Input{}, Errorf(ERR_DECODE, "input: wrong length %d", len(data))
	}
	v, err := easytx.TryDecodeInteger[uint64](data[1:9])
	if err != nil {
		return Input{}, Errorf(ERR_DECODE, "input value: %v", err)
	}
	switch InputKind(data[0]) {
	case InputUtxo:
		var txid TransactionID
		copy(txid[:], data[9:41])
		p, err := NewUtxoPointer(txid, data[41], Value(v))
		if err != nil {
			return Input{}, Errorf(ERR_DECODE, "input: %v", err)
		}
		return InputFromUtxo(p), nil
	case InputAccount:
		if data[41] != 0 {
			return Input{}, Errorf(ERR_DECODE, "input: non-zero padding in account input")
		}
		var id AccountIdentifier
		copy(id[:], data[9:41])
		return InputFromAccount(id, Value(v)), nil
	}
	return Input{}, Errorf(ERR_DECODE, "input: unknown kind %d", data[0])
}
