package ledger

import (
	"fmt"

	"github.com/lunfardo314/easytx"
)

// Output is a (destination, value) pair. Immutable
type Output struct {
	Address Address
	Value   Value
}

func NewOutput(addr Address, v Value) Output {
	return Output{Address: addr, Value: v}
}

// Bytes of the output: value || address bytes
func (o Output) Bytes() []byte {
	return append(easytx.EncodeInteger(uint64(o.Value)), o.Address.Bytes()...)
}

func OutputFromBytes(data []byte) (Output, error) {
	if len(data) < 9 {
		return Output{}, Errorf(ERR_DECODE, "output: wrong length %d", len(data))
	}
	v, err := easytx.TryDecodeInteger[uint64](data[:8])
	if err != nil {
		return Output{}, Errorf(ERR_DECODE, "output value: %v", err)
	}
	addr, err := AddressFromBytes(data[8:])
	if err != nil {
		return Output{}, err
	}
	return Output{Address: addr, Value: Value(v)}, nil
}

func (o Output) String() string {
	return fmt.Sprintf("%s value %d", o.Address.String(), o.Value)
}
