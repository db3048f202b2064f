package ledger

import (
	"fmt"
	"math"
)

// Value is a non-negative amount. All arithmetic is checked
type Value uint64

func (v Value) Add(other Value) (Value, error) {
	if uint64(v) > math.MaxUint64-uint64(other) {
		return 0, Errorf(ERR_VALUE_OVERFLOW, "%d + %d", v, other)
	}
	return v + other, nil
}

func (v Value) Sub(other Value) (Value, error) {
	if other > v {
		return 0, Errorf(ERR_VALUE_UNDERFLOW, "%d - %d", v, other)
	}
	return v - other, nil
}

func (v Value) String() string {
	return fmt.Sprintf("%d", uint64(v))
}

func SumValues(values ...Value) (Value, error) {
	var ret Value
	var err error
	for _, v := range values {
		if ret, err = ret.Add(v); err != nil {
			return 0, err
		}
	}
	return ret, nil
}

type BalanceSign byte

const (
	BalanceZero BalanceSign = iota
	BalancePositive
	BalanceNegative
)

func (s BalanceSign) String() string {
	switch s {
	case BalancePositive:
		return "positive"
	case BalanceNegative:
		return "negative"
	case BalanceZero:
		return "zero"
	}
	return fmt.Sprintf("BalanceSign(%d)", byte(s))
}

// Balance is the outcome of reconciling inputs against outputs (and fee).
// Positive: inputs exceed, Negative: inputs are insufficient, Zero: exact match.
// The value of Positive and Negative is never zero
type Balance struct {
	sign  BalanceSign
	value Value
}

func BalanceOf(sign BalanceSign, v Value) Balance {
	if v == 0 {
		return Balance{}
	}
	return Balance{sign: sign, value: v}
}

// ComputeBalance compares total input against total output
func ComputeBalance(in, out Value) Balance {
	switch {
	case in > out:
		return Balance{sign: BalancePositive, value: in - out}
	case in < out:
		return Balance{sign: BalanceNegative, value: out - in}
	}
	return Balance{}
}

func (b Balance) Sign() BalanceSign {
	return b.sign
}

// Value magnitude of the balance, 0 for zero balance
func (b Balance) Value() Value {
	return b.value
}

func (b Balance) IsPositive() bool { return b.sign == BalancePositive }
func (b Balance) IsNegative() bool { return b.sign == BalanceNegative }
func (b Balance) IsZero() bool     { return b.sign == BalanceZero }

func (b Balance) String() string {
	switch b.sign {
	case BalancePositive:
		return fmt.Sprintf("+%d", b.value)
	case BalanceNegative:
		return fmt.Sprintf("-%d", b.value)
	}
	return "0"
}
