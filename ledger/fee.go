package ledger

import "fmt"

// FeeAlgorithm maps the shape of a transaction to the fee it owes. Implementations
// must not depend on anything but the shape, so estimation is O(1) and order-independent
type FeeAlgorithm interface {
	CalculateFee(shape TransactionShape) (Value, error)
}

// LinearFee = Constant + Coefficient * number of inputs + Certificate (when a certificate is present).
// The number of inputs is the size proxy: every input carries a witness, which dominates
// the size of the transaction
type LinearFee struct {
	Constant    Value
	Coefficient Value
	Certificate Value
}

func NewLinearFee(constant, coefficient, certificate uint64) LinearFee {
	return LinearFee{
		Constant:    Value(constant),
		Coefficient: Value(coefficient),
		Certificate: Value(certificate),
	}
}

func (f LinearFee) CalculateFee(shape TransactionShape) (Value, error) {
	if shape.NumInputs < 0 || shape.NumOutputs < 0 {
		return 0, Errorf(ERR_VALUE_UNDERFLOW, "negative transaction shape %+v", shape)
	}
	var perInput Value
	if shape.NumInputs > 0 && f.Coefficient > 0 {
		n := Value(shape.NumInputs)
		if f.Coefficient > ^Value(0)/n {
			return 0, Errorf(ERR_VALUE_OVERFLOW, "fee: %d * %d", f.Coefficient, n)
		}
		perInput = f.Coefficient * n
	}
	ret, err := f.Constant.Add(perInput)
	if err != nil {
		return 0, err
	}
	if shape.HasCertificate {
		if ret, err = ret.Add(f.Certificate); err != nil {
			return 0, err
		}
	}
	return ret, nil
}

func (f LinearFee) String() string {
	return fmt.Sprintf("linear fee (constant %d, coefficient %d, certificate %d)", f.Constant, f.Coefficient, f.Certificate)
}
