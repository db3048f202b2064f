package ledger

import "fmt"

type ErrorCode string

const (
	ERR_CERTIFICATE_ALREADY_SET    ErrorCode = "ERR_CERTIFICATE_ALREADY_SET"
	ERR_WITNESS_KIND_MISMATCH      ErrorCode = "ERR_WITNESS_KIND_MISMATCH"
	ERR_WITNESS_INDEX_OUT_OF_RANGE ErrorCode = "ERR_WITNESS_INDEX_OUT_OF_RANGE"
	ERR_WITNESS_ALREADY_SET        ErrorCode = "ERR_WITNESS_ALREADY_SET"
	ERR_MISSING_WITNESS            ErrorCode = "ERR_MISSING_WITNESS"
	ERR_TOO_MANY_INPUTS            ErrorCode = "ERR_TOO_MANY_INPUTS"
	ERR_TOO_MANY_OUTPUTS           ErrorCode = "ERR_TOO_MANY_OUTPUTS"
	ERR_BUILDER_CONSUMED           ErrorCode = "ERR_BUILDER_CONSUMED"
	ERR_RESERVED_OUTPUT_INDEX      ErrorCode = "ERR_RESERVED_OUTPUT_INDEX"

	ERR_VALUE_OVERFLOW  ErrorCode = "ERR_VALUE_OVERFLOW"
	ERR_VALUE_UNDERFLOW ErrorCode = "ERR_VALUE_UNDERFLOW"

	ERR_INSUFFICIENT_FUNDS ErrorCode = "ERR_INSUFFICIENT_FUNDS"

	ERR_DECODE ErrorCode = "ERR_DECODE"
)

// Error is the only error type returned by the ledger and txbuilder packages.
// Two errors are equivalent for errors.Is when their codes are equal
type Error struct {
	Code ErrorCode
	Msg  string
}

// sentinels for errors.Is
var (
	ErrCertificateAlreadySet  = &Error{Code: ERR_CERTIFICATE_ALREADY_SET}
	ErrWitnessKindMismatch    = &Error{Code: ERR_WITNESS_KIND_MISMATCH}
	ErrWitnessIndexOutOfRange = &Error{Code: ERR_WITNESS_INDEX_OUT_OF_RANGE}
	ErrWitnessAlreadySet      = &Error{Code: ERR_WITNESS_ALREADY_SET}
	ErrMissingWitness         = &Error{Code: ERR_MISSING_WITNESS}
	ErrTooManyInputs          = &Error{Code: ERR_TOO_MANY_INPUTS}
	ErrTooManyOutputs         = &Error{Code: ERR_TOO_MANY_OUTPUTS}
	ErrBuilderConsumed        = &Error{Code: ERR_BUILDER_CONSUMED}
	ErrReservedOutputIndex    = &Error{Code: ERR_RESERVED_OUTPUT_INDEX}
	ErrValueOverflow          = &Error{Code: ERR_VALUE_OVERFLOW}
	ErrValueUnderflow         = &Error{Code: ERR_VALUE_UNDERFLOW}
	ErrInsufficientFunds      = &Error{Code: ERR_INSUFFICIENT_FUNDS}
	ErrDecode                 = &Error{Code: ERR_DECODE}
)

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func Errorf(code ErrorCode, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf returns code of the error or empty string if err is not a ledger error
func CodeOf(err error) ErrorCode {
	if e, ok := err.(*Error); ok && e != nil {
		return e.Code
	}
	return ""
}
