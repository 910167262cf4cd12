package stark

import (
	"errors"
	"fmt"
)

// Error taxonomy. Every failure returned by this package and by the
// starkex hash builder unwraps to exactly one of these sentinels, so
// callers can classify with errors.Is instead of string matching.
var (
	// ErrInvalidEncoding reports malformed hex or decimal input.
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrValueOutOfRange reports an integer that is >= the field prime,
	// >= the curve order, or too wide for its declared bit width.
	ErrValueOutOfRange = errors.New("value out of range")
	// ErrStringTooLong reports a short-string input longer than 31 bytes.
	ErrStringTooLong = errors.New("string exceeds 31 bytes")
	// ErrInvalidSignatureLength reports an Ethereum signature with fewer
	// than 64 hex characters after the optional 0x prefix.
	ErrInvalidSignatureLength = errors.New("invalid ethereum signature length")
	// ErrKeyDerivationExhausted reports that the grinding loop hit its
	// defensive iteration ceiling.
	ErrKeyDerivationExhausted = errors.New("key derivation exhausted")
)

// FieldError annotates a taxonomy sentinel with the offending field name
// and the rejected value.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v (got %q)", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// NewFieldError wraps err with the field name and rejected value.
func NewFieldError(field, value string, err error) error {
	return &FieldError{Field: field, Value: value, Err: err}
}
