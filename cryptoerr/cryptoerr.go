// Package cryptoerr defines the error taxonomy shared by every fallible
// operation in this module. Errors are never recovered internally; they
// are constructed at the point of detection and propagated to the caller.
package cryptoerr

import "fmt"

// Kind identifies the class of failure. Two errors of the same Kind can
// still carry different contextual integers (e.g. two InvalidKeyLengthSmaller
// errors with different offending lengths).
type Kind int

const (
	InvalidKeyLengthSmaller Kind = iota
	InvalidKeyLengthLarger
	InvalidKey
	InvalidBlockSize
	InvalidInput
	InvalidPadding

	// Reserved for password-based derivation callers that want to surface
	// these as part of this taxonomy rather than a bespoke error type.
	InvalidPasswordLength
	InvalidCost
)

func (k Kind) String() string {
	switch k {
	case InvalidKeyLengthSmaller, InvalidKeyLengthLarger:
		return "invalid key length"
	case InvalidKey:
		return "invalid key"
	case InvalidBlockSize:
		return "invalid block size"
	case InvalidInput:
		return "invalid input"
	case InvalidPadding:
		return "invalid padding"
	case InvalidPasswordLength:
		return "invalid password length"
	case InvalidCost:
		return "invalid cost parameter"
	default:
		return "unknown cryptoerr kind"
	}
}

// Error is the concrete type returned for every failure in this taxonomy.
// It carries the two integers most constructors need (an observed value
// and a bound); callers that need more context can type-assert on Kind.
type Error struct {
	Kind     Kind
	Observed int
	Bound    int
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidKeyLengthSmaller:
		return fmt.Sprintf("invalid key length (%d), key length should be at least %d", e.Observed, e.Bound)
	case InvalidKeyLengthLarger:
		return fmt.Sprintf("invalid key length (%d), key length should be at most %d", e.Observed, e.Bound)
	case InvalidBlockSize:
		return fmt.Sprintf("invalid block size (%d), the block should contain %d bytes", e.Observed, e.Bound)
	default:
		return e.Kind.String()
	}
}

// New builds a bare error of the given kind, with no contextual integers.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// KeyTooShort reports a key shorter than the algorithm's minimum.
func KeyTooShort(observed, min int) *Error {
	return &Error{Kind: InvalidKeyLengthSmaller, Observed: observed, Bound: min}
}

// KeyTooLong reports a key longer than the algorithm's maximum.
func KeyTooLong(observed, max int) *Error {
	return &Error{Kind: InvalidKeyLengthLarger, Observed: observed, Bound: max}
}

// BadBlockSize reports a block whose length does not match what the
// operation expects.
func BadBlockSize(observed, expected int) *Error {
	return &Error{Kind: InvalidBlockSize, Observed: observed, Bound: expected}
}

// Is makes errors.Is match on Kind alone: any *Error target of the same Kind
// matches, e.g. errors.Is(err, cryptoerr.New(cryptoerr.InvalidPadding)).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}
