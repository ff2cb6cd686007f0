package bigint

import "errors"

// Error taxonomy of the library. Operations return one of these
// sentinels, usually wrapped with more context, so callers match them
// with errors.Is.
var (
	// ErrBadArgument reports a precondition violation: a nil operand or a
	// base outside 2..16. Correct callers never observe it.
	ErrBadArgument = errors.New("libint: bad argument")

	// ErrArithmetic reports division by zero, unsigned subtraction with a
	// negative result, the most significant bit of zero, or overflow when
	// narrowing to a host integer.
	ErrArithmetic = errors.New("libint: arithmetic error")

	// ErrIO reports a failure of the byte-source collaborator.
	ErrIO = errors.New("libint: input/output error")

	// ErrParse is reserved; it is propagated when raised by a collaborator.
	ErrParse = errors.New("libint: parse error")
)
