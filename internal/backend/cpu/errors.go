package cpu

import "github.com/pkg/errors"

// Kernel precondition failures. Every error returned by a kernel wraps
// exactly one of these; match with errors.Is.
var (
	// ErrShapeMismatch reports operands whose ranks or dimensions disagree.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidStride reports a padded extent minus kernel extent that the
	// stride does not divide evenly.
	ErrInvalidStride = errors.New("invalid stride")

	// ErrInvalidParameter reports a non-positive stride, negative padding,
	// non-positive kernel extent or a kernel larger than the padded input.
	ErrInvalidParameter = errors.New("invalid parameter")
)

func shapeMismatch(op, format string, args ...any) error {
	return errors.Wrapf(ErrShapeMismatch, op+": "+format, args...)
}

func invalidStride(op, format string, args ...any) error {
	return errors.Wrapf(ErrInvalidStride, op+": "+format, args...)
}

func invalidParameter(op, format string, args ...any) error {
	return errors.Wrapf(ErrInvalidParameter, op+": "+format, args...)
}
