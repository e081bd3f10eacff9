// Package capability holds the failure vocabulary shared by the examples.
package capability

import "errors"

var (
	// ErrUnsupportedOperation is returned by a variant that was forced to
	// implement a capability it cannot honor.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidInput is returned when a consumer rejects malformed input.
	ErrInvalidInput = errors.New("invalid input")
)

type unsupportedError struct {
	msg string
}

func (e *unsupportedError) Error() string { return e.msg }

func (e *unsupportedError) Is(target error) bool {
	return target == ErrUnsupportedOperation
}

// Unsupported returns an error matching ErrUnsupportedOperation whose
// message is exactly msg.
func Unsupported(msg string) error {
	return &unsupportedError{msg: msg}
}
