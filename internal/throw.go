package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Every failure in the kernel is a caller bug: coercing a value into the wrong
// weight class, building a mirror from a line with no normal, or asking for a
// meaningless count. Threading errors through every arithmetic method would
// make the vector API unusable, so the kernel panics, and the public API
// recovers to convert to an error.

var (
	ErrInvalidConversion  = errors.New("invalid conversion")
	ErrInvalidOperator    = errors.New("invalid operator")
	ErrDomainPrecondition = errors.New("domain precondition")
)

// KernelError is the only panic value the kernel raises on purpose. Anything
// else that reaches HandleKernelPanicRecover is a genuine bug and is re-raised.
type KernelError struct {
	err error
}

func (e *KernelError) Error() string { return e.err.Error() }
func (e *KernelError) Unwrap() error { return e.err }

// Panic with a KernelError of the given kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(&KernelError{errors.Wrap(kind, fmt.Sprintf(format, args...))})
}

func HandleKernelPanicRecover(r interface{}) error {
	if r != nil {
		if kernelError, ok := r.(*KernelError); ok {
			return kernelError
		}
		panic(r)
	}
	return nil
}
