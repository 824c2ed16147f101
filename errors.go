package eventbus

import (
	"errors"
	"fmt"
)

// The dispatcher has no recoverable-error taxonomy: absent subscribers,
// double-unsubscribe, and unsubscribe of an unknown type are all defined
// as silent no-ops. The only fault class is a callback panic, surfaced
// through PanicError when recovery is enabled.

// ErrCallbackPanic matches any PanicError via errors.Is.
var ErrCallbackPanic = errors.New("callback panicked")

// PanicHandler is called when a callback panics during dispatch and the
// bus was built with WithPanicHandler. The stack is captured at the
// point of the panic.
type PanicHandler func(event any, recovered any, stack []byte)

// PanicError wraps a recovered callback panic as an error.
type PanicError struct {
	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace at the time of the panic.
	Stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("callback panic: %v", e.Value)
}

// Is allows errors.Is to match PanicError with ErrCallbackPanic.
func (e *PanicError) Is(target error) bool {
	return target == ErrCallbackPanic
}
