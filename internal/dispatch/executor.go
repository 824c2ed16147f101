package dispatch

import (
	"runtime/debug"
	"time"

	"github.com/benbjohnson/clock"
)

// Callback is the type-erased form of a registered callback.
// This mirrors the callback wrapper in the eventbus package to avoid a
// circular import.
type Callback interface {
	Invoke(event any)
}

// PanicHandler is called when a callback panics during execution.
type PanicHandler func(event any, recovered any, stack []byte)

// Result represents the outcome of a single callback execution.
type Result struct {
	// Panicked is true if the callback panicked and was recovered.
	Panicked bool

	// PanicValue is the value passed to panic(), if Panicked is true.
	PanicValue any

	// PanicStack is the stack trace captured at the point of panic.
	PanicStack []byte

	// Duration is how long the callback took to execute.
	Duration time.Duration
}

// Executor runs callbacks one at a time with timing and optional
// panic recovery. Without a panic handler a panicking callback
// propagates to the caller.
type Executor struct {
	clock        clock.Clock
	panicHandler PanicHandler
}

// Option configures an Executor.
type Option func(*Executor)

// WithClock sets the clock used for timing callback execution.
func WithClock(c clock.Clock) Option {
	return func(e *Executor) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithPanicHandler sets the panic handler and enables recovery.
func WithPanicHandler(h PanicHandler) Option {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// NewExecutor creates a new executor with the given options.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		clock: clock.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs a single callback with the given event and returns the result.
// If a panic handler is configured, panics are recovered, reported to the
// handler, and noted in the result; otherwise they propagate.
func (e *Executor) Execute(event any, cb Callback) (result Result) {
	start := e.clock.Now()

	defer func() {
		result.Duration = e.clock.Since(start)
	}()

	if e.panicHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				result.Panicked = true
				result.PanicValue = r
				result.PanicStack = stack

				// A panicking panic handler must not take down the dispatch.
				func() {
					defer func() {
						_ = recover()
					}()
					e.panicHandler(event, r, stack)
				}()
			}
		}()
	}

	cb.Invoke(event)
	return result
}
