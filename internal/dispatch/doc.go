// Package dispatch executes event callbacks for the event bus.
//
// Execution is always synchronous in the caller's goroutine; the bus
// delivers every event in-call and callback order is entirely determined
// by the caller. The executor adds two things around the raw invocation:
//
//   - Timing: every execution is measured through a clock.Clock so tests
//     can substitute a mock clock.
//
//   - Panic recovery: when a PanicHandler is configured, a panicking
//     callback is recovered, reported to the handler with its stack, and
//     dispatch continues with the next callback. Without a handler the
//     panic propagates, treating it as a programming error.
//
// # Usage
//
//	exec := dispatch.NewExecutor(
//	    dispatch.WithPanicHandler(func(event any, r any, stack []byte) {
//	        log.Printf("panic in callback: %v\n%s", r, stack)
//	    }),
//	)
//	result := exec.Execute(event, cb)
//	if result.Panicked {
//	    // Callback panicked; dispatch may continue.
//	}
package dispatch
