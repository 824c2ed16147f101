// Package eventbus provides a typed in-process publish/subscribe
// dispatcher. Producers emit plain Go values; callbacks registered for a
// value's static type receive them. There is no network, persistence, or
// background machinery: the whole mechanism is the bus.
//
// # Architecture
//
// Three pieces cooperate:
//
//   - Bus: owns the subscriber registry (keyed by event type identity)
//     and the pending-event queue, and runs the dispatch path.
//
//   - Subscription: a caller-held handle representing one logical
//     subscriber. It registers callbacks for any number of event types
//     and revokes them individually or all at once on Close.
//
//   - internal/dispatch: executes individual callbacks with timing and
//     optional panic recovery.
//
// # Delivery Modes
//
// Events are delivered immediately or deferred:
//
//   - Emit dispatches synchronously; it returns after every matched
//     callback has run.
//
//   - Post appends the event to the pending queue; Flush drains the
//     queue in FIFO order through the same dispatch path as Emit. The
//     caller controls timing; nothing flushes in the background. Events
//     posted by a callback during Flush are delivered by the next Flush.
//
// # Ordering
//
// Within one dispatch, subscribers are visited in the order they first
// registered for the event type, and a subscriber's callbacks run in
// registration order. No ordering is defined across different event
// types.
//
// # Concurrency
//
// The bus is single-threaded by contract. No operation locks or yields;
// callbacks run inline on the caller's goroutine. A Bus shared across
// goroutines must be serialized externally.
//
// # Basic Usage
//
//	type Saved struct{ Path string }
//
//	bus := eventbus.New()
//	sub := eventbus.NewSubscription(bus)
//	defer sub.Close()
//
//	eventbus.On(sub, func(e Saved) {
//	    fmt.Println("saved:", e.Path)
//	})
//
//	eventbus.Emit(bus, Saved{Path: "main.go"})   // dispatched now
//	eventbus.Post(bus, Saved{Path: "doc.go"})    // queued
//	bus.Flush()                                  // dispatched here
//
// Event types are caller-defined value types; they need no required
// shape beyond being distinguishable by static type. Each callback
// receives its own copy of the event value, so one callback mutating its
// copy never leaks into the next.
package eventbus
