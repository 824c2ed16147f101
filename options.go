package eventbus

import (
	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
)

// Option configures a Bus.
type Option func(*config)

// config contains configuration for the bus.
type config struct {
	// logger receives registration, removal, and dispatch diagnostics.
	logger zerolog.Logger

	// clock supplies timestamps for queue-age and dispatch timing.
	clock clock.Clock

	// panicHandler, when set, enables panic recovery during dispatch.
	panicHandler PanicHandler
}

// defaultConfig returns the default bus configuration: no logging, the
// system clock, and no panic recovery (callback panics propagate).
func defaultConfig() config {
	return config{
		logger: zerolog.Nop(),
		clock:  clock.New(),
	}
}

// WithLogger sets the logger used for bus diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithClock sets the clock used for timestamps and dispatch timing.
// Tests can pass a mock clock.
func WithClock(cl clock.Clock) Option {
	return func(c *config) {
		if cl != nil {
			c.clock = cl
		}
	}
}

// WithPanicHandler sets a handler for callback panics and switches the
// bus to recovery mode: a panicking callback is reported to the handler
// and dispatch continues with the remaining callbacks. Without this
// option a callback panic propagates out of Emit or Flush.
func WithPanicHandler(h PanicHandler) Option {
	return func(c *config) {
		c.panicHandler = h
	}
}

// FilterFunc is a predicate gating delivery to a single registration.
// Return true to deliver the event, false to skip it.
type FilterFunc func(event any) bool

// SubscribeOption configures a single callback registration.
type SubscribeOption func(*entry)

// WithFilter sets a delivery predicate for the registration.
func WithFilter(f FilterFunc) SubscribeOption {
	return func(e *entry) {
		e.filter = f
	}
}

// WithOnce removes the registration automatically after its first
// delivery.
func WithOnce() SubscribeOption {
	return func(e *entry) {
		e.once = true
	}
}
