package eventbus

import (
	"reflect"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"

	"github.com/dshills/eventbus/internal/dispatch"
)

// Bus is the central event dispatcher. It owns the subscriber registry
// and the pending-event queue and hands events to callbacks either
// immediately (Emit) or on demand (Post followed by Flush).
//
// A Bus is not safe for concurrent use. Every operation runs to
// completion on the caller's goroutine and callbacks are invoked inline;
// callers that share a Bus across goroutines must serialize access
// themselves.
type Bus struct {
	registry *registry
	pending  []pending
	lastID   uint64

	exec   *dispatch.Executor
	logger zerolog.Logger
	clock  clock.Clock

	// Counters behind Stats. Plain integers: the single-goroutine
	// ownership contract makes atomics unnecessary.
	emitted  uint64
	posted   uint64
	flushed  uint64
	invoked  uint64
	panicked uint64
}

// New creates a new event bus with the given options.
func New(opts ...Option) *Bus {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Bus{
		registry: newRegistry(),
		logger:   cfg.logger,
		clock:    cfg.clock,
	}

	execOpts := []dispatch.Option{dispatch.WithClock(cfg.clock)}
	if cfg.panicHandler != nil {
		handler := cfg.panicHandler
		execOpts = append(execOpts, dispatch.WithPanicHandler(func(event any, recovered any, stack []byte) {
			handler(event, recovered, stack)
		}))
	}
	b.exec = dispatch.NewExecutor(execOpts...)

	return b
}

// Emit dispatches the event to every callback registered for T, in
// subscriber-registration order and then callback-registration order
// within each subscriber. It returns once every matched callback has
// run. Zero subscribers for T is a valid state and a no-op.
func Emit[T any](b *Bus, event T) {
	b.emitted++
	b.emit(typeKey[T](), event)
}

// Post appends the event to the pending queue without dispatching it.
// Pending events are delivered by the next call to Flush.
func Post[T any](b *Bus, event T) {
	p := pending{
		id:    newEventID(),
		key:   typeKey[T](),
		event: event,
		at:    b.clock.Now(),
	}
	b.pending = append(b.pending, p)
	b.posted++
	b.logger.Debug().
		Str("event_id", p.id).
		Str("type", p.key.String()).
		Int("pending", len(b.pending)).
		Msg("event posted")
}

// Flush dispatches every pending event in FIFO order with the same
// ordering rules as Emit, then clears the queue. Events posted by a
// callback while Flush runs are not part of the current batch; they are
// delivered by the next Flush. Returns the number of events dispatched.
func (b *Bus) Flush() int {
	if len(b.pending) == 0 {
		return 0
	}

	// Snapshot-then-clear: the batch is fixed before any callback runs.
	batch := b.pending
	b.pending = nil

	for i := range batch {
		p := &batch[i]
		b.logger.Debug().
			Str("event_id", p.id).
			Str("type", p.key.String()).
			Dur("queued_for", b.clock.Since(p.at)).
			Msg("flushing event")
		b.emit(p.key, p.event)
		b.flushed++
	}
	return len(batch)
}

// Pending returns the number of events waiting for the next Flush.
func (b *Bus) Pending() int {
	return len(b.pending)
}

// Types returns the event types that currently have at least one
// registered callback.
func (b *Bus) Types() []reflect.Type {
	return b.registry.types()
}

// emit is the single dispatch path shared by Emit and Flush.
func (b *Bus) emit(key reflect.Type, event any) {
	groups := b.registry.lookup(key)
	if len(groups) == 0 {
		return
	}

	// Dispatch over a snapshot so a callback that registers or removes
	// subscriptions mid-dispatch cannot corrupt this pass. Mutations
	// become visible on the next dispatch.
	snapshot := make([]group, len(groups))
	for i, g := range groups {
		snapshot[i] = group{
			owner:   g.owner,
			entries: append([]*entry(nil), g.entries...),
		}
	}

	swept := false
	for i := range snapshot {
		for _, e := range snapshot[i].entries {
			if !e.deliverable(event) {
				continue
			}
			result := b.exec.Execute(event, e.cb)
			b.invoked++
			if result.Panicked {
				b.panicked++
				b.logger.Error().
					Err(&PanicError{Value: result.PanicValue, Stack: result.PanicStack}).
					Str("type", key.String()).
					Uint64("subscriber", snapshot[i].owner).
					Msg("recovered callback panic")
			}
			if e.once {
				e.spent = true
				swept = true
			}
		}
	}
	if swept {
		b.registry.sweep(key)
	}
}

// register adds a callback entry for (key, owner). Used by Subscription.
func (b *Bus) register(key reflect.Type, owner uint64, e *entry) {
	b.registry.add(key, owner, e)
	b.logger.Debug().
		Str("type", key.String()).
		Uint64("subscriber", owner).
		Msg("callback registered")
}

// deregister removes the callbacks owner registered for key, if any.
func (b *Bus) deregister(key reflect.Type, owner uint64) {
	b.registry.removeOne(key, owner)
	b.logger.Debug().
		Str("type", key.String()).
		Uint64("subscriber", owner).
		Msg("subscriber removed for type")
}

// deregisterAll removes every registration owned by owner.
func (b *Bus) deregisterAll(owner uint64) {
	b.registry.removeAll(owner)
	b.logger.Debug().
		Uint64("subscriber", owner).
		Msg("subscriber removed")
}

// nextSubscriberID returns a subscriber id unique for this bus's
// lifetime. Ids are never reused, even after removal.
func (b *Bus) nextSubscriberID() uint64 {
	b.lastID++
	return b.lastID
}
