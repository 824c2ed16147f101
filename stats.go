package eventbus

// Stats is a point-in-time snapshot of bus activity.
type Stats struct {
	// EventsEmitted is the number of Emit calls.
	EventsEmitted uint64

	// EventsPosted is the number of Post calls.
	EventsPosted uint64

	// EventsFlushed is the number of pending events dispatched by Flush.
	EventsFlushed uint64

	// CallbacksInvoked is the total number of callback executions.
	CallbacksInvoked uint64

	// CallbackPanics is the number of recovered callback panics.
	CallbackPanics uint64

	// Subscribers is the number of distinct subscriber ids with at
	// least one live registration.
	Subscribers int

	// EventTypes is the number of event types with live registrations.
	EventTypes int

	// PendingDepth is the number of events awaiting the next Flush.
	PendingDepth int
}

// Stats returns current bus statistics.
func (b *Bus) Stats() Stats {
	return Stats{
		EventsEmitted:    b.emitted,
		EventsPosted:     b.posted,
		EventsFlushed:    b.flushed,
		CallbacksInvoked: b.invoked,
		CallbackPanics:   b.panicked,
		Subscribers:      b.registry.subscribers(),
		EventTypes:       len(b.registry.groups),
		PendingDepth:     len(b.pending),
	}
}
