package eventbus

import (
	"github.com/dshills/eventbus/internal/dispatch"
)

// typedCallback wraps a concrete callback for one event type behind the
// type-erased dispatch.Callback interface.
type typedCallback[T any] struct {
	fn func(T)
}

// Invoke implements dispatch.Callback.
//
// The type assertion is deliberately unchecked: the registry key is always
// derived from the same static type used to create the wrapper, so the
// runtime type of event matches T by construction. A mismatch is a
// contract violation and panics.
func (c typedCallback[T]) Invoke(event any) {
	c.fn(event.(T))
}

// entry is a single registered callback together with its per-registration
// delivery settings. Entries are owned by the registry and never shared
// across subscribers.
type entry struct {
	cb     dispatch.Callback
	filter FilterFunc
	once   bool
	spent  bool
}

// deliverable reports whether the entry should receive the event.
func (e *entry) deliverable(event any) bool {
	if e.spent {
		return false
	}
	if e.filter != nil && !e.filter(event) {
		return false
	}
	return true
}
