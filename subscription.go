package eventbus

// Subscription is a caller-held handle representing one logical
// subscriber. It can register callbacks for any number of event types
// and revoke them individually (Off) or all at once (Close), e.g. on
// component teardown.
//
// Callback ownership lives in the bus registry, indexed by the handle's
// subscriber id; the handle itself only presents that id.
type Subscription struct {
	bus    *Bus
	id     uint64
	closed bool
}

// NewSubscription creates a handle bound to bus and assigns it a
// subscriber id unique for the bus's lifetime. A nil bus yields an inert
// handle on which every operation is a safe no-op.
func NewSubscription(bus *Bus) *Subscription {
	s := &Subscription{bus: bus}
	if bus != nil {
		s.id = bus.nextSubscriberID()
	}
	return s
}

// On registers fn to receive events of type T through this handle.
// Multiple registrations for the same type are all retained and all
// invoked in registration order; there is no deduplication. A nil fn is
// ignored.
func On[T any](s *Subscription, fn func(T), opts ...SubscribeOption) {
	if s == nil || s.bus == nil || s.closed || fn == nil {
		return
	}
	e := &entry{cb: typedCallback[T]{fn: fn}}
	for _, opt := range opts {
		opt(e)
	}
	s.bus.register(typeKey[T](), s.id, e)
}

// Off revokes every callback this handle registered for type T.
// Registrations for other types remain active. Revoking a type that was
// never registered is a no-op.
func Off[T any](s *Subscription) {
	if s == nil || s.bus == nil || s.closed {
		return
	}
	s.bus.deregister(typeKey[T](), s.id)
}

// Close revokes every registration made through this handle, for all
// event types, synchronously. The handle is unusable afterwards; further
// On/Off/Close calls are no-ops. Close is idempotent.
func (s *Subscription) Close() {
	if s == nil || s.bus == nil || s.closed {
		return
	}
	s.closed = true
	s.bus.deregisterAll(s.id)
}

// ID returns the subscriber id assigned at construction, or 0 for an
// inert handle.
func (s *Subscription) ID() uint64 {
	return s.id
}

// Closed reports whether Close has been called.
func (s *Subscription) Closed() bool {
	return s.closed
}
