package eventbus

import "reflect"

// group holds the callbacks one subscriber registered for one event type,
// in registration order.
type group struct {
	owner   uint64
	entries []*entry
}

// registry maps event types to their subscriber groups. Groups under a
// type are kept in the order the owning subscriber first registered for
// that type. The registry owns all entries; subscription handles only
// present their subscriber id.
type registry struct {
	groups map[reflect.Type][]*group
}

func newRegistry() *registry {
	return &registry{
		groups: make(map[reflect.Type][]*group),
	}
}

// add appends an entry to the group for (key, owner), creating the group
// on first registration. Repeat registrations are all retained; there is
// no deduplication.
func (r *registry) add(key reflect.Type, owner uint64, e *entry) {
	groups := r.groups[key]
	for _, g := range groups {
		if g.owner == owner {
			g.entries = append(g.entries, e)
			return
		}
	}
	r.groups[key] = append(groups, &group{
		owner:   owner,
		entries: []*entry{e},
	})
}

// removeOne removes the group for (key, owner). Absent pairs are a no-op.
// The key itself is dropped once no groups remain so transient event
// types do not grow the map unboundedly.
func (r *registry) removeOne(key reflect.Type, owner uint64) {
	groups, ok := r.groups[key]
	if !ok {
		return
	}
	for i, g := range groups {
		if g.owner == owner {
			r.groups[key] = append(groups[:i], groups[i+1:]...)
			break
		}
	}
	if len(r.groups[key]) == 0 {
		delete(r.groups, key)
	}
}

// removeAll removes every group owned by owner across all event types.
// Safe to call repeatedly.
func (r *registry) removeAll(owner uint64) {
	for key, groups := range r.groups {
		for i, g := range groups {
			if g.owner == owner {
				r.groups[key] = append(groups[:i], groups[i+1:]...)
				break
			}
		}
		if len(r.groups[key]) == 0 {
			delete(r.groups, key)
		}
	}
}

// lookup returns the groups registered for key, or nil.
func (r *registry) lookup(key reflect.Type) []*group {
	return r.groups[key]
}

// sweep drops spent entries under key, then empty groups, then the key
// itself if nothing remains. Called after a dispatch pass that consumed
// one-shot registrations.
func (r *registry) sweep(key reflect.Type) {
	groups, ok := r.groups[key]
	if !ok {
		return
	}
	kept := groups[:0]
	for _, g := range groups {
		entries := g.entries[:0]
		for _, e := range g.entries {
			if !e.spent {
				entries = append(entries, e)
			}
		}
		g.entries = entries
		if len(g.entries) > 0 {
			kept = append(kept, g)
		}
	}
	if len(kept) == 0 {
		delete(r.groups, key)
		return
	}
	r.groups[key] = kept
}

// types returns all event types with at least one registration.
func (r *registry) types() []reflect.Type {
	if len(r.groups) == 0 {
		return nil
	}
	keys := make([]reflect.Type, 0, len(r.groups))
	for key := range r.groups {
		keys = append(keys, key)
	}
	return keys
}

// subscribers returns the number of distinct subscriber ids with at least
// one registration.
func (r *registry) subscribers() int {
	seen := make(map[uint64]struct{})
	for _, groups := range r.groups {
		for _, g := range groups {
			seen[g.owner] = struct{}{}
		}
	}
	return len(seen)
}
