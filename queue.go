package eventbus

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// pending is one deferred event awaiting Flush. The key is captured at
// Post time from the event's static type so Flush dispatches through the
// same path as Emit without re-deriving anything.
type pending struct {
	id    string
	key   reflect.Type
	event any
	at    time.Time
}

// newEventID returns a unique id used to correlate a posted event across
// log lines between Post and Flush.
func newEventID() string {
	return uuid.NewString()
}
