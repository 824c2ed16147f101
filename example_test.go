package eventbus_test

import (
	"fmt"

	"github.com/dshills/eventbus"
)

type Ping struct {
	N int
}

// Example_immediate demonstrates synchronous dispatch and scoped teardown.
func Example_immediate() {
	bus := eventbus.New()

	a := eventbus.NewSubscription(bus)
	b := eventbus.NewSubscription(bus)

	eventbus.On(a, func(e Ping) { fmt.Println("a got", e.N) })
	eventbus.On(b, func(e Ping) { fmt.Println("b got", e.N) })

	// Both fire, in the order the subscriptions were created.
	eventbus.Emit(bus, Ping{N: 5})

	// Revoking a's registrations leaves b untouched.
	a.Close()
	eventbus.Emit(bus, Ping{N: 7})

	// Output:
	// a got 5
	// b got 5
	// b got 7
}

// Example_deferred demonstrates the queued delivery mode.
func Example_deferred() {
	bus := eventbus.New()
	sub := eventbus.NewSubscription(bus)
	defer sub.Close()

	eventbus.On(sub, func(e Ping) { fmt.Println("got", e.N) })

	eventbus.Post(bus, Ping{N: 1})
	eventbus.Post(bus, Ping{N: 2})
	fmt.Println("pending:", bus.Pending())

	bus.Flush()

	// Output:
	// pending: 2
	// got 1
	// got 2
}
