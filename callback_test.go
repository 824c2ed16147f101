package eventbus

import "testing"

func TestTypedCallback_Invoke(t *testing.T) {
	var got ping
	cb := typedCallback[ping]{fn: func(e ping) { got = e }}

	cb.Invoke(ping{N: 42})

	if got.N != 42 {
		t.Errorf("callback received N=%d, want 42", got.N)
	}
}

func TestTypedCallback_MismatchPanics(t *testing.T) {
	cb := typedCallback[ping]{fn: func(e ping) {}}

	// The dispatch path derives the registry key from the same static
	// type as the wrapper, so this can only happen on a contract
	// violation. It must fail loudly, not silently misdeliver.
	defer func() {
		if recover() == nil {
			t.Error("expected panic on wrong event type")
		}
	}()
	cb.Invoke(pong{S: "wrong"})
}

func TestEntry_Deliverable(t *testing.T) {
	tests := []struct {
		name  string
		entry *entry
		event any
		want  bool
	}{
		{
			name:  "plain entry delivers",
			entry: &entry{},
			event: ping{N: 1},
			want:  true,
		},
		{
			name:  "spent entry never delivers",
			entry: &entry{spent: true},
			event: ping{N: 1},
			want:  false,
		},
		{
			name:  "filter pass",
			entry: &entry{filter: func(event any) bool { return true }},
			event: ping{N: 1},
			want:  true,
		},
		{
			name:  "filter reject",
			entry: &entry{filter: func(event any) bool { return false }},
			event: ping{N: 1},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.deliverable(tt.event); got != tt.want {
				t.Errorf("deliverable() = %v, want %v", got, tt.want)
			}
		})
	}
}
