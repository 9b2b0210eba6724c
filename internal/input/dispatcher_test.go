package input

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/gridstep/internal/direction"
)

type recorder struct {
	got []direction.Direction
}

func (r *recorder) OnDirection(d direction.Direction) {
	r.got = append(r.got, d)
}

func TestPollExclusivePairs(t *testing.T) {
	tests := []struct {
		name     string
		keys     []Key
		expected []direction.Direction
	}{
		{"nothing held", nil, nil},
		{"right only", []Key{KeyArrowRight}, []direction.Direction{direction.Right}},
		{"wasd left", []Key{KeyA}, []direction.Direction{direction.Left}},
		{"right beats left", []Key{KeyArrowLeft, KeyD}, []direction.Direction{direction.Right}},
		{"down beats up", []Key{KeyW, KeyArrowDown}, []direction.Direction{direction.Down}},
		{"one of each axis", []Key{KeyArrowUp, KeyArrowLeft}, []direction.Direction{direction.Left, direction.Up}},
		{"all held", []Key{KeyW, KeyA, KeyS, KeyD}, []direction.Direction{direction.Right, direction.Down}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDispatcher()
			r := &recorder{}
			d.Subscribe(r)

			state := NewKeyState()
			for _, k := range tc.keys {
				state.Hold(k)
			}

			events := d.Poll(state)
			if !reflect.DeepEqual(events, tc.expected) {
				t.Errorf("Poll() = %v, expected %v", events, tc.expected)
			}
			if !reflect.DeepEqual(r.got, tc.expected) {
				t.Errorf("listener got %v, expected %v", r.got, tc.expected)
			}
		})
	}
}

func TestBroadcastToAllListeners(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(a)
	d.Subscribe(b)

	d.Emit(direction.Left)

	if len(a.got) != 1 || len(b.got) != 1 {
		t.Fatalf("expected both listeners to get one event, got %v and %v", a.got, b.got)
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", d.Len())
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	sub := d.Subscribe(r)

	d.Emit(direction.Up)
	sub.Cancel()
	sub.Cancel() // second cancel is a no-op
	d.Emit(direction.Down)

	if len(r.got) != 1 || r.got[0] != direction.Up {
		t.Errorf("listener got %v, expected only [Up]", r.got)
	}
	if d.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", d.Len())
	}
}

func TestCancelDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var second recorder
	var sub *Subscription
	sub = d.Subscribe(ListenerFunc(func(direction.Direction) {
		sub.Cancel()
	}))
	d.Subscribe(&second)

	d.Emit(direction.Right)
	d.Emit(direction.Right)

	if d.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", d.Len())
	}
	if len(second.got) != 2 {
		t.Errorf("remaining listener got %v, expected two events", second.got)
	}
}

func TestCancelOtherDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var victim recorder
	var victimSub *Subscription
	d.Subscribe(ListenerFunc(func(direction.Direction) {
		victimSub.Cancel()
	}))
	victimSub = d.Subscribe(&victim)

	d.Emit(direction.Up)

	if len(victim.got) != 0 {
		t.Errorf("cancelled listener got %v, expected no events", victim.got)
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", d.Len())
	}
}

func TestSubscriptionIDsUnique(t *testing.T) {
	d := NewDispatcher()
	a := d.Subscribe(&recorder{})
	b := d.Subscribe(&recorder{})
	if a.ID() == b.ID() {
		t.Error("subscriptions should have distinct IDs")
	}
}

func TestKeyState(t *testing.T) {
	s := NewKeyState()
	if !s.Empty() {
		t.Error("new KeyState should be empty")
	}

	s.Hold(KeyW)
	s.Hold(KeyNone)
	if !s.Held(KeyW) || s.Held(KeyNone) {
		t.Error("Hold should record movement keys only")
	}
	if !s.HeldDirection(direction.Up) {
		t.Error("W should count as Up")
	}

	s.Release(KeyW)
	if s.Held(KeyW) {
		t.Error("Release should clear the key")
	}

	s.Hold(KeyArrowLeft)
	s.Hold(KeyS)
	s.Clear()
	if !s.Empty() {
		t.Error("Clear should release all keys")
	}

	var zero KeyState
	zero.Hold(KeyD)
	if !zero.Held(KeyD) {
		t.Error("zero-value KeyState should accept keys")
	}
}
