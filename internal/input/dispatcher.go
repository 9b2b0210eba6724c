package input

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vovakirdan/gridstep/internal/direction"
)

// Listener receives direction events from a Dispatcher.
type Listener interface {
	OnDirection(d direction.Direction)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(d direction.Direction)

// OnDirection calls f(d).
func (f ListenerFunc) OnDirection(d direction.Direction) { f(d) }

type registration struct {
	id       uuid.UUID
	listener Listener
}

// Dispatcher broadcasts direction events to registered listeners.
// Subscribe and Cancel may be called from any goroutine, including from a
// listener during dispatch.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners []registration
}

// NewDispatcher creates a dispatcher with no listeners.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscription identifies one registered listener.
type Subscription struct {
	id uuid.UUID
	d  *Dispatcher
}

// ID returns the unique identifier of the subscription.
func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Cancel deregisters the listener. Calling Cancel more than once is a no-op.
func (s *Subscription) Cancel() {
	s.d.remove(s.id)
}

// Subscribe registers l and returns its subscription.
func (d *Dispatcher) Subscribe(l Listener) *Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.New()
	d.listeners = append(d.listeners, registration{id: id, listener: l})
	return &Subscription{id: id, d: d}
}

func (d *Dispatcher) remove(id uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, r := range d.listeners {
		if r.id == id {
			d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners)
}

// Emit delivers d to every registered listener. A listener cancelled by
// another listener during dispatch does not receive the event.
func (d *Dispatcher) Emit(dir direction.Direction) {
	d.mu.RLock()
	snapshot := make([]registration, len(d.listeners))
	copy(snapshot, d.listeners)
	d.mu.RUnlock()

	for _, r := range snapshot {
		if !d.registered(r.id) {
			continue
		}
		r.listener.OnDirection(dir)
	}
}

func (d *Dispatcher) registered(id uuid.UUID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, r := range d.listeners {
		if r.id == id {
			return true
		}
	}
	return false
}

// Poll emits the direction events for one tick of held keys and returns
// them in emission order. Right wins over Left and Down wins over Up, so at
// most one horizontal and one vertical event fire per tick. The horizontal
// event is emitted first.
func (d *Dispatcher) Poll(state KeyState) []direction.Direction {
	var events []direction.Direction

	switch {
	case state.HeldDirection(direction.Right):
		events = append(events, direction.Right)
	case state.HeldDirection(direction.Left):
		events = append(events, direction.Left)
	}

	switch {
	case state.HeldDirection(direction.Down):
		events = append(events, direction.Down)
	case state.HeldDirection(direction.Up):
		events = append(events, direction.Up)
	}

	for _, e := range events {
		d.Emit(e)
	}
	return events
}
