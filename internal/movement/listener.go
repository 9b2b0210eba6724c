package movement

import (
	"github.com/vovakirdan/gridstep/internal/direction"
	"github.com/vovakirdan/gridstep/internal/input"
)

// Attach registers the stepper with src so direction events start moves.
// Attaching an already attached stepper moves it to the new source.
func (s *Stepper) Attach(src *input.Dispatcher) {
	s.Detach()
	s.sub = src.Subscribe(input.ListenerFunc(func(d direction.Direction) {
		s.Press(d)
	}))
}

// Detach deregisters the stepper from its source. No event is delivered to
// the stepper after Detach returns, even when Detach is called by another
// listener of the same source during dispatch.
func (s *Stepper) Detach() {
	if s.sub != nil {
		s.sub.Cancel()
		s.sub = nil
	}
}

// Attached reports whether the stepper is registered with a source.
func (s *Stepper) Attached() bool {
	return s.sub != nil
}
