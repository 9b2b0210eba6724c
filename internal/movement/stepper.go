// Package movement implements grid stepping: an entity turns to face a
// pressed direction and then slides exactly one cell, advanced one tick at a
// time by an external scheduler.
package movement

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/gridstep/internal/direction"
	"github.com/vovakirdan/gridstep/internal/input"
)

// Transform receives absolute orientation and position writes.
// The stepper never reads values back from a Transform.
type Transform interface {
	SetRotation(q mgl64.Quat)
	SetPosition(p mgl64.Vec3)
}

// Config holds the speeds of a Stepper, in fractions of a full sub-phase
// per second. Both must be strictly positive or a move never completes.
type Config struct {
	MovementSpeed float64 `yaml:"movement_speed"`
	RotateSpeed   float64 `yaml:"rotate_speed"`
}

// ErrInvalidSpeed is returned by Config.Validate for non-positive speeds.
var ErrInvalidSpeed = errors.New("movement: speed must be positive")

// Validate checks that both speeds are strictly positive.
func (c Config) Validate() error {
	if c.MovementSpeed <= 0 {
		return fmt.Errorf("%w: movement_speed = %g", ErrInvalidSpeed, c.MovementSpeed)
	}
	if c.RotateSpeed <= 0 {
		return fmt.Errorf("%w: rotate_speed = %g", ErrInvalidSpeed, c.RotateSpeed)
	}
	return nil
}

// Phase is the current segment of a move.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRotate
	PhaseTranslate
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRotate:
		return "Rotate"
	case PhaseTranslate:
		return "Translate"
	default:
		return "Unknown"
	}
}

// Stepper is the per-entity grid movement state machine.
// It is not safe for concurrent use; one scheduler owns each instance.
type Stepper struct {
	cfg       Config
	transform Transform

	facing direction.Direction
	phase  Phase
	target direction.Direction

	progress      float64 // 0.0 → 1.0 within the current phase
	startRotation mgl64.Quat
	startPosition mgl64.Vec3

	// Last values written to the transform.
	rotation mgl64.Quat
	position mgl64.Vec3

	sub *input.Subscription
}

// NewStepper creates an idle stepper at position pos facing facing.
// The initial orientation is written to t immediately.
func NewStepper(cfg Config, t Transform, pos mgl64.Vec3, facing direction.Direction) *Stepper {
	s := &Stepper{
		cfg:       cfg,
		transform: t,
		facing:    facing,
		position:  pos,
	}
	s.writePosition(pos)
	s.writeRotation(facing.Rotation())
	return s
}

// Facing returns the committed facing direction.
func (s *Stepper) Facing() direction.Direction { return s.facing }

// Moving reports whether a move is in progress.
func (s *Stepper) Moving() bool { return s.phase != PhaseIdle }

// Phase returns the current phase.
func (s *Stepper) Phase() Phase { return s.phase }

// Target returns the direction of the move in progress, or the facing
// direction when idle.
func (s *Stepper) Target() direction.Direction {
	if s.phase == PhaseIdle {
		return s.facing
	}
	return s.target
}

// Progress returns the progress of the current phase in [0, 1].
func (s *Stepper) Progress() float64 { return s.progress }

// Position returns the last position written to the transform.
func (s *Stepper) Position() mgl64.Vec3 { return s.position }

// Rotation returns the last orientation written to the transform.
func (s *Stepper) Rotation() mgl64.Quat { return s.rotation }

// Config returns the stepper's speeds.
func (s *Stepper) Config() Config { return s.cfg }

// SetConfig replaces the speeds. A move in progress continues at the new speeds.
func (s *Stepper) SetConfig(cfg Config) { s.cfg = cfg }

// SetFacing sets the facing direction and writes its orientation to the
// transform at once, without touching a move in progress. A rotation in
// progress keeps interpolating from its own start, so the next Tick
// overwrites the orientation and the rotation's target becomes the facing
// when it completes.
func (s *Stepper) SetFacing(d direction.Direction) {
	s.facing = d
	s.writeRotation(d.Rotation())
}

// Press requests a one-cell move towards d.
// Returns false, dropping the request, if a move is already in progress.
func (s *Stepper) Press(d direction.Direction) bool {
	if s.phase != PhaseIdle {
		return false
	}

	s.target = d
	if d == s.facing {
		s.beginTranslate()
	} else {
		s.phase = PhaseRotate
		s.progress = 0
		s.startRotation = s.rotation
	}
	return true
}

// Tick advances the move in progress by dt seconds.
// Returns true if the move finished during this tick.
func (s *Stepper) Tick(dt float64) bool {
	switch s.phase {
	case PhaseRotate:
		s.progress = clamp01(s.progress + s.cfg.RotateSpeed*dt)
		end := s.target.Rotation()
		if s.progress >= 1 {
			s.writeRotation(end)
			s.facing = s.target
			s.beginTranslate()
			return false
		}
		s.writeRotation(slerp(s.startRotation, end, s.progress))

	case PhaseTranslate:
		s.progress = clamp01(s.progress + s.cfg.MovementSpeed*dt)
		end := s.startPosition.Add(s.target.Vector3())
		if s.progress >= 1 {
			s.writePosition(end)
			s.phase = PhaseIdle
			s.progress = 0
			return true
		}
		s.writePosition(lerp(s.startPosition, end, s.progress))
	}
	return false
}

func (s *Stepper) beginTranslate() {
	s.phase = PhaseTranslate
	s.progress = 0
	s.startPosition = s.position
}

func (s *Stepper) writeRotation(q mgl64.Quat) {
	s.rotation = q
	if s.transform != nil {
		s.transform.SetRotation(q)
	}
}

func (s *Stepper) writePosition(p mgl64.Vec3) {
	s.position = p
	if s.transform != nil {
		s.transform.SetPosition(p)
	}
}
