// Package input turns held movement keys into direction events and
// broadcasts them to registered listeners, once per scheduler tick.
package input

import "github.com/vovakirdan/gridstep/internal/direction"

// Key is a physical movement key.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyW
	KeyA
	KeyS
	KeyD
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	case KeyArrowLeft:
		return "Left"
	case KeyArrowRight:
		return "Right"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	default:
		return "None"
	}
}

// Direction returns the direction a key moves in.
// The second result is false for KeyNone and unknown keys.
func (k Key) Direction() (direction.Direction, bool) {
	switch k {
	case KeyArrowUp, KeyW:
		return direction.Up, true
	case KeyArrowDown, KeyS:
		return direction.Down, true
	case KeyArrowLeft, KeyA:
		return direction.Left, true
	case KeyArrowRight, KeyD:
		return direction.Right, true
	}
	return direction.Up, false
}

// KeyState records which movement keys are held during one tick.
type KeyState struct {
	held map[Key]bool
}

// NewKeyState creates a state with no keys held.
func NewKeyState() KeyState {
	return KeyState{held: make(map[Key]bool)}
}

// Hold marks a key as held.
func (s *KeyState) Hold(k Key) {
	if k == KeyNone {
		return
	}
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	s.held[k] = true
}

// Release marks a key as no longer held.
func (s *KeyState) Release(k Key) {
	delete(s.held, k)
}

// Held returns true if the key is held.
func (s KeyState) Held(k Key) bool {
	return s.held[k]
}

// HeldDirection returns true if any key moving in d is held.
func (s KeyState) HeldDirection(d direction.Direction) bool {
	for k := range s.held {
		if kd, ok := k.Direction(); ok && kd == d {
			return true
		}
	}
	return false
}

// Clear releases all keys.
func (s *KeyState) Clear() {
	for k := range s.held {
		delete(s.held, k)
	}
}

// Empty returns true if no key is held.
func (s KeyState) Empty() bool {
	return len(s.held) == 0
}
