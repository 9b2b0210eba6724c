package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/gridstep/internal/core"
	"github.com/vovakirdan/gridstep/internal/direction"
	"github.com/vovakirdan/gridstep/internal/movement"
)

// Entity is a named grid-stepping object. It is the transform the stepper
// writes to and the thing the world draws.
type Entity struct {
	Name  string
	Color core.Color

	stepper  *movement.Stepper
	rotation mgl64.Quat
	position mgl64.Vec3
}

// SetRotation implements movement.Transform.
func (e *Entity) SetRotation(q mgl64.Quat) { e.rotation = q }

// SetPosition implements movement.Transform.
func (e *Entity) SetPosition(p mgl64.Vec3) { e.position = p }

// Stepper returns the entity's movement state machine.
func (e *Entity) Stepper() *movement.Stepper { return e.stepper }

// Position returns the entity's current position in board units.
func (e *Entity) Position() mgl64.Vec3 { return e.position }

// Rotation returns the entity's current orientation.
func (e *Entity) Rotation() mgl64.Quat { return e.rotation }

// Cell returns the grid cell nearest to the entity's position.
func (e *Entity) Cell() (x, y int) {
	return int(math.Round(e.position.X())), int(math.Round(e.position.Y()))
}

// Heading returns the cardinal direction closest to where the entity's
// current orientation points. Mid-turn this can differ from the stepper's
// committed facing.
func (e *Entity) Heading() direction.Direction {
	forward := e.rotation.Rotate(direction.Up.Vector3())
	d, err := direction.RoundedFromVector(forward.Vec2())
	if err != nil {
		return e.stepper.Facing()
	}
	return d
}
