// Package direction provides the Direction value type: a 2D vector limited to
// the four cardinal directions up, down, left and right.
//
// The package is pure logic with no terminal or I/O dependencies so it can be
// used by the movement state machine, the input dispatcher and the CLI alike.
package direction

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Direction is one of the four cardinal directions.
// The zero value is Up, so every Direction built by this package is valid.
type Direction uint8

const (
	Up Direction = iota
	Down
	Right
	Left
)

// variant holds the fixed mappings for a single direction.
type variant struct {
	name      string
	glyph     rune
	x, y      int
	degrees   float64
	opposite  Direction
	clockwise Direction
	anti      Direction
}

// variants is indexed by Direction.
var variants = [...]variant{
	Up:    {name: "Up", glyph: '▲', x: 0, y: 1, degrees: 0, opposite: Down, clockwise: Right, anti: Left},
	Down:  {name: "Down", glyph: '▼', x: 0, y: -1, degrees: 180, opposite: Up, clockwise: Left, anti: Right},
	Right: {name: "Right", glyph: '▶', x: 1, y: 0, degrees: 270, opposite: Left, clockwise: Down, anti: Up},
	Left:  {name: "Left", glyph: '◀', x: -1, y: 0, degrees: 90, opposite: Right, clockwise: Up, anti: Down},
}

// forwardAxis is the axis all direction rotations are about.
var forwardAxis = mgl64.Vec3{0, 0, 1}

// All returns every direction in clockwise order starting at Up.
func All() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// IsValid reports whether d is one of the four canonical variants.
func (d Direction) IsValid() bool {
	return int(d) < len(variants)
}

// Validate returns ErrInvalidVariant if d is not a canonical variant.
func (d Direction) Validate() error {
	if !d.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidVariant, uint8(d))
	}
	return nil
}

// get returns the mapping table entry for d.
// Panics if d is not a canonical variant; that can only happen through an
// unchecked conversion from an integer.
func (d Direction) get() variant {
	if err := d.Validate(); err != nil {
		panic(err)
	}
	return variants[d]
}

// String returns the capitalized name of the direction.
func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return variants[d].name
}

// Glyph returns an arrow rune pointing in the direction.
func (d Direction) Glyph() rune {
	return d.get().glyph
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	return d.get().opposite
}

// RotateClockwise returns the direction 90 degrees clockwise of d.
func (d Direction) RotateClockwise() Direction {
	return d.get().clockwise
}

// RotateAntiClockwise returns the direction 90 degrees anticlockwise of d.
func (d Direction) RotateAntiClockwise() Direction {
	return d.get().anti
}

// IsHorizontal reports whether d lies on the x axis.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// Degrees returns the rotation about the forward axis for d.
func (d Direction) Degrees() float64 {
	return d.get().degrees
}

// Rotation returns the quaternion for a rotation of Degrees() about +Z.
func (d Direction) Rotation() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(d.Degrees()), forwardAxis)
}

// Vector2Int returns the integer unit vector of d.
func (d Direction) Vector2Int() (x, y int) {
	v := d.get()
	return v.x, v.y
}

// Vector2 returns the unit vector of d.
func (d Direction) Vector2() mgl64.Vec2 {
	x, y := d.Vector2Int()
	return mgl64.Vec2{float64(x), float64(y)}
}

// Vector3 returns the unit vector of d with a zero z component.
func (d Direction) Vector3() mgl64.Vec3 {
	return d.Vector2().Vec3(0)
}

// Parse returns the direction named by s, ignoring case.
// Accepted names are "up", "down", "left" and "right".
func Parse(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	}
	return Up, fmt.Errorf("%w: %q", ErrInvalidDirectionString, s)
}

// MarshalText encodes the direction as its lower-case name.
func (d Direction) MarshalText() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return []byte(strings.ToLower(variants[d].name)), nil
}

// UnmarshalText decodes a direction name as accepted by Parse.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
