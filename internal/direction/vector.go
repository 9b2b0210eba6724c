package direction

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FromVector returns the direction of v when exactly one of its axes is
// non-zero. The second result is false for the zero vector and for vectors
// with both axes set.
func FromVector(v mgl64.Vec2) (Direction, bool) {
	x, y := v.X(), v.Y()
	switch {
	case x != 0 && y == 0:
		return fromSign(x, Right, Left), true
	case y != 0 && x == 0:
		return fromSign(y, Up, Down), true
	}
	return Up, false
}

// FromVectorExact is FromVector reporting ErrNotCardinal instead of a bool.
func FromVectorExact(v mgl64.Vec2) (Direction, error) {
	d, ok := FromVector(v)
	if !ok {
		return Up, fmt.Errorf("%w: (%g, %g)", ErrNotCardinal, v.X(), v.Y())
	}
	return d, nil
}

// RoundedFromVector returns the direction closest to v. The axis with the
// larger magnitude wins; when both magnitudes are equal the y axis is used.
// Returns ErrDegenerateVector for the zero vector and for vectors with a
// NaN or infinite component.
func RoundedFromVector(v mgl64.Vec2) (Direction, error) {
	x, y := v.X(), v.Y()
	if x == 0 && y == 0 {
		return Up, ErrDegenerateVector
	}
	if !finite(x) || !finite(y) {
		return Up, fmt.Errorf("%w: (%g, %g)", ErrDegenerateVector, x, y)
	}
	if math.Abs(x) > math.Abs(y) {
		return fromSign(x, Right, Left), nil
	}
	return fromSign(y, Up, Down), nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func fromSign(f float64, positive, negative Direction) Direction {
	if f > 0 {
		return positive
	}
	return negative
}

// Add returns v plus the unit vector of d. Operand order does not matter.
func Add(d Direction, v mgl64.Vec2) mgl64.Vec2 {
	return d.Vector2().Add(v)
}

// Sub returns the unit vector of d minus v.
func Sub(d Direction, v mgl64.Vec2) mgl64.Vec2 {
	return d.Vector2().Sub(v)
}

// SubFrom returns v minus the unit vector of d.
func SubFrom(v mgl64.Vec2, d Direction) mgl64.Vec2 {
	return v.Sub(d.Vector2())
}

// Mul multiplies the unit vector of d by v component-wise.
func Mul(d Direction, v mgl64.Vec2) mgl64.Vec2 {
	u := d.Vector2()
	return mgl64.Vec2{u.X() * v.X(), u.Y() * v.Y()}
}

// Scale returns the unit vector of d multiplied by s.
func Scale(d Direction, s float64) mgl64.Vec2 {
	return d.Vector2().Mul(s)
}

// Div returns the unit vector of d divided by s.
func Div(d Direction, s float64) mgl64.Vec2 {
	return d.Vector2().Mul(1 / s)
}

// DivVec divides the unit vector of d by v component-wise.
func DivVec(d Direction, v mgl64.Vec2) mgl64.Vec2 {
	u := d.Vector2()
	return mgl64.Vec2{u.X() / v.X(), u.Y() / v.Y()}
}

// Add3 returns v plus the 3D unit vector of d.
func Add3(d Direction, v mgl64.Vec3) mgl64.Vec3 {
	return d.Vector3().Add(v)
}

// Sub3 returns the 3D unit vector of d minus v.
func Sub3(d Direction, v mgl64.Vec3) mgl64.Vec3 {
	return d.Vector3().Sub(v)
}

// Step returns the grid cell one step from (x, y) in direction d.
func Step(d Direction, x, y int) (int, int) {
	dx, dy := d.Vector2Int()
	return x + dx, y + dy
}

// SubInt returns the integer unit vector of d minus (x, y).
func SubInt(d Direction, x, y int) (int, int) {
	dx, dy := d.Vector2Int()
	return dx - x, dy - y
}

// MulInt multiplies the integer unit vector of d by (x, y) component-wise.
func MulInt(d Direction, x, y int) (int, int) {
	dx, dy := d.Vector2Int()
	return dx * x, dy * y
}

// ScaleInt returns the integer unit vector of d multiplied by n.
func ScaleInt(d Direction, n int) (int, int) {
	dx, dy := d.Vector2Int()
	return dx * n, dy * n
}
