package movement

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/gridstep/internal/core"
)

// slerp interpolates between two orientations along the shorter arc.
func slerp(from, to mgl64.Quat, t float64) mgl64.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	return mgl64.QuatSlerp(from, to, t)
}

// lerp interpolates linearly between two positions.
func lerp(from, to mgl64.Vec3, t float64) mgl64.Vec3 {
	return from.Add(to.Sub(from).Mul(t))
}

func clamp01(v float64) float64 {
	return core.ClampF(v, 0, 1)
}
