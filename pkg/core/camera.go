package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a pinhole camera stored on the scene. The orientation quaternion
// maps camera space (x right, y up, looking down -z) to world space.
type Camera struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	// VFov is the vertical field of view in radians.
	VFov   float64
	Aspect float64
	Near   float64
	Far    float64
}

// NewCamera creates a camera at position looking at target.
func NewCamera(position, target, up mgl64.Vec3, vfov, aspect float64) Camera {
	forward := target.Sub(position).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward)

	// Columns are the world-space images of the camera basis vectors.
	rot := mgl64.Mat3FromCols(right, trueUp, forward.Mul(-1)).Mat4()

	return Camera{
		Position:    position,
		Orientation: mgl64.Mat4ToQuat(rot),
		VFov:        vfov,
		Aspect:      aspect,
		Near:        0.1,
		Far:         1000,
	}
}

// Ray generates the primary ray through normalized screen coordinates
// (u, v) in [0,1]², with (0,0) at the bottom-left corner.
func (c Camera) Ray(u, v float64) Ray {
	halfHeight := math.Tan(c.VFov / 2)
	halfWidth := c.Aspect * halfHeight

	local := mgl64.Vec3{
		(2*u - 1) * halfWidth,
		(2*v - 1) * halfHeight,
		-1,
	}
	direction := c.Orientation.Rotate(local).Normalize()
	return NewRay(c.Position, direction)
}
