package geometry

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/raykit/go-scene-core/pkg/core"
)

// Geometry is the contract every renderable primitive satisfies. Hit testing
// is split into two phases: HasHit is the cheap distance-only probe run
// against every primitive, PopulateHit is the expensive surface-data pass run
// at most once per query, on the globally nearest primitive only.
type Geometry interface {
	// Initialize computes the cached transform matrices from position,
	// orientation and scale. It must be called before any hit test and fails
	// on a non-invertible transform.
	Initialize() error

	// HasHit probes the ray for the nearest forward intersection and returns
	// a distance-only candidate. No surface or material data is computed.
	HasHit(ray core.Ray) (core.Candidate, bool)

	// PopulateHit fills the intersection's surface point and material
	// properties from a winning candidate previously produced by HasHit.
	PopulateHit(hit *core.Intersection)
}

// ErrDegenerateTransform reports a transform that cannot be inverted, such as
// a zero scale on some axis.
var ErrDegenerateTransform = errors.New("geometry: transform is not invertible")

// Object holds the world transform shared by all primitives. Transformations
// apply in scale, orientation, position order. The inverse and normal
// matrices are cached by Initialize and must be recomputed whenever the
// public fields change.
type Object struct {
	// Position is the world position of the object.
	Position mgl64.Vec3
	// Orientation is the world orientation of the object, a unit quaternion.
	Orientation mgl64.Quat
	// Scale is the world scale of the object.
	Scale mgl64.Vec3

	mat         mgl64.Mat4 // full scale→rotate→translate transform
	invMat      mgl64.Mat4
	normMat     mgl64.Mat3 // inverse-transpose, correct for non-uniform scale
	initialized bool
}

const scaleEpsilon = 1e-12

// NewObject returns an identity transform at the world origin.
func NewObject() Object {
	return Object{
		Orientation: mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// Initialize recomputes the cached transform matrices. Calling it again on an
// unchanged object yields identical matrices.
func (o *Object) Initialize() error {
	// Rotation and translation are always invertible; only a near-zero scale
	// axis makes the transform degenerate.
	for _, s := range [3]float64{o.Scale.X(), o.Scale.Y(), o.Scale.Z()} {
		if math.Abs(s) < scaleEpsilon {
			return ErrDegenerateTransform
		}
	}

	m := mgl64.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z()).
		Mul4(o.Orientation.Normalize().Mat4()).
		Mul4(mgl64.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))

	o.mat = m
	o.invMat = m.Inv()
	o.normMat = o.invMat.Mat3().Transpose()
	o.initialized = true
	return nil
}

// Initialized reports whether the cached matrices are valid. Hit tests on an
// uninitialized object report no hit rather than using stale transforms.
func (o *Object) Initialized() bool {
	return o.initialized
}

// InstanceRay transforms a world-space ray into the object's local space.
// The direction is deliberately not renormalized so the ray parameter t
// measures the same distance in local and world space.
func (o *Object) InstanceRay(r core.Ray) core.Ray {
	origin := o.invMat.Mul4x1(r.Origin.Vec4(1)).Vec3()
	direction := o.invMat.Mul4x1(r.Direction.Vec4(0)).Vec3()
	return core.NewRay(origin, direction)
}

// PointToWorld maps a local-space point through the full transform.
func (o *Object) PointToWorld(p mgl64.Vec3) mgl64.Vec3 {
	return o.mat.Mul4x1(p.Vec4(1)).Vec3()
}

// NormalToWorld maps a local-space normal to a unit world-space normal using
// the inverse-transpose matrix, never the raw transform.
func (o *Object) NormalToWorld(n mgl64.Vec3) mgl64.Vec3 {
	return o.normMat.Mul3x1(n).Normalize()
}
