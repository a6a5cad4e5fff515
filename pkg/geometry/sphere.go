package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/raykit/go-scene-core/pkg/core"
	"github.com/raykit/go-scene-core/pkg/material"
)

// Sphere is a sphere of the given radius centered at the local origin. The
// world placement comes entirely from the embedded transform, so a
// non-uniform scale turns it into an ellipsoid.
type Sphere struct {
	Object
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Object:   NewObject(),
		Radius:   radius,
		Material: mat,
	}
}

// HasHit tests the ray against the sphere in local space and returns the
// nearest strictly positive root. Tangent grazes and hits behind the origin
// report no hit.
func (s *Sphere) HasHit(ray core.Ray) (core.Candidate, bool) {
	if !s.Initialized() {
		return core.Candidate{}, false
	}
	local := s.InstanceRay(ray)

	// Quadratic equation coefficients: at² + bt + c = 0
	oc := local.Origin
	a := local.Direction.Dot(local.Direction)
	halfB := oc.Dot(local.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return core.Candidate{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, keep only strictly forward hits
	root := (-halfB - sqrtD) / a
	if root <= 0 {
		root = (-halfB + sqrtD) / a
		if root <= 0 {
			return core.Candidate{}, false
		}
	}

	return core.Candidate{T: root, LocalRay: local}, true
}

// PopulateHit recomputes the local hit point from the instanced ray, maps the
// surface data back to world space and resolves the material at the
// spherical texture coordinates.
func (s *Sphere) PopulateHit(hit *core.Intersection) {
	localPoint := hit.InstancedRay.At(hit.T)
	localNormal := localPoint.Mul(1 / s.Radius)

	hit.IntPoint.Position = s.PointToWorld(localPoint)
	hit.IntPoint.Normal = s.NormalToWorld(localNormal)
	hit.IntPoint.TexCoord = sphereUV(localNormal)
	s.Material.Resolve(&hit.IntMaterial, hit.IntPoint.TexCoord)
}

// sphereUV maps a point on the unit sphere to texture coordinates in [0,1]².
func sphereUV(p mgl64.Vec3) mgl64.Vec2 {
	y := p.Y()
	if y > 1 {
		y = 1
	} else if y < -1 {
		y = -1
	}
	u := 0.5 + math.Atan2(p.Z(), p.X())/(2*math.Pi)
	v := 0.5 + math.Asin(y)/math.Pi
	return mgl64.Vec2{u, v}
}
