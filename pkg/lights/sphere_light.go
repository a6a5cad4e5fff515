package lights

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/raykit/go-scene-core/pkg/core"
)

// Attenuation holds the coefficients of the standard inverse-distance light
// falloff 1/(constant + linear·d + quadratic·d²).
type Attenuation struct {
	Constant  float64
	Linear    float64
	Quadratic float64
}

// At evaluates the falloff factor at distance d
func (a Attenuation) At(d float64) float64 {
	return 1.0 / (a.Constant + a.Linear*d + a.Quadratic*d*d)
}

// SphereLight is a point-like light source with a bounding-sphere radius used
// for occlusion and soft-shadow sampling. It is stored by value inside the
// scene's light list. The light itself is never rendered as geometry.
type SphereLight struct {
	// Position of the light relative to the world origin.
	Position mgl64.Vec3
	// Color of the light, used for both diffuse and specular contribution.
	Color       core.Color3
	Attenuation Attenuation
	Radius      float64
}

// NewSphereLight creates a light with no distance falloff
func NewSphereLight(position mgl64.Vec3, color core.Color3, radius float64) SphereLight {
	return SphereLight{
		Position:    position,
		Color:       color,
		Attenuation: Attenuation{Constant: 1},
		Radius:      radius,
	}
}

// Intersect tests the ray against the light's bounding sphere, purely for
// occlusion sampling. It returns the nearest strictly forward hit distance.
func (l SphereLight) Intersect(r core.Ray) (float64, bool) {
	oc := r.Origin.Sub(l.Position)
	a := r.Direction.Dot(r.Direction)
	halfB := oc.Dot(r.Direction)
	c := oc.Dot(oc) - l.Radius*l.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= 0 {
		root = (-halfB + sqrtD) / a
		if root <= 0 {
			return 0, false
		}
	}
	return root, true
}
