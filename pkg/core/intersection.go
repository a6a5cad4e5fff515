package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NoHit is the Index sentinel for a ray that strikes nothing.
const NoHit = -1

// DefaultEpsilonT is the bias callers use to offset a secondary ray's origin
// along its direction so it does not re-intersect the surface it started on.
const DefaultEpsilonT = 0.001

// Candidate is the distance-only result of a phase-1 hit test. It carries the
// ray already transformed into the primitive's local space so phase 2 can
// re-derive local geometry without repeating the transform.
type Candidate struct {
	T        float64
	LocalRay Ray
}

// IntersectionPoint holds the world-space surface data of the nearest hit.
// The normal is unit length; the texture coordinate is in [0,1]² but may wrap
// depending on the material.
type IntersectionPoint struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	TexCoord mgl64.Vec2
}

// MaterialProperties holds the resolved shading inputs at the hit point.
type MaterialProperties struct {
	// Ambient color (ignored by shading if RefractiveIndex != 0)
	Ambient Color3
	// Diffuse color
	Diffuse Color3
	// Specular (reflective) color
	Specular Color3
	// RefractiveIndex of the material dielectric. 0 is the opaque sentinel;
	// any other value means transparent with the given index.
	RefractiveIndex float64
	// Texture color sampled at the hit point
	Texture Color3
}

// Intersection records the result of testing one ray against one primitive or
// the whole scene. It is threaded through two phases: phase 1 only lowers T
// and tracks the winning geometry's Index, phase 2 fills IntPoint and
// IntMaterial for the single winner. One record serves one query; it must not
// be shared across concurrent queries.
type Intersection struct {
	// T is the nearest hit distance along the ray. +Inf means no hit yet; it
	// only ever decreases as candidates are compared.
	T float64
	// EpsilonT is a small positive bias owned by the caller, used to offset
	// the next ray's origin to avoid self-intersection. Geometries never
	// mutate it.
	EpsilonT float64
	// Index identifies which geometry produced the current best T. NoHit
	// means no geometry has been hit; Index != NoHit implies T < +Inf.
	Index int

	IntPoint    IntersectionPoint
	IntMaterial MaterialProperties

	// Ray is the original world-space ray of the query.
	Ray Ray
	// InstancedRay is Ray transformed into the winning primitive's local
	// space, retained for phase 2.
	InstancedRay Ray
}

// NewIntersection creates the sentinel "no hit yet" record for one ray query.
func NewIntersection(ray Ray) *Intersection {
	return &Intersection{
		T:        math.Inf(1),
		EpsilonT: DefaultEpsilonT,
		Index:    NoHit,
		Ray:      ray,
	}
}

// Hit reports whether any geometry has been recorded for this query.
func (i *Intersection) Hit() bool {
	return i.Index != NoHit
}
