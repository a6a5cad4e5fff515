package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/raykit/go-scene-core/pkg/core"
	"github.com/raykit/go-scene-core/pkg/material"
)

// TriangleVertex carries the per-vertex surface data of a Triangle. Each
// vertex may reference its own material; surface properties are blended
// barycentrically across the face.
type TriangleVertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	TexCoord mgl64.Vec2
	Material *material.Material
}

// Triangle is a single triangle with per-vertex normals, texture coordinates
// and materials, positioned by the embedded transform.
type Triangle struct {
	Object
	Vertices [3]TriangleVertex
}

// NewTriangle creates a new triangle
func NewTriangle(vertices [3]TriangleVertex) *Triangle {
	return &Triangle{
		Object:   NewObject(),
		Vertices: vertices,
	}
}

// HasHit intersects the instanced ray with the triangle and returns the hit
// distance. Rays parallel to the triangle plane report no hit.
func (t *Triangle) HasHit(ray core.Ray) (core.Candidate, bool) {
	if !t.Initialized() {
		return core.Candidate{}, false
	}
	local := t.InstanceRay(ray)
	tHit, _, _, ok := intersectTriangle(local,
		t.Vertices[0].Position, t.Vertices[1].Position, t.Vertices[2].Position)
	if !ok {
		return core.Candidate{}, false
	}
	return core.Candidate{T: tHit, LocalRay: local}, true
}

// PopulateHit re-derives the barycentric coordinates from the instanced ray
// and interpolates position, normal, texture coordinate and material across
// the three vertices.
func (t *Triangle) PopulateHit(hit *core.Intersection) {
	_, u, v, ok := intersectTriangle(hit.InstancedRay,
		t.Vertices[0].Position, t.Vertices[1].Position, t.Vertices[2].Position)
	if !ok {
		return
	}
	w := 1 - u - v

	localPoint := hit.InstancedRay.At(hit.T)
	localNormal := t.Vertices[0].Normal.Mul(w).
		Add(t.Vertices[1].Normal.Mul(u)).
		Add(t.Vertices[2].Normal.Mul(v))

	hit.IntPoint.Position = t.PointToWorld(localPoint)
	hit.IntPoint.Normal = t.NormalToWorld(localNormal)
	hit.IntPoint.TexCoord = t.Vertices[0].TexCoord.Mul(w).
		Add(t.Vertices[1].TexCoord.Mul(u)).
		Add(t.Vertices[2].TexCoord.Mul(v))

	var m0, m1, m2 core.MaterialProperties
	t.Vertices[0].Material.Resolve(&m0, hit.IntPoint.TexCoord)
	t.Vertices[1].Material.Resolve(&m1, hit.IntPoint.TexCoord)
	t.Vertices[2].Material.Resolve(&m2, hit.IntPoint.TexCoord)
	hit.IntMaterial = blendProperties(w, u, v, m0, m1, m2)
}

// blendProperties mixes three resolved material property sets by barycentric
// weights.
func blendProperties(w0, w1, w2 float64, m0, m1, m2 core.MaterialProperties) core.MaterialProperties {
	return core.MaterialProperties{
		Ambient:         m0.Ambient.Scale(w0).Add(m1.Ambient.Scale(w1)).Add(m2.Ambient.Scale(w2)),
		Diffuse:         m0.Diffuse.Scale(w0).Add(m1.Diffuse.Scale(w1)).Add(m2.Diffuse.Scale(w2)),
		Specular:        m0.Specular.Scale(w0).Add(m1.Specular.Scale(w1)).Add(m2.Specular.Scale(w2)),
		RefractiveIndex: w0*m0.RefractiveIndex + w1*m1.RefractiveIndex + w2*m2.RefractiveIndex,
		Texture:         m0.Texture.Scale(w0).Add(m1.Texture.Scale(w1)).Add(m2.Texture.Scale(w2)),
	}
}

// intersectTriangle runs the Möller–Trumbore test of a ray against the
// triangle (p0, p1, p2). On a hit it returns the ray parameter and the
// barycentric weights of p1 and p2. Only strictly forward hits count.
func intersectTriangle(r core.Ray, p0, p1, p2 mgl64.Vec3) (t, u, v float64, ok bool) {
	const parallelEpsilon = 1e-12

	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	pvec := r.Direction.Cross(e2)
	det := e1.Dot(pvec)
	if math.Abs(det) < parallelEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1 / det

	tvec := r.Origin.Sub(p0)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(e1)
	v = r.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = e2.Dot(qvec) * invDet
	if t <= 0 {
		return 0, 0, 0, false
	}
	return t, u, v, true
}
