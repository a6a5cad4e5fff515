package geometry

import (
	"math"

	"github.com/raykit/go-scene-core/pkg/core"
	"github.com/raykit/go-scene-core/pkg/material"
)

// Model instances a scene-owned mesh with a single material. Traversal is a
// linear scan over the mesh triangles; acceleration structures are layered on
// top by the caller, not here.
type Model struct {
	Object
	Mesh     *Mesh
	Material *material.Material
}

// NewModel creates a new model
func NewModel(mesh *Mesh, mat *material.Material) *Model {
	return &Model{
		Object:   NewObject(),
		Mesh:     mesh,
		Material: mat,
	}
}

// HasHit scans every mesh triangle with the instanced ray and keeps the
// nearest forward hit.
func (m *Model) HasHit(ray core.Ray) (core.Candidate, bool) {
	if !m.Initialized() || m.Mesh == nil {
		return core.Candidate{}, false
	}
	local := m.InstanceRay(ray)

	best := math.Inf(1)
	found := false
	for i := 0; i < m.Mesh.NumTriangles(); i++ {
		v0, v1, v2 := m.Mesh.TriangleVertices(i)
		if t, _, _, ok := intersectTriangle(local, v0.Position, v1.Position, v2.Position); ok && t < best {
			best = t
			found = true
		}
	}
	if !found {
		return core.Candidate{}, false
	}
	return core.Candidate{T: best, LocalRay: local}, true
}

// PopulateHit finds the nearest triangle again and interpolates its vertex
// data at the hit point. Meshes without vertex normals fall back to the flat
// face normal.
func (m *Model) PopulateHit(hit *core.Intersection) {
	bestT := math.Inf(1)
	bestIdx := -1
	var bestU, bestV float64
	for i := 0; i < m.Mesh.NumTriangles(); i++ {
		v0, v1, v2 := m.Mesh.TriangleVertices(i)
		if t, u, v, ok := intersectTriangle(hit.InstancedRay, v0.Position, v1.Position, v2.Position); ok && t < bestT {
			bestT = t
			bestIdx = i
			bestU, bestV = u, v
		}
	}
	if bestIdx < 0 {
		return
	}

	v0, v1, v2 := m.Mesh.TriangleVertices(bestIdx)
	w := 1 - bestU - bestV

	localNormal := v0.Normal.Mul(w).Add(v1.Normal.Mul(bestU)).Add(v2.Normal.Mul(bestV))
	if localNormal.LenSqr() < 1e-18 {
		e1 := v1.Position.Sub(v0.Position)
		e2 := v2.Position.Sub(v0.Position)
		localNormal = e1.Cross(e2)
	}

	localPoint := hit.InstancedRay.At(hit.T)
	hit.IntPoint.Position = m.PointToWorld(localPoint)
	hit.IntPoint.Normal = m.NormalToWorld(localNormal)
	hit.IntPoint.TexCoord = v0.TexCoord.Mul(w).
		Add(v1.TexCoord.Mul(bestU)).
		Add(v2.TexCoord.Mul(bestV))
	m.Material.Resolve(&hit.IntMaterial, hit.IntPoint.TexCoord)
}
