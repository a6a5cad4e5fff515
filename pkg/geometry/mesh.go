package geometry

import "github.com/go-gl/mathgl/mgl64"

// MeshVertex is one vertex of an indexed triangle mesh.
type MeshVertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	TexCoord mgl64.Vec2
}

// Mesh is an indexed triangle soup owned by the scene. Several Model
// instances may share one mesh with different transforms and materials.
type Mesh struct {
	Vertices  []MeshVertex
	Triangles [][3]int
}

// NumTriangles returns the number of triangles in the mesh
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles)
}

// TriangleVertices returns the three vertices of triangle i.
func (m *Mesh) TriangleVertices(i int) (MeshVertex, MeshVertex, MeshVertex) {
	tri := m.Triangles[i]
	return m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
}
