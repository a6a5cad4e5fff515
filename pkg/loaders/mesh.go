package loaders

import (
	"fmt"

	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/raykit/go-scene-core/pkg/geometry"
)

// LoadOBJ reads a Wavefront OBJ file into a mesh.
func LoadOBJ(path string) (*geometry.Mesh, error) {
	fm, err := fauxgl.LoadOBJ(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load OBJ %q: %w", path, err)
	}
	return convertMesh(fm), nil
}

// LoadSTL reads a binary or ASCII STL file into a mesh. STL carries no
// texture coordinates, so those come back zero.
func LoadSTL(path string) (*geometry.Mesh, error) {
	fm, err := fauxgl.LoadSTL(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load STL %q: %w", path, err)
	}
	return convertMesh(fm), nil
}

// convertMesh flattens fauxgl's per-triangle vertices into an indexed mesh.
// Vertices are not deduplicated; shared-vertex welding is a mesh-processing
// concern outside this core.
func convertMesh(fm *fauxgl.Mesh) *geometry.Mesh {
	mesh := &geometry.Mesh{
		Vertices:  make([]geometry.MeshVertex, 0, 3*len(fm.Triangles)),
		Triangles: make([][3]int, 0, len(fm.Triangles)),
	}
	for _, tri := range fm.Triangles {
		base := len(mesh.Vertices)
		for _, v := range [3]fauxgl.Vertex{tri.V1, tri.V2, tri.V3} {
			mesh.Vertices = append(mesh.Vertices, geometry.MeshVertex{
				Position: mgl64.Vec3{v.Position.X, v.Position.Y, v.Position.Z},
				Normal:   mgl64.Vec3{v.Normal.X, v.Normal.Y, v.Normal.Z},
				TexCoord: mgl64.Vec2{v.Texture.X, v.Texture.Y},
			})
		}
		mesh.Triangles = append(mesh.Triangles, [3]int{base, base + 1, base + 2})
	}
	return mesh
}
