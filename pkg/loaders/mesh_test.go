package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const triangleOBJ = `v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.obj")
	if err := os.WriteFile(path, []byte(triangleOBJ), 0644); err != nil {
		t.Fatalf("Failed to write OBJ file: %v", err)
	}

	mesh, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	if mesh.NumTriangles() != 1 {
		t.Fatalf("Expected 1 triangle, got %d", mesh.NumTriangles())
	}
	if len(mesh.Vertices) != 3 {
		t.Fatalf("Expected 3 vertices, got %d", len(mesh.Vertices))
	}

	v0, v1, v2 := mesh.TriangleVertices(0)
	if !v0.Position.ApproxEqualThreshold(mgl64.Vec3{0, 0, 0}, 1e-9) {
		t.Errorf("Unexpected v0 position %v", v0.Position)
	}
	if !v1.Position.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("Unexpected v1 position %v", v1.Position)
	}
	if !v2.Position.ApproxEqualThreshold(mgl64.Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("Unexpected v2 position %v", v2.Position)
	}
	if !v0.Normal.ApproxEqualThreshold(mgl64.Vec3{0, 0, 1}, 1e-9) {
		t.Errorf("Unexpected v0 normal %v", v0.Normal)
	}
	if !v1.TexCoord.ApproxEqualThreshold(mgl64.Vec2{1, 0}, 1e-9) {
		t.Errorf("Unexpected v1 texcoord %v", v1.TexCoord)
	}
}

func TestLoadOBJ_MissingFile(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("Expected error for missing OBJ file")
	}
}
