package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/raykit/go-scene-core/pkg/core"
)

// quadMesh builds two parallel triangles facing +z, one at z=1 and one at z=0.
func quadMesh(withNormals bool) *Mesh {
	normal := mgl64.Vec3{}
	if withNormals {
		normal = mgl64.Vec3{0, 0, 1}
	}
	mesh := &Mesh{}
	for _, z := range []float64{1, 0} {
		base := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices,
			MeshVertex{Position: mgl64.Vec3{-1, -1, z}, Normal: normal, TexCoord: mgl64.Vec2{0, 0}},
			MeshVertex{Position: mgl64.Vec3{1, -1, z}, Normal: normal, TexCoord: mgl64.Vec2{1, 0}},
			MeshVertex{Position: mgl64.Vec3{0, 1, z}, Normal: normal, TexCoord: mgl64.Vec2{0.5, 1}},
		)
		mesh.Triangles = append(mesh.Triangles, [3]int{base, base + 1, base + 2})
	}
	return mesh
}

func TestModel_HasHit_NearestTriangle(t *testing.T) {
	model := NewModel(quadMesh(true), nil)
	if err := model.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	ray := core.NewRay(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	candidate, ok := model.HasHit(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}
	// The triangle at z=1 is closer than the one at z=0
	if math.Abs(candidate.T-4) > 1e-12 {
		t.Errorf("Expected t=4 for the nearest triangle, got t=%f", candidate.T)
	}
}

func TestModel_HasHit_EmptyAndUninitialized(t *testing.T) {
	ray := core.NewRay(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})

	uninitialized := NewModel(quadMesh(true), nil)
	if _, ok := uninitialized.HasHit(ray); ok {
		t.Error("Uninitialized model must report no hit")
	}

	empty := NewModel(&Mesh{}, nil)
	if err := empty.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if _, ok := empty.HasHit(ray); ok {
		t.Error("Empty mesh must report no hit")
	}
}

func TestModel_PopulateHit_VertexNormals(t *testing.T) {
	model := NewModel(quadMesh(true), nil)
	if err := model.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	ray := core.NewRay(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	candidate, ok := model.HasHit(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	hit := core.NewIntersection(ray)
	hit.T = candidate.T
	hit.Index = 0
	hit.InstancedRay = candidate.LocalRay
	model.PopulateHit(hit)

	expectedPoint := mgl64.Vec3{0, 0, 1}
	if !hit.IntPoint.Position.ApproxEqualThreshold(expectedPoint, 1e-9) {
		t.Errorf("Expected position %v, got %v", expectedPoint, hit.IntPoint.Position)
	}
	expectedNormal := mgl64.Vec3{0, 0, 1}
	if !hit.IntPoint.Normal.ApproxEqualThreshold(expectedNormal, 1e-9) {
		t.Errorf("Expected normal %v, got %v", expectedNormal, hit.IntPoint.Normal)
	}
	expectedTex := mgl64.Vec2{0.5, 0.5}
	if !hit.IntPoint.TexCoord.ApproxEqualThreshold(expectedTex, 1e-9) {
		t.Errorf("Expected texcoord %v, got %v", expectedTex, hit.IntPoint.TexCoord)
	}
}

func TestModel_PopulateHit_FaceNormalFallback(t *testing.T) {
	// A mesh without vertex normals falls back to the flat face normal.
	model := NewModel(quadMesh(false), nil)
	if err := model.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	ray := core.NewRay(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, -1})
	candidate, ok := model.HasHit(ray)
	if !ok {
		t.Fatal("Expected hit, but got miss")
	}

	hit := core.NewIntersection(ray)
	hit.T = candidate.T
	hit.Index = 0
	hit.InstancedRay = candidate.LocalRay
	model.PopulateHit(hit)

	expectedNormal := mgl64.Vec3{0, 0, 1}
	if !hit.IntPoint.Normal.ApproxEqualThreshold(expectedNormal, 1e-9) {
		t.Errorf("Expected face normal %v, got %v", expectedNormal, hit.IntPoint.Normal)
	}
}
