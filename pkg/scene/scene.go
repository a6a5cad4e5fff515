package scene

import (
	"fmt"

	"github.com/raykit/go-scene-core/pkg/core"
	"github.com/raykit/go-scene-core/pkg/geometry"
	"github.com/raykit/go-scene-core/pkg/lights"
	"github.com/raykit/go-scene-core/pkg/material"
)

// Scene aggregates everything needed to intersect rays against the world:
// geometries, the materials and meshes they reference, and the scene's
// lights. Anything added to a scene is owned by it afterwards and must not be
// added to a second scene.
//
// The intended usage is build-then-read: add everything, call Initialize
// once, then fire any number of ray queries. The scene has no internal
// locking; concurrent Intersect calls are safe only while no Add/Initialize/
// Reset call is in flight, and each query needs its own Intersection record.
//
// Scene must not be copied: a copy would alias the owned collections across
// two scenes. The embedded noCopy marker makes go vet reject copies.
type Scene struct {
	noCopy noCopy

	// Camera for the scene, stored opaquely for the rendering driver.
	Camera core.Camera
	// BackgroundColor shades rays that strike nothing.
	BackgroundColor core.Color3
	// AmbientLight is the ambient light color of the scene.
	AmbientLight core.Color3
	// RefractiveIndex of the surrounding medium, used as the outside index
	// for refraction at transparent surfaces.
	RefractiveIndex float64

	geometries []geometry.Geometry
	materials  []*material.Material
	meshes     []*geometry.Mesh
	lights     []lights.SphereLight

	logger core.Logger
}

// New creates an empty scene with default ambient settings.
func New() *Scene {
	s := &Scene{}
	s.applyDefaults()
	return s
}

func (s *Scene) applyDefaults() {
	s.BackgroundColor = core.Black
	s.AmbientLight = core.Black
	s.RefractiveIndex = 1.0
}

// SetLogger installs a logger for load-time progress. A nil logger silences
// the scene.
func (s *Scene) SetLogger(l core.Logger) {
	s.logger = l
}

func (s *Scene) logf(format string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// AddGeometry appends a geometry to the scene, transferring ownership.
func (s *Scene) AddGeometry(g geometry.Geometry) {
	s.geometries = append(s.geometries, g)
}

// AddMaterial appends a material to the scene, transferring ownership.
func (s *Scene) AddMaterial(m *material.Material) {
	s.materials = append(s.materials, m)
}

// AddMesh appends a mesh to the scene, transferring ownership.
func (s *Scene) AddMesh(m *geometry.Mesh) {
	s.meshes = append(s.meshes, m)
}

// AddLight appends a light to the scene's light list.
func (s *Scene) AddLight(l lights.SphereLight) {
	s.lights = append(s.lights, l)
}

// Initialize prepares the scene for traversal: it loads material textures and
// recomputes every geometry's cached transform matrices. It is safe to call
// again, and must be called again after adding more items.
func (s *Scene) Initialize() error {
	for i, m := range s.materials {
		if err := m.Load(); err != nil {
			return fmt.Errorf("scene: material %d: %w", i, err)
		}
	}
	for i, g := range s.geometries {
		if err := g.Initialize(); err != nil {
			return fmt.Errorf("scene: geometry %d: %w", i, err)
		}
	}
	s.logf("scene: initialized %d geometries, %d materials, %d meshes, %d lights",
		len(s.geometries), len(s.materials), len(s.meshes), len(s.lights))
	return nil
}

// Geometries returns a read-only view of the scene's geometries. The slice is
// scene-owned storage; callers must not mutate it or retain it across Reset.
func (s *Scene) Geometries() []geometry.Geometry {
	return s.geometries
}

// Materials returns a read-only view of the scene's materials.
func (s *Scene) Materials() []*material.Material {
	return s.materials
}

// Meshes returns a read-only view of the scene's meshes.
func (s *Scene) Meshes() []*geometry.Mesh {
	return s.meshes
}

// Lights returns a read-only view of the scene's lights.
func (s *Scene) Lights() []lights.SphereLight {
	return s.lights
}

// NumGeometries returns the number of geometries in the scene
func (s *Scene) NumGeometries() int { return len(s.geometries) }

// NumMaterials returns the number of materials in the scene
func (s *Scene) NumMaterials() int { return len(s.materials) }

// NumMeshes returns the number of meshes in the scene
func (s *Scene) NumMeshes() int { return len(s.meshes) }

// NumLights returns the number of lights in the scene
func (s *Scene) NumLights() int { return len(s.lights) }

// Reset drops every owned collection and restores the just-constructed
// defaults.
func (s *Scene) Reset() {
	s.geometries = nil
	s.materials = nil
	s.meshes = nil
	s.lights = nil
	s.Camera = core.Camera{}
	s.applyDefaults()
}

// Intersect runs the two-phase nearest-hit query for one ray. Phase 1 asks
// every geometry for a distance-only candidate and keeps the strictly
// closest, so ties go to the first-added geometry. Phase 2 populates surface
// data from the single winner. A miss leaves the sentinel record
// (T = +Inf, Index = NoHit) and the caller shades with the background color.
func (s *Scene) Intersect(ray core.Ray) *core.Intersection {
	hit := core.NewIntersection(ray)
	for i, g := range s.geometries {
		if c, ok := g.HasHit(ray); ok && c.T < hit.T {
			hit.T = c.T
			hit.Index = i
			hit.InstancedRay = c.LocalRay
		}
	}
	if hit.Hit() {
		s.geometries[hit.Index].PopulateHit(hit)
	}
	return hit
}

// noCopy triggers go vet's copylocks check when a Scene is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
