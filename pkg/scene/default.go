package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/raykit/go-scene-core/pkg/core"
	"github.com/raykit/go-scene-core/pkg/geometry"
	"github.com/raykit/go-scene-core/pkg/lights"
	"github.com/raykit/go-scene-core/pkg/material"
)

// NewDefaultScene creates a small demonstration scene: three spheres (one
// squashed by a non-uniform scale), a ground triangle and a single light.
func NewDefaultScene() *Scene {
	s := New()
	s.BackgroundColor = core.NewColor3(0.05, 0.06, 0.08)
	s.AmbientLight = core.NewColor3(0.1, 0.1, 0.1)
	s.Camera = core.NewCamera(
		mgl64.Vec3{0, 1.2, 6},   // position
		mgl64.Vec3{0, 0.5, 0},   // look at
		mgl64.Vec3{0, 1, 0},     // up
		40*math.Pi/180, 16.0/9.0)

	// Materials
	red := material.New(
		core.NewColor3(0.1, 0.02, 0.02),
		core.NewColor3(0.65, 0.25, 0.2),
		core.NewColor3(0.2, 0.2, 0.2))
	blue := material.New(
		core.NewColor3(0.02, 0.04, 0.1),
		core.NewColor3(0.1, 0.2, 0.5),
		core.NewColor3(0.3, 0.3, 0.3))
	green := material.New(
		core.NewColor3(0.05, 0.1, 0.02),
		core.NewColor3(0.3, 0.5, 0.15),
		core.Black)
	glass := material.New(core.Black, core.Black, core.NewColor3(0.9, 0.9, 0.9))
	glass.RefractiveIndex = 1.5
	s.AddMaterial(red)
	s.AddMaterial(blue)
	s.AddMaterial(green)
	s.AddMaterial(glass)

	// Spheres
	center := geometry.NewSphere(1, red)
	center.Position = mgl64.Vec3{0, 0.5, 0}

	left := geometry.NewSphere(1, blue)
	left.Position = mgl64.Vec3{-2.2, 0.25, 0.5}
	left.Scale = mgl64.Vec3{1, 0.5, 1} // squashed, exercises the normal matrix

	right := geometry.NewSphere(0.75, glass)
	right.Position = mgl64.Vec3{2, 0.25, 0.5}

	s.AddGeometry(center)
	s.AddGeometry(left)
	s.AddGeometry(right)

	// Large ground triangle under the spheres
	ground := geometry.NewTriangle([3]geometry.TriangleVertex{
		{Position: mgl64.Vec3{-50, -0.5, -50}, Normal: mgl64.Vec3{0, 1, 0}, TexCoord: mgl64.Vec2{0, 0}, Material: green},
		{Position: mgl64.Vec3{50, -0.5, -50}, Normal: mgl64.Vec3{0, 1, 0}, TexCoord: mgl64.Vec2{1, 0}, Material: green},
		{Position: mgl64.Vec3{0, -0.5, 100}, Normal: mgl64.Vec3{0, 1, 0}, TexCoord: mgl64.Vec2{0.5, 1}, Material: green},
	})
	s.AddGeometry(ground)

	light := lights.NewSphereLight(mgl64.Vec3{5, 8, 4}, core.White, 0.5)
	light.Attenuation = lights.Attenuation{Constant: 1, Linear: 0.01, Quadratic: 0.001}
	s.AddLight(light)

	return s
}
