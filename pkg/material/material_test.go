package material

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/raykit/go-scene-core/pkg/core"
)

func colorsClose(a, b core.Color3, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}

func TestMaterial_Resolve(t *testing.T) {
	m := New(
		core.NewColor3(0.1, 0.1, 0.1),
		core.NewColor3(0.6, 0.2, 0.2),
		core.NewColor3(0.3, 0.3, 0.3))
	m.RefractiveIndex = 1.33

	var props core.MaterialProperties
	m.Resolve(&props, mgl64.Vec2{0.5, 0.5})

	if props.Ambient != m.Ambient || props.Diffuse != m.Diffuse || props.Specular != m.Specular {
		t.Errorf("Resolved colors do not match material: %+v", props)
	}
	if props.RefractiveIndex != 1.33 {
		t.Errorf("Expected refractive index 1.33, got %f", props.RefractiveIndex)
	}
	if props.Texture != core.White {
		t.Errorf("Untextured material must sample white, got %v", props.Texture)
	}
}

func TestMaterial_Resolve_Nil(t *testing.T) {
	var m *Material
	var props core.MaterialProperties
	m.Resolve(&props, mgl64.Vec2{})

	if props.Diffuse != core.White || props.Texture != core.White {
		t.Errorf("Nil material must resolve to white diffuse, got %+v", props)
	}
	if props.RefractiveIndex != 0 {
		t.Errorf("Nil material must resolve opaque, got %f", props.RefractiveIndex)
	}
}

func TestMaterial_Load_NoTexture(t *testing.T) {
	m := New(core.Black, core.White, core.Black)
	if err := m.Load(); err != nil {
		t.Fatalf("Load without texture path must succeed, got %v", err)
	}
	if got := m.SampleTexture(0.5, 0.5); got != core.White {
		t.Errorf("Expected white sample, got %v", got)
	}
}

func TestTexture_Sample(t *testing.T) {
	// 2x2 texture: bottom row red/green, top row blue/white
	tex := NewTexture(2, 2, []core.Color3{
		core.NewColor3(1, 0, 0), core.NewColor3(0, 1, 0),
		core.NewColor3(0, 0, 1), core.NewColor3(1, 1, 1),
	})

	tests := []struct {
		name     string
		u, v     float64
		expected core.Color3
	}{
		{name: "bottom-left corner", u: 0, v: 0, expected: core.NewColor3(1, 0, 0)},
		{name: "bottom-right corner", u: 1, v: 0, expected: core.NewColor3(0, 1, 0)},
		{name: "top-left corner", u: 0, v: 1, expected: core.NewColor3(0, 0, 1)},
		{name: "top-right corner", u: 1, v: 1, expected: core.NewColor3(1, 1, 1)},
		{name: "center blend", u: 0.5, v: 0.5, expected: core.NewColor3(0.5, 0.5, 0.5)},
		{name: "wrap past one", u: 1.25, v: 0, expected: core.NewColor3(0.75, 0.25, 0)},
		{name: "wrap below zero", u: -0.75, v: 0, expected: core.NewColor3(0.75, 0.25, 0)},
		{name: "wrap in v", u: 0, v: 1.5, expected: core.NewColor3(0.5, 0, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tex.Sample(tt.u, tt.v)
			if !colorsClose(got, tt.expected, 1e-9) {
				t.Errorf("Sample(%v, %v): expected %v, got %v", tt.u, tt.v, tt.expected, got)
			}
		})
	}
}
