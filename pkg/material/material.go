package material

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/raykit/go-scene-core/pkg/core"
)

// Material describes the shading inputs of a surface. Geometries hold
// materials by pointer; the scene owns them and loads their textures during
// initialization.
type Material struct {
	// Ambient color (ignored by shading if RefractiveIndex != 0)
	Ambient core.Color3
	// Diffuse color
	Diffuse core.Color3
	// Specular (reflective) color
	Specular core.Color3
	// RefractiveIndex of the material dielectric. 0 is the opaque sentinel;
	// any other value means transparent with the given index.
	RefractiveIndex float64
	// TexturePath optionally names an image file sampled for surface color.
	TexturePath string

	texture *Texture
}

// New creates an opaque material with the given colors
func New(ambient, diffuse, specular core.Color3) *Material {
	return &Material{
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
	}
}

// Load decodes the material's texture, if any. Calling it again is a no-op
// once the texture is resident.
func (m *Material) Load() error {
	if m.TexturePath == "" || m.texture != nil {
		return nil
	}
	tex, err := LoadTexture(m.TexturePath)
	if err != nil {
		return fmt.Errorf("material: %w", err)
	}
	m.texture = tex
	return nil
}

// SetTexture attaches an already-decoded texture, replacing any loaded one.
func (m *Material) SetTexture(tex *Texture) {
	m.texture = tex
}

// SampleTexture returns the texture color at (u, v). Untextured materials
// sample as white so the texture term is a no-op in shading products.
func (m *Material) SampleTexture(u, v float64) core.Color3 {
	if m == nil || m.texture == nil {
		return core.White
	}
	return m.texture.Sample(u, v)
}

// Resolve fills props with this material's shading inputs, sampling the
// texture at uv. A nil material resolves to plain white diffuse.
func (m *Material) Resolve(props *core.MaterialProperties, uv mgl64.Vec2) {
	if m == nil {
		*props = core.MaterialProperties{Diffuse: core.White, Texture: core.White}
		return
	}
	props.Ambient = m.Ambient
	props.Diffuse = m.Diffuse
	props.Specular = m.Specular
	props.RefractiveIndex = m.RefractiveIndex
	props.Texture = m.SampleTexture(uv.X(), uv.Y())
}
