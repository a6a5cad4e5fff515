package core

// Color3 represents an RGB color with float64 channels, nominally in [0, 1]
type Color3 struct {
	R, G, B float64
}

// Common colors used for scene defaults.
var (
	Black = Color3{0, 0, 0}
	White = Color3{1, 1, 1}
)

// NewColor3 creates a new Color3
func NewColor3(r, g, b float64) Color3 {
	return Color3{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color3) Add(other Color3) Color3 {
	return Color3{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color scaled by a scalar
func (c Color3) Scale(s float64) Color3 {
	return Color3{c.R * s, c.G * s, c.B * s}
}

// Mul returns the component-wise product of two colors
func (c Color3) Mul(other Color3) Color3 {
	return Color3{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns the color with each channel clamped to [0, 1]
func (c Color3) Clamp() Color3 {
	cl := func(x float64) float64 {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return Color3{cl(c.R), cl(c.G), cl(c.B)}
}
