package material

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/raykit/go-scene-core/pkg/core"
)

// maxTextureDim bounds decoded texture dimensions; larger images are
// downsampled at load time.
const maxTextureDim = 4096

// Texture is a decoded image held as float RGB rows, row-major with the
// origin at the bottom-left so it matches UV conventions.
type Texture struct {
	Width  int
	Height int
	Pixels []core.Color3 // Pixels[y*Width + x]
}

// NewTexture creates a texture from prepared pixel data
func NewTexture(width, height int, pixels []core.Color3) *Texture {
	return &Texture{Width: width, Height: height, Pixels: pixels}
}

// LoadTexture decodes a PNG, JPEG, BMP or TIFF image into a Texture.
func LoadTexture(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %q: %w", path, err)
	}

	// Image origin is top-left; flip so row 0 is the bottom of the image and
	// v grows upward.
	flipped := imaging.FlipV(img)

	bounds := flipped.Bounds()
	if bounds.Dx() > maxTextureDim || bounds.Dy() > maxTextureDim {
		flipped = imaging.Clone(resize.Thumbnail(maxTextureDim, maxTextureDim, flipped, resize.Bilinear))
		bounds = flipped.Bounds()
	}

	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := flipped.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewColor3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return NewTexture(width, height, pixels), nil
}

// Sample returns the bilinearly filtered color at (u, v). Coordinates outside
// [0,1] wrap; the closed bounds 0 and 1 sample the texture edges.
func (t *Texture) Sample(u, v float64) core.Color3 {
	if u < 0 || u > 1 {
		u -= math.Floor(u)
	}
	if v < 0 || v > 1 {
		v -= math.Floor(v)
	}

	x := u * float64(t.Width-1)
	y := v * float64(t.Height-1)
	x0 := int(x)
	y0 := int(y)
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 >= t.Width {
		x1 = t.Width - 1
	}
	if y1 >= t.Height {
		y1 = t.Height - 1
	}
	fx := x - float64(x0)
	fy := y - float64(y0)

	c00 := t.Pixels[y0*t.Width+x0]
	c10 := t.Pixels[y0*t.Width+x1]
	c01 := t.Pixels[y1*t.Width+x0]
	c11 := t.Pixels[y1*t.Width+x1]

	bottom := c00.Scale(1 - fx).Add(c10.Scale(fx))
	top := c01.Scale(1 - fx).Add(c11.Scale(fx))
	return bottom.Scale(1 - fy).Add(top.Scale(fy))
}
