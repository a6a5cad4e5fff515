package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/raykit/go-scene-core/pkg/core"
	"github.com/raykit/go-scene-core/pkg/geometry"
	"github.com/raykit/go-scene-core/pkg/loaders"
	"github.com/raykit/go-scene-core/pkg/scene"
)

func main() {
	// Parse command line flags
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	mode := flag.String("mode", "normals", "Visualization mode: 'normals' or 'depth'")
	objPath := flag.String("obj", "", "Optional OBJ mesh to add to the scene")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Raycast scene inspector")
		fmt.Println("Usage: raycast [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Casts one primary ray per pixel through the default scene and")
		fmt.Println("visualizes the nearest-hit surface normals or hit distances.")
		fmt.Println("Output is saved to output/<mode>/raycast_<timestamp>.png")
		return
	}

	s := scene.NewDefaultScene()
	s.SetLogger(log.New(os.Stdout, "", log.LstdFlags))
	s.Camera.Aspect = float64(*width) / float64(*height)

	// Optionally add a mesh model in front of the camera
	if *objPath != "" {
		mesh, err := loaders.LoadOBJ(*objPath)
		if err != nil {
			fmt.Printf("Error loading mesh: %v\n", err)
			return
		}
		s.AddMesh(mesh)
		model := geometry.NewModel(mesh, nil)
		model.Position = mgl64.Vec3{0, 0.5, 2}
		s.AddGeometry(model)
		fmt.Printf("Loaded %s: %d triangles\n", *objPath, mesh.NumTriangles())
	}

	if err := s.Initialize(); err != nil {
		fmt.Printf("Error initializing scene: %v\n", err)
		return
	}

	outputDir := filepath.Join("output", *mode)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	startTime := time.Now()
	img := render(s, *width, *height, *mode)
	fmt.Printf("Traced %d rays in %v\n", (*width)*(*height), time.Since(startTime))

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("raycast_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}

	fmt.Printf("Image saved as %s\n", filename)
}

// render casts one primary ray per pixel and maps each nearest hit to a
// color according to the selected mode.
func render(s *scene.Scene, width, height int, mode string) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		// Image rows run top to bottom, camera v runs bottom to top
		v := 1 - (float64(y)+0.5)/float64(height)
		for x := 0; x < width; x++ {
			u := (float64(x) + 0.5) / float64(width)
			hit := s.Intersect(s.Camera.Ray(u, v))

			var c core.Color3
			switch {
			case !hit.Hit():
				c = s.BackgroundColor
			case mode == "depth":
				// Nearby surfaces render bright, distance falls off smoothly
				shade := math.Exp(-hit.T / 10)
				c = core.NewColor3(shade, shade, shade)
			default:
				n := hit.IntPoint.Normal
				c = core.NewColor3(0.5*(n.X()+1), 0.5*(n.Y()+1), 0.5*(n.Z()+1))
			}

			c = c.Clamp()
			img.Set(x, y, color.RGBA{
				R: uint8(c.R * 255),
				G: uint8(c.G * 255),
				B: uint8(c.B * 255),
				A: 255,
			})
		}
	}
	return img
}
