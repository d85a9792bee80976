package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/roydaw/go-raytracer/pkg/renderer"
	"github.com/roydaw/go-raytracer/pkg/scene"
)

// Defaults produce the full-quality random scene render:
// 1200x800 at 500 samples per pixel.
const (
	defaultAspectRatio = 3.0 / 2.0
	defaultWidth       = 1200
	defaultSamples     = 500
	defaultMaxDepth    = 50
)

func main() {
	log.SetFlags(0)

	width := flag.Int("width", defaultWidth, "image width in pixels (height follows the 3:2 aspect ratio)")
	samples := flag.Int("samples", defaultSamples, "samples per pixel")
	depth := flag.Int("depth", defaultMaxDepth, "maximum ray bounce depth")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed; fixed seed reproduces the image")
	workers := flag.Int("workers", 0, "parallel scanline workers (0 = CPU count)")
	sceneType := flag.String("scene", "random", "scene to render: 'random' or 'single'")
	output := flag.String("o", "-", "output file ('-' = PPM to stdout; .ppm and .png extensions supported)")
	flag.Parse()

	config := renderer.Config{
		Width:           *width,
		Height:          int(float64(*width) / defaultAspectRatio),
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		Seed:            *seed,
		NumWorkers:      *workers,
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	aspectRatio := float64(config.Width) / float64(config.Height)

	sc, err := createScene(*sceneType, aspectRatio, config.Seed)
	if err != nil {
		log.Fatalf("%v", err)
	}

	write, w, cleanup, err := openOutput(*output)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer cleanup()

	r := renderer.NewRenderer(sc.World, sc.Camera, config, renderer.NewStderrLogger())
	fb, stats := r.Render()

	if err := write(w, fb); err != nil {
		log.Fatalf("could not write image: %v", err)
	}

	log.Printf("rendered %d pixels (%d samples) with %d workers in %.3fs",
		stats.Pixels, stats.TotalSamples, stats.Workers, stats.Elapsed.Seconds())
}

// createScene builds the scene selected on the command line
func createScene(sceneType string, aspectRatio float64, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "random":
		return scene.NewRandomScene(aspectRatio, rand.New(rand.NewSource(seed))), nil
	case "single":
		return scene.NewSingleSphereScene(aspectRatio), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q (available: random, single)", sceneType)
	}
}

type imageWriter func(io.Writer, *renderer.Framebuffer) error

// openOutput resolves the output target and encoder. Stdout carries only
// the image stream; all diagnostics go to stderr.
func openOutput(path string) (imageWriter, io.Writer, func(), error) {
	if path == "-" {
		return renderer.WritePPM, os.Stdout, func() {}, nil
	}

	var write imageWriter
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		write = renderer.WritePPM
	case ".png":
		write = renderer.WritePNG
	default:
		return nil, nil, nil, fmt.Errorf("unsupported file extension %q (supported: ppm, png)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not create output file %q: %v", path, err)
	}
	return write, f, func() { f.Close() }, nil
}
