package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/roydaw/go-raytracer/pkg/core"
	"github.com/roydaw/go-raytracer/pkg/geometry"
	"github.com/roydaw/go-raytracer/pkg/integrator"
)

// Config contains the render-quality and execution settings
type Config struct {
	Width           int   // image width in pixels
	Height          int   // image height in pixels
	SamplesPerPixel int   // jittered camera rays per pixel
	MaxDepth        int   // bounce budget per sample
	Seed            int64 // base seed; fixed seed gives a reproducible image
	NumWorkers      int   // parallel scanline workers (0 = CPU count)
}

// Validate reports the first invalid configuration value
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("image width must be positive, got %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("image height must be positive, got %d", c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must be non-negative, got %d", c.NumWorkers)
	}
	return nil
}

// RenderStats summarizes a completed render
type RenderStats struct {
	Pixels       int
	TotalSamples int
	Workers      int
	Elapsed      time.Duration
}

// Framebuffer holds resolved pixel colors in row-major order,
// row 0 at the top of the image
type Framebuffer struct {
	Width, Height int
	Pixels        []core.Color
}

// NewFramebuffer allocates a framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the pixel at column i, row j (row 0 = top)
func (fb *Framebuffer) At(i, j int) core.Color {
	return fb.Pixels[j*fb.Width+i]
}

// Renderer drives the per-pixel sampling loop over an immutable world
// and camera snapshot
type Renderer struct {
	world  geometry.List
	camera *Camera
	tracer *integrator.PathTracer
	config Config
	logger Logger
}

// NewRenderer creates a renderer. The config must already be validated.
func NewRenderer(world geometry.List, camera *Camera, config Config, logger Logger) *Renderer {
	if logger == nil {
		logger = NewStderrLogger()
	}
	return &Renderer{
		world:  world,
		camera: camera,
		tracer: integrator.NewPathTracer(),
		config: config,
		logger: logger,
	}
}

// Render traces the whole frame and returns the resolved framebuffer.
// Scanlines are fanned out to workers; each row owns an independent
// random source derived from the base seed and its row index, so a fixed
// seed reproduces the image regardless of scheduling. Rows land in the
// framebuffer at their own offsets, so output order never depends on
// completion order.
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	fb := NewFramebuffer(r.config.Width, r.config.Height)

	rows := make(chan int, r.config.Height)
	remaining := int64(r.config.Height)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				r.renderRow(fb, j)
				r.logger.Printf("\rScanlines remaining: %d ", atomic.AddInt64(&remaining, -1))
			}
		}()
	}

	for j := 0; j < r.config.Height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	r.logger.Printf("\nDone.\n")

	return fb, RenderStats{
		Pixels:       r.config.Width * r.config.Height,
		TotalSamples: r.config.Width * r.config.Height * r.config.SamplesPerPixel,
		Workers:      numWorkers,
		Elapsed:      time.Since(start),
	}
}

// renderRow samples every pixel of row j (row 0 = top of image)
func (r *Renderer) renderRow(fb *Framebuffer, j int) {
	random := rand.New(rand.NewSource(r.rowSeed(j)))

	width := float64(r.config.Width - 1)
	height := float64(r.config.Height - 1)

	// Viewport t runs bottom-up while rows are stored top-down
	vj := float64(r.config.Height - 1 - j)

	for i := 0; i < r.config.Width; i++ {
		var sum core.Color
		for s := 0; s < r.config.SamplesPerPixel; s++ {
			u := (float64(i) + random.Float64()) / width
			v := (vj + random.Float64()) / height
			ray := r.camera.GetRay(u, v, random)
			sum = sum.Add(r.tracer.RayColor(ray, r.world, random, r.config.MaxDepth))
		}
		fb.Pixels[j*fb.Width+i] = core.ResolvePixel(sum, r.config.SamplesPerPixel)
	}
}

// rowSeed derives an independent, stable seed for one scanline's random
// stream
func (r *Renderer) rowSeed(row int) int64 {
	return r.config.Seed + int64(row)*0x9E3779B9
}
