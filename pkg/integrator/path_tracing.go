package integrator

import (
	"math"
	"math/rand"

	"github.com/roydaw/go-raytracer/pkg/core"
	"github.com/roydaw/go-raytracer/pkg/geometry"
)

// Bias the hit interval away from t=0 so a scattered ray never re-hits
// the surface it just left (shadow acne).
const tMinHit = 0.001

// PathTracer computes radiance for camera rays by tracing scattered
// bounces against an immutable sphere list until the ray is absorbed,
// escapes to the background, or exhausts its depth budget.
type PathTracer struct {
	BottomColor core.Color // background at the horizon
	TopColor    core.Color // background overhead
}

// NewPathTracer creates a path tracer with the white-to-sky-blue
// background gradient.
func NewPathTracer() *PathTracer {
	return &PathTracer{
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
	}
}

// RayColor returns the radiance arriving along ray. Recursion is
// unrolled into a loop carrying the running attenuation product, so deep
// paths cost no stack.
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.List, random *rand.Rand, depth int) core.Color {
	throughput := core.NewVec3(1.0, 1.0, 1.0)

	for ; depth > 0; depth-- {
		hit, ok := world.Hit(ray, tMinHit, math.Inf(1))
		if !ok {
			return throughput.MultiplyVec(pt.background(ray))
		}

		scatter, scattered := hit.Material.Scatter(ray, *hit, random)
		if !scattered {
			// Absorbed
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Depth exhausted: no more light is gathered
	return core.Vec3{}
}

// background returns the vertical gradient for a ray that escaped the
// scene
func (pt *PathTracer) background(ray core.Ray) core.Color {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return pt.BottomColor.Multiply(1.0 - t).Add(pt.TopColor.Multiply(t))
}
