package scene

import (
	"math/rand"

	"github.com/roydaw/go-raytracer/pkg/core"
	"github.com/roydaw/go-raytracer/pkg/geometry"
	"github.com/roydaw/go-raytracer/pkg/material"
	"github.com/roydaw/go-raytracer/pkg/renderer"
)

// DefaultCameraConfig returns the camera the random scene is composed
// for: a distant viewpoint with a mild telephoto and a touch of
// depth-of-field blur.
func DefaultCameraConfig(aspectRatio float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}
}

// NewRandomScene assembles the classic random sphere field: a large
// ground sphere, a 22x22 grid of jittered small spheres with randomized
// materials, and three fixed feature spheres. Material choice is
// weighted 80% diffuse, 15% metal, 5% glass.
func NewRandomScene(aspectRatio float64, random *rand.Rand) *Scene {
	var world geometry.List

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world = append(world, geometry.MustSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Small spheres cluster around the feature sphere at (4,1,0);
	// grid cells too close to its base are left empty.
	featurePoint := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(featurePoint).Length() <= 0.9 {
				continue
			}

			var mat *material.Material
			switch choice := random.Float64(); {
			case choice < 0.8:
				// Product of two random colors biases toward
				// darker, saturated hues
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				mat = material.NewLambertian(albedo)
			case choice < 0.95:
				albedo := core.RandomVec3Range(0.5, 1, random)
				fuzz := 0.5 * random.Float64()
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}

			world = append(world, geometry.MustSphere(center, 0.2, mat))
		}
	}

	glass := material.NewDielectric(1.5)
	diffuse := material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))
	metal := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)

	world = append(world,
		geometry.MustSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.MustSphere(core.NewVec3(-4, 1, 0), 1.0, diffuse),
		geometry.MustSphere(core.NewVec3(4, 1, 0), 1.0, metal),
	)

	return NewScene(world, DefaultCameraConfig(aspectRatio))
}
