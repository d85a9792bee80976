package scene

import (
	"github.com/roydaw/go-raytracer/pkg/core"
	"github.com/roydaw/go-raytracer/pkg/geometry"
	"github.com/roydaw/go-raytracer/pkg/material"
	"github.com/roydaw/go-raytracer/pkg/renderer"
)

// NewSingleSphereScene builds a minimal scene: one mid-gray diffuse
// sphere directly ahead of a pinhole camera at the origin. Renders of it
// at low sample counts are hand-checkable, which makes it the scene of
// choice for deterministic tests and quick smoke renders.
func NewSingleSphereScene(aspectRatio float64) *Scene {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world := geometry.List{
		geometry.MustSphere(core.NewVec3(0, 0, -1), 0.5, gray),
	}

	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90.0,
		AspectRatio:   aspectRatio,
		Aperture:      0.0,
		FocusDistance: 1.0,
	}

	return NewScene(world, cameraConfig)
}
