package scene

import (
	"github.com/roydaw/go-raytracer/pkg/geometry"
	"github.com/roydaw/go-raytracer/pkg/renderer"
)

// Scene bundles the world geometry with the camera it is meant to be
// viewed through. Both are built once and read-only during rendering.
type Scene struct {
	World        geometry.List
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
}

// NewScene builds a scene from a world and camera configuration
func NewScene(world geometry.List, cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		World:        world,
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
	}
}
