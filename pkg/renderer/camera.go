package renderer

import (
	"math"
	"math/rand"

	"github.com/roydaw/go-raytracer/pkg/core"
)

// CameraConfig holds the parameters a camera is derived from
type CameraConfig struct {
	LookFrom      core.Vec3 // camera position
	LookAt        core.Vec3 // point the camera faces
	Up            core.Vec3 // world up direction
	VFov          float64   // vertical field of view in degrees
	AspectRatio   float64   // viewport width / height
	Aperture      float64   // lens diameter; 0 disables depth of field
	FocusDistance float64   // distance to the plane in perfect focus
}

// Camera generates rays for rendering using a thin-lens projection.
// Everything is derived once from the config and immutable afterwards,
// so a single camera is shared by all render workers.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera derives the orthonormal basis and viewport from the config
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * config.FocusDistance)
	vertical := v.Multiply(viewportHeight * config.FocusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray through viewport coordinates (s, t), where
// 0 <= s,t <= 1, with the origin jittered over the lens disk for depth
// of field.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction)
}
