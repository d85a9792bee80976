package geometry

import (
	"github.com/roydaw/go-raytracer/pkg/core"
	"github.com/roydaw/go-raytracer/pkg/material"
)

// List is an unordered collection of spheres searched by linear scan.
// Order never affects which hit is returned: the nearest valid hit wins.
type List []*Sphere

// Hit returns the closest hit across all spheres within (tMin, tMax).
// The effective tMax shrinks to the closest t found so far, so a single
// pass yields nearest-surface selection.
func (l List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestT := tMax

	for _, s := range l {
		if rec, ok := s.Hit(ray, tMin, closestT); ok {
			closest = rec
			closestT = rec.T
		}
	}

	return closest, closest != nil
}
