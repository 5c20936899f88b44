package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Sample returns one radiance estimate for a camera ray. The result is always finite.
	Sample(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}

// sanitize replaces NaN components with zero so one bad path cannot poison a pixel
func sanitize(c core.Vec3) core.Vec3 {
	if math.IsNaN(c.X) {
		c.X = 0
	}
	if math.IsNaN(c.Y) {
		c.Y = 0
	}
	if math.IsNaN(c.Z) {
		c.Z = 0
	}
	return c
}
