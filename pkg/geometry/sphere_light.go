package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// PDFValue returns the solid-angle density of direction from origin when sampling the
// cone subtended by the sphere. Light sampling has no ray time, so the center at time 0
// is used; only stationary spheres are valid lights.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	var rec material.HitRecord
	if !s.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), &rec, nil) {
		return 0
	}

	distanceSquared := s.center.Origin.Subtract(origin).LengthSquared()
	radiusSquared := s.Radius * s.Radius
	if distanceSquared <= radiusSquared {
		// Inside the sphere every direction hits it
		return 1 / (4 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1 - radiusSquared/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// Random returns a direction from origin toward a uniformly chosen point of the subtended cone
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.center.Origin.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return core.SampleOnUnitSphere(sampler.Get2D())
	}

	uvw := core.NewONB(direction)
	return uvw.Transform(core.SampleToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}
