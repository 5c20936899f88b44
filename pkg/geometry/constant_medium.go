package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ConstantMedium is a homogeneous participating medium filling a boundary shape.
// The boundary must be convex: a ray enters and leaves it at most once.
type ConstantMedium struct {
	boundary      Hittable
	negInvDensity float64
	phase         material.Material
}

// NewConstantMedium fills boundary with a medium of the given density and albedo
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium fills boundary with a medium whose albedo comes from a texture
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	negInvDensity := math.Inf(-1) // Non-positive density never scatters
	if density > 0 {
		negInvDensity = -1 / density
	}
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: negInvDensity,
		phase:         material.NewTexturedIsotropic(albedo),
	}
}

// Hit samples a free-flight distance inside the boundary chord
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	var rec1, rec2 material.HitRecord

	if !m.boundary.Hit(ray, core.UniverseInterval, &rec1, sampler) {
		return false
	}
	if !m.boundary.Hit(ray, core.NewInterval(rec1.T+0.0001, math.Inf(1)), &rec2, sampler) {
		return false
	}

	if rec1.T < rayT.Min {
		rec1.T = rayT.Min
	}
	if rec2.T > rayT.Max {
		rec2.T = rayT.Max
	}
	if rec1.T >= rec2.T {
		return false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		return false
	}

	rec.T = rec1.T + hitDistance/rayLength
	rec.Point = ray.At(rec.T)
	rec.Normal = core.NewVec3(1, 0, 0) // arbitrary
	rec.FrontFace = true               // also arbitrary
	rec.U, rec.V = 0, 0
	rec.Material = m.phase

	return true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.boundary.BoundingBox()
}
