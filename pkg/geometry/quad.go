package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Material material.Material // Material of the quad
	normal   core.Vec3         // Unit normal, along U × V
	d        float64           // Plane equation constant: normal · p = d
	w        core.Vec3         // n / (n · n) with n = U × V, for planar coordinates
	area     float64
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Both diagonals so the box covers all four corners
	diag1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diag2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: mat,
		normal:   normal,
		d:        normal.Dot(corner),
		w:        n.Divide(n.Dot(n)),
		area:     n.Length(),
		bbox:     diag1.Union(diag2),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	denominator := q.normal.Dot(ray.Direction)

	// Parallel to the plane (or a degenerate quad with zero normal)
	if math.Abs(denominator) < 1e-8 {
		return false
	}

	t := (q.d - q.normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return false
	}

	intersection := ray.At(t)
	planarHit := intersection.Subtract(q.Corner)
	alpha := q.w.Dot(planarHit.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planarHit))

	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return false
	}

	rec.T = t
	rec.Point = intersection
	rec.U = alpha
	rec.V = beta
	rec.Material = q.Material
	rec.SetFaceNormal(ray, q.normal)

	return true
}

// BoundingBox returns the padded box around the quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
