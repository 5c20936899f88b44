package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// PDFValue converts the uniform area density of the quad to solid angle as seen from origin
func (q *Quad) PDFValue(origin, direction core.Vec3) float64 {
	if q.area <= 0 {
		return 0
	}

	var rec material.HitRecord
	if !q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), &rec, nil) {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * q.area)
}

// Random returns the direction from origin to a uniformly chosen point on the quad
func (q *Quad) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	p := q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))
	return p.Subtract(origin)
}
