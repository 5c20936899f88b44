package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// List is a collection of hittables tested linearly
type List struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewList creates a list from the given objects
func NewList(objects ...Hittable) *List {
	l := &List{bbox: core.EmptyAABB}
	for _, obj := range objects {
		l.Add(obj)
	}
	return l
}

// Add appends an object and grows the bounding box
func (l *List) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

// Len returns the number of objects in the list
func (l *List) Len() int {
	return len(l.Objects)
}

// Hit returns the closest hit among all objects
func (l *List) Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool {
	var tempRec material.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), &tempRec, sampler) {
			hitAnything = true
			closestSoFar = tempRec.T
			*rec = tempRec
		}
	}

	return hitAnything
}

// BoundingBox returns the union of all object boxes
func (l *List) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue averages the densities of the emitters in the list
func (l *List) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		if light, ok := object.(pdf.Light); ok {
			sum += weight * light.PDFValue(origin, direction)
		}
	}
	return sum
}

// Random picks an object uniformly and samples a direction toward it
func (l *List) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	object := l.Objects[core.SampleIndex(sampler, len(l.Objects))]
	if light, ok := object.(pdf.Light); ok {
		return light.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}
