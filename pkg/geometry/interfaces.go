package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Hittable is anything a ray can intersect: primitives, lists, instances, media and BVHs.
// Hit fills rec with the closest intersection whose t lies in rayT and reports whether one exists.
// The sampler is only consumed by volumes; surfaces ignore it and accept nil.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval, rec *material.HitRecord, sampler core.Sampler) bool
	BoundingBox() core.AABB
}

// Emitter is a hittable that can also be importance sampled as a light
type Emitter interface {
	Hittable
	pdf.Light
}
