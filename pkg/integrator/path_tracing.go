package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// PathTracer implements unidirectional path tracing with light importance sampling
type PathTracer struct {
	MaxDepth   int       // Maximum number of bounces
	Background core.Vec3 // Radiance returned for rays that escape the scene
	Lights     pdf.Light // Emitters to sample directly; nil disables light sampling
}

// NewPathTracer creates a new path tracer
func NewPathTracer(maxDepth int, background core.Vec3, lights pdf.Light) *PathTracer {
	return &PathTracer{
		MaxDepth:   maxDepth,
		Background: background,
		Lights:     lights,
	}
}

// Sample traces a camera ray to MaxDepth bounces
func (pt *PathTracer) Sample(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return sanitize(pt.RayColor(ray, pt.MaxDepth, world, sampler))
}

// RayColor computes the radiance arriving along ray with at most depth further bounces
func (pt *PathTracer) RayColor(ray core.Ray, depth int, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// Start just off the surface to avoid self-intersection
	var rec material.HitRecord
	if !world.Hit(ray, core.NewInterval(0.001, math.Inf(1)), &rec, sampler) {
		return pt.Background
	}

	colorEmitted := rec.Material.Emitted(ray, &rec)

	scatter, didScatter := rec.Material.Scatter(ray, &rec, sampler)
	if !didScatter {
		return colorEmitted
	}

	if scatter.SkipPDF {
		return colorEmitted.Add(scatter.Attenuation.MultiplyVec(
			pt.RayColor(scatter.SkipPDFRay, depth-1, world, sampler)))
	}

	return colorEmitted.Add(pt.calculateScatteredColor(ray, &rec, scatter, depth, world, sampler))
}

// calculateScatteredColor importance samples a bounce direction from the material and light mixture
func (pt *PathTracer) calculateScatteredColor(ray core.Ray, rec *material.HitRecord, scatter material.ScatterRecord, depth int, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	mixture := pdf.NewMixture(scatter.PDF)
	if pt.Lights != nil {
		mixture = pdf.NewMixture(pdf.NewLights(pt.Lights, rec.Point), scatter.PDF)
	}

	direction := mixture.Generate(sampler)
	scattered := core.NewRayWithTime(rec.Point, direction, ray.Time)
	pdfValue := mixture.Value(direction)

	// A vanishing or non-finite density would blow up the estimate; drop this bounce
	if !(pdfValue >= core.MinPDF) || math.IsInf(pdfValue, 0) {
		return core.Vec3{}
	}

	scatteringPDF := rec.Material.ScatteringPDF(ray, rec, scattered)
	if scatteringPDF <= 0 {
		return core.Vec3{}
	}

	sampleColor := pt.RayColor(scattered, depth-1, world, sampler)
	return scatter.Attenuation.Multiply(scatteringPDF / pdfValue).MultiplyVec(sampleColor)
}
