// Package pdf provides the direction-sampling distributions used for importance sampling.
//
// Every distribution can draw a direction and report the solid-angle density of any
// direction. The set of distributions is closed: Sphere, Cosine, Lights and Mixture.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF is a direction-sampling distribution
type PDF interface {
	// Value returns the solid-angle density of direction
	Value(direction core.Vec3) float64
	// Generate draws a direction from the distribution
	Generate(sampler core.Sampler) core.Vec3

	isPDF()
}

// Light is an emitter that can be importance-sampled from a point in the scene
type Light interface {
	// PDFValue returns the solid-angle density of sampling direction from origin toward the light
	PDFValue(origin, direction core.Vec3) float64
	// Random returns a vector from origin to a random point on the light
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// Sphere samples directions uniformly over the unit sphere
type Sphere struct{}

// NewSphere creates a uniform sphere distribution
func NewSphere() Sphere {
	return Sphere{}
}

func (Sphere) isPDF() {}

// Value returns 1/(4π) for every direction
func (Sphere) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniform unit direction
func (Sphere) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// Cosine samples a cosine-weighted hemisphere about a surface normal
type Cosine struct {
	uvw core.ONB
}

// NewCosine creates a cosine distribution about normal w
func NewCosine(w core.Vec3) Cosine {
	return Cosine{uvw: core.NewONB(w)}
}

func (Cosine) isPDF() {}

// Value returns max(0, cos θ)/π
func (c Cosine) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(c.uvw.W)
	return math.Max(0, cosine/math.Pi)
}

// Generate draws a direction in the hemisphere around the normal
func (c Cosine) Generate(sampler core.Sampler) core.Vec3 {
	return c.uvw.Transform(core.SampleCosineDirection(sampler.Get2D()))
}

// Lights samples directions from origin toward a set of emitters
type Lights struct {
	lights Light
	origin core.Vec3
}

// NewLights creates a distribution toward lights as seen from origin
func NewLights(lights Light, origin core.Vec3) Lights {
	return Lights{lights: lights, origin: origin}
}

func (Lights) isPDF() {}

// Value returns the solid-angle density toward the lights, 0 when direction misses them
func (l Lights) Value(direction core.Vec3) float64 {
	return l.lights.PDFValue(l.origin, direction)
}

// Generate returns a vector from origin to a random point on a light
func (l Lights) Generate(sampler core.Sampler) core.Vec3 {
	return l.lights.Random(l.origin, sampler)
}

// Mixture combines component distributions with equal weights
type Mixture struct {
	components []PDF
}

// NewMixture creates an equal-weight mixture of the given distributions
func NewMixture(components ...PDF) Mixture {
	return Mixture{components: components}
}

func (Mixture) isPDF() {}

// Len returns the number of components
func (m Mixture) Len() int {
	return len(m.components)
}

// Value returns the arithmetic mean of the component densities
func (m Mixture) Value(direction core.Vec3) float64 {
	if len(m.components) == 0 {
		return 0
	}
	sum := 0.0
	for _, component := range m.components {
		sum += component.Value(direction)
	}
	return sum / float64(len(m.components))
}

// Generate picks a component uniformly and delegates to it
func (m Mixture) Generate(sampler core.Sampler) core.Vec3 {
	return m.components[core.SampleIndex(sampler, len(m.components))].Generate(sampler)
}
