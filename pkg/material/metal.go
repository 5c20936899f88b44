package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return Metal{Albedo: albedo, Fuzzness: fuzzness}
}

func (Metal) isMaterial() {}

// Scatter reflects rayIn about the normal, perturbed by the fuzz sphere
func (m Metal) Scatter(rayIn core.Ray, rec *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := rayIn.Direction.Reflect(rec.Normal).Normalize()
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.SampleOnUnitSphere(sampler.Get2D()).Multiply(m.Fuzzness))
	}

	// Fuzz pushed the ray below the surface: absorb it
	if reflected.Dot(rec.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		Attenuation: m.Albedo,
		SkipPDF:     true,
		SkipPDFRay:  core.NewRayWithTime(rec.Point, reflected, rayIn.Time),
	}, true
}

// Emitted returns black
func (m Metal) Emitted(rayIn core.Ray, rec *HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is zero: reflection is a delta distribution handled via SkipPDF
func (m Metal) ScatteringPDF(rayIn core.Ray, rec *HitRecord, scattered core.Ray) float64 {
	return 0
}
