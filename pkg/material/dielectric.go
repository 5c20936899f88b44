package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) Dielectric {
	return Dielectric{RefractiveIndex: refractiveIndex}
}

func (Dielectric) isMaterial() {}

// Scatter implements the Material interface for dielectric scattering
func (d Dielectric) Scatter(rayIn core.Ray, rec *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	// Determine if we're entering or exiting the material
	refractionRatio := d.RefractiveIndex
	if rec.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = unitDirection.Reflect(rec.Normal)
	} else {
		direction = unitDirection.Refract(rec.Normal, refractionRatio)
	}

	// Clear glass absorbs nothing
	return ScatterRecord{
		Attenuation: core.NewVec3(1, 1, 1),
		SkipPDF:     true,
		SkipPDFRay:  core.NewRayWithTime(rec.Point, direction, rayIn.Time),
	}, true
}

// Emitted returns black
func (d Dielectric) Emitted(rayIn core.Ray, rec *HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is zero: reflection and refraction are delta distributions
func (d Dielectric) ScatteringPDF(rayIn core.Ray, rec *HitRecord, scattered core.Ray) float64 {
	return 0
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
