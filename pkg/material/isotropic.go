package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Isotropic is the phase function of participating media: every direction is equally likely
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates a new isotropic phase material with solid color
func NewIsotropic(albedo core.Vec3) Isotropic {
	return Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates a new isotropic phase material with texture
func NewTexturedIsotropic(albedo Texture) Isotropic {
	return Isotropic{Albedo: albedo}
}

func (Isotropic) isMaterial() {}

// Scatter hands the integrator a uniform sphere distribution
func (i Isotropic) Scatter(rayIn core.Ray, rec *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Albedo.Value(rec.U, rec.V, rec.Point),
		PDF:         pdf.NewSphere(),
	}, true
}

// Emitted returns black
func (i Isotropic) Emitted(rayIn core.Ray, rec *HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is the uniform sphere density 1/(4π)
func (i Isotropic) ScatteringPDF(rayIn core.Ray, rec *HitRecord, scattered core.Ray) float64 {
	return 1 / (4 * math.Pi)
}
