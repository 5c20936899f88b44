package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) Lambertian {
	return Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) Lambertian {
	return Lambertian{Albedo: albedo}
}

func (Lambertian) isMaterial() {}

// Scatter hands the integrator a cosine distribution around the surface normal
func (l Lambertian) Scatter(rayIn core.Ray, rec *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: l.Albedo.Value(rec.U, rec.V, rec.Point),
		PDF:         pdf.NewCosine(rec.Normal),
	}, true
}

// Emitted returns black; diffuse surfaces do not glow
func (l Lambertian) Emitted(rayIn core.Ray, rec *HitRecord) core.Vec3 {
	return core.Vec3{}
}

// ScatteringPDF is cos(θ)/π for directions above the surface, zero below
func (l Lambertian) ScatteringPDF(rayIn core.Ray, rec *HitRecord, scattered core.Ray) float64 {
	cosTheta := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		return 0
	}
	return cosTheta / math.Pi
}
