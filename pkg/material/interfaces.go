package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Material describes how a surface (or volume) scatters and emits light.
// The set of materials is closed: Lambertian, Metal, Dielectric, DiffuseLight and Isotropic.
type Material interface {
	// Scatter returns how rayIn continues after hitting rec, or false if it is absorbed
	Scatter(rayIn core.Ray, rec *HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// Emitted returns the radiance emitted at the hit point toward rayIn's origin
	Emitted(rayIn core.Ray, rec *HitRecord) core.Vec3

	// ScatteringPDF returns the material's own density for scattering into scattered
	ScatteringPDF(rayIn core.Ray, rec *HitRecord, scattered core.Ray) float64

	isMaterial()
}

// ScatterRecord contains the result of material scattering
type ScatterRecord struct {
	Attenuation core.Vec3 // Color attenuation
	PDF         pdf.PDF   // Preferred sampling distribution (nil when SkipPDF is set)
	SkipPDF     bool      // Follow SkipPDFRay directly instead of importance sampling
	SkipPDFRay  core.Ray  // Deterministic continuation for specular materials
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
