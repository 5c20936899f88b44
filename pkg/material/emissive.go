package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emit Texture // Emitted radiance (can be solid or textured)
}

// NewDiffuseLight creates a new emissive material with a solid color
func NewDiffuseLight(emission core.Vec3) DiffuseLight {
	return DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emissive material driven by a texture
func NewTexturedDiffuseLight(emit Texture) DiffuseLight {
	return DiffuseLight{Emit: emit}
}

func (DiffuseLight) isMaterial() {}

// Scatter always absorbs: lights only emit
func (e DiffuseLight) Scatter(rayIn core.Ray, rec *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the texture value on the front face and black on the back
func (e DiffuseLight) Emitted(rayIn core.Ray, rec *HitRecord) core.Vec3 {
	if !rec.FrontFace {
		return core.Vec3{}
	}
	return e.Emit.Value(rec.U, rec.V, rec.Point)
}

// ScatteringPDF is zero since nothing scatters
func (e DiffuseLight) ScatteringPDF(rayIn core.Ray, rec *HitRecord, scattered core.Ray) float64 {
	return 0
}
