package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight_Emitted(t *testing.T) {
	emission := core.NewVec3(15, 15, 15)
	light := NewDiffuseLight(emission)

	front := &HitRecord{FrontFace: true}
	if got := light.Emitted(core.Ray{}, front); got != emission {
		t.Errorf("Expected front face emission %v, got %v", emission, got)
	}

	back := &HitRecord{FrontFace: false}
	if got := light.Emitted(core.Ray{}, back); got != (core.Vec3{}) {
		t.Errorf("Expected back face to be black, got %v", got)
	}
}

func TestDiffuseLight_DoesNotScatter(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(1, 1, 1))
	if _, ok := light.Scatter(core.Ray{}, &HitRecord{FrontFace: true}, core.NewSeededSampler(1)); ok {
		t.Error("Lights should not scatter")
	}
}

func TestNonEmissiveMaterialsAreBlack(t *testing.T) {
	rec := &HitRecord{FrontFace: true}
	materials := map[string]Material{
		"lambertian": NewLambertian(core.NewVec3(1, 1, 1)),
		"metal":      NewMetal(core.NewVec3(1, 1, 1), 0),
		"dielectric": NewDielectric(1.5),
		"isotropic":  NewIsotropic(core.NewVec3(1, 1, 1)),
	}
	for name, m := range materials {
		if got := m.Emitted(core.Ray{}, rec); got != (core.Vec3{}) {
			t.Errorf("%s: expected no emission, got %v", name, got)
		}
	}
}

func TestSetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 1, 0)
	rec := &HitRecord{}

	rec.SetFaceNormal(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), outward)
	if !rec.FrontFace || rec.Normal != outward {
		t.Errorf("Ray from outside: expected front face with outward normal, got %v %v", rec.FrontFace, rec.Normal)
	}

	rec.SetFaceNormal(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), outward)
	if rec.FrontFace || rec.Normal != outward.Negate() {
		t.Errorf("Ray from inside: expected back face with flipped normal, got %v %v", rec.FrontFace, rec.Normal)
	}
}
