package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestReflectance(t *testing.T) {
	// Normal incidence from air into glass: ((1-1.5)/(1+1.5))^2 = 0.04
	if r := Reflectance(1.0, 1.0/1.5); math.Abs(r-0.04) > 1e-9 {
		t.Errorf("Expected 0.04 at normal incidence, got %v", r)
	}
	// Grazing incidence reflects everything
	if r := Reflectance(0.0, 1.0/1.5); math.Abs(r-1.0) > 1e-9 {
		t.Errorf("Expected 1.0 at grazing incidence, got %v", r)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Inside the glass, hitting the boundary at 60 degrees: sin = 0.866, 1.5*0.866 > 1
	dir := core.NewVec3(math.Sin(math.Pi/3), math.Cos(math.Pi/3), 0)
	rayIn := core.NewRay(core.Vec3{}, dir)
	rec := &HitRecord{
		Point:     core.NewVec3(0, 1, 0),
		Normal:    core.NewVec3(0, -1, 0), // Faces against the ray
		FrontFace: false,
	}

	for i := 0; i < 50; i++ {
		scatter, ok := glass.Scatter(rayIn, rec, sampler)
		if !ok {
			t.Fatal("Dielectric should always scatter")
		}
		if scatter.SkipPDFRay.Direction.Y >= 0 {
			t.Fatalf("Expected reflection back into the glass, got %v", scatter.SkipPDFRay.Direction)
		}
	}
}

func TestDielectric_NormalIncidenceMostlyRefracts(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	rec := &HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	refracted := 0
	const n = 10000
	for i := 0; i < n; i++ {
		scatter, _ := glass.Scatter(rayIn, rec, sampler)
		if scatter.Attenuation != core.NewVec3(1, 1, 1) {
			t.Fatalf("Expected white attenuation, got %v", scatter.Attenuation)
		}
		if scatter.SkipPDFRay.Direction.Y < 0 {
			refracted++
		}
	}

	// Schlick gives 4% reflectance at normal incidence
	ratio := float64(refracted) / n
	if math.Abs(ratio-0.96) > 0.01 {
		t.Errorf("Expected ~96%% refraction, got %.3f", ratio)
	}
}
