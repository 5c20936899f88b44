package pdf

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// constantPDF reports the same density everywhere and always draws the same direction
type constantPDF struct {
	density   float64
	direction core.Vec3
}

func (constantPDF) isPDF() {}

func (c constantPDF) Value(direction core.Vec3) float64 { return c.density }

func (c constantPDF) Generate(sampler core.Sampler) core.Vec3 { return c.direction }

// mockLight is a light that only exists in the +Y direction
type mockLight struct {
	density float64
}

func (m mockLight) PDFValue(origin, direction core.Vec3) float64 {
	if direction.Y > 0 {
		return m.density
	}
	return 0
}

func (m mockLight) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

func TestMixture_EqualConstantsAverageToConstant(t *testing.T) {
	sampler := core.NewSeededSampler(1)
	for _, c := range []float64{0.1, 1.0 / math.Pi, 3.5} {
		mix := NewMixture(constantPDF{density: c}, constantPDF{density: c})
		for i := 0; i < 50; i++ {
			d := core.SampleOnUnitSphere(sampler.Get2D())
			if got := mix.Value(d); math.Abs(got-c) > 1e-12 {
				t.Fatalf("Expected mixture density %f, got %f", c, got)
			}
		}
	}
}

func TestMixture_ValueIsUnweightedMean(t *testing.T) {
	mix := NewMixture(constantPDF{density: 1}, constantPDF{density: 3})
	if got := mix.Value(core.NewVec3(0, 1, 0)); got != 2 {
		t.Errorf("Expected mean 2, got %f", got)
	}
	if mix.Len() != 2 {
		t.Errorf("Expected 2 components, got %d", mix.Len())
	}
}

func TestMixture_GenerateUsesBothComponents(t *testing.T) {
	up := core.NewVec3(0, 1, 0)
	down := core.NewVec3(0, -1, 0)
	mix := NewMixture(constantPDF{density: 1, direction: up}, constantPDF{density: 1, direction: down})

	sampler := core.NewSeededSampler(2)
	ups := 0
	n := 2000
	for i := 0; i < n; i++ {
		if mix.Generate(sampler) == up {
			ups++
		}
	}
	if ups < n*4/10 || ups > n*6/10 {
		t.Errorf("Expected roughly half the draws from each component, got %d/%d", ups, n)
	}
}

func TestCosine_ValueAndGenerate(t *testing.T) {
	normal := core.NewVec3(0, 0, 1)
	cos := NewCosine(normal)

	if got := cos.Value(normal); math.Abs(got-1/math.Pi) > 1e-12 {
		t.Errorf("Expected 1/π along the normal, got %f", got)
	}
	if got := cos.Value(normal.Negate()); got != 0 {
		t.Errorf("Expected 0 below the surface, got %f", got)
	}

	sampler := core.NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		d := cos.Generate(sampler)
		if d.Dot(normal) < 0 {
			t.Fatalf("Generated direction %v below the surface", d)
		}
		if v := cos.Value(d); v < 0 || math.IsNaN(v) {
			t.Fatalf("Invalid density %f for generated direction", v)
		}
	}
}

func TestCosine_IntegratesToOne(t *testing.T) {
	// Monte Carlo estimate of ∫ p(ω) dω with uniform sphere samples
	cos := NewCosine(core.NewVec3(1, 2, 3))
	sphere := NewSphere()
	sampler := core.NewSeededSampler(4)

	n := 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		d := sphere.Generate(sampler)
		sum += cos.Value(d) / sphere.Value(d)
	}
	if estimate := sum / float64(n); math.Abs(estimate-1) > 0.02 {
		t.Errorf("Expected cosine density to integrate to 1, got %f", estimate)
	}
}

func TestSphere_Value(t *testing.T) {
	s := NewSphere()
	if got := s.Value(core.NewVec3(1, 0, 0)); math.Abs(got-1/(4*math.Pi)) > 1e-15 {
		t.Errorf("Expected 1/(4π), got %f", got)
	}
}

func TestLights_DelegatesToLight(t *testing.T) {
	l := NewLights(mockLight{density: 5}, core.NewVec3(0, 0, 0))
	if got := l.Value(core.NewVec3(0, 1, 0)); got != 5 {
		t.Errorf("Expected density 5 toward light, got %f", got)
	}
	if got := l.Value(core.NewVec3(0, -1, 0)); got != 0 {
		t.Errorf("Expected density 0 away from light, got %f", got)
	}
	if got := l.Generate(core.NewSeededSampler(1)); got != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected direction toward light, got %v", got)
	}
}
