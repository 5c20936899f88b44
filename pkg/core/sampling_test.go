package core

import (
	"math"
	"testing"
)

func TestSampleOnUnitSphere_IsUnit(t *testing.T) {
	sampler := NewSeededSampler(1)
	for i := 0; i < 1000; i++ {
		d := SampleOnUnitSphere(sampler.Get2D())
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", d.Length())
		}
	}
}

func TestSampleCosineDirection_Hemisphere(t *testing.T) {
	sampler := NewSeededSampler(2)
	sumZ := 0.0
	n := 20000
	for i := 0; i < n; i++ {
		d := SampleCosineDirection(sampler.Get2D())
		if d.Z < 0 {
			t.Fatalf("Expected direction in +Z hemisphere, got %v", d)
		}
		if math.Abs(d.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", d.Length())
		}
		sumZ += d.Z
	}

	// E[cos θ] under a cosine-weighted distribution is 2/3
	mean := sumZ / float64(n)
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine ≈ 0.667, got %f", mean)
	}
}

func TestSamplePointInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(3)
	for i := 0; i < 1000; i++ {
		p := SamplePointInUnitDisk(sampler.Get2D())
		if p.Z != 0 || p.X*p.X+p.Y*p.Y > 1+1e-12 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}
}

func TestSampleIndex_Range(t *testing.T) {
	sampler := NewSeededSampler(4)
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[SampleIndex(sampler, 3)]++
	}
	for i, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("Index %d chosen %d times, expected roughly 1000", i, c)
		}
	}
}

func TestONB_Orthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 2, 3),
	}
	for _, n := range normals {
		b := NewONB(n)
		if math.Abs(b.U.Dot(b.V)) > 1e-9 || math.Abs(b.V.Dot(b.W)) > 1e-9 || math.Abs(b.U.Dot(b.W)) > 1e-9 {
			t.Errorf("Basis for %v is not orthogonal: %+v", n, b)
		}
		if !vecApprox(b.W, n.Normalize(), 1e-12) {
			t.Errorf("Expected W aligned with %v, got %v", n, b.W)
		}
		if !vecApprox(b.Transform(NewVec3(0, 0, 1)), b.W, 1e-12) {
			t.Errorf("Local +Z should map to W")
		}
	}
}

func TestSampleToSphere_InsideCone(t *testing.T) {
	sampler := NewSeededSampler(5)
	radius, distance := 1.0, 4.0
	cosThetaMax := math.Sqrt(1 - radius*radius/(distance*distance))
	for i := 0; i < 1000; i++ {
		d := SampleToSphere(radius, distance*distance, sampler.Get2D())
		if d.Z < cosThetaMax-1e-12 {
			t.Fatalf("Direction %v outside cone (cos %f < %f)", d, d.Z, cosThetaMax)
		}
	}
}
