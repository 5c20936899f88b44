package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// turbulenceDepth is the number of octaves summed by NoiseTexture
const turbulenceDepth = 7

// NoiseTexture is a marble-like pattern driven by Perlin turbulence
type NoiseTexture struct {
	noise *Perlin
	scale float64
}

// NewNoiseTexture creates a noise texture; scale controls the stripe frequency
func NewNoiseTexture(noise *Perlin, scale float64) NoiseTexture {
	return NoiseTexture{noise: noise, scale: scale}
}

func (NoiseTexture) isTexture() {}

// Value returns a gray level in [0,1]: a sinusoid along Z phase-shifted by turbulence
func (n NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	gray := 0.5 * (1 + math.Sin(n.scale*p.Z+10*n.noise.Turbulence(p, turbulenceDepth)))
	return core.NewVec3(gray, gray, gray)
}
