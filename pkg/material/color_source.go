package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials.
// The set of textures is closed: SolidColor, Checker, ImageTexture and NoiseTexture.
type Texture interface {
	// Value returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Value(u, v float64, p core.Vec3) core.Vec3

	isTexture()
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) SolidColor {
	return SolidColor{Color: color}
}

func (SolidColor) isTexture() {}

// Value returns the solid color regardless of UV or position
func (s SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two colors on a 3D grid of cubes
type Checker struct {
	invScale  float64
	Even, Odd core.Vec3
}

// NewChecker creates a checker pattern whose cubes have edge length scale
func NewChecker(scale float64, even, odd core.Vec3) Checker {
	return Checker{invScale: 1.0 / scale, Even: even, Odd: odd}
}

func (Checker) isTexture() {}

// Value picks a color from the parity of the cell containing p
func (c Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	xi := int64(math.Floor(c.invScale * p.X))
	yi := int64(math.Floor(c.invScale * p.Y))
	zi := int64(math.Floor(c.invScale * p.Z))

	if (xi+yi+zi)%2 == 0 {
		return c.Even
	}
	return c.Odd
}
