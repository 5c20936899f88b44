package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// emptyImageColor is returned for images without pixel data
var emptyImageColor = core.NewVec3(1, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, row 0 is the top of the image: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) ImageTexture {
	return ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

func (ImageTexture) isTexture() {}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering
func (t ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.Height <= 0 || t.Width <= 0 {
		return emptyImageColor
	}

	unit := core.NewInterval(0, 1)
	u = unit.Clamp(u)
	v = 1.0 - unit.Clamp(v) // Flip V: image row 0 is the top

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// Clamp to image bounds
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
