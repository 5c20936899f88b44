package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PixelBuffer holds the linear radiance of every pixel, row 0 at the top
type PixelBuffer struct {
	width, height int
	pixels        []core.Vec3
}

// NewPixelBuffer creates a black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// SetTile copies a tile's row-major pixels into place
func (b *PixelBuffer) SetTile(bounds image.Rectangle, pixels []core.Vec3) {
	k := 0
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			b.pixels[j*b.width+i] = pixels[k]
			k++
		}
	}
}

// At returns the linear color of pixel (i, j)
func (b *PixelBuffer) At(i, j int) core.Vec3 {
	return b.pixels[j*b.width+i]
}

// ToImage converts the buffer to 8-bit sRGB-ish pixels using gamma 2
func (b *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for j := 0; j < b.height; j++ {
		for i := 0; i < b.width; i++ {
			img.SetRGBA(i, j, vec3ToColor(b.pixels[j*b.width+i]))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(colorVec.X),
		G: toByte(colorVec.Y),
		B: toByte(colorVec.Z),
		A: 255,
	}
}

// toByte applies gamma 2 and maps [0, 0.999] to [0, 255]
func toByte(linear float64) uint8 {
	if !(linear > 0) { // Negative or NaN
		return 0
	}
	gamma := math.Sqrt(linear)
	intensity := core.NewInterval(0, 0.999)
	return uint8(256 * intensity.Clamp(gamma))
}
