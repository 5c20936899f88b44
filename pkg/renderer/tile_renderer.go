package renderer

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	camera          *Camera
	world           geometry.Hittable
	integrator      integrator.Integrator
	samplesPerPixel int
}

// NewTileRenderer creates a new tile renderer. It only reads shared state and is safe
// to use from several goroutines.
func NewTileRenderer(camera *Camera, world geometry.Hittable, integ integrator.Integrator, samplesPerPixel int) *TileRenderer {
	return &TileRenderer{
		camera:          camera,
		world:           world,
		integrator:      integ,
		samplesPerPixel: samplesPerPixel,
	}
}

// RenderTile returns the averaged linear color of every pixel in the tile, row-major
func (tr *TileRenderer) RenderTile(tile Tile, sampler core.Sampler) ([]core.Vec3, RenderStats) {
	bounds := tile.Bounds
	pixels := make([]core.Vec3, 0, bounds.Dx()*bounds.Dy())
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			var ps PixelStats
			for s := 0; s < tr.samplesPerPixel; s++ {
				ray := tr.camera.GetRay(i, j, sampler)
				ps.AddSample(tr.integrator.Sample(ray, tr.world, sampler))
			}
			pixels = append(pixels, ps.GetColor())
			stats.TotalSamples += ps.SampleCount
		}
	}

	return pixels, stats
}
