package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/log"
)

// Raytracer renders a world through a camera into an image using a tiled worker pool
type Raytracer struct {
	config     Config
	camera     *Camera
	world      geometry.Hittable
	integrator integrator.Integrator
	logger     log.Logger
}

// NewRaytracer validates config and creates a raytracer
func NewRaytracer(config Config, cameraConfig CameraConfig, world geometry.Hittable, integ integrator.Integrator, logger log.Logger) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	if config.Workers == 0 {
		config.Workers = DefaultConfig().Workers
	}

	return &Raytracer{
		config:     config,
		camera:     NewCamera(cameraConfig, config.Width, config.ImageHeight()),
		world:      world,
		integrator: integ,
		logger:     logger,
	}, nil
}

// Render traces every pixel and returns the final image. If ctx is cancelled the
// render stops between tiles and the error wraps ctx.Err(); no final image is written.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, *Stats, error) {
	width, height := rt.config.Width, rt.config.ImageHeight()
	tiles := NewTileGrid(width, height, rt.config.TileSize)

	stats := &Stats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		Workers:         rt.config.Workers,
		Tiles:           len(tiles),
	}
	if bvh, ok := rt.world.(*geometry.BVH); ok {
		stats.BVH = bvh.Stats()
	}

	rt.logger.Infof("rendering %dx%d, %d spp, depth %d, %d tiles on %d workers",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth, len(tiles), rt.config.Workers)

	start := time.Now()
	tileRenderer := NewTileRenderer(rt.camera, rt.world, rt.integrator, rt.config.SamplesPerPixel)
	pool := NewWorkerPool(tileRenderer, rt.config.Workers)
	pool.Start(ctx)

	go func() {
		defer pool.Stop()
		for _, tile := range tiles {
			if !pool.Submit(ctx, TileTask{Tile: tile, Seed: rt.config.Seed}) {
				return
			}
		}
	}()

	buffer := NewPixelBuffer(width, height)
	progressStep := max(1, len(tiles)/10)
	for result := range pool.Results() {
		buffer.SetTile(result.Tile.Bounds, result.Pixels)
		stats.Render.TotalPixels += result.Stats.TotalPixels
		stats.Render.TotalSamples += result.Stats.TotalSamples
		stats.TilesRendered++

		if stats.TilesRendered%progressStep == 0 {
			rt.logger.Infof("%d/%d tiles (%.0f%%)", stats.TilesRendered, len(tiles),
				100*float64(stats.TilesRendered)/float64(len(tiles)))
		}

		if rt.config.CheckpointPath != "" && stats.TilesRendered%rt.config.CheckpointEvery == 0 {
			if err := loaders.SaveImage(rt.config.CheckpointPath, buffer.ToImage()); err != nil {
				rt.logger.Warningf("checkpoint failed: %v", err)
			} else {
				stats.Checkpoints++
				rt.logger.Debugf("checkpoint written to %s", rt.config.CheckpointPath)
			}
		}
	}
	stats.Elapsed = time.Since(start)

	if err := ctx.Err(); err != nil && stats.TilesRendered < len(tiles) {
		return nil, stats, fmt.Errorf("render cancelled after %d of %d tiles: %w", stats.TilesRendered, len(tiles), err)
	}

	img := buffer.ToImage()
	stats.Luminance = CalculateAverageLuminance(img)
	if rt.config.OutputPath != "" {
		if err := loaders.SaveImage(rt.config.OutputPath, img); err != nil {
			return img, stats, fmt.Errorf("writing output image: %w", err)
		}
		rt.logger.Noticef("wrote %s", rt.config.OutputPath)
	}

	return img, stats, nil
}
