package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Config contains render parameters. Scenes supply defaults; the command line overrides them.
type Config struct {
	Width           int       // Image width in pixels
	Height          int       // Image height in pixels; derived from AspectRatio when zero
	AspectRatio     float64   // Width / height, used only when Height is zero
	SamplesPerPixel int       // Number of estimates averaged per pixel
	MaxDepth        int       // Maximum ray bounce depth
	Background      core.Vec3 // Radiance of rays that escape the scene
	Workers         int       // Render goroutines; zero means one per CPU
	TileSize        int       // Edge length of square render tiles in pixels
	Seed            int64     // Base seed; each tile derives its own sampler from it
	OutputPath      string    // Final image, written once when the render completes
	CheckpointPath  string    // Partial image written during the render; empty disables checkpoints
	CheckpointEvery int       // Completed tiles between checkpoints
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Background:      core.NewVec3(0.7, 0.8, 1.0),
		Workers:         runtime.NumCPU(),
		TileSize:        32,
		Seed:            42,
		OutputPath:      "image.png",
		CheckpointEvery: 10,
	}
}

// ImageHeight returns Height, or the height implied by Width and AspectRatio (at least 1)
func (c Config) ImageHeight() int {
	if c.Height > 0 {
		return c.Height
	}
	if c.AspectRatio <= 0 {
		return c.Width
	}
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// Validate reports the first unusable parameter
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("invalid width %d: must be positive", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid height %d: must not be negative", c.Height)
	case c.Height == 0 && c.AspectRatio <= 0:
		return errors.New("either height or a positive aspect ratio is required")
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("invalid samples per pixel %d: must be positive", c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("invalid max depth %d: must be positive", c.MaxDepth)
	case c.TileSize <= 0:
		return fmt.Errorf("invalid tile size %d: must be positive", c.TileSize)
	case c.Workers < 0:
		return fmt.Errorf("invalid worker count %d: must not be negative", c.Workers)
	case c.CheckpointPath != "" && c.CheckpointEvery <= 0:
		return fmt.Errorf("invalid checkpoint interval %d: must be positive", c.CheckpointEvery)
	}
	return nil
}
