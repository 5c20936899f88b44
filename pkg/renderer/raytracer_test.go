package renderer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

// testWorld is a lit diffuse sphere on a ground plane
func testWorld() (*geometry.BVH, *geometry.List) {
	light := geometry.NewQuad(core.NewVec3(-1, 3, -3), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2),
		material.NewDiffuseLight(core.NewVec3(8, 8, 8)))
	world := geometry.NewBVH([]geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -2), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		light,
	})
	return world, geometry.NewList(light)
}

func testConfig() Config {
	config := DefaultConfig()
	config.Width = 24
	config.Height = 16
	config.SamplesPerPixel = 4
	config.MaxDepth = 8
	config.TileSize = 8
	config.OutputPath = ""
	return config
}

func newTestRaytracer(t *testing.T, config Config) *Raytracer {
	t.Helper()
	world, lights := testWorld()
	pt := integrator.NewPathTracer(config.MaxDepth, config.Background, lights)
	rt, err := NewRaytracer(config, testCameraConfig(), world, pt, log.New("test"))
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	return rt
}

func TestRenderDeterministicAcrossWorkerCounts(t *testing.T) {
	var images [][]byte
	for _, workers := range []int{1, 3, 8} {
		config := testConfig()
		config.Workers = workers

		img, stats, err := newTestRaytracer(t, config).Render(context.Background())
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		if stats.TilesRendered != stats.Tiles || stats.Tiles != 6 {
			t.Errorf("Expected all 6 tiles rendered, got %d/%d", stats.TilesRendered, stats.Tiles)
		}
		if stats.Render.TotalSamples != 24*16*4 {
			t.Errorf("Expected %d samples, got %d", 24*16*4, stats.Render.TotalSamples)
		}
		images = append(images, img.Pix)
	}

	for i := 1; i < len(images); i++ {
		if !bytes.Equal(images[0], images[i]) {
			t.Errorf("Image %d differs from the single-worker render", i)
		}
	}
}

func TestRenderSeedChangesImage(t *testing.T) {
	a := testConfig()
	b := testConfig()
	b.Seed = a.Seed + 1

	imgA, _, errA := newTestRaytracer(t, a).Render(context.Background())
	imgB, _, errB := newTestRaytracer(t, b).Render(context.Background())
	if errA != nil || errB != nil {
		t.Fatalf("Render failed: %v %v", errA, errB)
	}
	if bytes.Equal(imgA.Pix, imgB.Pix) {
		t.Error("Different seeds should produce different noise")
	}
}

func TestRenderWritesOutputAndCheckpoints(t *testing.T) {
	dir := t.TempDir()
	config := testConfig()
	config.OutputPath = filepath.Join(dir, "image.png")
	config.CheckpointPath = filepath.Join(dir, "raw_image.png")
	config.CheckpointEvery = 2

	_, stats, err := newTestRaytracer(t, config).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if stats.Checkpoints != 3 {
		t.Errorf("Expected 3 checkpoints for 6 tiles, got %d", stats.Checkpoints)
	}
	for _, path := range []string{config.OutputPath, config.CheckpointPath} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("Expected %s to be written: %v", path, err)
		}
	}
}

func TestRenderCancelled(t *testing.T) {
	dir := t.TempDir()
	config := testConfig()
	config.OutputPath = filepath.Join(dir, "image.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, stats, err := newTestRaytracer(t, config).Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Cancelled render should not return an image")
	}
	if stats.TilesRendered >= stats.Tiles {
		t.Errorf("Expected an incomplete render, got %d/%d tiles", stats.TilesRendered, stats.Tiles)
	}
	if _, err := os.Stat(config.OutputPath); !os.IsNotExist(err) {
		t.Error("Cancelled render should not write the output image")
	}
}

func TestNewRaytracerRejectsInvalidConfig(t *testing.T) {
	config := testConfig()
	config.SamplesPerPixel = 0
	world, _ := testWorld()
	_, err := NewRaytracer(config, testCameraConfig(), world, integrator.NewPathTracer(1, core.Vec3{}, nil), log.New("test"))
	if err == nil {
		t.Error("Expected error for zero samples per pixel")
	}
}
