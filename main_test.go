package main

import (
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestRenderConfigKeepsSceneDefaults(t *testing.T) {
	s, err := scene.New("cornell", scene.Options{})
	if err != nil {
		t.Fatalf("scene.New failed: %v", err)
	}

	config := renderConfig(s, renderOptions{Seed: 9, OutputPath: "out.png"}, hostInfo{LogicalCores: 6})

	if config.SamplesPerPixel != s.SamplesPerPixel {
		t.Errorf("Expected scene spp %d, got %d", s.SamplesPerPixel, config.SamplesPerPixel)
	}
	if config.MaxDepth != s.MaxDepth {
		t.Errorf("Expected scene depth %d, got %d", s.MaxDepth, config.MaxDepth)
	}
	if config.AspectRatio != 1 {
		t.Errorf("Expected square aspect ratio, got %f", config.AspectRatio)
	}
	if config.Workers != 6 {
		t.Errorf("Expected workers from host cores, got %d", config.Workers)
	}
	if config.Seed != 9 || config.OutputPath != "out.png" {
		t.Errorf("Expected seed and output to pass through, got %d %q", config.Seed, config.OutputPath)
	}
	if config.CheckpointPath != "" {
		t.Errorf("Expected no checkpoint path, got %q", config.CheckpointPath)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestRenderConfigOverrides(t *testing.T) {
	s, _ := scene.New("quads", scene.Options{})

	config := renderConfig(s, renderOptions{
		Width:           64,
		SamplesPerPixel: 3,
		MaxDepth:        4,
		Workers:         2,
		TileSize:        16,
		CheckpointPath:  "partial.png",
		CheckpointEvery: 5,
	}, hostInfo{LogicalCores: 32})

	if config.Width != 64 || config.ImageHeight() != 64 {
		t.Errorf("Expected 64x64, got %dx%d", config.Width, config.ImageHeight())
	}
	if config.SamplesPerPixel != 3 || config.MaxDepth != 4 {
		t.Errorf("Expected spp 3 depth 4, got %d %d", config.SamplesPerPixel, config.MaxDepth)
	}
	if config.Workers != 2 {
		t.Errorf("Expected explicit workers to win, got %d", config.Workers)
	}
	if config.TileSize != 16 || config.CheckpointEvery != 5 || config.CheckpointPath != "partial.png" {
		t.Errorf("Unexpected tile/checkpoint settings: %+v", config)
	}
}

func TestSceneTable(t *testing.T) {
	out := sceneTable(scene.List())
	for _, name := range scene.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("Expected table to list %q", name)
		}
	}
	if !strings.Contains(out, "Description") {
		t.Error("Expected table header")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n        uint64
		expected string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
		{16 * 1024 * 1024 * 1024, "16.0 GiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.expected {
			t.Errorf("formatBytes(%d) = %q, expected %q", tt.n, got, tt.expected)
		}
	}
}

func TestHostInfoString(t *testing.T) {
	h := hostInfo{CPUModel: "Test CPU", LogicalCores: 8, TotalMemory: 8 << 30, AvailableMemory: 4 << 30}
	expected := "Test CPU, 8 logical cores, 4.0 GiB free of 8.0 GiB"
	if got := h.String(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
