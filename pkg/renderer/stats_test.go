package renderer

import (
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	// Red, green and blue weights sum to one, so the average is 1/4
	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	avgLum := CalculateAverageLuminance(img)
	if avgLum < 0.9999 || avgLum > 1.0001 {
		t.Errorf("Expected average luminosity 1, got %f", avgLum)
	}
}

func TestStatsTable(t *testing.T) {
	stats := &Stats{
		Scene:           "cornell",
		Width:           600,
		Height:          600,
		SamplesPerPixel: 64,
		MaxDepth:        50,
		Workers:         8,
		Tiles:           100,
		TilesRendered:   100,
		Render:          RenderStats{TotalPixels: 360000, TotalSamples: 23040000},
		Elapsed:         2 * time.Second,
	}

	if sps := stats.SamplesPerSecond(); sps != 11520000 {
		t.Errorf("Expected 11520000 samples/sec, got %v", sps)
	}

	table := stats.Table()
	for _, want := range []string{"cornell", "600x600", "100/100", "Samples/sec", "2s"} {
		if !strings.Contains(table, want) {
			t.Errorf("Table missing %q:\n%s", want, table)
		}
	}
}

func TestVec3ToColor(t *testing.T) {
	tests := []struct {
		name     string
		in       core.Vec3
		expected color.RGBA
	}{
		{"black", core.NewVec3(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"quarter is half after gamma", core.NewVec3(0.25, 0.25, 0.25), color.RGBA{128, 128, 128, 255}},
		{"overexposed clamps", core.NewVec3(4, 1, 100), color.RGBA{255, 255, 255, 255}},
		{"negative clamps", core.NewVec3(-1, 0, 0), color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vec3ToColor(tt.in); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
