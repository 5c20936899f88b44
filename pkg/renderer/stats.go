package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// RenderStats contains sample counts for a rendered region
type RenderStats struct {
	TotalPixels  int // Number of pixels rendered
	TotalSamples int // Number of radiance estimates taken
}

// PixelStats accumulates radiance estimates for a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator for final result
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Stats summarizes a complete render
type Stats struct {
	Scene           string
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Tiles           int // Tiles in the grid
	TilesRendered   int // Tiles completed before the render finished or was cancelled
	Checkpoints     int
	Render          RenderStats
	BVH             geometry.BVHStats
	Luminance       float64 // Average luminance of the final image
	Elapsed         time.Duration
}

// SamplesPerSecond returns the overall sampling throughput
func (s *Stats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Render.TotalSamples) / s.Elapsed.Seconds()
}

// Table renders the statistics as a text table
func (s *Stats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Stage", "Metric", "Value"})
	table.Append([]string{"Scene", "Name", s.Scene})
	table.Append([]string{"", "BVH nodes", fmt.Sprintf("%d", s.BVH.Nodes)})
	table.Append([]string{"", "BVH leaves", fmt.Sprintf("%d", s.BVH.Leaves)})
	table.Append([]string{"", "BVH depth", fmt.Sprintf("%d", s.BVH.MaxDepth)})
	table.Append([]string{" ", " ", " "})
	table.Append([]string{"Render", "Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"", "Samples/pixel", fmt.Sprintf("%d", s.SamplesPerPixel)})
	table.Append([]string{"", "Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"", "Workers", fmt.Sprintf("%d", s.Workers)})
	table.Append([]string{"", "Tiles", fmt.Sprintf("%d/%d", s.TilesRendered, s.Tiles)})
	table.Append([]string{"", "Checkpoints", fmt.Sprintf("%d", s.Checkpoints)})
	table.Append([]string{"", "Samples", fmt.Sprintf("%d", s.Render.TotalSamples)})
	table.Append([]string{"", "Samples/sec", fmt.Sprintf("%.0f", s.SamplesPerSecond())})
	table.Append([]string{"", "Avg luminance", fmt.Sprintf("%.4f", s.Luminance)})
	table.SetFooter([]string{"Total", " ", s.Elapsed.Round(time.Millisecond).String()})

	table.Render()
	return buf.String()
}

// CalculateAverageLuminance returns the mean perceptual luminance of an 8-bit image, in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixelCount := bounds.Dx() * bounds.Dy()
	if pixelCount == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += core.NewVec3(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255).Luminance()
		}
	}
	return total / float64(pixelCount)
}
