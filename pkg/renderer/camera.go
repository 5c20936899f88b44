package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig describes a thin-lens camera with a shutter open over [0, 1)
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is aimed at
	VUp           core.Vec3 // Camera-relative up direction
	VFov          float64   // Vertical field of view in degrees
	DefocusAngle  float64   // Variation angle of rays through each pixel, degrees (0 = pinhole)
	FocusDistance float64   // Distance from LookFrom to the plane of perfect focus
}

// Camera generates rays for pixel coordinates
type Camera struct {
	width, height int
	center        core.Vec3
	pixel00       core.Vec3 // Center of pixel (0, 0), the top-left pixel
	pixelDeltaU   core.Vec3 // Offset to the pixel to the right
	pixelDeltaV   core.Vec3 // Offset to the pixel below
	defocusAngle  float64
	defocusDiskU  core.Vec3
	defocusDiskV  core.Vec3
	w             core.Vec3 // Points from LookAt back toward the camera
}

// NewCamera creates a camera for an image of the given size
func NewCamera(config CameraConfig, width, height int) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edges: u runs right, v runs down the image
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(-viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	upperLeft := config.LookFrom.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(core.DegreesToRadians(config.DefocusAngle/2))

	return &Camera{
		width:        width,
		height:       height,
		center:       config.LookFrom,
		pixel00:      upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5)),
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusAngle: config.DefocusAngle,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		w:            w,
	}
}

// GetRay returns a ray through a random point of pixel (i, j), starting on the defocus disk,
// at a random time in the shutter interval. Row j=0 is the top of the image.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.center
	if c.defocusAngle > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = c.center.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRayWithTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}
