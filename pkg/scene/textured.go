package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ErrNoTexture is returned when a scene needs an image texture and none was given
var ErrNoTexture = errors.New("no texture path given")

// NewEarthScene creates a single globe textured with the image at opts.TexturePath
func NewEarthScene(opts Options) (*Scene, error) {
	if opts.TexturePath == "" {
		return nil, ErrNoTexture
	}
	texture, err := loaders.LoadTexture(opts.TexturePath)
	if err != nil {
		return nil, fmt.Errorf("loading earth texture: %w", err)
	}

	s := newScene("earth")
	s.Camera.LookFrom = core.NewVec3(0, 0, 12)

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))
	return s, nil
}

// NewPerlinScene creates a large ground sphere and a small sphere sharing one marble texture
func NewPerlinScene(opts Options) (*Scene, error) {
	s := newScene("perlin")
	addPerlinSpheres(s, opts)
	return s, nil
}

// NewSimpleLightsScene lights the perlin spheres with an emissive quad and sphere against a black sky
func NewSimpleLightsScene(opts Options) (*Scene, error) {
	s := newScene("simple-lights")
	s.Background = core.Vec3{}
	s.Camera.LookFrom = core.NewVec3(26, 3, 6)
	s.Camera.LookAt = core.NewVec3(0, 2, 0)

	addPerlinSpheres(s, opts)

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	s.AddLight(geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light))
	s.AddLight(geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light))
	return s, nil
}

func addPerlinSpheres(s *Scene, opts Options) {
	noise := material.NewNoiseTexture(material.NewPerlin(core.NewSeededSampler(opts.Seed)), 4)
	surface := material.NewTexturedLambertian(noise)
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, surface))
	s.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, surface))
}
