package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	boxesPerSide   = 20
	clusterSpheres = 1000
)

// NewFinalScene combines every feature of the renderer in one image.
// Without a texture path the globe gets a checker texture instead of the earth map.
func NewFinalScene(opts Options) (*Scene, error) {
	s := newScene("final")
	s.AspectRatio = 1
	s.SamplesPerPixel = 200
	s.Background = core.Vec3{}
	s.Camera.LookFrom = core.NewVec3(478, 278, -600)
	s.Camera.LookAt = core.NewVec3(278, 278, 0)
	s.Camera.VFov = 40

	sampler := core.NewSeededSampler(opts.Seed)

	// Ground of boxes with random heights, grouped under their own BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	var boxes []geometry.Hittable
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := core.SampleInterval(sampler, 1, 101)
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	s.Add(geometry.NewBVH(boxes))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	s.AddLight(geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265), light))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	s.Add(geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	s.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Glass shell with blue subsurface fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Add(boundary)
	s.Add(geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Faint haze over everything
	haze := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.Add(geometry.NewConstantMedium(haze, 0.0001, core.NewVec3(1, 1, 1)))

	globe, err := globeTexture(opts)
	if err != nil {
		return nil, err
	}
	s.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globe)))

	noise := material.NewNoiseTexture(material.NewPerlin(sampler), 0.2)
	s.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(noise)))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]geometry.Hittable, clusterSpheres)
	for i := range cluster {
		cluster[i] = geometry.NewSphere(sampler.Get3D().Multiply(165), 10, white)
	}
	s.Add(geometry.NewInstance(geometry.NewBVH(cluster), 15, core.NewVec3(-100, 270, 395)))

	return s, nil
}

func globeTexture(opts Options) (material.Texture, error) {
	if opts.TexturePath == "" {
		return material.NewChecker(10, core.NewVec3(0.1, 0.2, 0.5), core.NewVec3(0.9, 0.9, 0.9)), nil
	}
	texture, err := loaders.LoadTexture(opts.TexturePath)
	if err != nil {
		return nil, fmt.Errorf("loading globe texture: %w", err)
	}
	return texture, nil
}
