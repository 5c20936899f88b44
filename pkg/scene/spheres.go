package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSpheresScene creates a field of small random spheres around three large ones.
// Diffuse spheres bounce upward during the shutter interval.
func NewSpheresScene(opts Options) (*Scene, error) {
	s := newScene("spheres")
	s.Camera.DefocusAngle = 0.6
	s.Camera.FocusDistance = 10

	sampler := core.NewSeededSampler(opts.Seed)

	checker := material.NewChecker(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearance := core.NewVec3(4, 0.2, 0)
	for a := -5; a < 5; a++ {
		for b := -5; b < 5; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				center2 := center.Add(core.NewVec3(0, core.SampleInterval(sampler, 0, 0.5), 0))
				s.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					core.SampleInterval(sampler, 0.5, 1),
					core.SampleInterval(sampler, 0.5, 1),
					core.SampleInterval(sampler, 0.5, 1),
				)
				fuzz := core.SampleInterval(sampler, 0, 0.5)
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	s.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	return s, nil
}
