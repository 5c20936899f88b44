package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boxSize is the edge length of the Cornell box
const boxSize = 555.0

// NewCornellScene creates the classic Cornell box with a ceiling light and two rotated boxes
func NewCornellScene(opts Options) (*Scene, error) {
	s := newCornellBox("cornell",
		core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105))
	return s, nil
}

// NewCornellSmokeScene fills the Cornell box and its surroundings with a thin white fog
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	s := newCornellBox("cornell-smoke",
		core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305))

	fogBoundary := geometry.NewSphere(core.NewVec3(265, 265, 295), 5000, material.NewLambertian(core.NewVec3(0, 1, 1)))
	s.Add(geometry.NewConstantMedium(fogBoundary, 0.001, core.NewVec3(1, 1, 1)))
	return s, nil
}

// newCornellBox builds the walls, the two boxes and a ceiling light spanning corner, u and v.
// The light's u x v must point down into the box.
func newCornellBox(name string, lightCorner, lightU, lightV core.Vec3) *Scene {
	s := newScene(name)
	s.AspectRatio = 1
	s.SamplesPerPixel = 200
	s.Background = core.Vec3{}
	s.Camera.LookFrom = core.NewVec3(278, 278, -800)
	s.Camera.LookAt = core.NewVec3(278, 278, 0)
	s.Camera.VFov = 40

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	s.Add(geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green))
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red))
	s.AddLight(geometry.NewQuad(lightCorner, lightU, lightV, light))
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white))
	s.Add(geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white))
	s.Add(geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white))

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	s.Add(geometry.NewInstance(tall, 15, core.NewVec3(265, 0, 295)))

	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	s.Add(geometry.NewInstance(short, -18, core.NewVec3(130, 0, 65)))

	return s
}
