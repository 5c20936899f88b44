package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Description string
	Camera      renderer.CameraConfig

	// Render defaults; the command line may override them
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int
	Background      core.Vec3

	Shapes []geometry.Hittable // Objects in the scene, emitters included
	Lights *geometry.List      // Emitters that are sampled directly
	World  geometry.Hittable   // Acceleration structure, set by Build
}

// Options carries inputs some scenes need
type Options struct {
	TexturePath string // Image used by the earth and final scenes
	Seed        int64  // Seed for randomly placed objects
}

func newScene(name string) *Scene {
	return &Scene{
		Name:            name,
		Description:     describe(name),
		AspectRatio:     16.0 / 9.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Background:      core.NewVec3(0.7, 0.8, 1.0),
		Camera: renderer.CameraConfig{
			LookFrom: core.NewVec3(13, 2, 3),
			LookAt:   core.NewVec3(0, 0, 0),
			VUp:      core.NewVec3(0, 1, 0),
			VFov:     20,
		},
		Lights: geometry.NewList(),
	}
}

// Add appends an object to the scene
func (s *Scene) Add(object geometry.Hittable) {
	s.Shapes = append(s.Shapes, object)
}

// AddLight appends an emitter to the scene and registers it for direct sampling.
// It panics on a moving sphere, whose light density is only defined at time 0.
func (s *Scene) AddLight(light geometry.Emitter) {
	if sphere, ok := light.(*geometry.Sphere); ok && sphere.IsMoving() {
		panic(fmt.Sprintf("scene %q: moving sphere cannot be a light", s.Name))
	}
	s.Add(light)
	s.Lights.Add(light)
}

// Build creates the BVH over every shape and returns it as the world
func (s *Scene) Build() geometry.Hittable {
	s.World = geometry.NewBVH(s.Shapes)
	return s.World
}

// LightSource returns the emitters to importance sample, or nil when there are none
func (s *Scene) LightSource() pdf.Light {
	if s.Lights == nil || s.Lights.Len() == 0 {
		return nil
	}
	return s.Lights
}

// ApplyDefaults copies the scene's render defaults into config
func (s *Scene) ApplyDefaults(config *renderer.Config) {
	config.AspectRatio = s.AspectRatio
	config.SamplesPerPixel = s.SamplesPerPixel
	config.MaxDepth = s.MaxDepth
	config.Background = s.Background
}

// PrimitiveCount returns the number of objects the BVH was built over
func (s *Scene) PrimitiveCount() int {
	return len(s.Shapes)
}
