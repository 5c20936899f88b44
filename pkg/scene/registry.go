package scene

import (
	"fmt"
	"strings"
)

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
}

type builder func(opts Options) (*Scene, error)

// Listing order of the built-in scenes
var infos = []Info{
	{"spheres", "Bouncing spheres on a checkered ground, with motion blur and defocus"},
	{"earth", "A globe wrapped in an image texture"},
	{"perlin", "Two spheres with a Perlin marble texture"},
	{"quads", "Five coloured quads facing the camera"},
	{"simple-lights", "Perlin spheres lit by an emissive quad"},
	{"cornell", "Cornell box with two rotated boxes"},
	{"cornell-smoke", "Cornell box filled with thin fog"},
	{"final", "Everything: box field, media, textures, motion blur, instanced sphere cluster"},
}

var builders = map[string]builder{
	"spheres":       NewSpheresScene,
	"earth":         NewEarthScene,
	"perlin":        NewPerlinScene,
	"quads":         NewQuadsScene,
	"simple-lights": NewSimpleLightsScene,
	"cornell":       NewCornellScene,
	"cornell-smoke": NewCornellSmokeScene,
	"final":         NewFinalScene,
}

// List returns every built-in scene in listing order
func List() []Info {
	return append([]Info(nil), infos...)
}

// Names returns the names of every built-in scene
func Names() []string {
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}

// describe returns the listed description of a scene, or "" for unknown names
func describe(name string) string {
	for _, info := range infos {
		if info.Name == name {
			return info.Description
		}
	}
	return ""
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	s, err := build(opts)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}
	return s, nil
}
