package main

import (
	"os"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/urfave/cli"
)

func main() {
	defaults := renderer.DefaultConfig()

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render built-in scenes using Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image",
			Description: `
Build the named scene, trace it tile by tile on a pool of workers and write
the result. Zero-valued size, sample and depth flags keep the scene's defaults.

The output format follows the file extension: .bmp, .tif/.tiff, otherwise png.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "spheres",
					Usage: "name of the scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels; height follows the scene's aspect ratio",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum bounces per path",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "render goroutines; zero uses every logical core",
				},
				cli.IntFlag{
					Name:  "tile",
					Value: defaults.TileSize,
					Usage: "tile edge length in pixels",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaults.Seed,
					Usage: "random seed for scene layout and sampling",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: defaults.OutputPath,
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "checkpoint",
					Usage: "image filename for partial results written during the render",
				},
				cli.IntFlag{
					Name:  "checkpoint-every",
					Value: defaults.CheckpointEvery,
					Usage: "completed tiles between checkpoints",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "image used by the earth scene (required) and the final scene",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: listScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
