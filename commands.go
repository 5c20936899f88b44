package main

import (
	"bytes"
	"context"
	"os"
	"os/signal"

	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("pathtracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// renderOptions are the command line values that override scene defaults.
// Zero numeric values keep the default.
type renderOptions struct {
	Width           int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	TileSize        int
	Seed            int64
	OutputPath      string
	CheckpointPath  string
	CheckpointEvery int
}

func renderOptionsFromContext(ctx *cli.Context) renderOptions {
	return renderOptions{
		Width:           ctx.Int("width"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		Workers:         ctx.Int("workers"),
		TileSize:        ctx.Int("tile"),
		Seed:            ctx.Int64("seed"),
		OutputPath:      ctx.String("out"),
		CheckpointPath:  ctx.String("checkpoint"),
		CheckpointEvery: ctx.Int("checkpoint-every"),
	}
}

// renderConfig layers the scene defaults and then the command line over the renderer defaults
func renderConfig(s *scene.Scene, opts renderOptions, host hostInfo) renderer.Config {
	config := renderer.DefaultConfig()
	s.ApplyDefaults(&config)

	if opts.Width > 0 {
		config.Width = opts.Width
	}
	if opts.SamplesPerPixel > 0 {
		config.SamplesPerPixel = opts.SamplesPerPixel
	}
	if opts.MaxDepth > 0 {
		config.MaxDepth = opts.MaxDepth
	}
	config.Workers = opts.Workers
	if config.Workers <= 0 {
		config.Workers = host.LogicalCores
	}
	if opts.TileSize > 0 {
		config.TileSize = opts.TileSize
	}
	if opts.CheckpointEvery > 0 {
		config.CheckpointEvery = opts.CheckpointEvery
	}
	config.Seed = opts.Seed
	config.OutputPath = opts.OutputPath
	config.CheckpointPath = opts.CheckpointPath

	return config
}

// Render a built-in scene.
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	host := probeHost()
	logger.Infof("host: %s", host)

	opts := renderOptionsFromContext(ctx)
	s, err := scene.New(ctx.String("scene"), scene.Options{
		TexturePath: ctx.String("texture"),
		Seed:        opts.Seed,
	})
	if err != nil {
		return err
	}

	world := s.Build()
	config := renderConfig(s, opts, host)
	logger.Infof("scene %q: %d objects, %d lights", s.Name, s.PrimitiveCount(), s.Lights.Len())

	integ := integrator.NewPathTracer(config.MaxDepth, config.Background, s.LightSource())
	rt, err := renderer.NewRaytracer(config, s.Camera, world, integ, logger)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}

	stats.Scene = s.Name
	logger.Noticef("render statistics\n%s", stats.Table())
	return nil
}

// List the built-in scenes.
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Noticef("built-in scenes\n%s", sceneTable(scene.List()))
	return nil
}

func sceneTable(infos []scene.Info) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range infos {
		table.Append([]string{info.Name, info.Description})
	}
	table.Render()
	return buf.String()
}
