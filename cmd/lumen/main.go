// Command lumen renders a grid of textured cubes lit by an orbiting spotlight.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Carmen-Shannon/lumen/engine"
	"github.com/Carmen-Shannon/lumen/engine/config"
	"github.com/Carmen-Shannon/lumen/engine/logger"
	"github.com/Carmen-Shannon/lumen/engine/renderer"
	"github.com/Carmen-Shannon/lumen/engine/scene"
	"github.com/Carmen-Shannon/lumen/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

func main() {
	runtime.LockOSThread()

	flags := config.NewFlags(flag.CommandLine)
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "lumen: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	cfg, err := config.Load(flags.ConfigPath(), flags)
	if err != nil {
		return err
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.File)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	defer win.Close()

	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(renderer.ParsePresentMode(cfg.Renderer.PresentMode)),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.Renderer.MSAA)),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.ForceSoftware),
		renderer.WithClearColor(wgpu.Color{
			R: cfg.Renderer.ClearColor[0],
			G: cfg.Renderer.ClearColor[1],
			B: cfg.Renderer.ClearColor[2],
			A: 1,
		}),
	)
	defer r.Release()

	s, err := scene.NewScene(r, cfg, scene.WithLogger(logger.Named("scene")))
	if err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}
	defer s.Release()

	opts := []engine.EngineBuilderOption{
		engine.WithLogger(logger.Named("engine")),
		engine.WithProfiling(time.Duration(cfg.Renderer.ProfileInterval * float64(time.Second))),
	}
	if path := config.ResolvePath(flags.ConfigPath()); path != "" {
		reloads, err := config.Watch(ctx, path, flags)
		if err != nil {
			logger.Warn("config hot reload disabled", zap.String("path", path), zap.Error(err))
		} else {
			opts = append(opts, engine.WithConfigReloads(reloads))
		}
	}

	eng := engine.NewEngine(win, s, opts...)
	logger.Info("starting",
		zap.String("light", cfg.Light.Type),
		zap.Int("instances", cfg.Instances.PerRow*cfg.Instances.PerRow),
	)

	if err := eng.Run(ctx); err != nil {
		if errors.Is(err, engine.ErrSurfaceLost) {
			logger.Error("render loop stopped", zap.Error(err))
		}
		return err
	}
	logger.Info("shutdown")
	return nil
}
