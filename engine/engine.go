package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/Carmen-Shannon/lumen/engine/config"
	"github.com/Carmen-Shannon/lumen/engine/profiler"
	"github.com/Carmen-Shannon/lumen/engine/renderer"
	"github.com/Carmen-Shannon/lumen/engine/scene"
	"github.com/Carmen-Shannon/lumen/engine/window"
	"go.uber.org/zap"
)

// ErrSurfaceLost wraps the fatal surface error that stopped the frame loop.
var ErrSurfaceLost = errors.New("render surface is no longer usable")

// engine implements the Engine interface.
type engine struct {
	log    *zap.Logger
	window window.Window
	scene  scene.Scene

	profiler         *profiler.Profiler
	profilingEnabled bool
	profileInterval  time.Duration

	reloads <-chan config.Reload

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	now              func() time.Time
	lastFrame        time.Time

	ctx      context.Context
	fatalErr error
}

// Engine is the main entry point for the engine.
// It runs the single-threaded frame loop on the window's thread: poll input, update, render.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene driven by the loop.
	//
	// Returns:
	//   - scene.Scene: the scene instance
	Scene() scene.Scene

	// EnableProfiler enables frame statistics logging.
	EnableProfiler()

	// DisableProfiler disables frame statistics logging.
	DisableProfiler()

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run runs the frame loop until the window closes, ctx is done, or the surface fails fatally.
	// It must be called from the thread that created the window.
	//
	// Parameters:
	//   - ctx: stops the loop when done
	//
	// Returns:
	//   - error: nil on a normal close, or an error wrapping ErrSurfaceLost
	Run(ctx context.Context) error

	// Quit asks the loop to stop after the current frame.
	Quit()
}

// NewEngine creates an Engine driving s in w and routes the window's input and resize events
// to the scene.
//
// Parameters:
//   - w: the window to poll
//   - s: the scene to update and render
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(w window.Window, s scene.Scene, options ...EngineBuilderOption) Engine {
	e := &engine{
		log:             zap.NewNop(),
		window:          w,
		scene:           s,
		profileInterval: time.Second,
		now:             time.Now,
	}

	for _, opt := range options {
		opt(e)
	}

	e.profiler = profiler.NewProfiler(e.log.Named("profiler"), e.profileInterval)

	w.SetResizeCallback(func(width, height int) {
		s.Resize(width, height)
	})
	w.SetKeyCallback(func(key common.Key, state common.KeyState) {
		s.ProcessKeyboard(key, state)
	})
	w.SetMouseButtonCallback(func(button common.MouseButton, state common.KeyState) {
		s.ProcessMouseButton(button, state)
	})
	w.SetMouseMoveCallback(func(dx, dy float64) {
		s.ProcessMouseMotion(dx, dy)
	})
	w.SetScrollCallback(func(delta common.ScrollDelta) {
		s.ProcessScroll(delta)
	})

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Run(ctx context.Context) error {
	e.ctx = ctx
	e.fatalErr = nil
	e.lastFrame = e.now()

	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
	e.window.SetUpdateCallback(nil)

	return e.fatalErr
}

func (e *engine) Quit() {
	e.window.RequestClose()
}

// frame runs one iteration of the loop. It is the window's update callback.
func (e *engine) frame() {
	if e.ctx != nil && e.ctx.Err() != nil {
		e.window.RequestClose()
		return
	}

	now := e.now()
	dt := now.Sub(e.lastFrame)
	e.lastFrame = now

	e.drainReloads()

	e.scene.Update(dt)
	if err := e.scene.Render(); err != nil {
		e.handleRenderError(err)
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// drainReloads applies every pending config reload without blocking.
func (e *engine) drainReloads() {
	for {
		select {
		case r, ok := <-e.reloads:
			if !ok {
				e.reloads = nil
				return
			}
			if r.Err != nil {
				e.log.Warn("config reload rejected", zap.Error(r.Err))
				continue
			}
			e.scene.ApplyTunables(r.Config.Tunables())
		default:
			return
		}
	}
}

func (e *engine) handleRenderError(err error) {
	switch kind := renderer.ClassifySurfaceError(err); kind {
	case renderer.SurfaceErrorOutdated:
		e.log.Debug("surface outdated, reconfiguring", zap.Error(err))
		e.scene.Resize(e.window.Width(), e.window.Height())
	case renderer.SurfaceErrorFatal:
		e.log.Error("surface lost", zap.Error(err))
		e.fatalErr = fmt.Errorf("%w: %w", ErrSurfaceLost, err)
		e.window.RequestClose()
	default:
		e.log.Warn("frame skipped", zap.Error(err))
	}
}
