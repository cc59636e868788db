package engine

import (
	"time"

	"github.com/Carmen-Shannon/lumen/engine/config"
	"go.uber.org/zap"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// WithLogger sets the logger for loop errors and profiler output.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(log *zap.Logger) EngineBuilderOption {
	return func(e *engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithProfiling enables frame statistics logged every interval. A non-positive interval
// disables profiling.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(interval time.Duration) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = interval > 0
		if interval > 0 {
			e.profileInterval = interval
		}
	}
}

// WithRenderFrameLimit caps the frame rate. Values <= 0 leave the loop uncapped.
//
// Parameters:
//   - fps: maximum frames per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetRenderFrameLimit(fps)
	}
}

// WithConfigReloads applies the tunables of every valid reload to the scene at the start of a frame.
//
// Parameters:
//   - reloads: the channel returned by config.Watch
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfigReloads(reloads <-chan config.Reload) EngineBuilderOption {
	return func(e *engine) {
		e.reloads = reloads
	}
}
