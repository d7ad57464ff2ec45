package engine

import (
	"github.com/Carmen-Shannon/oxy-spheres/engine/logging"
	"github.com/Carmen-Shannon/oxy-spheres/engine/profiler"
	"github.com/Carmen-Shannon/oxy-spheres/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default one-second profiler.
//
// Parameters:
//   - p: the profiler to tick each frame when profiling is enabled
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window whose event loop drives the engine.
//
// Parameters:
//   - w: an opened Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene sets the scene stepped each frame.
//
// Parameters:
//   - s: the Scene to step
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s Scene) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithRenderer sets the renderer that executes each frame's commands.
//
// Parameters:
//   - r: a renderer that has been set up with the scene
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r FrameRenderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithLogger sets the logger used for loop diagnostics and the default profiler.
//
// Parameters:
//   - l: the logger, nil for none
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(l logging.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.logger = logging.OrNop(l)
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetRenderFrameLimit(fps)
	}
}
