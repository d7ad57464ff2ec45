// Package engine runs the single-threaded host loop: each iteration of the window's event loop
// steps the scene, executes the commands on the renderer and presents.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-spheres/engine/frame"
	"github.com/Carmen-Shannon/oxy-spheres/engine/logging"
	"github.com/Carmen-Shannon/oxy-spheres/engine/profiler"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer"
	"github.com/Carmen-Shannon/oxy-spheres/engine/window"
)

// ErrMissingComponent is returned by NewEngine when no window, scene or renderer was given.
var ErrMissingComponent = errors.New("engine: missing component")

// Scene produces the command list for a frame and follows framebuffer resizes.
type Scene interface {
	Step(elapsed time.Duration) []frame.Command
	Resize(width, height int)
}

// FrameRenderer executes command lists.
type FrameRenderer interface {
	Execute(commands []frame.Command) error
	Present()
	Resize(width, height int) error
}

// engine implements the Engine interface.
type engine struct {
	window   window.Window
	scene    Scene
	renderer FrameRenderer
	logger   logging.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	now      func() time.Time
	start    time.Time
	frames   uint64
	quitOnce sync.Once
}

// Engine drives the window event loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Frames returns the number of frames presented so far.
	Frames() uint64

	// Run loops until the window closes. Blocks the calling goroutine, which must be the one
	// that created the window.
	//
	// Returns:
	//   - error: the first fatal frame error, or nil on a normal close
	Run() error

	// Quit asks the loop to stop after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates an Engine from the provided options. A window, scene and renderer are required.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: ErrMissingComponent (wrapped) if a required option was not given
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		logger: logging.NewNopLogger(),
		now:    time.Now,
	}

	for _, opt := range options {
		opt(e)
	}

	switch {
	case e.window == nil:
		return nil, fmt.Errorf("%w: window", ErrMissingComponent)
	case e.scene == nil:
		return nil, fmt.Errorf("%w: scene", ErrMissingComponent)
	case e.renderer == nil:
		return nil, fmt.Errorf("%w: renderer", ErrMissingComponent)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(e.logger, profiler.DefaultInterval)
	}

	e.window.SetResizeCallback(func(width, height int) {
		e.scene.Resize(width, height)
		if err := e.renderer.Resize(width, height); err != nil {
			e.logger.Errorf("resize to %dx%d failed: %v", width, height, err)
		}
	})

	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() error {
	e.start = e.now()
	e.window.SetUpdateCallback(e.step)
	e.logger.Debugf("loop started")

	if err := e.window.ProcessMessages(); err != nil {
		return err
	}
	e.logger.Infof("window closed after %d frames", e.frames)
	return nil
}

// step runs one step, execute, present iteration. Commands that fail because the surface
// was not ready are skipped; renderer misuse is fatal.
func (e *engine) step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("frame %d panicked: %v", e.frames, r)
		}
	}()

	frameStart := e.now()
	commands := e.scene.Step(frameStart.Sub(e.start))

	if err := e.renderer.Execute(commands); err != nil {
		if errors.Is(err, renderer.ErrNotSetup) || errors.Is(err, renderer.ErrUnknownUniform) {
			return fmt.Errorf("frame %d: %w", e.frames, err)
		}
		e.logger.Debugf("frame %d skipped: %v", e.frames, err)
		return nil
	}
	e.renderer.Present()
	e.frames++

	if e.profilingEnabled {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(frameStart); remaining > 0 {
			time.Sleep(remaining)
		}
	}
	return nil
}

// Quit requests the window to close. Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.quitOnce.Do(e.window.RequestClose)
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

func (e *engine) Frames() uint64 {
	return e.frames
}
