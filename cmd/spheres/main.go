// Command spheres renders a procedurally generated sphere replicated across a 3D grid with GPU
// instancing, viewed by a camera orbiting the grid. It takes no flags; close the window or press
// Escape to exit.
package main

import (
	"os"

	"github.com/Carmen-Shannon/oxy-spheres/engine"
	"github.com/Carmen-Shannon/oxy-spheres/engine/config"
	"github.com/Carmen-Shannon/oxy-spheres/engine/logging"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer"
	"github.com/Carmen-Shannon/oxy-spheres/engine/scene"
	"github.com/Carmen-Shannon/oxy-spheres/engine/window"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 on a normal close, -1 if any part fails to initialize
// or a frame fails.
func run() int {
	cfg := config.Default()
	logger := logging.NewDefaultLogger("spheres", cfg.Debug)

	// ── Window ──────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		logger.Errorf("window: %v", err)
		return -1
	}
	defer win.Close()

	// ── Scene ───────────────────────────────────────────────────────
	sc, err := scene.New(cfg, scene.WithLogger(logger))
	if err != nil {
		logger.Errorf("scene: %v", err)
		return -1
	}

	// ── Renderer ────────────────────────────────────────────────────
	// Adapter, device and surface failures surface here; shader failures surface in Setup.
	r, err := renderer.NewRenderer(win, cfg, logger)
	if err != nil {
		logger.Errorf("renderer: %v", err)
		return -1
	}
	defer r.Release()

	if err := r.Setup(sc); err != nil {
		logger.Errorf("renderer setup: %v", err)
		return -1
	}

	// ── Engine ──────────────────────────────────────────────────────
	eng, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(sc),
		engine.WithRenderer(r),
		engine.WithLogger(logger),
		engine.WithProfiling(cfg.Profiling),
	)
	if err != nil {
		logger.Errorf("engine: %v", err)
		return -1
	}

	if err := eng.Run(); err != nil {
		logger.Errorf("run: %v", err)
		return -1
	}
	return 0
}
