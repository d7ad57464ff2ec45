// Package config holds the immutable configuration passed to the mesh, layout, camera and
// renderer packages. There are no flags, environment variables or files: a Config is built
// from Default() and any number of functional options.
package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidConfig is returned by Validate for any out-of-range value.
var ErrInvalidConfig = errors.New("invalid config")

// WindowConfig describes the on-screen window.
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// SphereConfig holds the latitude and longitude band counts of the generated sphere.
type SphereConfig struct {
	LatBands uint32
	LonBands uint32
}

// GridConfig describes the instance grid.
type GridConfig struct {
	NX, NY, NZ int
	// Spread is the distance between neighbouring instance centers.
	Spread float32
	// Scale is the uniform scale applied to every instance.
	Scale float32
}

// CameraConfig describes the orbit camera and its projection.
type CameraConfig struct {
	FovDegrees float32
	Near       float32
	Far        float32
	// Speed is the orbit angular rate in radians per second.
	Speed float32
	// DistanceFactor scales Spread*NX into the orbit radius.
	DistanceFactor float32
	// HeightFactor scales the orbit radius into the constant eye height.
	HeightFactor float32
	// TargetHeightFactor scales the grid's vertical extent (NY*Spread) into the target height.
	TargetHeightFactor float32
	Up                 mgl32.Vec3
}

// Config is the full program configuration. Treat it as a value: options return modified copies
// and nothing mutates a Config after New returns.
type Config struct {
	Window WindowConfig
	Sphere SphereConfig
	Grid   GridConfig
	Camera CameraConfig

	// LayoutWorkers splits the instance layout across this many workers; 0 or 1 builds sequentially.
	LayoutWorkers int
	// StrictShaders makes a shader compile failure fatal instead of a logged warning.
	StrictShaders bool
	VSync         bool
	Profiling     bool
	Debug         bool
}

// Default returns the demo configuration: an 800x600 window, a 4x4-band sphere replicated
// into a 30x30x30 grid with 1.15 spacing and 0.33 scale, orbited at 0.1 rad/s.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Instanced Spheres",
		},
		Sphere: SphereConfig{
			LatBands: 4,
			LonBands: 4,
		},
		Grid: GridConfig{
			NX:     30,
			NY:     30,
			NZ:     30,
			Spread: 1.15,
			Scale:  0.33,
		},
		Camera: CameraConfig{
			FovDegrees:         60,
			Near:               0.1,
			Far:                1000,
			Speed:              0.1,
			DistanceFactor:     1.5,
			HeightFactor:       1.0,
			TargetHeightFactor: 0.5,
			Up:                 mgl32.Vec3{0, 0, -1},
		},
		LayoutWorkers: 1,
		StrictShaders: true,
		VSync:         true,
	}
}

// New builds a Config from Default with the given options applied in order, then validates it.
//
// Parameters:
//   - options: functional options to apply
//
// Returns:
//   - Config: the resulting configuration
//   - error: ErrInvalidConfig (wrapped) if validation fails
func New(options ...Option) (Config, error) {
	cfg := Default()
	for _, opt := range options {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field used by the generators.
//
// Returns:
//   - error: nil, or an error wrapping ErrInvalidConfig naming the first bad field
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Sphere.LatBands < 1 || c.Sphere.LonBands < 1:
		return fmt.Errorf("%w: sphere bands %dx%d must be >= 1", ErrInvalidConfig, c.Sphere.LatBands, c.Sphere.LonBands)
	case c.Grid.NX < 1 || c.Grid.NY < 1 || c.Grid.NZ < 1:
		return fmt.Errorf("%w: grid %dx%dx%d must be >= 1 on every axis", ErrInvalidConfig, c.Grid.NX, c.Grid.NY, c.Grid.NZ)
	case c.Grid.Spread <= 0 || c.Grid.Scale <= 0:
		return fmt.Errorf("%w: spread %v and scale %v must be positive", ErrInvalidConfig, c.Grid.Spread, c.Grid.Scale)
	case c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180:
		return fmt.Errorf("%w: fov %v out of (0, 180)", ErrInvalidConfig, c.Camera.FovDegrees)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Camera.Up.Len() == 0:
		return fmt.Errorf("%w: camera up axis is zero", ErrInvalidConfig)
	case c.LayoutWorkers < 0:
		return fmt.Errorf("%w: layout workers %d", ErrInvalidConfig, c.LayoutWorkers)
	}
	return nil
}

// Aspect returns the window aspect ratio (width / height).
func (c Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}

// InstanceCount returns NX*NY*NZ.
func (c Config) InstanceCount() int {
	return c.Grid.NX * c.Grid.NY * c.Grid.NZ
}

// OrbitRadius returns the camera orbit radius derived from the grid extent.
func (c Config) OrbitRadius() float32 {
	return c.Grid.Spread * float32(c.Grid.NX) * c.Camera.DistanceFactor
}

// EyeHeight returns the constant camera height.
func (c Config) EyeHeight() float32 {
	return c.OrbitRadius() * c.Camera.HeightFactor
}

// Target returns the fixed look-at point: the grid's horizontal center raised to a fraction of its height.
func (c Config) Target() mgl32.Vec3 {
	return mgl32.Vec3{0, float32(c.Grid.NY) * c.Grid.Spread * c.Camera.TargetHeightFactor, 0}
}
