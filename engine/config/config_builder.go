package config

import "github.com/go-gl/mathgl/mgl32"

// Option is a functional option applied to a Config during New.
type Option func(*Config)

// WithWindowSize sets the initial window size in pixels.
//
// Parameters:
//   - width, height: window size in pixels
//
// Returns:
//   - Option: option function to apply
func WithWindowSize(width, height int) Option {
	return func(c *Config) {
		c.Window.Width = width
		c.Window.Height = height
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Window.Title = title
	}
}

// WithSphereBands sets the latitude and longitude band counts of the sphere mesh.
//
// Parameters:
//   - lat: latitude band count (>= 1)
//   - lon: longitude band count (>= 1)
//
// Returns:
//   - Option: option function to apply
func WithSphereBands(lat, lon uint32) Option {
	return func(c *Config) {
		c.Sphere.LatBands = lat
		c.Sphere.LonBands = lon
	}
}

// WithGrid sets the instance grid dimensions.
//
// Parameters:
//   - nx, ny, nz: instance count along each axis (>= 1)
//
// Returns:
//   - Option: option function to apply
func WithGrid(nx, ny, nz int) Option {
	return func(c *Config) {
		c.Grid.NX, c.Grid.NY, c.Grid.NZ = nx, ny, nz
	}
}

// WithSpread sets the spacing between neighbouring instance centers.
func WithSpread(spread float32) Option {
	return func(c *Config) {
		c.Grid.Spread = spread
	}
}

// WithInstanceScale sets the uniform scale applied to every instance.
func WithInstanceScale(scale float32) Option {
	return func(c *Config) {
		c.Grid.Scale = scale
	}
}

// WithFov sets the vertical field of view in degrees.
func WithFov(degrees float32) Option {
	return func(c *Config) {
		c.Camera.FovDegrees = degrees
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
func WithClipPlanes(near, far float32) Option {
	return func(c *Config) {
		c.Camera.Near = near
		c.Camera.Far = far
	}
}

// WithOrbitSpeed sets the camera angular rate in radians per second.
func WithOrbitSpeed(speed float32) Option {
	return func(c *Config) {
		c.Camera.Speed = speed
	}
}

// WithUp sets the camera up axis.
func WithUp(x, y, z float32) Option {
	return func(c *Config) {
		c.Camera.Up = mgl32.Vec3{x, y, z}
	}
}

// WithLayoutWorkers sets how many workers build the instance layout at startup.
// Values of 0 or 1 build on the calling goroutine.
func WithLayoutWorkers(n int) Option {
	return func(c *Config) {
		c.LayoutWorkers = n
	}
}

// WithStrictShaders controls whether a shader compile failure aborts setup.
func WithStrictShaders(strict bool) Option {
	return func(c *Config) {
		c.StrictShaders = strict
	}
}

// WithVSync selects the FIFO present mode when true, immediate otherwise.
func WithVSync(enabled bool) Option {
	return func(c *Config) {
		c.VSync = enabled
	}
}

// WithProfiling enables periodic FPS and memory logging.
func WithProfiling(enabled bool) Option {
	return func(c *Config) {
		c.Profiling = enabled
	}
}

// WithDebug enables debug-level logging.
func WithDebug(enabled bool) Option {
	return func(c *Config) {
		c.Debug = enabled
	}
}
