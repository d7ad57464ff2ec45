// Package camera provides the time-driven orbit camera and the perspective projection used
// to view the instance grid.
package camera

import "github.com/go-gl/mathgl/mgl32"

// Controller produces the camera pose for a given point in time. Controllers own positional
// state; the projection is kept separately so it can follow the window size.
type Controller interface {
	// Position returns the world-space eye position at time t.
	//
	// Parameters:
	//   - t: elapsed time in seconds
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position(t float32) mgl32.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space target
	Target() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up axis
	Up() mgl32.Vec3

	// View returns the look-at matrix at time t (column-major).
	//
	// Parameters:
	//   - t: elapsed time in seconds
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	View(t float32) mgl32.Mat4
}
