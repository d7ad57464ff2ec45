package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitOption is a functional option for configuring an Orbit.
type OrbitOption func(*Orbit)

// WithRadius sets the orbit radius (distance from the Y axis).
//
// Parameters:
//   - radius: horizontal distance of the eye from the orbit axis
//
// Returns:
//   - OrbitOption: functional option to set the radius
func WithRadius(radius float32) OrbitOption {
	return func(o *Orbit) {
		o.radius = radius
	}
}

// WithHeight sets the constant eye height.
//
// Parameters:
//   - height: world-space Y of the eye
//
// Returns:
//   - OrbitOption: functional option to set the height
func WithHeight(height float32) OrbitOption {
	return func(o *Orbit) {
		o.height = height
	}
}

// WithSpeed sets the angular speed.
//
// Parameters:
//   - speed: radians per second
//
// Returns:
//   - OrbitOption: functional option to set the speed
func WithSpeed(speed float32) OrbitOption {
	return func(o *Orbit) {
		o.speed = speed
	}
}

// WithTarget sets the look-at point.
//
// Parameters:
//   - target: world-space target
//
// Returns:
//   - OrbitOption: functional option to set the target
func WithTarget(target mgl32.Vec3) OrbitOption {
	return func(o *Orbit) {
		o.target = target
	}
}

// WithUp sets the up axis passed to the look-at matrix.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - OrbitOption: functional option to set the up vector
func WithUp(up mgl32.Vec3) OrbitOption {
	return func(o *Orbit) {
		o.up = up
	}
}
