package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit circles the target at a fixed radius and height. Azimuth is speed*t; x = -R*sin and
// z = R*cos so the camera starts on +Z. The up axis is fixed and is not required to be
// perpendicular to the view direction.
type Orbit struct {
	radius float32
	height float32
	speed  float32 // radians per second
	target mgl32.Vec3
	up     mgl32.Vec3
}

var _ Controller = &Orbit{}

// NewOrbit creates an orbit controller. Defaults place the eye at radius 10 and height 10 around
// the origin, turning at 0.1 rad/s with +Y up.
//
// Parameters:
//   - options: functional options to configure the orbit
//
// Returns:
//   - *Orbit: the configured orbit
func NewOrbit(options ...OrbitOption) *Orbit {
	o := &Orbit{
		radius: 10,
		height: 10,
		speed:  0.1,
		up:     mgl32.Vec3{0, 1, 0},
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// Radius returns the horizontal distance from the orbit axis.
func (o *Orbit) Radius() float32 {
	return o.radius
}

// Height returns the constant eye height.
func (o *Orbit) Height() float32 {
	return o.height
}

// Speed returns the angular speed in radians per second.
func (o *Orbit) Speed() float32 {
	return o.speed
}

func (o *Orbit) Target() mgl32.Vec3 {
	return o.target
}

func (o *Orbit) Up() mgl32.Vec3 {
	return o.up
}

func (o *Orbit) Position(t float32) mgl32.Vec3 {
	sin, cos := math.Sincos(float64(o.speed * t))
	return mgl32.Vec3{
		-o.radius * float32(sin),
		o.height,
		o.radius * float32(cos),
	}
}

func (o *Orbit) View(t float32) mgl32.Mat4 {
	return mgl32.LookAtV(o.Position(t), o.target, o.up)
}
