package frame

import (
	"time"

	"github.com/Carmen-Shannon/oxy-spheres/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultClearColor is the opaque dark gray background.
var DefaultClearColor = mgl32.Vec4{0.1, 0.1, 0.1, 1.0}

// ProjectionSource supplies the current projection matrix. *camera.Projection satisfies it.
type ProjectionSource interface {
	Matrix() mgl32.Mat4
}

// Stepper builds the command list for a frame. It holds no per-frame state; the output
// depends only on the elapsed time and the current projection.
type Stepper struct {
	controller    camera.Controller
	projection    ProjectionSource
	indexCount    uint32
	instanceCount uint32
	clearColor    mgl32.Vec4
}

// NewStepper creates a stepper drawing indexCount indices for instanceCount instances.
//
// Parameters:
//   - controller: the camera pose source
//   - projection: the projection matrix source
//   - indexCount: number of indices of the mesh
//   - instanceCount: number of instances
//
// Returns:
//   - *Stepper: the stepper
func NewStepper(controller camera.Controller, projection ProjectionSource, indexCount, instanceCount uint32) *Stepper {
	return &Stepper{
		controller:    controller,
		projection:    projection,
		indexCount:    indexCount,
		instanceCount: instanceCount,
		clearColor:    DefaultClearColor,
	}
}

// Step returns Clear, SetUniform(view), SetUniform(projection) and one
// DrawIndexedInstanced, in that order.
//
// Parameters:
//   - elapsed: time since the loop started
//
// Returns:
//   - []Command: the frame's commands
func (s *Stepper) Step(elapsed time.Duration) []Command {
	t := float32(elapsed.Seconds())
	return []Command{
		Clear{Color: s.clearColor, Depth: 1.0},
		SetUniform{Name: UniformView, Value: s.controller.View(t)},
		SetUniform{Name: UniformProjection, Value: s.projection.Matrix()},
		DrawIndexedInstanced{IndexCount: s.indexCount, InstanceCount: s.instanceCount},
	}
}

// IndexCount returns the number of indices drawn per instance.
func (s *Stepper) IndexCount() uint32 {
	return s.indexCount
}

// InstanceCount returns the number of instances drawn per frame.
func (s *Stepper) InstanceCount() uint32 {
	return s.instanceCount
}
