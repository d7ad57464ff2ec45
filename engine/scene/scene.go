// Package scene assembles everything the renderer needs for the instanced spheres demo from a
// single Config: the mesh, the packed instance buffer, the camera and the frame stepper.
package scene

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-spheres/engine/camera"
	"github.com/Carmen-Shannon/oxy-spheres/engine/config"
	"github.com/Carmen-Shannon/oxy-spheres/engine/frame"
	"github.com/Carmen-Shannon/oxy-spheres/engine/instance"
	"github.com/Carmen-Shannon/oxy-spheres/engine/logging"
	"github.com/Carmen-Shannon/oxy-spheres/engine/model"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex buffer slots.
const (
	VertexSlot   = 0
	InstanceSlot = 1
)

type scene struct {
	name          string
	logger        logging.Logger
	model         model.Model
	instanceData  []byte
	instanceCount int
	orbit         *camera.Orbit
	projection    *camera.Projection
	stepper       *frame.Stepper
}

// Scene is the immutable content of the demo plus the resizable projection.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Model returns the sphere mesh.
	Model() model.Model

	// InstanceData returns the packed per-instance buffer.
	//
	// Returns:
	//   - []byte: InstanceCount()*instance.GPUInstanceStride bytes
	InstanceData() []byte

	// InstanceCount returns the number of instances, nx*ny*nz.
	InstanceCount() int

	// Orbit returns the camera controller.
	Orbit() *camera.Orbit

	// Projection returns the camera projection.
	Projection() *camera.Projection

	// VertexBindings returns the binding descriptors for the vertex and instance buffers.
	//
	// Returns:
	//   - []pipeline.VertexBinding: descriptors resolvable against the instanced vertex shader
	VertexBindings() []pipeline.VertexBinding

	// Step returns the command list for a frame.
	//
	// Parameters:
	//   - elapsed: time since the loop started
	//
	// Returns:
	//   - []frame.Command: the frame's commands
	Step(elapsed time.Duration) []frame.Command

	// Resize updates the projection aspect to match a new framebuffer size. Zero sizes,
	// reported while the window is minimized, are ignored.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	Resize(width, height int)
}

var _ Scene = &scene{}

// New builds the scene described by cfg.
//
// Parameters:
//   - cfg: the validated configuration
//   - options: functional options
//
// Returns:
//   - Scene: the assembled scene
//   - error: if cfg is invalid
func New(cfg config.Config, options ...SceneBuilderOption) (Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s := &scene{
		name:   "spheres",
		logger: logging.NewNopLogger(),
	}
	for _, option := range options {
		option(s)
	}

	s.model = model.NewSphere(cfg.Sphere.LatBands, cfg.Sphere.LonBands)

	grid := instance.Grid{
		NX:     cfg.Grid.NX,
		NY:     cfg.Grid.NY,
		NZ:     cfg.Grid.NZ,
		Spread: cfg.Grid.Spread,
		Scale:  cfg.Grid.Scale,
	}
	start := time.Now()
	records := instance.BuildParallel(grid, cfg.LayoutWorkers)
	s.instanceData = instance.Pack(records)
	s.instanceCount = len(records)
	s.logger.Debugf("laid out %d instances with %d workers in %s", s.instanceCount, cfg.LayoutWorkers, time.Since(start))

	s.orbit = camera.NewOrbit(
		camera.WithRadius(cfg.OrbitRadius()),
		camera.WithHeight(cfg.EyeHeight()),
		camera.WithSpeed(cfg.Camera.Speed),
		camera.WithTarget(cfg.Target()),
		camera.WithUp(cfg.Camera.Up),
	)
	s.projection = camera.NewProjection(
		mgl32.DegToRad(cfg.Camera.FovDegrees),
		cfg.Aspect(),
		cfg.Camera.Near,
		cfg.Camera.Far,
	)
	s.stepper = frame.NewStepper(s.orbit, s.projection, uint32(s.model.IndexCount()), uint32(s.instanceCount))

	s.logger.Infof("scene %q: %d vertices, %d indices, %d instances", s.name, s.model.VertexCount(), s.model.IndexCount(), s.instanceCount)
	return s, nil
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Model() model.Model {
	return s.model
}

func (s *scene) InstanceData() []byte {
	return s.instanceData
}

func (s *scene) InstanceCount() int {
	return s.instanceCount
}

func (s *scene) Orbit() *camera.Orbit {
	return s.orbit
}

func (s *scene) Projection() *camera.Projection {
	return s.projection
}

func (s *scene) VertexBindings() []pipeline.VertexBinding {
	return []pipeline.VertexBinding{
		{Semantic: "position", Slot: VertexSlot, Offset: 0, Format: shader.VertexFormatFloat32x3, StepMode: pipeline.StepModeVertex},
		{Semantic: "normal", Slot: VertexSlot, Offset: 12, Format: shader.VertexFormatFloat32x3, StepMode: pipeline.StepModeVertex},
		{Semantic: "model_0", Slot: InstanceSlot, Offset: 0, Format: shader.VertexFormatFloat32x4, StepMode: pipeline.StepModeInstance},
		{Semantic: "model_1", Slot: InstanceSlot, Offset: 16, Format: shader.VertexFormatFloat32x4, StepMode: pipeline.StepModeInstance},
		{Semantic: "model_2", Slot: InstanceSlot, Offset: 32, Format: shader.VertexFormatFloat32x4, StepMode: pipeline.StepModeInstance},
		{Semantic: "model_3", Slot: InstanceSlot, Offset: 48, Format: shader.VertexFormatFloat32x4, StepMode: pipeline.StepModeInstance},
		{Semantic: "color", Slot: InstanceSlot, Offset: 64, Format: shader.VertexFormatFloat32x3, StepMode: pipeline.StepModeInstance},
	}
}

func (s *scene) Step(elapsed time.Duration) []frame.Command {
	return s.stepper.Step(elapsed)
}

func (s *scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.projection.SetAspect(float32(width) / float32(height))
	s.logger.Debugf("projection aspect set to %dx%d", width, height)
}
