// Package renderer turns frame command lists into GPU work. It parses the instanced shaders,
// resolves vertex bindings into buffer layouts, uploads the write-once mesh and instance
// buffers, and delegates every graphics API call to a RendererBackend.
package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-spheres/common"
	"github.com/Carmen-Shannon/oxy-spheres/engine/camera"
	"github.com/Carmen-Shannon/oxy-spheres/engine/config"
	"github.com/Carmen-Shannon/oxy-spheres/engine/frame"
	"github.com/Carmen-Shannon/oxy-spheres/engine/logging"
	"github.com/Carmen-Shannon/oxy-spheres/engine/model"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineKeyInstanced is the cache key of the instanced sphere pipeline.
const PipelineKeyInstanced = "instanced"

// uniformOffsets maps SetUniform names to byte offsets in the camera uniform buffer.
var uniformOffsets = map[string]uint64{
	frame.UniformView:       camera.ViewOffset,
	frame.UniformProjection: camera.ProjectionOffset,
}

// Surface is the part of a window the renderer draws into.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// InstancedMesh is the content uploaded by Setup: one mesh drawn once per instance.
type InstancedMesh interface {
	Name() string
	Model() model.Model
	InstanceData() []byte
	InstanceCount() int
	VertexBindings() []pipeline.VertexBinding
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu     *sync.Mutex
	logger logging.Logger

	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	strictShaders        bool

	// Set by Setup
	active        pipeline.Pipeline
	mesh          bind_group_provider.BindGroupProvider
	camera        bind_group_provider.BindGroupProvider
	cameraGroup   uint32
	cameraBinding int
	ready         bool
}

// Renderer draws an InstancedMesh from per-frame command lists.
type Renderer interface {
	// Setup builds the pipeline and uploads every write-once buffer for m. With strict shaders
	// off, a shader compile failure is logged and setup continues without a pipeline; frames
	// then only clear.
	//
	// Parameters:
	//   - m: the mesh, instances and vertex binding descriptors to upload
	//
	// Returns:
	//   - error: layout resolution, buffer or pipeline creation failure
	Setup(m InstancedMesh) error

	// Execute records and submits one frame.
	//
	// Parameters:
	//   - commands: the frame's commands, as produced by frame.Stepper
	//
	// Returns:
	//   - error: ErrNotSetup, ErrUnknownUniform, or a surface acquisition failure
	Execute(commands []frame.Command) error

	// Present shows the last executed frame.
	Present()

	// Resize reconfigures the surface. Zero sizes are ignored.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	//
	// Returns:
	//   - error: surface configuration failure
	Resize(width, height int) error

	// Pipeline retrieves the cached Pipeline for key, or nil.
	Pipeline(key string) pipeline.Pipeline

	// SetPresentMode changes presentation; it takes effect at the next Resize.
	SetPresentMode(mode PresentMode)

	// Release frees every GPU resource.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates the GPU backend for surface and configures it at the surface size.
//
// Parameters:
//   - surface: the window to draw into
//   - cfg: configuration; StrictShaders and VSync are read here
//   - logger: destination for setup diagnostics, nil for none
//   - options: functional options
//
// Returns:
//   - Renderer: the renderer
//   - error: if instance, surface, adapter or device creation fails
func NewRenderer(surface Surface, cfg config.Config, logger logging.Logger, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:            &sync.Mutex{},
		logger:        logging.OrNop(logger),
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   BackendTypeWGPU,
		strictShaders: cfg.StrictShaders,
	}
	if !cfg.VSync {
		mode := PresentModeUncapped
		r.pendingPresentMode = &mode
	}

	for _, opt := range options {
		opt(r)
	}

	msaa := MSAAOff
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	if r.backend == nil {
		switch r.backendType {
		case BackendTypeWGPU:
			fallthrough
		default:
			b, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
			if err != nil {
				return nil, err
			}
			r.backend = b
		}
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	if err := r.backend.ConfigureSurface(surface.Width(), surface.Height()); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("failed to configure surface: %w", err)
	}
	r.logger.Debugf("surface configured at %dx%d, msaa %d", surface.Width(), surface.Height(), msaa)
	return r, nil
}

func (r *renderer) Setup(m InstancedMesh) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	vs, err := shader.NewShader(PipelineKeyInstanced+"_vs", shader.ShaderTypeVertex, shader.InstancedVertexSource)
	if err != nil {
		return fmt.Errorf("failed to parse vertex shader: %w", err)
	}
	fs, err := shader.NewShader(PipelineKeyInstanced+"_fs", shader.ShaderTypeFragment, shader.FlatFragmentSource)
	if err != nil {
		return fmt.Errorf("failed to parse fragment shader: %w", err)
	}

	layouts, err := pipeline.ResolveLayouts(vs, m.VertexBindings())
	if err != nil {
		return fmt.Errorf("failed to resolve vertex layouts: %w", err)
	}

	p := pipeline.NewPipeline(PipelineKeyInstanced,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithVertexLayouts(layouts),
		pipeline.WithDepthTest(true),
		pipeline.WithDepthWrite(true),
		pipeline.WithCullMode(pipeline.CullModeNone),
		pipeline.WithFrontFace(pipeline.FrontFaceCCW),
	)
	if err := r.backend.RegisterRenderPipeline(p); err != nil {
		if r.strictShaders || !errors.Is(err, ErrShaderCompile) {
			return err
		}
		r.logger.Warnf("%v; continuing without a pipeline", err)
	}
	r.pipelineCache[p.PipelineKey()] = p
	r.active = p

	group, binding, err := cameraBinding(vs)
	if err != nil {
		return err
	}
	r.cameraGroup = uint32(group)
	r.cameraBinding = binding

	mdl := m.Model()
	r.mesh = bind_group_provider.NewBindGroupProvider(m.Name() + " mesh")
	for _, l := range layouts {
		switch l.StepMode {
		case pipeline.StepModeInstance:
			err = r.backend.InitVertexBuffer(r.mesh, l.Slot, m.InstanceData())
		default:
			err = r.backend.InitMeshBuffers(r.mesh, l.Slot, mdl.VertexData(), mdl.IndexData(), mdl.IndexCount())
		}
		if err != nil {
			return fmt.Errorf("failed to upload buffers for slot %d: %w", l.Slot, err)
		}
	}

	var groupBindings []shader.Binding
	for _, b := range vs.Bindings() {
		if b.Group == group {
			groupBindings = append(groupBindings, b)
		}
	}
	r.camera = bind_group_provider.NewBindGroupProvider(m.Name() + " camera")
	if err := r.backend.InitBindGroup(r.camera, groupBindings); err != nil {
		return fmt.Errorf("failed to create camera bind group: %w", err)
	}

	r.ready = true
	r.logger.Debugf("%s: uploaded %d vertex bytes, %d index bytes, %d instance bytes", m.Name(), len(mdl.VertexData()), len(mdl.IndexData()), len(m.InstanceData()))
	return nil
}

// cameraBinding finds the group and binding of the camera uniform declared by an
// @oxy:group annotation in the vertex shader.
func cameraBinding(vs shader.Shader) (int, int, error) {
	for _, a := range vs.Declarations() {
		if a.Type != shader.AnnotationTypeBindingGroup || len(a.Args) < 3 || a.Group == nil || a.Binding == nil {
			continue
		}
		if a.Args[2] == shader.AnnotationArgCamera {
			return *a.Group, *a.Binding, nil
		}
	}
	return 0, 0, ErrNoCameraBinding
}

func (r *renderer) Execute(commands []frame.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ready {
		return ErrNotSetup
	}

	clearValues := frame.Clear{Color: frame.DefaultClearColor, Depth: 1}
	var writes []bind_group_provider.BufferWrite
	var draws []frame.DrawIndexedInstanced
	for _, cmd := range commands {
		switch c := cmd.(type) {
		case frame.Clear:
			clearValues = c
		case frame.SetUniform:
			offset, ok := uniformOffsets[c.Name]
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownUniform, c.Name)
			}
			writes = append(writes, bind_group_provider.BufferWrite{
				Provider: r.camera,
				Binding:  r.cameraBinding,
				Offset:   offset,
				Data:     common.Mat4Bytes(c.Value),
			})
		case frame.DrawIndexedInstanced:
			draws = append(draws, c)
		default:
			return fmt.Errorf("unsupported command %s", cmd.Type())
		}
	}

	r.backend.WriteBuffers(writes)
	if err := r.backend.BeginFrame(clearValues); err != nil {
		return fmt.Errorf("failed to begin frame: %w", err)
	}
	if r.active != nil && r.active.Handle() != nil {
		for _, d := range draws {
			r.backend.DrawCall(r.active, r.mesh, r.cameraGroup, r.camera, d.IndexCount, d.InstanceCount)
		}
	}
	r.backend.EndFrame()
	return nil
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	return r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pipelineCache[key]
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mesh != nil {
		r.mesh.Release()
	}
	if r.camera != nil {
		r.camera.Release()
	}
	r.ready = false
	r.backend.Release()
}
