package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/oxy-spheres/engine/camera"
	"github.com/Carmen-Shannon/oxy-spheres/engine/config"
	"github.com/Carmen-Shannon/oxy-spheres/engine/frame"
	"github.com/Carmen-Shannon/oxy-spheres/engine/logging"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-spheres/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct{ w, h int }

func (s fakeSurface) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (s fakeSurface) Width() int                                 { return s.w }
func (s fakeSurface) Height() int                                { return s.h }

type drawCall struct {
	group                     uint32
	indexCount, instanceCount uint32
}

// fakeBackend records calls instead of talking to a GPU.
type fakeBackend struct {
	configured   [][2]int
	presentMode  *PresentMode
	registerErr  error
	beginErr     error
	vertexSlots  map[int][]byte
	indexData    []byte
	indexCount   int
	bindings     []shader.Binding
	writes       []bind_group_provider.BufferWrite
	clears       []frame.Clear
	draws        []drawCall
	ended        int
	presented    int
	released     bool
	layoutsSeen  []pipeline.VertexBufferLayout
	shadersKnown int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{vertexSlots: make(map[int][]byte)}
}

func (b *fakeBackend) ConfigureSurface(width, height int) error {
	b.configured = append(b.configured, [2]int{width, height})
	return nil
}

func (b *fakeBackend) SetPresentMode(mode PresentMode) { b.presentMode = &mode }

func (b *fakeBackend) RegisterRenderPipeline(p pipeline.Pipeline) error {
	if b.registerErr != nil {
		return b.registerErr
	}
	b.layoutsSeen = p.VertexLayouts()
	if p.Shader(shader.ShaderTypeVertex) != nil {
		b.shadersKnown++
	}
	if p.Shader(shader.ShaderTypeFragment) != nil {
		b.shadersKnown++
	}
	p.SetHandle("pipeline")
	return nil
}

func (b *fakeBackend) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, slot int, vertexData, indexData []byte, indexCount int) error {
	b.vertexSlots[slot] = vertexData
	b.indexData = indexData
	b.indexCount = indexCount
	provider.SetIndexCount(indexCount)
	return nil
}

func (b *fakeBackend) InitVertexBuffer(provider bind_group_provider.BindGroupProvider, slot int, data []byte) error {
	b.vertexSlots[slot] = data
	return nil
}

func (b *fakeBackend) InitBindGroup(provider bind_group_provider.BindGroupProvider, bindings []shader.Binding) error {
	b.bindings = bindings
	return nil
}

func (b *fakeBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	b.writes = append(b.writes, writes...)
}

func (b *fakeBackend) BeginFrame(clear frame.Clear) error {
	if b.beginErr != nil {
		return b.beginErr
	}
	b.clears = append(b.clears, clear)
	return nil
}

func (b *fakeBackend) DrawCall(p pipeline.Pipeline, mesh bind_group_provider.BindGroupProvider, group uint32, bindGroup bind_group_provider.BindGroupProvider, indexCount, instanceCount uint32) {
	b.draws = append(b.draws, drawCall{group: group, indexCount: indexCount, instanceCount: instanceCount})
}

func (b *fakeBackend) EndFrame() { b.ended++ }

func (b *fakeBackend) Present() { b.presented++ }

func (b *fakeBackend) Release() { b.released = true }

func newTestScene(t *testing.T) scene.Scene {
	t.Helper()
	cfg, err := config.New(config.WithGrid(2, 3, 4))
	require.NoError(t, err)
	s, err := scene.New(cfg)
	require.NoError(t, err)
	return s
}

func newTestRenderer(t *testing.T, b *fakeBackend, options ...config.Option) Renderer {
	t.Helper()
	cfg, err := config.New(options...)
	require.NoError(t, err)
	r, err := NewRenderer(fakeSurface{800, 600}, cfg, nil, WithBackend(b))
	require.NoError(t, err)
	return r
}

func TestNewRenderer_ConfiguresSurface(t *testing.T) {
	b := newFakeBackend()
	newTestRenderer(t, b)

	assert.Equal(t, [][2]int{{800, 600}}, b.configured)
	assert.Nil(t, b.presentMode, "vsync is the backend default")
}

func TestNewRenderer_UncappedWithoutVSync(t *testing.T) {
	b := newFakeBackend()
	newTestRenderer(t, b, config.WithVSync(false))

	require.NotNil(t, b.presentMode)
	assert.Equal(t, PresentModeUncapped, *b.presentMode)
}

func TestSetup_UploadsBuffersAndBindGroup(t *testing.T) {
	b := newFakeBackend()
	r := newTestRenderer(t, b)
	s := newTestScene(t)

	require.NoError(t, r.Setup(s))

	assert.Equal(t, 2, b.shadersKnown)
	require.Len(t, b.layoutsSeen, 2)
	assert.Equal(t, uint64(24), b.layoutsSeen[0].ArrayStride)
	assert.Equal(t, uint64(76), b.layoutsSeen[1].ArrayStride)
	assert.Equal(t, pipeline.StepModeInstance, b.layoutsSeen[1].StepMode)

	assert.Equal(t, s.Model().VertexData(), b.vertexSlots[scene.VertexSlot])
	assert.Equal(t, s.InstanceData(), b.vertexSlots[scene.InstanceSlot])
	assert.Equal(t, s.Model().IndexCount(), b.indexCount)

	require.Len(t, b.bindings, 1)
	assert.Equal(t, 0, b.bindings[0].Group)
	assert.Equal(t, uint64(camera.GPUCameraUniformSize), b.bindings[0].MinSize)

	assert.NotNil(t, r.Pipeline(PipelineKeyInstanced))
}

func TestExecute_BeforeSetup(t *testing.T) {
	r := newTestRenderer(t, newFakeBackend())
	assert.ErrorIs(t, r.Execute(nil), ErrNotSetup)
}

func TestExecute_RunsStepperCommands(t *testing.T) {
	b := newFakeBackend()
	r := newTestRenderer(t, b)
	s := newTestScene(t)
	require.NoError(t, r.Setup(s))

	require.NoError(t, r.Execute(s.Step(0)))
	r.Present()

	require.Len(t, b.clears, 1)
	assert.Equal(t, frame.DefaultClearColor, b.clears[0].Color)
	assert.Equal(t, float32(1), b.clears[0].Depth)

	require.Len(t, b.writes, 2)
	assert.Equal(t, uint64(camera.ViewOffset), b.writes[0].Offset)
	assert.Equal(t, uint64(camera.ProjectionOffset), b.writes[1].Offset)
	assert.Len(t, b.writes[0].Data, 64)

	require.Len(t, b.draws, 1)
	assert.Equal(t, uint32(s.Model().IndexCount()), b.draws[0].indexCount)
	assert.Equal(t, uint32(24), b.draws[0].instanceCount)
	assert.Equal(t, 1, b.ended)
	assert.Equal(t, 1, b.presented)
}

func TestExecute_UnknownUniform(t *testing.T) {
	b := newFakeBackend()
	r := newTestRenderer(t, b)
	require.NoError(t, r.Setup(newTestScene(t)))

	err := r.Execute([]frame.Command{frame.SetUniform{Name: "model", Value: mgl32.Ident4()}})
	assert.ErrorIs(t, err, ErrUnknownUniform)
	assert.Empty(t, b.clears, "no frame is begun for an invalid list")
}

func TestExecute_BeginFrameError(t *testing.T) {
	b := newFakeBackend()
	r := newTestRenderer(t, b)
	s := newTestScene(t)
	require.NoError(t, r.Setup(s))

	b.beginErr = errors.New("surface lost")
	assert.Error(t, r.Execute(s.Step(0)))
	assert.Zero(t, b.ended)
}

func TestSetup_StrictShaderFailure(t *testing.T) {
	b := newFakeBackend()
	b.registerErr = fmt.Errorf("%w: bad wgsl", ErrShaderCompile)
	r := newTestRenderer(t, b)

	assert.ErrorIs(t, r.Setup(newTestScene(t)), ErrShaderCompile)
}

func TestSetup_PermissiveShaderFailure(t *testing.T) {
	b := newFakeBackend()
	b.registerErr = fmt.Errorf("%w: bad wgsl", ErrShaderCompile)

	cfg, err := config.New(config.WithStrictShaders(false))
	require.NoError(t, err)
	var out, errOut bytes.Buffer
	logger := logging.NewLogger("test", false, &out, &errOut)
	r, err := NewRenderer(fakeSurface{800, 600}, cfg, logger, WithBackend(b))
	require.NoError(t, err)

	s := newTestScene(t)
	require.NoError(t, r.Setup(s))
	assert.Contains(t, errOut.String(), "continuing without a pipeline")

	// frames still clear and present, but nothing is drawn
	require.NoError(t, r.Execute(s.Step(0)))
	assert.Len(t, b.clears, 1)
	assert.Empty(t, b.draws)
	assert.Equal(t, 1, b.ended)
}

func TestSetup_OtherPipelineErrorsAlwaysFatal(t *testing.T) {
	b := newFakeBackend()
	b.registerErr = errors.New("device lost")
	r := newTestRenderer(t, b, config.WithStrictShaders(false))

	assert.Error(t, r.Setup(newTestScene(t)))
}

func TestResize_IgnoresZero(t *testing.T) {
	b := newFakeBackend()
	r := newTestRenderer(t, b)

	require.NoError(t, r.Resize(0, 0))
	require.NoError(t, r.Resize(1024, 768))
	assert.Equal(t, [][2]int{{800, 600}, {1024, 768}}, b.configured)
}

func TestRelease(t *testing.T) {
	b := newFakeBackend()
	r := newTestRenderer(t, b)
	require.NoError(t, r.Setup(newTestScene(t)))

	r.Release()
	assert.True(t, b.released)
	assert.ErrorIs(t, r.Execute(nil), ErrNotSetup)
}

func TestCameraBinding(t *testing.T) {
	vs, err := shader.NewShader("vs", shader.ShaderTypeVertex, shader.InstancedVertexSource)
	require.NoError(t, err)
	group, binding, err := cameraBinding(vs)
	require.NoError(t, err)
	assert.Equal(t, 0, group)
	assert.Equal(t, 0, binding)

	fs, err := shader.NewShader("fs", shader.ShaderTypeFragment, shader.FlatFragmentSource)
	require.NoError(t, err)
	_, _, err = cameraBinding(fs)
	assert.ErrorIs(t, err, ErrNoCameraBinding)
}
