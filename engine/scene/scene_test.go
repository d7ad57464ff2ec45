package scene

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-spheres/engine/config"
	"github.com/Carmen-Shannon/oxy-spheres/engine/frame"
	"github.com/Carmen-Shannon/oxy-spheres/engine/instance"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	s, err := New(config.Default())
	require.NoError(t, err)

	assert.Equal(t, "spheres", s.Name())
	assert.Equal(t, 25, s.Model().VertexCount())
	assert.Equal(t, 96, s.Model().IndexCount())
	assert.Equal(t, 27000, s.InstanceCount())
	assert.Len(t, s.InstanceData(), 27000*instance.GPUInstanceStride)

	// R = 1.15 * 30 * 1.5, eye height equals R, target at half the grid height
	eye := s.Orbit().Position(0)
	assert.InDelta(t, 0, eye.X(), 1e-5)
	assert.InDelta(t, 51.75, eye.Y(), 1e-4)
	assert.InDelta(t, 51.75, eye.Z(), 1e-4)
	assert.InDelta(t, 17.25, s.Orbit().Target().Y(), 1e-4)
	assert.InDelta(t, 800.0/600.0, s.Projection().Aspect(), 1e-6)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg, err := config.New(config.WithGrid(0, 1, 1))
	require.Error(t, err)

	_, err = New(cfg)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestNew_ParallelLayoutMatches(t *testing.T) {
	seq, err := config.New(config.WithGrid(6, 4, 5))
	require.NoError(t, err)
	par, err := config.New(config.WithGrid(6, 4, 5), config.WithLayoutWorkers(4))
	require.NoError(t, err)

	a, err := New(seq)
	require.NoError(t, err)
	b, err := New(par, WithName("parallel"))
	require.NoError(t, err)

	assert.Equal(t, a.InstanceData(), b.InstanceData())
	assert.Equal(t, "parallel", b.Name())
}

func TestScene_StepDrawsAllInstances(t *testing.T) {
	cfg, err := config.New(config.WithGrid(2, 3, 4), config.WithSphereBands(8, 16))
	require.NoError(t, err)
	s, err := New(cfg)
	require.NoError(t, err)

	cmds := s.Step(time.Second)
	require.Len(t, cmds, 4)
	draw, ok := cmds[3].(frame.DrawIndexedInstanced)
	require.True(t, ok)
	assert.Equal(t, uint32(8*16*6), draw.IndexCount)
	assert.Equal(t, uint32(24), draw.InstanceCount)
}

func TestScene_Resize(t *testing.T) {
	s, err := New(config.Default())
	require.NoError(t, err)

	s.Resize(1920, 1080)
	assert.InDelta(t, 16.0/9.0, s.Projection().Aspect(), 1e-6)

	s.Resize(0, 0)
	assert.InDelta(t, 16.0/9.0, s.Projection().Aspect(), 1e-6)
}

func TestScene_VertexBindingsResolve(t *testing.T) {
	s, err := New(config.Default())
	require.NoError(t, err)
	vs, err := shader.NewShader("instanced", shader.ShaderTypeVertex, shader.InstancedVertexSource)
	require.NoError(t, err)

	layouts, err := pipeline.ResolveLayouts(vs, s.VertexBindings())
	require.NoError(t, err)
	require.Len(t, layouts, 2)
	assert.Equal(t, uint64(24), layouts[VertexSlot].ArrayStride)
	assert.Equal(t, uint64(instance.GPUInstanceStride), layouts[InstanceSlot].ArrayStride)
	assert.Equal(t, pipeline.StepModeInstance, layouts[InstanceSlot].StepMode)
}
