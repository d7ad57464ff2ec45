package pipeline

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-spheres/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func instancedShader(t *testing.T) shader.Shader {
	t.Helper()
	s, err := shader.NewShader("instanced", shader.ShaderTypeVertex, shader.InstancedVertexSource)
	require.NoError(t, err)
	return s
}

func sphereBindings() []VertexBinding {
	return []VertexBinding{
		{Semantic: "color", Slot: 1, Offset: 64, Format: shader.VertexFormatFloat32x3, StepMode: StepModeInstance},
		{Semantic: "position", Slot: 0, Offset: 0, Format: shader.VertexFormatFloat32x3, StepMode: StepModeVertex},
		{Semantic: "normal", Slot: 0, Offset: 12, Format: shader.VertexFormatFloat32x3, StepMode: StepModeVertex},
		{Semantic: "model_0", Slot: 1, Offset: 0, Format: shader.VertexFormatFloat32x4, StepMode: StepModeInstance},
		{Semantic: "model_1", Slot: 1, Offset: 16, Format: shader.VertexFormatFloat32x4, StepMode: StepModeInstance},
		{Semantic: "model_2", Slot: 1, Offset: 32, Format: shader.VertexFormatFloat32x4, StepMode: StepModeInstance},
		{Semantic: "model_3", Slot: 1, Offset: 48, Format: shader.VertexFormatFloat32x4, StepMode: StepModeInstance},
	}
}

func TestResolveLayouts(t *testing.T) {
	layouts, err := ResolveLayouts(instancedShader(t), sphereBindings())
	require.NoError(t, err)
	require.Len(t, layouts, 2)

	vertex := layouts[0]
	assert.Equal(t, 0, vertex.Slot)
	assert.Equal(t, StepModeVertex, vertex.StepMode)
	assert.Equal(t, uint64(24), vertex.ArrayStride)
	require.Len(t, vertex.Attributes, 2)
	assert.Equal(t, uint32(0), vertex.Attributes[0].ShaderLocation)
	assert.Equal(t, uint32(1), vertex.Attributes[1].ShaderLocation)

	inst := layouts[1]
	assert.Equal(t, StepModeInstance, inst.StepMode)
	assert.Equal(t, uint64(76), inst.ArrayStride)
	require.Len(t, inst.Attributes, 5)
	for i, a := range inst.Attributes {
		assert.Equal(t, uint32(2+i), a.ShaderLocation)
	}
	assert.Equal(t, "color", inst.Attributes[4].Semantic)
}

func TestResolveLayouts_Errors(t *testing.T) {
	s := instancedShader(t)

	_, err := ResolveLayouts(s, []VertexBinding{{Semantic: "uv", Format: shader.VertexFormatFloat32x2}})
	assert.True(t, errors.Is(err, ErrUnknownSemantic))

	_, err = ResolveLayouts(s, []VertexBinding{{Semantic: "position", Format: shader.VertexFormatFloat32x4}})
	assert.True(t, errors.Is(err, ErrFormatMismatch))

	_, err = ResolveLayouts(s, []VertexBinding{{Semantic: "position"}})
	assert.True(t, errors.Is(err, ErrFormatMismatch))

	_, err = ResolveLayouts(s, []VertexBinding{
		{Semantic: "position", Slot: 0, Format: shader.VertexFormatFloat32x3, StepMode: StepModeVertex},
		{Semantic: "normal", Slot: 0, Offset: 12, Format: shader.VertexFormatFloat32x3, StepMode: StepModeInstance},
	})
	assert.True(t, errors.Is(err, ErrSlotConflict))

	_, err = ResolveLayouts(s, []VertexBinding{
		{Semantic: "position", Slot: 1, Format: shader.VertexFormatFloat32x3},
	})
	assert.True(t, errors.Is(err, ErrSlotConflict))
}

func TestNewPipeline(t *testing.T) {
	s := instancedShader(t)
	p := NewPipeline("spheres", WithVertexShader(s), WithCullMode(CullModeBack), WithDepthWrite(false))

	assert.Equal(t, "spheres", p.PipelineKey())
	assert.Equal(t, s, p.Shader(shader.ShaderTypeVertex))
	assert.Nil(t, p.Shader(shader.ShaderTypeFragment))
	assert.True(t, p.DepthTestEnabled())
	assert.False(t, p.DepthWriteEnabled())
	assert.Equal(t, CullModeBack, p.CullMode())
	assert.Equal(t, FrontFaceCCW, p.FrontFace())

	assert.Nil(t, p.Handle())
	p.SetHandle("backend")
	assert.Equal(t, "backend", p.Handle())
}
