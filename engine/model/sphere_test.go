package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSphere_Counts(t *testing.T) {
	cases := []struct {
		lat, lon uint32
	}{
		{1, 1}, {1, 3}, {4, 4}, {16, 32},
	}

	for _, c := range cases {
		m := NewSphere(c.lat, c.lon)
		assert.Equal(t, int((c.lat+1)*(c.lon+1)), m.VertexCount(), "vertices %dx%d", c.lat, c.lon)
		assert.Equal(t, int(6*c.lat*c.lon), m.IndexCount(), "indices %dx%d", c.lat, c.lon)

		for _, idx := range m.Indices() {
			require.Less(t, int(idx), m.VertexCount())
		}
	}
}

func TestNewSphere_UnitNormals(t *testing.T) {
	m := NewSphere(8, 12)
	for i, v := range m.Vertices() {
		p := v.Position
		length := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
		assert.InDelta(t, 1.0, length, 1e-6, "vertex %d", i)
		assert.Equal(t, v.Position, v.Normal, "vertex %d", i)
	}
}

func TestNewSphere_PolesAndSeam(t *testing.T) {
	m := NewSphere(4, 4)
	v := m.Vertices()

	// first row is the north pole, last row is the south pole
	assert.InDelta(t, 1.0, v[0].Position[1], 1e-6)
	assert.InDelta(t, -1.0, v[len(v)-1].Position[1], 1e-6)

	// lon=0 and lon=lonBands coincide on every row
	for lat := 0; lat <= 4; lat++ {
		row := v[lat*5 : lat*5+5]
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, row[0].Position[axis], row[4].Position[axis], 1e-6)
		}
	}
}

func TestNewSphere_FirstCellWinding(t *testing.T) {
	m := NewSphere(2, 3)
	assert.Equal(t, []uint32{0, 4, 1, 4, 5, 1}, m.Indices()[:6])
}

func TestNewSphere_Deterministic(t *testing.T) {
	a := NewSphere(4, 4)
	b := NewSphere(4, 4)
	assert.Equal(t, a.VertexData(), b.VertexData())
	assert.Equal(t, a.IndexData(), b.IndexData())
}

func TestNewSphere_ZeroBandsPanics(t *testing.T) {
	assert.Panics(t, func() { NewSphere(0, 4) })
	assert.Panics(t, func() { NewSphere(4, 0) })
}

func TestModel_VertexData(t *testing.T) {
	m := NewSphere(1, 1)
	data := m.VertexData()
	require.Len(t, data, m.VertexCount()*GPUVertexStride)

	// vertex 0 is the north pole: position (0,1,0), normal (0,1,0)
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(data[4:])))
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(data[16:])))

	idx := m.IndexData()
	require.Len(t, idx, m.IndexCount()*4)
	assert.Equal(t, m.Indices()[1], binary.LittleEndian.Uint32(idx[4:]))
}

func TestGPUVertex_Size(t *testing.T) {
	v := GPUVertex{}
	assert.Equal(t, GPUVertexStride, v.Size())
	assert.Len(t, v.Marshal(), GPUVertexStride)
}

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel()
	assert.Equal(t, "Model", m.Name())
	assert.Zero(t, m.VertexCount())
	assert.Empty(t, m.VertexData())
}
