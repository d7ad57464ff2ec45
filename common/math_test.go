package common

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerspective_DepthRangeZeroToOne(t *testing.T) {
	near, far := float32(0.1), float32(1000)
	p := Perspective(mgl32.DegToRad(60), 800.0/600.0, near, far)

	project := func(z float32) float32 {
		clip := p.Mul4x1(mgl32.Vec4{0, 0, -z, 1})
		return clip.Z() / clip.W()
	}

	assert.InDelta(t, 0.0, project(near), 1e-5)
	assert.InDelta(t, 1.0, project(far), 1e-4)
	assert.Equal(t, float32(-1), p[11])
	assert.Equal(t, float32(0), p[15])
}

func TestPerspective_AspectScalesX(t *testing.T) {
	p := Perspective(mgl32.DegToRad(90), 2, 1, 10)
	assert.InDelta(t, 1.0, p[5], 1e-6)
	assert.InDelta(t, 0.5, p[0], 1e-6)
}

func TestPutFloat32s(t *testing.T) {
	buf := make([]byte, 12)
	end := PutFloat32s(buf, 0, 1, -2.5, 0.1)
	require.Equal(t, 12, end)

	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(-2.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])))
	assert.Equal(t, float32(0.1), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])))
}

func TestUint32sToBytes(t *testing.T) {
	buf := Uint32sToBytes([]uint32{0, 1, 0xDEADBEEF})
	require.Len(t, buf, 12)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[4:]))
	assert.Equal(t, uint32(0xDEADBEEF), binary.LittleEndian.Uint32(buf[8:]))
}

func TestMat4Bytes_ColumnMajor(t *testing.T) {
	m := mgl32.Translate3D(3, 4, 5)
	buf := Mat4Bytes(m)
	require.Len(t, buf, 64)

	// translation lives in the fourth column: elements 12, 13, 14
	assert.Equal(t, float32(3), math.Float32frombits(binary.LittleEndian.Uint32(buf[48:])))
	assert.Equal(t, float32(4), math.Float32frombits(binary.LittleEndian.Uint32(buf[52:])))
	assert.Equal(t, float32(5), math.Float32frombits(binary.LittleEndian.Uint32(buf[56:])))
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32{}))
	assert.Len(t, SliceToBytes([]float32{1, 2, 3}), 12)
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
}
