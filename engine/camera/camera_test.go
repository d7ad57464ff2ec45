package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbit_StartsOnPositiveZ(t *testing.T) {
	o := NewOrbit(WithRadius(51.75), WithHeight(51.75))
	p := o.Position(0)
	assert.Equal(t, float32(0), p.X())
	assert.Equal(t, float32(51.75), p.Y())
	assert.Equal(t, float32(51.75), p.Z())
}

func TestOrbit_Circle(t *testing.T) {
	o := NewOrbit(WithRadius(5), WithHeight(2), WithSpeed(0.5))

	for _, ts := range []float32{0.3, 1, 7.5, 100} {
		p := o.Position(ts)
		assert.InDelta(t, 5.0, math.Hypot(float64(p.X()), float64(p.Z())), 1e-4)
		assert.Equal(t, float32(2), p.Y())
	}

	// a quarter turn moves the eye onto -X
	q := o.Position(float32(math.Pi))
	assert.InDelta(t, -5.0, q.X(), 1e-5)
	assert.InDelta(t, 0.0, q.Z(), 1e-5)
}

func TestOrbit_ViewMapsTargetOntoForwardAxis(t *testing.T) {
	target := mgl32.Vec3{0, 17.25, 0}
	o := NewOrbit(WithRadius(51.75), WithHeight(51.75), WithTarget(target), WithUp(mgl32.Vec3{0, 0, -1}))

	v := o.View(2)
	eye := v.Mul4x1(o.Position(2).Vec4(1))
	assert.InDelta(t, 0, eye.Vec3().Len(), 1e-4, "eye maps to the view-space origin")

	tv := v.Mul4x1(target.Vec4(1))
	dist := o.Position(2).Sub(target).Len()
	assert.InDelta(t, 0, tv.X(), 1e-3)
	assert.InDelta(t, 0, tv.Y(), 1e-3)
	assert.InDelta(t, -dist, tv.Z(), 1e-3)
}

func TestNewOrbit_Defaults(t *testing.T) {
	o := NewOrbit()
	assert.Equal(t, float32(0.1), o.Speed())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, o.Up())
	assert.Equal(t, mgl32.Vec3{}, o.Target())
}

func TestProjection_SetAspect(t *testing.T) {
	p := NewProjection(mgl32.DegToRad(60), 800.0/600.0, 0.1, 1000)
	before := p.Matrix()

	p.SetAspect(2)
	after := p.Matrix()
	assert.Equal(t, float32(2), p.Aspect())
	assert.Equal(t, before[5], after[5])
	assert.InDelta(t, after[5]/2, after[0], 1e-6)

	p.SetAspect(0)
	assert.Equal(t, float32(2), p.Aspect())
}

func TestGPUCameraUniform_Marshal(t *testing.T) {
	u := GPUCameraUniform{View: mgl32.Ident4(), Projection: mgl32.Translate3D(1, 2, 3)}
	require.Equal(t, GPUCameraUniformSize, u.Size())

	buf := u.Marshal()
	require.Len(t, buf, GPUCameraUniformSize)
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])))
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(buf[ProjectionOffset+52:])))
}
