package instance

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid(nx, ny, nz int) Grid {
	return Grid{NX: nx, NY: ny, NZ: nz, Spread: 1.15, Scale: DefaultScale}
}

func TestGrid_IndexBijection(t *testing.T) {
	g := testGrid(3, 4, 5)
	seen := make(map[int]bool, g.Count())

	for i := 0; i < g.NX; i++ {
		for j := 0; j < g.NY; j++ {
			for k := 0; k < g.NZ; k++ {
				idx := g.Index(i, j, k)
				require.GreaterOrEqual(t, idx, 0)
				require.Less(t, idx, g.Count())
				require.False(t, seen[idx], "index %d produced twice", idx)
				seen[idx] = true

				ci, cj, ck := g.Coords(idx)
				assert.Equal(t, []int{i, j, k}, []int{ci, cj, ck})
			}
		}
	}
	assert.Len(t, seen, g.Count())
}

func TestBuild_SingleInstance(t *testing.T) {
	g := testGrid(1, 1, 1)
	records := Build(g)
	require.Len(t, records, 1)

	r := records[0]
	pos := r.Model.Col(3)
	assert.InDelta(t, -0.5*1.15, pos.X(), 1e-6)
	assert.InDelta(t, 1.15, pos.Y(), 1e-6)
	assert.InDelta(t, -0.5*1.15, pos.Z(), 1e-6)
	assert.InDelta(t, DefaultScale, r.Model.At(0, 0), 1e-6)
	assert.InDelta(t, DefaultScale, r.Model.At(1, 1), 1e-6)
	assert.InDelta(t, DefaultScale, r.Model.At(2, 2), 1e-6)

	assert.True(t, r.Color.ApproxEqual(mgl32.Vec3{0.1, 0.1, 0.1}))
}

func TestBuild_AdjacentSpacing(t *testing.T) {
	g := testGrid(4, 2, 3)
	records := Build(g)

	for i := 0; i+1 < g.NX; i++ {
		a := records[g.Index(i, 1, 2)].Model.Col(3)
		b := records[g.Index(i+1, 1, 2)].Model.Col(3)
		assert.InDelta(t, g.Spread, b.X()-a.X(), 1e-5)
		assert.InDelta(t, a.Y(), b.Y(), 1e-6)
		assert.InDelta(t, a.Z(), b.Z(), 1e-6)
	}
}

func TestBuild_ColorUnnormalized(t *testing.T) {
	g := testGrid(30, 30, 30)
	r := Build(g)[g.Index(29, 0, 14)]
	assert.InDelta(t, 3.0, r.Color.X(), 1e-5)
	assert.InDelta(t, 0.1, r.Color.Y(), 1e-6)
	assert.InDelta(t, 1.5, r.Color.Z(), 1e-5)
}

func TestBuildParallel_MatchesBuild(t *testing.T) {
	g := testGrid(7, 3, 5)
	expected := Build(g)

	for _, workers := range []int{0, 1, 2, 3, 16} {
		assert.Equal(t, expected, BuildParallel(g, workers), "workers=%d", workers)
	}
}

func TestPack_Layout(t *testing.T) {
	g := testGrid(2, 1, 1)
	records := Build(g)
	buf := Pack(records)
	require.Len(t, buf, 2*GPUInstanceStride)

	second := buf[GPUInstanceStride:]
	f := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(second[off:]))
	}

	// translation x of instance 1, then its color at byte 64
	assert.Equal(t, records[1].Model[12], f(48))
	assert.InDelta(t, 0.2, f(64), 1e-6)
	assert.InDelta(t, 0.1, f(68), 1e-6)
	assert.InDelta(t, 0.1, f(72), 1e-6)
}

func TestGPUInstance_Marshal(t *testing.T) {
	inst := Record{Model: mgl32.Ident4(), Color: mgl32.Vec3{1, 2, 3}}.ToGPU()
	assert.Len(t, inst.Marshal(), GPUInstanceStride)
}
