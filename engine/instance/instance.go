// Package instance lays out the per-instance transform and color records for a 3D grid of
// instanced meshes.
package instance

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultScale is the uniform scale applied to every instance unless the grid overrides it.
const DefaultScale float32 = 0.33

// Grid describes an nx*ny*nz lattice of instances.
type Grid struct {
	NX, NY, NZ int
	Spread     float32 // distance between neighbouring instances on every axis
	Scale      float32 // uniform scale applied after translation
}

// Count returns the number of instances in the grid.
func (g Grid) Count() int {
	return g.NX * g.NY * g.NZ
}

// Index flattens grid coordinates into a record index, k varying fastest.
//
// Parameters:
//   - i, j, k: coordinates along x, y and z
//
// Returns:
//   - int: i*(ny*nz) + j*nz + k
func (g Grid) Index(i, j, k int) int {
	return i*(g.NY*g.NZ) + j*g.NZ + k
}

// Coords is the inverse of Index.
//
// Parameters:
//   - idx: a record index in [0, Count())
//
// Returns:
//   - i, j, k: the grid coordinates of idx
func (g Grid) Coords(idx int) (i, j, k int) {
	plane := g.NY * g.NZ
	i = idx / plane
	rem := idx % plane
	return i, rem / g.NZ, rem % g.NZ
}

// Position returns the world-space translation of the instance at (i, j, k).
// x and z are centered on the origin; y starts one spread above it.
func (g Grid) Position(i, j, k int) mgl32.Vec3 {
	return mgl32.Vec3{
		(-float32(g.NX)/2)*g.Spread + g.Spread*float32(i),
		g.Spread*float32(j) + g.Spread,
		(-float32(g.NZ)/2)*g.Spread + g.Spread*float32(k),
	}
}

// Record is the CPU-side description of a single instance.
type Record struct {
	Model mgl32.Mat4 // translate(position) * scale(s)
	Color mgl32.Vec3 // unnormalized, may exceed 1.0 for large grids
}

// NewRecord computes the record for grid coordinates (i, j, k).
func (g Grid) NewRecord(i, j, k int) Record {
	p := g.Position(i, j, k)
	return Record{
		Model: mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.Scale3D(g.Scale, g.Scale, g.Scale)),
		Color: mgl32.Vec3{0.1 * float32(i+1), 0.1 * float32(j+1), 0.1 * float32(k+1)},
	}
}

// Build lays out every instance of the grid sequentially.
//
// Parameters:
//   - g: the grid to lay out
//
// Returns:
//   - []Record: Count() records indexed by Grid.Index
func Build(g Grid) []Record {
	records := make([]Record, g.Count())
	fillSlab(g, records, 0, g.NX)
	return records
}

// fillSlab writes records for i in [i0, i1). Slabs never overlap so callers may fill
// disjoint slabs concurrently.
func fillSlab(g Grid, records []Record, i0, i1 int) {
	for i := i0; i < i1; i++ {
		for j := 0; j < g.NY; j++ {
			for k := 0; k < g.NZ; k++ {
				records[g.Index(i, j, k)] = g.NewRecord(i, j, k)
			}
		}
	}
}
