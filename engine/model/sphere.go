package model

import (
	"fmt"
	"math"
)

// NewSphere generates a unit sphere (radius 1, centered at the origin) on a uniform
// latitude/longitude grid.
//
// Vertices are emitted row-major, latitude outer, giving (latBands+1)*(lonBands+1) vertices
// including the duplicated seam at lon=0/lon=lonBands and a full ring at each pole. Each vertex
// normal equals its position. Every grid cell yields two triangles, so the index count is
// latBands*lonBands*6. Pole cells produce degenerate triangles; they are kept.
//
// Parameters:
//   - latBands: number of latitude bands (>= 1)
//   - lonBands: number of longitude bands (>= 1)
//
// Returns:
//   - Model: the generated sphere
func NewSphere(latBands, lonBands uint32) Model {
	if latBands < 1 || lonBands < 1 {
		panic(fmt.Sprintf("model: sphere needs at least one band in each direction, got %dx%d", latBands, lonBands))
	}

	vertices := make([]GPUVertex, 0, (latBands+1)*(lonBands+1))
	for lat := uint32(0); lat <= latBands; lat++ {
		theta := float64(lat) * math.Pi / float64(latBands)
		sinTheta, cosTheta := math.Sincos(theta)

		for lon := uint32(0); lon <= lonBands; lon++ {
			phi := float64(lon) * 2 * math.Pi / float64(lonBands)
			sinPhi, cosPhi := math.Sincos(phi)

			p := [3]float32{
				float32(cosPhi * sinTheta),
				float32(cosTheta),
				float32(sinPhi * sinTheta),
			}
			vertices = append(vertices, GPUVertex{Position: p, Normal: p})
		}
	}

	indices := make([]uint32, 0, latBands*lonBands*6)
	for lat := uint32(0); lat < latBands; lat++ {
		for lon := uint32(0); lon < lonBands; lon++ {
			first := lat*(lonBands+1) + lon
			second := first + lonBands + 1

			indices = append(indices,
				first, second, first+1,
				second, second+1, first+1,
			)
		}
	}

	return NewModel(
		WithName(fmt.Sprintf("Sphere%dx%d", latBands, lonBands)),
		WithVertices(vertices),
		WithIndices(indices),
		WithBoundingRadius(1),
	)
}
