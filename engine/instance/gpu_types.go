package instance

import (
	_ "embed"

	"github.com/Carmen-Shannon/oxy-spheres/common"
)

// GPUInstanceSource is the canonical WGSL definition of the per-instance InstanceInput struct.
// The model matrix is split into four column vectors because vertex attributes cannot be mat4.
//
//go:embed assets/instance.wgsl
var GPUInstanceSource string

// GPUInstanceStride is the byte stride of one instance in the instance buffer.
const GPUInstanceStride = 76

// GPUInstance is the GPU representation of a single instance record.
// Matches the WGSL InstanceInput struct layout exactly (see GPUInstanceSource).
// Size: 76 bytes.
type GPUInstance struct {
	Model [16]float32 // offset  0: column-major model matrix (64 bytes)
	Color [3]float32  // offset 64: rgb color (12 bytes)
}

// Marshal serializes the GPUInstance struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 76-byte little-endian buffer
func (g *GPUInstance) Marshal() []byte {
	buf := make([]byte, GPUInstanceStride)
	g.put(buf)
	return buf
}

func (g *GPUInstance) put(buf []byte) {
	off := common.PutFloat32s(buf, 0, g.Model[:]...)
	common.PutFloat32s(buf, off, g.Color[:]...)
}

// ToGPU converts a record to its GPU layout.
func (r Record) ToGPU() GPUInstance {
	return GPUInstance{
		Model: r.Model,
		Color: r.Color,
	}
}

// Pack serializes records back to back into one instance buffer.
//
// Parameters:
//   - records: the records to pack
//
// Returns:
//   - []byte: len(records)*GPUInstanceStride bytes
func Pack(records []Record) []byte {
	buf := make([]byte, len(records)*GPUInstanceStride)
	for i, r := range records {
		g := r.ToGPU()
		g.put(buf[i*GPUInstanceStride:])
	}
	return buf
}
