package camera

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-spheres/common"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (128 bytes, two mat4x4<f32>).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniformSize is the byte size of the camera uniform buffer.
const GPUCameraUniformSize = 128

// Byte offsets of the matrices inside the camera uniform buffer.
const (
	ViewOffset       = 0
	ProjectionOffset = 64
)

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Size: 128 bytes.
type GPUCameraUniform struct {
	View       [16]float32 // offset  0: world to view matrix (mat4x4<f32>)
	Projection [16]float32 // offset 64: view to clip matrix (mat4x4<f32>)
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, GPUCameraUniformSize)
	common.PutFloat32s(buf, ViewOffset, g.View[:]...)
	common.PutFloat32s(buf, ProjectionOffset, g.Projection[:]...)
	return buf
}
