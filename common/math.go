package common

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// PutFloat32s writes each value as little-endian IEEE-754 bits into buf starting at offset.
// buf must have room for len(values)*4 bytes past offset.
//
// Parameters:
//   - buf: destination byte slice
//   - offset: byte offset of the first value
//   - values: the floats to write
//
// Returns:
//   - int: the offset just past the last written value
func PutFloat32s(buf []byte, offset int, values ...float32) int {
	for _, v := range values {
		binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v))
		offset += 4
	}
	return offset
}

// Uint32sToBytes serializes a slice of uint32 values into a new little-endian byte slice.
//
// Parameters:
//   - values: the values to serialize
//
// Returns:
//   - []byte: a freshly allocated buffer of len(values)*4 bytes
func Uint32sToBytes(values []uint32) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}

// Perspective creates a right-handed perspective projection matrix that maps view-space
// depth onto the WebGPU clip-space range [0, 1] (mgl32.Perspective targets OpenGL's [-1, 1]).
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// Mat4Bytes serializes a column-major matrix into 64 little-endian bytes.
//
// Parameters:
//   - m: the matrix to serialize
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func Mat4Bytes(m mgl32.Mat4) []byte {
	buf := make([]byte, 64)
	PutFloat32s(buf, 0, m[:]...)
	return buf
}
