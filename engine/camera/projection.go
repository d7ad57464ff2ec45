package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-spheres/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Projection holds perspective settings and caches the resulting matrix. The aspect ratio may
// change when the window is resized; everything else is fixed at creation.
type Projection struct {
	mu *sync.Mutex

	fov    float32 // radians
	aspect float32
	near   float32
	far    float32

	matrix mgl32.Mat4
}

// NewProjection creates a perspective projection with WebGPU clip-space depth [0, 1].
//
// Parameters:
//   - fov: vertical field of view in radians
//   - aspect: width / height
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - *Projection: the projection
func NewProjection(fov, aspect, near, far float32) *Projection {
	p := &Projection{
		mu:     &sync.Mutex{},
		fov:    fov,
		aspect: aspect,
		near:   near,
		far:    far,
	}
	p.update()
	return p
}

// Fov returns the vertical field of view in radians.
func (p *Projection) Fov() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fov
}

// Aspect returns the aspect ratio (width / height).
func (p *Projection) Aspect() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.aspect
}

// Near returns the near clipping plane distance.
func (p *Projection) Near() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.near
}

// Far returns the far clipping plane distance.
func (p *Projection) Far() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.far
}

// Matrix returns the current projection matrix (column-major).
//
// Returns:
//   - mgl32.Mat4: the projection matrix
func (p *Projection) Matrix() mgl32.Mat4 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.matrix
}

// SetAspect sets the aspect ratio and recomputes the matrix. Non-positive values are ignored,
// which happens while the window is minimized.
//
// Parameters:
//   - aspect: the aspect ratio
func (p *Projection) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.aspect = aspect
	p.update()
}

// update recalculates the projection matrix.
// Caller must hold the mutex.
func (p *Projection) update() {
	p.matrix = common.Perspective(p.fov, p.aspect, p.near, p.far)
}
