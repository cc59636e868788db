package camera

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidClipPlanes is returned by NewProjection when the clip planes do not satisfy 0 < znear < zfar.
var ErrInvalidClipPlanes = errors.New("clip planes must satisfy 0 < znear < zfar")

type projectionImpl struct {
	aspect float32
	fovy   float32 // radians
	znear  float32
	zfar   float32
}

// Projection defines the interface for a perspective projection.
// Only the aspect ratio changes after construction, through Resize.
type Projection interface {
	// Aspect returns the width / height ratio of the surface.
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Fovy returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: the field of view in radians
	Fovy() float32

	// ZNear returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	ZNear() float32

	// ZFar returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	ZFar() float32

	// Resize recomputes the aspect ratio for a new surface size. Field of view and clip planes
	// are unchanged. A zero width or height (minimized window) is ignored.
	//
	// Parameters:
	//   - width: the surface width in pixels
	//   - height: the surface height in pixels
	Resize(width, height uint32)

	// ProjectionMatrix returns the perspective matrix converted to WebGPU clip space
	// (depth in [0, 1]) via common.OpenGLToWGPU. The matrix is column-major.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4
}

var _ Projection = &projectionImpl{}

// NewProjection creates a Projection for a surface of the given size.
//
// Parameters:
//   - width: the surface width in pixels
//   - height: the surface height in pixels
//   - fovy: vertical field of view in radians
//   - znear: near clipping plane distance
//   - zfar: far clipping plane distance
//
// Returns:
//   - Projection: the newly created projection
//   - error: ErrInvalidClipPlanes if the clip planes are invalid, or an error for a non-positive fovy
func NewProjection(width, height uint32, fovy, znear, zfar float32) (Projection, error) {
	if znear <= 0 || zfar <= znear {
		return nil, fmt.Errorf("znear=%v zfar=%v: %w", znear, zfar, ErrInvalidClipPlanes)
	}
	if fovy <= 0 {
		return nil, fmt.Errorf("field of view must be positive, got %v", fovy)
	}
	p := &projectionImpl{
		aspect: 1,
		fovy:   fovy,
		znear:  znear,
		zfar:   zfar,
	}
	p.Resize(width, height)
	return p, nil
}

func (p *projectionImpl) Aspect() float32 {
	return p.aspect
}

func (p *projectionImpl) Fovy() float32 {
	return p.fovy
}

func (p *projectionImpl) ZNear() float32 {
	return p.znear
}

func (p *projectionImpl) ZFar() float32 {
	return p.zfar
}

func (p *projectionImpl) Resize(width, height uint32) {
	if width == 0 || height == 0 {
		return
	}
	p.aspect = float32(width) / float32(height)
}

func (p *projectionImpl) ProjectionMatrix() mgl32.Mat4 {
	return common.OpenGLToWGPU.Mul4(mgl32.Perspective(p.fovy, p.aspect, p.znear, p.zfar))
}
