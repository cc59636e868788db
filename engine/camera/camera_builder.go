package camera

import (
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
)

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithBindGroupProvider attaches a bind group provider to the camera.
// When omitted, NewCamera creates an empty provider labeled "camera".
//
// Parameters:
//   - provider: the bind group provider to attach
//
// Returns:
//   - CameraBuilderOption: functional option to set the bind group provider
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.bindGroupProvider = provider
	}
}
