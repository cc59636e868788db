package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithIndexFormat sets the index element type used when the mesh is drawn.
// Meshes default to wgpu.IndexFormatUint32.
//
// Parameters:
//   - format: the index format
//
// Returns:
//   - BindGroupProviderOption: a function that sets the index format on the provider
func WithIndexFormat(format wgpu.IndexFormat) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.indexFormat = format
	}
}
