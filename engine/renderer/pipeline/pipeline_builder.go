package pipeline

import "github.com/cogentcore/webgpu/wgpu"

// PipelineBuilderOption is a functional option used to configure a Pipeline during construction.
type PipelineBuilderOption func(*pipeline)

// WithDepthTestEnabled toggles depth testing. With testing off every fragment passes.
//
// Parameters:
//   - enabled: whether fragments are compared against the depth buffer
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth test state
func WithDepthTestEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthTestEnabled = enabled
	}
}

// WithDepthWriteEnabled toggles writing fragment depth to the depth buffer.
//
// Parameters:
//   - enabled: whether passing fragments update the depth buffer
//
// Returns:
//   - PipelineBuilderOption: a function that sets the depth write state
func WithDepthWriteEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.depthWriteEnabled = enabled
	}
}

// WithBlendEnabled toggles alpha blending with the pipeline's blend state.
func WithBlendEnabled(enabled bool) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendEnabled = enabled
	}
}

// WithCullMode sets which triangle faces are discarded.
//
// Parameters:
//   - mode: wgpu.CullModeNone, wgpu.CullModeFront or wgpu.CullModeBack
//
// Returns:
//   - PipelineBuilderOption: a function that sets the cull mode
func WithCullMode(mode wgpu.CullMode) PipelineBuilderOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithTopology sets how vertices are assembled into primitives.
func WithTopology(topology wgpu.PrimitiveTopology) PipelineBuilderOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithFrontFace sets the winding order of front-facing triangles.
//
// Parameters:
//   - frontFace: wgpu.FrontFaceCCW or wgpu.FrontFaceCW
//
// Returns:
//   - PipelineBuilderOption: a function that sets the front face
func WithFrontFace(frontFace wgpu.FrontFace) PipelineBuilderOption {
	return func(p *pipeline) {
		p.frontFace = frontFace
	}
}

// WithWriteMask sets which color channels the pipeline writes.
func WithWriteMask(writeMask wgpu.ColorWriteMask) PipelineBuilderOption {
	return func(p *pipeline) {
		p.writeMask = writeMask
	}
}

// WithBlendState replaces the default alpha blend state. It only applies when blending is enabled.
//
// Parameters:
//   - blendState: the color and alpha blend components
//
// Returns:
//   - PipelineBuilderOption: a function that sets the blend state
func WithBlendState(blendState *wgpu.BlendState) PipelineBuilderOption {
	return func(p *pipeline) {
		p.blendState = blendState
	}
}
