package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/uuid"
)

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is the debug label used for every GPU object created for this provider.
	label string

	// The following fields are GPU allocated resources populated by the Renderer, not by the owner.

	bindGroup *wgpu.BindGroup
	// bindGroupLayout is owned by the Renderer's layout cache and is never released here.
	bindGroupLayout *wgpu.BindGroupLayout
	buffers         map[int]*wgpu.Buffer
	textures        map[int]*wgpu.Texture
	textureViews    map[int]*wgpu.TextureView
	samplers        map[int]*wgpu.Sampler

	// The following fields are only set on mesh providers.

	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   uint32
	indexFormat  wgpu.IndexFormat
}

// BindGroupProvider holds the GPU resources owned by one engine component: a camera uniform,
// a light uniform, a material's textures and samplers, or a mesh's vertex and index buffers.
//
// Usage pattern:
//  1. The component creates a provider with NewBindGroupProvider.
//  2. The Renderer fills it (InitBindGroup, InitTextureView, InitSampler, InitMeshBuffers).
//  3. Per-frame uniform data is written through Renderer.WriteBuffers with a BufferWrite.
//  4. Draw code reads BindGroup(), VertexBuffer() and IndexBuffer() while recording a pass.
type BindGroupProvider interface {
	// Label returns the unique debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// BindGroup returns the created bind group, or nil before Renderer.InitBindGroup.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group or nil
	BindGroup() *wgpu.BindGroup

	// BindGroupLayout returns the layout the bind group was created against, or nil.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the layout or nil
	BindGroupLayout() *wgpu.BindGroupLayout

	// Buffer returns the buffer created for a binding, or nil.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer(binding int) *wgpu.Buffer

	// TextureView returns the texture view created for a binding, or nil.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.TextureView: the texture view or nil
	TextureView(binding int) *wgpu.TextureView

	// Sampler returns the sampler created for a binding, or nil.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Sampler: the sampler or nil
	Sampler(binding int) *wgpu.Sampler

	// VertexBuffer returns the mesh vertex buffer, or nil.
	VertexBuffer() *wgpu.Buffer

	// IndexBuffer returns the mesh index buffer, or nil.
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the number of indices to draw for the mesh.
	IndexCount() uint32

	// IndexFormat returns the element type of the index buffer. Defaults to Uint32.
	IndexFormat() wgpu.IndexFormat

	// SetBindGroup stores the bind group created by the Renderer.
	SetBindGroup(bg *wgpu.BindGroup)

	// SetBindGroupLayout stores the layout created by the Renderer. The Renderer keeps ownership of it.
	SetBindGroupLayout(bgl *wgpu.BindGroupLayout)

	// SetBuffer stores the buffer created for a binding.
	SetBuffer(binding int, buf *wgpu.Buffer)

	// SetTexture stores a texture and its view for a binding. The provider owns both.
	SetTexture(binding int, tex *wgpu.Texture, view *wgpu.TextureView)

	// SetSampler stores the sampler created for a binding.
	SetSampler(binding int, s *wgpu.Sampler)

	// SetMeshBuffers stores the vertex and index buffers of a mesh.
	//
	// Parameters:
	//   - vertex: the vertex buffer
	//   - index: the index buffer
	//   - count: the number of indices
	//   - format: the element type of the index buffer
	SetMeshBuffers(vertex, index *wgpu.Buffer, count uint32, format wgpu.IndexFormat)

	// Release releases every GPU resource held by this provider and clears the references.
	Release()
}

// BufferWrite describes a single GPU buffer write targeting a binding of a provider at a byte offset.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}

var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates an empty provider. The label is the given name with a short
// random suffix so that GPU validation messages identify the exact resource.
//
// Parameters:
//   - name: human readable prefix of the label (e.g. "camera", "material_crate")
//   - options: functional options to configure the provider
//
// Returns:
//   - BindGroupProvider: the new provider
func NewBindGroupProvider(name string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label:        name + "_" + uuid.NewString()[:8],
		buffers:      make(map[int]*wgpu.Buffer),
		textures:     make(map[int]*wgpu.Texture),
		textureViews: make(map[int]*wgpu.TextureView),
		samplers:     make(map[int]*wgpu.Sampler),
		indexFormat:  wgpu.IndexFormatUint32,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *bindGroupProvider) BindGroupLayout() *wgpu.BindGroupLayout {
	return p.bindGroupLayout
}

func (p *bindGroupProvider) Buffer(binding int) *wgpu.Buffer {
	return p.buffers[binding]
}

func (p *bindGroupProvider) TextureView(binding int) *wgpu.TextureView {
	return p.textureViews[binding]
}

func (p *bindGroupProvider) Sampler(binding int) *wgpu.Sampler {
	return p.samplers[binding]
}

func (p *bindGroupProvider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *bindGroupProvider) IndexBuffer() *wgpu.Buffer {
	return p.indexBuffer
}

func (p *bindGroupProvider) IndexCount() uint32 {
	return p.indexCount
}

func (p *bindGroupProvider) IndexFormat() wgpu.IndexFormat {
	return p.indexFormat
}

func (p *bindGroupProvider) SetBindGroup(bg *wgpu.BindGroup) {
	p.bindGroup = bg
}

func (p *bindGroupProvider) SetBindGroupLayout(bgl *wgpu.BindGroupLayout) {
	p.bindGroupLayout = bgl
}

func (p *bindGroupProvider) SetBuffer(binding int, buf *wgpu.Buffer) {
	p.buffers[binding] = buf
}

func (p *bindGroupProvider) SetTexture(binding int, tex *wgpu.Texture, view *wgpu.TextureView) {
	p.textures[binding] = tex
	p.textureViews[binding] = view
}

func (p *bindGroupProvider) SetSampler(binding int, s *wgpu.Sampler) {
	p.samplers[binding] = s
}

func (p *bindGroupProvider) SetMeshBuffers(vertex, index *wgpu.Buffer, count uint32, format wgpu.IndexFormat) {
	p.vertexBuffer = vertex
	p.indexBuffer = index
	p.indexCount = count
	p.indexFormat = format
}

func (p *bindGroupProvider) Release() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	p.bindGroupLayout = nil

	for i, tv := range p.textureViews {
		if tv != nil {
			tv.Release()
		}
		delete(p.textureViews, i)
	}
	for i, tex := range p.textures {
		if tex != nil {
			tex.Release()
		}
		delete(p.textures, i)
	}
	for i, s := range p.samplers {
		if s != nil {
			s.Release()
		}
		delete(p.samplers, i)
	}
	for i, buf := range p.buffers {
		if buf != nil {
			buf.Release()
		}
		delete(p.buffers, i)
	}

	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
	if p.indexBuffer != nil {
		p.indexBuffer.Release()
		p.indexBuffer = nil
	}
	p.indexCount = 0
}
