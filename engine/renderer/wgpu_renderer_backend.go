package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/lumen/common"
	"github.com/Carmen-Shannon/lumen/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/lumen/engine/renderer/draw"
	"github.com/Carmen-Shannon/lumen/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/lumen/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// depthFormat is the format of the depth attachment shared by every pipeline.
const depthFormat = wgpu.TextureFormatDepth24Plus

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	width, height        int
	msaaTexture          *wgpu.Texture
	msaaTextureView      *wgpu.TextureView
	depthTexture         *wgpu.Texture
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor
	clearColor           wgpu.Color

	presentMode wgpu.PresentMode
	sampleCount MSAASampleCount

	// layouts caches bind group layouts by descriptor label so bind groups and pipelines share them.
	layouts map[string]*wgpu.BindGroupLayout

	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

type wgpuRendererBackend interface {
	// ConfigureSurface configures the surface for a new size and recreates the depth and
	// multisample attachments to match. Zero sizes are ignored.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SurfaceSize returns the size the surface was last configured with.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	SurfaceSize() (int, int)

	// SetPresentMode sets the surface present mode. It applies on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the color the frame is cleared to.
	//
	// Parameters:
	//   - c: the clear color
	SetClearColor(c wgpu.Color)

	// RegisterRenderPipeline creates the shader module, pipeline layout and render pipeline for p.
	//
	// Parameters:
	//   - p: the pipeline object containing the shader and fixed-function configuration
	//
	// Returns:
	//   - error: an error if the pipeline could not be created
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// InitMeshBuffers uploads vertex and index data and stores the buffers on the provider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created buffers on
	//   - vertexData: the raw vertex bytes
	//   - indexData: the raw index bytes, padded to a multiple of 4
	//   - indexCount: the number of indices drawn
	//   - format: the index format of indexData
	//
	// Returns:
	//   - error: an error if the buffers could not be created
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount uint32, format wgpu.IndexFormat) error

	// InitVertexBuffer uploads per-instance vertex data into a writable buffer stored at binding.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the buffer on
	//   - binding: the key the buffer is stored and later written under
	//   - data: the initial contents
	//
	// Returns:
	//   - error: an error if the buffer could not be created
	InitVertexBuffer(provider bind_group_provider.BindGroupProvider, binding int, data []byte) error

	// InitBindGroup creates missing uniform buffers and the bind group described by descriptor.
	// Textures and samplers must already be stored on the provider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the bind group on
	//   - descriptor: the layout of the bind group
	//
	// Returns:
	//   - error: an error if the bind group could not be created
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error

	// InitTextureView creates and fills a texture from staging data and stores it at bindingKey.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the texture on
	//   - bindingKey: the binding index of the texture
	//   - stagingData: the pixel data and dimensions
	//
	// Returns:
	//   - error: an error if the texture could not be created
	InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error

	// InitSampler creates a sampler and stores it at bindingKey.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the sampler on
	//   - bindingKey: the binding index of the sampler
	//   - samplerStagingData: the sampler configuration
	//
	// Returns:
	//   - error: an error if the sampler could not be created
	InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error

	// WriteBuffers queues every write. Writes to bindings without a buffer are skipped.
	//
	// Parameters:
	//   - writes: the buffer writes
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the surface texture and begins the main render pass.
	//
	// Returns:
	//   - error: the surface error if the texture could not be acquired
	BeginFrame() error

	// FramePass returns the render pass of the current frame, or nil outside a frame.
	//
	// Returns:
	//   - draw.Pass: the current render pass
	FramePass() draw.Pass

	// EndFrame ends the render pass and submits the recorded commands.
	//
	// Returns:
	//   - error: an error if the command buffer could not be finished
	EndFrame() error

	// Present presents the surface texture and releases the frame's references.
	Present()

	// Release frees the attachments, the device and the surface.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) wgpuRendererBackend {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: sampleCount,
		clearColor:  wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		layouts:     make(map[string]*wgpu.BindGroupLayout),
	}
	w.surface = w.instance.CreateSurface(surfaceDescriptor)

	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    w.surface,
	})
	if err != nil {
		panic(err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "lumen device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		panic(err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]
	b.width, b.height = width, height

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releaseAttachments()

	count := uint32(b.sampleCount)
	msaaEnabled := count > 1

	if msaaEnabled {
		// The pass draws into the multisampled texture and resolves into the swapchain view.
		b.msaaTexture, b.msaaTextureView = b.createAttachment("msaa texture", *b.surfaceFormat, count)
	}
	b.depthTexture, b.depthTextureView = b.createAttachment("depth texture", depthFormat, count)

	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.msaaTextureView, // nil without MSAA; BeginFrame sets the swapchain view
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    storeOp,
				ClearValue: b.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

// createAttachment creates a render attachment texture sized to the configured surface.
// Failing to create one leaves the renderer unusable, so it panics like device creation does.
func (b *wgpuRendererBackendImpl) createAttachment(label string, format wgpu.TextureFormat, sampleCount uint32) (*wgpu.Texture, *wgpu.TextureView) {
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: label,
		Size: wgpu.Extent3D{
			Width:              uint32(b.width),
			Height:             uint32(b.height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     wgpu.TextureDimension2D,
		Format:        format,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		panic(err)
	}
	return tex, view
}

func (b *wgpuRendererBackendImpl) releaseAttachments() {
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTextureView = nil
	}
	if b.msaaTexture != nil {
		b.msaaTexture.Release()
		b.msaaTexture = nil
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}
}

func (b *wgpuRendererBackendImpl) SurfaceSize() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) SetClearColor(c wgpu.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.clearColor = c
	if b.renderPassDescriptor != nil {
		b.renderPassDescriptor.ColorAttachments[0].ClearValue = c
	}
}

// bindGroupLayout returns the cached layout for desc, creating it on first use.
// The caller must hold b.mu.
func (b *wgpuRendererBackendImpl) bindGroupLayout(desc wgpu.BindGroupLayoutDescriptor) (*wgpu.BindGroupLayout, error) {
	if layout, ok := b.layouts[desc.Label]; ok && desc.Label != "" {
		return layout, nil
	}
	layout, err := b.device.CreateBindGroupLayout(&desc)
	if err != nil {
		return nil, err
	}
	if desc.Label != "" {
		b.layouts[desc.Label] = layout
	}
	return layout, nil
}

func (b *wgpuRendererBackendImpl) RegisterRenderPipeline(p pipeline.Pipeline) error {
	s := p.Shader()
	if s == nil {
		return errors.New("a shader must be set to create a render pipeline")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.surfaceFormat == nil {
		return errors.New("surface must be configured before registering pipelines")
	}

	module, err := b.device.CreateShaderModule(s.Module())
	if err != nil {
		return fmt.Errorf("shader module %s: %w", s.Key(), err)
	}
	defer module.Release()

	descriptors := s.BindGroupLayoutDescriptors()
	bindGroupLayouts := make([]*wgpu.BindGroupLayout, len(descriptors))
	for g, desc := range descriptors {
		layout, layoutErr := b.bindGroupLayout(desc)
		if layoutErr != nil {
			return fmt.Errorf("failed to create bind group layout for group %d: %w", g, layoutErr)
		}
		bindGroupLayouts[g] = layout
	}

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            p.PipelineKey(),
		BindGroupLayouts: bindGroupLayouts,
	})
	if err != nil {
		return err
	}
	defer pipelineLayout.Release()

	colorTarget := wgpu.ColorTargetState{
		Format:    *b.surfaceFormat,
		WriteMask: p.WriteMask(),
	}
	if p.BlendEnabled() {
		colorTarget.Blend = p.BlendState()
	}

	depthCompare := wgpu.CompareFunctionLess
	if !p.DepthTestEnabled() {
		depthCompare = wgpu.CompareFunctionAlways
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " render pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: shader.VertexEntryPoint,
			Buffers:    s.VertexLayouts(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: shader.FragmentEntryPoint,
			Targets:    []wgpu.ColorTargetState{colorTarget},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.Topology(),
			FrontFace: p.FrontFace(),
			CullMode:  p.CullMode(),
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: p.DepthWriteEnabled(),
			DepthCompare:      depthCompare,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return err
	}

	p.SetRenderPipeline(created)
	return nil
}

func (b *wgpuRendererBackendImpl) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount uint32, format wgpu.IndexFormat) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	vertexBuffer, err := b.createBuffer(provider.Label()+" vertex buffer", vertexData, wgpu.BufferUsageVertex)
	if err != nil {
		return err
	}
	indexBuffer, err := b.createBuffer(provider.Label()+" index buffer", indexData, wgpu.BufferUsageIndex)
	if err != nil {
		vertexBuffer.Release()
		return err
	}

	provider.SetMeshBuffers(vertexBuffer, indexBuffer, indexCount, format)
	return nil
}

func (b *wgpuRendererBackendImpl) InitVertexBuffer(provider bind_group_provider.BindGroupProvider, binding int, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, err := b.createBuffer(provider.Label()+" instance buffer", data, wgpu.BufferUsageVertex)
	if err != nil {
		return err
	}
	provider.SetBuffer(binding, buf)
	return nil
}

// createBuffer creates a copy-destination buffer with the extra usage and uploads data into it.
// The caller must hold b.mu.
func (b *wgpuRendererBackendImpl) createBuffer(label string, data []byte, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: no data", label)
	}
	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	b.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

func (b *wgpuRendererBackendImpl) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(descriptor.Entries) == 0 {
		return nil
	}

	layout := provider.BindGroupLayout()
	if layout == nil {
		var err error
		layout, err = b.bindGroupLayout(descriptor)
		if err != nil {
			return err
		}
		provider.SetBindGroupLayout(layout)
	}

	entries := make([]wgpu.BindGroupEntry, len(descriptor.Entries))
	for i, entry := range descriptor.Entries {
		binding := int(entry.Binding)

		switch {
		case entry.Texture.SampleType != wgpu.TextureSampleTypeUndefined:
			tv := provider.TextureView(binding)
			if tv == nil {
				return fmt.Errorf("texture binding %d has no texture view, call InitTextureView first", binding)
			}
			entries[i] = wgpu.BindGroupEntry{Binding: entry.Binding, TextureView: tv}
		case entry.Sampler.Type != wgpu.SamplerBindingTypeUndefined:
			samp := provider.Sampler(binding)
			if samp == nil {
				return fmt.Errorf("sampler binding %d has no sampler, call InitSampler first", binding)
			}
			entries[i] = wgpu.BindGroupEntry{Binding: entry.Binding, Sampler: samp}
		default:
			buf := provider.Buffer(binding)
			if buf == nil {
				usage := wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst
				if entry.Buffer.Type != wgpu.BufferBindingTypeUniform {
					usage = wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst
				}
				var err error
				buf, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
					Label: provider.Label() + " uniform buffer",
					Size:  entry.Buffer.MinBindingSize,
					Usage: usage,
				})
				if err != nil {
					return err
				}
				provider.SetBuffer(binding, buf)
			}
			entries[i] = wgpu.BindGroupEntry{
				Binding: entry.Binding,
				Buffer:  buf,
				Offset:  0,
				Size:    wgpu.WholeSize,
			}
		}
	}

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   provider.Label() + " bind group",
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		return err
	}
	provider.SetBindGroup(bindGroup)
	return nil
}

func (b *wgpuRendererBackendImpl) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	format := wgpu.TextureFormatRGBA8UnormSrgb
	if stagingData.Linear {
		format = wgpu.TextureFormatRGBA8Unorm
	}

	size := wgpu.Extent3D{
		Width:              stagingData.Width,
		Height:             stagingData.Height,
		DepthOrArrayLayers: 1,
	}
	tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         fmt.Sprintf("%s texture %d", provider.Label(), bindingKey),
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Dimension:     wgpu.TextureDimension2D,
		Size:          size,
		Format:        format,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if err != nil {
		return err
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		stagingData.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  stagingData.Width * 4,
			RowsPerImage: stagingData.Height,
		},
		&size,
	)

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return err
	}
	provider.SetTexture(bindingKey, tex, view)
	return nil
}

func (b *wgpuRendererBackendImpl) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := samplerStagingData.Resolved()
	samp, err := b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         fmt.Sprintf("%s sampler %d", provider.Label(), bindingKey),
		AddressModeU:  s.AddressModeU,
		AddressModeV:  s.AddressModeV,
		AddressModeW:  s.AddressModeW,
		MagFilter:     s.MagFilter,
		MinFilter:     s.MinFilter,
		MipmapFilter:  s.MipmapFilter,
		LodMinClamp:   s.LodMinClamp,
		LodMaxClamp:   s.LodMaxClamp,
		MaxAnisotropy: s.MaxAnisotropy,
	})
	if err != nil {
		return err
	}
	provider.SetSampler(bindingKey, samp)
	return nil
}

func (b *wgpuRendererBackendImpl) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, w := range writes {
		buf := w.Provider.Buffer(w.Binding)
		if buf == nil {
			continue
		}
		b.queue.WriteBuffer(buf, w.Offset, w.Data)
	}
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface != nil {
		return errors.New("previous frame surface not yet presented")
	}
	if b.renderPassDescriptor == nil {
		return errors.New("surface is not configured")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	if surfaceTexture == nil {
		return ErrSurfaceOutdated
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	if b.sampleCount > 1 {
		b.renderPassDescriptor.ColorAttachments[0].ResolveTarget = view
	} else {
		b.renderPassDescriptor.ColorAttachments[0].View = view
	}

	b.frameEncoder = encoder
	b.framePass = encoder.BeginRenderPass(b.renderPassDescriptor)
	b.frameSurface = surfaceTexture
	b.frameView = view
	return nil
}

func (b *wgpuRendererBackendImpl) FramePass() draw.Pass {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return nil
	}
	return b.framePass
}

func (b *wgpuRendererBackendImpl) EndFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return errors.New("no frame in progress")
	}

	b.framePass.End()
	b.framePass.Release()
	b.framePass = nil

	commandBuffer, err := b.frameEncoder.Finish(nil)
	b.frameEncoder.Release()
	b.frameEncoder = nil
	if err != nil {
		b.releaseFrame()
		return err
	}

	b.queue.Submit(commandBuffer)
	commandBuffer.Release()
	return nil
}

func (b *wgpuRendererBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}
	b.surface.Present()
	b.releaseFrame()
}

// releaseFrame drops the swapchain view and texture of the current frame. The caller must hold b.mu.
func (b *wgpuRendererBackendImpl) releaseFrame() {
	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	if b.frameSurface != nil {
		b.frameSurface.Release()
		b.frameSurface = nil
	}
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.releaseFrame()
	b.releaseAttachments()
	for label, layout := range b.layouts {
		layout.Release()
		delete(b.layouts, label)
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
