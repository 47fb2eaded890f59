package render

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Nub/screenfx/render/bind_group_provider"
	"github.com/Nub/screenfx/render/pipeline"
	"github.com/Nub/screenfx/render/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

type wgpuEffectBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat *wgpu.TextureFormat
	surfaceWidth  uint32
	surfaceHeight uint32

	presentMode wgpu.PresentMode // defaults to PresentModeFifo (VSync)

	// Ping-pong pair for effect chaining. Each effect pass samples the source
	// texture and renders into the destination, then the roles swap. The
	// scene is seeded into index 0 at frame start.
	pingTextures [2]*wgpu.Texture
	pingViews    [2]*wgpu.TextureView
	chain        pingPong

	// screenLayout is the shared group 0 layout (texture + sampler) used to
	// build the transient per-pass source bind groups.
	screenLayout *wgpu.BindGroupLayout
	// linearSampler is the cached sampler bound alongside the source texture.
	linearSampler *wgpu.Sampler

	// Frame state for batched rendering across the frame's effect passes
	frameEncoder *wgpu.CommandEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
	// frameBindGroups holds the transient source bind groups created during
	// this frame; they are released after submission.
	frameBindGroups []*wgpu.BindGroup
}

var _ wgpuEffectBackend = &wgpuEffectBackendImpl{}

func newWGPUEffectBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool) wgpuEffectBackend {
	runtime.LockOSThread()
	b := &wgpuEffectBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		panic(err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Effect Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		panic(err)
	}
	b.device = d
	b.queue = d.GetQueue()

	layout, err := d.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Screen Texture Layout",
		Entries: shader.ScreenTextureLayoutDescriptor().Entries,
	})
	if err != nil {
		panic(err)
	}
	b.screenLayout = layout

	sampler, err := d.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Screen Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0.0,
		LodMaxClamp:   32.0,
		MaxAnisotropy: 1,
	})
	if err != nil {
		panic(err)
	}
	b.linearSampler = sampler

	return b
}

func (b *wgpuEffectBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]
	b.surfaceWidth = uint32(width)
	b.surfaceHeight = uint32(height)

	// CopyDst is required: the final composited texture is copied onto the
	// swapchain image rather than re-rendered.
	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageCopyDst,
		Format:      *b.surfaceFormat,
		Width:       b.surfaceWidth,
		Height:      b.surfaceHeight,
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	b.releasePingTexturesLocked()

	for i := range b.pingTextures {
		tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: fmt.Sprintf("Ping Texture %d", i),
			Size: wgpu.Extent3D{
				Width:              b.surfaceWidth,
				Height:             b.surfaceHeight,
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     wgpu.TextureDimension2D,
			Format:        *b.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopySrc,
		})
		if err != nil {
			panic(err)
		}
		view, err := tex.CreateView(nil)
		if err != nil {
			panic(err)
		}
		b.pingTextures[i] = tex
		b.pingViews[i] = view
	}
	b.chain.Reset()
}

func (b *wgpuEffectBackendImpl) releasePingTexturesLocked() {
	for i := range b.pingTextures {
		if b.pingViews[i] != nil {
			b.pingViews[i].Release()
			b.pingViews[i] = nil
		}
		if b.pingTextures[i] != nil {
			b.pingTextures[i].Release()
			b.pingTextures[i] = nil
		}
	}
}

func (b *wgpuEffectBackendImpl) SetPresentMode(mode PresentMode) {
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

func (b *wgpuEffectBackendImpl) CompilePipeline(p pipeline.Pipeline) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := p.Shader()
	if s == nil {
		return fmt.Errorf("pipeline %s has no shader set", p.PipelineKey())
	}

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: s.Key(),
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.Source(),
		},
	})
	if err != nil {
		return err
	}

	uniformLayout, err := b.device.CreateBindGroupLayout(func() *wgpu.BindGroupLayoutDescriptor {
		desc := s.BindGroupLayoutDescriptor(shader.GroupUniforms)
		return &desc
	}())
	if err != nil {
		return fmt.Errorf("failed to create uniform layout for %s: %w", p.PipelineKey(), err)
	}

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            p.PipelineKey(),
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.screenLayout, uniformLayout},
	})
	if err != nil {
		return err
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  p.PipelineKey() + " Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: s.VertexEntryPoint(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: s.FragmentEntryPoint(),
			Targets: []wgpu.ColorTargetState{
				func() wgpu.ColorTargetState {
					state := wgpu.ColorTargetState{
						Format:    p.TargetFormat(),
						WriteMask: p.WriteMask(),
					}
					if p.BlendEnabled() {
						state.Blend = p.BlendState()
					}
					return state
				}(),
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return err
	}

	p.SetRenderPipeline(created)

	return nil
}

func (b *wgpuEffectBackendImpl) InitUniformSlot(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(descriptor.Entries) == 0 {
		return nil
	}

	layout := provider.BindGroupLayout()
	if layout == nil {
		var err error
		layout, err = b.device.CreateBindGroupLayout(&descriptor)
		if err != nil {
			return err
		}
		provider.SetBindGroupLayout(layout)
	}

	bindGroupEntries := make([]wgpu.BindGroupEntry, len(descriptor.Entries))
	for i, entry := range descriptor.Entries {
		binding := int(entry.Binding)

		buf := provider.Buffer(binding)
		if buf == nil {
			var bufErr error
			buf, bufErr = b.device.CreateBuffer(&wgpu.BufferDescriptor{
				Label: provider.Label() + " Buffer",
				Size:  entry.Buffer.MinBindingSize,
				Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
			})
			if bufErr != nil {
				return bufErr
			}
			provider.SetBuffer(binding, buf)
		}
		bindGroupEntries[i] = wgpu.BindGroupEntry{
			Binding: entry.Binding,
			Buffer:  buf,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}
	}

	bindGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   provider.Label() + " Bind Group",
		Layout:  layout,
		Entries: bindGroupEntries,
	})
	if err != nil {
		return err
	}
	provider.SetBindGroup(bindGroup)

	return nil
}

func (b *wgpuEffectBackendImpl) WriteBuffers(writes []bind_group_provider.BufferWrite) {
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

func (b *wgpuEffectBackendImpl) BeginFrame(clear wgpu.Color) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Only one surface image may be acquired at a time.
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
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

	// Seed ping texture 0 with the scene. Effect passes then read from the
	// seeded texture and bounce between the pair.
	b.chain.Reset()
	scenePass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.pingViews[b.chain.Source()],
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clear,
			},
		},
	})
	scenePass.End()

	b.frameEncoder = encoder
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuEffectBackendImpl) EncodeEffectPass(p pipeline.Pipeline, uniforms bind_group_provider.BindGroupProvider) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameEncoder == nil {
		return fmt.Errorf("no frame in progress")
	}
	renderPipeline := p.Pipeline()
	if renderPipeline == nil {
		return fmt.Errorf("pipeline %s has not been compiled", p.PipelineKey())
	}

	// Transient bind group for this pass's source texture. The texture view
	// differs each pass because of the swap, so this cannot be cached.
	sourceGroup, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  p.PipelineKey() + " Source Bind Group",
		Layout: b.screenLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     shader.BindingTexture,
				TextureView: b.pingViews[b.chain.Source()],
			},
			{
				Binding: shader.BindingSampler,
				Sampler: b.linearSampler,
			},
		},
	})
	if err != nil {
		return err
	}
	b.frameBindGroups = append(b.frameBindGroups, sourceGroup)

	pass := b.frameEncoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.pingViews[b.chain.Dest()],
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
			},
		},
	})
	pass.SetPipeline(renderPipeline)
	pass.SetBindGroup(shader.GroupScreenTexture, sourceGroup, nil)
	pass.SetBindGroup(shader.GroupUniforms, uniforms.BindGroup(), nil)
	// Full-screen triangle, no vertex buffer.
	pass.Draw(3, 1, 0, 0)
	pass.End()

	b.chain.Swap()
	return nil
}

func (b *wgpuEffectBackendImpl) EndFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameEncoder == nil {
		return fmt.Errorf("no frame in progress")
	}

	// The composited result lives in the current source texture (the last
	// pass's destination, or the seeded scene when no passes ran).
	b.frameEncoder.CopyTextureToTexture(
		&wgpu.ImageCopyTexture{
			Texture:  b.pingTextures[b.chain.Source()],
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		&wgpu.ImageCopyTexture{
			Texture:  b.frameSurface,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		&wgpu.Extent3D{
			Width:              b.surfaceWidth,
			Height:             b.surfaceHeight,
			DepthOrArrayLayers: 1,
		},
	)

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.releaseFrameLocked()
		return err
	}

	b.queue.Submit(commandBuffer)
	commandBuffer.Release()

	b.frameEncoder.Release()
	b.frameEncoder = nil
	for _, bg := range b.frameBindGroups {
		bg.Release()
	}
	b.frameBindGroups = b.frameBindGroups[:0]
	return nil
}

// releaseFrameLocked drops all per-frame state after a failed submission.
func (b *wgpuEffectBackendImpl) releaseFrameLocked() {
	if b.frameEncoder != nil {
		b.frameEncoder.Release()
		b.frameEncoder = nil
	}
	for _, bg := range b.frameBindGroups {
		bg.Release()
	}
	b.frameBindGroups = b.frameBindGroups[:0]
	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	if b.frameSurface != nil {
		b.frameSurface.Release()
		b.frameSurface = nil
	}
}

func (b *wgpuEffectBackendImpl) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	// If no frame surface is held, nothing to present.
	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	if b.frameSurface != nil {
		b.frameSurface.Release()
		b.frameSurface = nil
	}
}

func (b *wgpuEffectBackendImpl) Device() *wgpu.Device {
	return b.device
}

func (b *wgpuEffectBackendImpl) Queue() *wgpu.Queue {
	return b.queue
}

func (b *wgpuEffectBackendImpl) Surface() *wgpu.Surface {
	return b.surface
}

func (b *wgpuEffectBackendImpl) SurfaceFormat() wgpu.TextureFormat {
	if b.surfaceFormat == nil {
		return wgpu.TextureFormatBGRA8Unorm
	}
	return *b.surfaceFormat
}

func (b *wgpuEffectBackendImpl) SurfaceSize() (uint32, uint32) {
	return b.surfaceWidth, b.surfaceHeight
}

func (b *wgpuEffectBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.releaseFrameLocked()
	b.releasePingTexturesLocked()

	if b.linearSampler != nil {
		b.linearSampler.Release()
		b.linearSampler = nil
	}
	if b.screenLayout != nil {
		b.screenLayout.Release()
		b.screenLayout = nil
	}
}
