package render

import (
	"github.com/Nub/screenfx/render/bind_group_provider"
	"github.com/Nub/screenfx/render/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuEffectBackend
}

// wgpuEffectBackend is the WebGPU backend contract for the effect chain. It
// owns the surface, the ping-pong texture pair, and all per-frame GPU state.
type wgpuEffectBackend interface {
	Device() *wgpu.Device
	Queue() *wgpu.Queue
	Surface() *wgpu.Surface

	// SurfaceFormat returns the configured swapchain texture format, the
	// format every effect pipeline's color target must match.
	SurfaceFormat() wgpu.TextureFormat

	// SurfaceSize returns the current surface dimensions in pixels.
	SurfaceSize() (width, height uint32)

	// ConfigureSurface (re)configures the swapchain and rebuilds the
	// ping-pong texture pair at the new dimensions.
	ConfigureSurface(width, height int)

	// SetPresentMode switches the surface present mode. Takes effect on the
	// next ConfigureSurface call.
	SetPresentMode(mode PresentMode)

	// CompilePipeline compiles the pipeline's shader module and creates the
	// underlying GPU render pipeline, storing it on the pipeline.
	CompilePipeline(p pipeline.Pipeline) error

	// InitUniformSlot allocates the uniform buffer and bind group for one
	// per-effect uniform slot according to the shader's group 1 layout.
	InitUniformSlot(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error

	// WriteBuffers stages queued buffer writes onto the GPU queue.
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// BeginFrame acquires the swapchain image, starts the frame's command
	// encoder and seeds the first ping-pong texture with the scene clear
	// color. Effect passes read from the seeded texture.
	BeginFrame(clear wgpu.Color) error

	// EncodeEffectPass records one full-screen effect pass reading the
	// current source texture and writing the destination texture, then swaps
	// the pair so the next pass reads this pass's output.
	EncodeEffectPass(p pipeline.Pipeline, uniforms bind_group_provider.BindGroupProvider) error

	// EndFrame copies the final composited texture to the swapchain image
	// and submits the frame's command buffer.
	EndFrame() error

	// Present presents the swapchain image to the display.
	Present()

	// Release frees the ping-pong textures and other GPU resources held by
	// the backend.
	Release()
}
