package render

import (
	"sync"

	"github.com/Nub/screenfx/effect"
	"github.com/Nub/screenfx/registry"
	"github.com/Nub/screenfx/render/pipeline"
	"github.com/Nub/screenfx/render/shader"
	"github.com/Nub/screenfx/window"
	"github.com/cogentcore/webgpu/wgpu"
	log "github.com/sirupsen/logrus"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	cache      PipelineCache
	extractor  *Extractor
	preparer   *Preparer
	compositor *Compositor

	clearColor wgpu.Color

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	skipWarm             bool
}

// Renderer defines the interface for the effect rendering system.
//
// This is a high-level API designed to simplify the effect chain into a streamlined and idiomatic flow.
// The Renderer owns the pipeline cache, the per-frame snapshot extraction, uniform preparation and
// pass compositing. The Renderer also implements a backend which allows for multiple backend API
// implementations to exist.
type Renderer interface {
	// RenderFrame runs one complete frame: extracts the registry's live
	// effects, seeds the scene with the clear color, encodes every visible
	// effect pass in category order and presents the result. With no visible
	// effects the seeded scene is presented untouched.
	//
	// Parameters:
	//   - reg: the registry holding the live effect instances
	//   - delta: the simulation step for this frame, in seconds
	//
	// Returns:
	//   - int: the number of effect passes encoded
	//   - error: an error if the frame could not be started or submitted
	RenderFrame(reg registry.Registry, delta float32) (int, error)

	// Resize reconfigures the surface and the ping-pong textures for new
	// window dimensions.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// SetPresentMode switches the surface present mode.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// SetClearColor sets the scene color the frame is seeded with before the
	// effect chain runs.
	//
	// Parameters:
	//   - c: the clear color
	SetClearColor(c wgpu.Color)

	// Cache returns the renderer's pipeline cache.
	//
	// Returns:
	//   - PipelineCache: the cache holding compiled effect pipelines
	Cache() PipelineCache

	// ReloadShader drops every cached pipeline specialization of one effect
	// type so the next frame recompiles it from current shader sources.
	//
	// Parameters:
	//   - t: the effect type to reload
	ReloadShader(t effect.Type)

	// Release frees the uniform slot pool and backend GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type and window.
// The window provides the platform-specific surface descriptor for WebGPU surface creation.
// Every known effect pipeline is compiled eagerly unless warming is disabled, so a broken
// shader fails at startup rather than at some later spawn.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - win: the window to render into
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, win window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPUEffectBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(win.Width(), win.Height())

	r.cache = NewPipelineCache(r.compilePipeline)
	r.extractor = NewExtractor()
	r.preparer = NewPreparer(r.backend)
	r.compositor = NewCompositor(r.backend, r.cache)

	if !r.skipWarm {
		if err := r.cache.Warm(); err != nil {
			log.WithError(err).Fatal("renderer startup failed: could not warm pipeline cache")
		}
	}
	return r
}

// compilePipeline is the CompileFunc wired into the pipeline cache: it builds
// the shader for the variant, wraps it in a pipeline targeting the surface
// format and compiles it on the backend.
func (r *renderer) compilePipeline(t effect.Type, flags effect.VariantFlags) (pipeline.Pipeline, error) {
	s := shader.ForEffect(t, flags, UniformSizeOf(t))
	p := pipeline.NewPipeline(s.Key(),
		pipeline.WithShader(s),
		pipeline.WithTargetFormat(r.backend.SurfaceFormat()),
	)
	if err := r.backend.CompilePipeline(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *renderer) RenderFrame(reg registry.Registry, delta float32) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frame := r.extractor.Extract(reg, delta)

	if err := r.backend.BeginFrame(r.clearColor); err != nil {
		return 0, err
	}

	encoded := 0
	if !frame.Empty() {
		width, height := r.backend.SurfaceSize()
		passes := r.preparer.Prepare(frame, width, height)
		encoded = r.compositor.Composite(passes)
	}

	if err := r.backend.EndFrame(); err != nil {
		return encoded, err
	}
	r.backend.Present()
	return encoded, nil
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
	// The mode only applies on surface configuration, so reconfigure at the
	// current size to switch immediately.
	width, height := r.backend.SurfaceSize()
	r.backend.ConfigureSurface(int(width), int(height))
}

func (r *renderer) SetClearColor(c wgpu.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = c
}

func (r *renderer) Cache() PipelineCache {
	return r.cache
}

func (r *renderer) ReloadShader(t effect.Type) {
	r.cache.Invalidate(t)
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.preparer.Release()
	r.cache.InvalidateAll()
	r.backend.Release()
}
