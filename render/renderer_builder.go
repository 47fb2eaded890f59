package render

import "github.com/cogentcore/webgpu/wgpu"

type RendererBuilderOption func(*renderer)

// WithPresentMode sets the present mode the surface is configured with.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that sets the present mode of the renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithForceSoftwareRenderer requests a fallback (software) adapter instead of
// a hardware GPU. Useful on headless machines and in CI.
//
// Returns:
//   - RendererBuilderOption: a function that enables the fallback adapter
func WithForceSoftwareRenderer() RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = true
	}
}

// WithClearColor sets the scene color the frame is seeded with before the
// effect chain runs.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - RendererBuilderOption: a function that sets the clear color of the renderer
func WithClearColor(c wgpu.Color) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = c
	}
}

// WithoutWarmup skips eager compilation of every effect pipeline at startup.
// Pipelines are then compiled lazily on first use.
//
// Returns:
//   - RendererBuilderOption: a function that disables startup pipeline warming
func WithoutWarmup() RendererBuilderOption {
	return func(r *renderer) {
		r.skipWarm = true
	}
}
