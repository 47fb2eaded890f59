package shader

import (
	_ "embed"
	"strings"

	"github.com/Nub/screenfx/effect"
)

// fullscreenVertexSource is the shared WGSL vertex stage for every effect pass.
// It emits a single oversized triangle from the vertex index, so effect
// pipelines never bind a vertex buffer.
//
//go:embed assets/fullscreen.wgsl
var fullscreenVertexSource string

//go:embed assets/shockwave.wgsl
var shockwaveSource string

//go:embed assets/radial_blur.wgsl
var radialBlurSource string

//go:embed assets/raindrops.wgsl
var raindropsSource string

//go:embed assets/heat_haze.wgsl
var heatHazeSource string

//go:embed assets/rgb_split.wgsl
var rgbSplitSource string

//go:embed assets/scanline_glitch.wgsl
var scanlineGlitchSource string

//go:embed assets/block_glitch.wgsl
var blockGlitchSource string

//go:embed assets/static_noise.wgsl
var staticNoiseSource string

//go:embed assets/emp.wgsl
var empSource string

//go:embed assets/crt.wgsl
var crtSource string

//go:embed assets/damage_vignette.wgsl
var damageVignetteSource string

//go:embed assets/flash.wgsl
var flashSource string

//go:embed assets/speed_lines.wgsl
var speedLinesSource string

// fragmentSource returns the WGSL fragment stage for the given effect type.
//
// Parameters:
//   - t: the effect type to look up
//
// Returns:
//   - string: the fragment shader source, or an empty string for an unknown type
func fragmentSource(t effect.Type) string {
	switch t {
	case effect.TypeShockwave:
		return shockwaveSource
	case effect.TypeRadialBlur:
		return radialBlurSource
	case effect.TypeRaindrops:
		return raindropsSource
	case effect.TypeHeatHaze:
		return heatHazeSource
	case effect.TypeRgbSplit:
		return rgbSplitSource
	case effect.TypeScanlineGlitch:
		return scanlineGlitchSource
	case effect.TypeBlockGlitch:
		return blockGlitchSource
	case effect.TypeStaticNoise:
		return staticNoiseSource
	case effect.TypeEmpInterference:
		return empSource
	case effect.TypeCrt:
		return crtSource
	case effect.TypeDamageVignette:
		return damageVignetteSource
	case effect.TypeFlash:
		return flashSource
	case effect.TypeSpeedLines:
		return speedLinesSource
	default:
		return ""
	}
}

const (
	chromaticOff = "const CHROMATIC: bool = false;"
	chromaticOn  = "const CHROMATIC: bool = true;"
)

// applyVariants specializes a fragment source for the requested variant flags
// by rewriting the variant constants the source declares. Sources that do not
// declare a constant for a requested flag are returned unchanged, so flags are
// safe to pass for any effect type.
//
// Parameters:
//   - source: the fragment shader source to specialize
//   - flags: the variant flags to enable
//
// Returns:
//   - string: the specialized source
func applyVariants(source string, flags effect.VariantFlags) string {
	if flags&effect.VariantChromatic != 0 {
		source = strings.Replace(source, chromaticOff, chromaticOn, 1)
	}
	return source
}

// variantKey builds the cache key for an (effect type, variant flags) pair,
// e.g. "shockwave" or "shockwave+chromatic".
//
// Parameters:
//   - t: the effect type
//   - flags: the variant flags baked into the compiled shader
//
// Returns:
//   - string: a stable, human-readable key
func variantKey(t effect.Type, flags effect.VariantFlags) string {
	key := t.String()
	if flags&effect.VariantChromatic != 0 {
		key += "+chromatic"
	}
	return key
}
