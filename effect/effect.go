package effect

// Type identifies one of the closed set of screen effect variants. The set is
// fixed at compile time; every Type has a matching params struct, a uniform
// layout, and an embedded shader.
type Type int

const (
	// TypeShockwave is an expanding ring of distortion from a point.
	TypeShockwave Type = iota

	// TypeRadialBlur is a directional blur radiating from a focal point.
	TypeRadialBlur

	// TypeRaindrops is a refractive water-droplet overlay.
	TypeRaindrops

	// TypeHeatHaze is a wavy air-shimmer displacement.
	TypeHeatHaze

	// TypeRgbSplit offsets the color channels independently.
	TypeRgbSplit

	// TypeScanlineGlitch displaces horizontal scanline bands.
	TypeScanlineGlitch

	// TypeBlockGlitch displaces random rectangular blocks.
	TypeBlockGlitch

	// TypeStaticNoise overlays analog TV static.
	TypeStaticNoise

	// TypeEmpInterference combines flicker, rolling bands, and static bursts.
	TypeEmpInterference

	// TypeCrt emulates a curved CRT monitor with scanlines and phosphor mask.
	TypeCrt

	// TypeDamageVignette pulses a colored vignette at the screen edges.
	TypeDamageVignette

	// TypeFlash is a full-screen color flash.
	TypeFlash

	// TypeSpeedLines draws anime-style motion lines converging on a focus point.
	TypeSpeedLines

	// typeCount is the number of effect types; internal sentinel for iteration.
	typeCount
)

var typeNames = [typeCount]string{
	"shockwave",
	"radial_blur",
	"raindrops",
	"heat_haze",
	"rgb_split",
	"scanline_glitch",
	"block_glitch",
	"static_noise",
	"emp_interference",
	"crt",
	"damage_vignette",
	"flash",
	"speed_lines",
}

// String returns the lower-snake name of the effect type, used as the base of
// pipeline keys and GPU debug labels.
//
// Returns:
//   - string: the effect type name, or "unknown" for out-of-range values
func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "unknown"
	}
	return typeNames[t]
}

// Valid reports whether t is a member of the closed effect type set.
//
// Returns:
//   - bool: true if t names a known effect type
func (t Type) Valid() bool {
	return t >= 0 && t < typeCount
}

// AllTypes returns every member of the closed effect type set, in category
// pass order. Used to warm the pipeline cache at startup.
//
// Returns:
//   - []Type: all effect types
func AllTypes() []Type {
	types := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}

// Category groups effect types for compositing order. Distortion passes run
// first (they sample neighboring pixels and must see an undistorted input),
// then glitch passes, then feedback overlays last.
type Category int

const (
	// CategoryDistortion warps the image by displacing sample coordinates.
	CategoryDistortion Category = iota

	// CategoryGlitch corrupts the already-distorted image.
	CategoryGlitch

	// CategoryFeedback overlays color on top without displacing anything.
	CategoryFeedback
)

// String returns the category name.
//
// Returns:
//   - string: "distortion", "glitch", or "feedback"
func (c Category) String() string {
	switch c {
	case CategoryDistortion:
		return "distortion"
	case CategoryGlitch:
		return "glitch"
	case CategoryFeedback:
		return "feedback"
	default:
		return "unknown"
	}
}

// categoryOf maps every effect type to its fixed category. The table drives
// compositor pass ordering; it is exhaustive over the closed type set.
var categoryOf = [typeCount]Category{
	TypeShockwave:       CategoryDistortion,
	TypeRadialBlur:      CategoryDistortion,
	TypeRaindrops:       CategoryDistortion,
	TypeHeatHaze:        CategoryDistortion,
	TypeRgbSplit:        CategoryGlitch,
	TypeScanlineGlitch:  CategoryGlitch,
	TypeBlockGlitch:     CategoryGlitch,
	TypeStaticNoise:     CategoryGlitch,
	TypeEmpInterference: CategoryGlitch,
	TypeCrt:             CategoryGlitch,
	TypeDamageVignette:  CategoryFeedback,
	TypeFlash:           CategoryFeedback,
	TypeSpeedLines:      CategoryFeedback,
}

// CategoryOf returns the fixed category for an effect type.
//
// Parameters:
//   - t: the effect type to classify
//
// Returns:
//   - Category: the category driving the type's pass order
func CategoryOf(t Type) Category {
	return categoryOf[t]
}

// VariantFlags select a shader specialization of an effect type. The pipeline
// cache keys on (Type, VariantFlags), so distinct flag combinations compile
// distinct pipelines.
type VariantFlags uint32

const (
	// VariantChromatic enables the chromatic aberration branch of the
	// shockwave shader.
	VariantChromatic VariantFlags = 1 << iota
)

// Params is the tagged variant carried by every effect instance: one concrete
// struct per effect type, dispatched on Type() inside the resource preparer
// and compositor. Implementations are plain value types; copying the
// interface value copies the parameters.
type Params interface {
	// Type returns the effect type tag for this parameter set.
	//
	// Returns:
	//   - Type: the effect type
	Type() Type

	// VariantFlags returns the shader specialization flags implied by the
	// current parameter values. Most types have none.
	//
	// Returns:
	//   - VariantFlags: the variant flag set, zero for unspecialized types
	VariantFlags() VariantFlags
}
