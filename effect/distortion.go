package effect

import "github.com/go-gl/mathgl/mgl32"

// Shockwave is an expanding ring of distortion radiating from a point,
// commonly used for explosions, impacts, or ability activations. Positions
// use normalized screen coordinates (0,0 top-left to 1,1 bottom-right).
type Shockwave struct {
	// Center of the shockwave in normalized screen coordinates.
	Center mgl32.Vec2
	// Strength is the maximum displacement applied inside the ring.
	Strength float32
	// RingWidth is the thickness of the distortion ring.
	RingWidth float32
	// MaxRadius is the radius the ring expands to over the lifetime.
	MaxRadius float32
	// Chromatic also applies chromatic aberration along the ring. Selects a
	// specialized shader variant.
	Chromatic bool
}

// ShockwaveAt creates a shockwave at the given normalized screen position
// with the default ring shape.
//
// Parameters:
//   - x: horizontal center in [0, 1]
//   - y: vertical center in [0, 1]
//
// Returns:
//   - Shockwave: the configured parameters
func ShockwaveAt(x, y float32) Shockwave {
	return Shockwave{
		Center:    mgl32.Vec2{x, y},
		Strength:  0.25,
		RingWidth: 0.1,
		MaxRadius: 0.8,
		Chromatic: true,
	}
}

func (Shockwave) Type() Type { return TypeShockwave }

func (s Shockwave) VariantFlags() VariantFlags {
	if s.Chromatic {
		return VariantChromatic
	}
	return 0
}

// RadialBlur blurs the image along rays radiating from a focal point, used
// for speed boosts, explosions, or drawing attention to a point.
type RadialBlur struct {
	// Center is the blur focal point in normalized screen coordinates.
	Center mgl32.Vec2
	// Strength scales how far along the ray each sample reaches.
	Strength float32
	// Samples is the tap count per pixel; more is smoother and slower.
	Samples uint32
}

// RadialBlurAt creates a radial blur focused on the given normalized screen
// position.
//
// Parameters:
//   - x: horizontal focus in [0, 1]
//   - y: vertical focus in [0, 1]
//
// Returns:
//   - RadialBlur: the configured parameters
func RadialBlurAt(x, y float32) RadialBlur {
	return RadialBlur{
		Center:   mgl32.Vec2{x, y},
		Strength: 0.02,
		Samples:  16,
	}
}

func (RadialBlur) Type() Type                 { return TypeRadialBlur }
func (RadialBlur) VariantFlags() VariantFlags { return 0 }

// Raindrops overlays refractive water droplets running down the screen.
type Raindrops struct {
	// DropSize scales individual droplets.
	DropSize float32
	// Density controls how many droplets are on screen.
	Density float32
	// Speed is how fast droplets slide downward.
	Speed float32
	// Refraction is the strength of the lens distortion inside each droplet.
	Refraction float32
	// TrailStrength is the opacity of the wet trail behind sliding droplets.
	TrailStrength float32
}

// DefaultRaindrops returns a medium-rain preset.
//
// Returns:
//   - Raindrops: the preset parameters
func DefaultRaindrops() Raindrops {
	return Raindrops{
		DropSize:      1.0,
		Density:       0.5,
		Speed:         0.6,
		Refraction:    0.04,
		TrailStrength: 0.3,
	}
}

func (Raindrops) Type() Type                 { return TypeRaindrops }
func (Raindrops) VariantFlags() VariantFlags { return 0 }

// HeatHaze applies a wavy air-shimmer displacement across the whole screen,
// used for deserts, fires, or exhaust.
type HeatHaze struct {
	// Amplitude is the maximum displacement in UV units.
	Amplitude float32
	// Frequency is the spatial frequency of the shimmer waves.
	Frequency float32
	// Speed animates the waves over time.
	Speed float32
	// Direction biases the shimmer; (0, 1) rises like heat off asphalt.
	Direction mgl32.Vec2
}

// DefaultHeatHaze returns a subtle rising-heat preset.
//
// Returns:
//   - HeatHaze: the preset parameters
func DefaultHeatHaze() HeatHaze {
	return HeatHaze{
		Amplitude: 0.004,
		Frequency: 24,
		Speed:     1.5,
		Direction: mgl32.Vec2{0, 1},
	}
}

func (HeatHaze) Type() Type                 { return TypeHeatHaze }
func (HeatHaze) VariantFlags() VariantFlags { return 0 }
