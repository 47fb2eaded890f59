package effect

import "github.com/go-gl/mathgl/mgl32"

// DamageVignette pulses a colored vignette at the screen edges, the usual
// low-health indicator.
type DamageVignette struct {
	// Color is the vignette color as linear RGBA.
	Color mgl32.Vec4
	// Size is how far the vignette reaches toward the center.
	Size float32
	// Softness is the falloff width of the vignette edge.
	Softness float32
	// PulseFrequency is heartbeat pulses per second; 0 disables pulsing.
	PulseFrequency float32
}

// DamageVignetteRed returns the classic red low-health preset.
//
// Returns:
//   - DamageVignette: the preset parameters
func DamageVignetteRed() DamageVignette {
	return DamageVignette{
		Color:          mgl32.Vec4{0.8, 0.05, 0.05, 0.9},
		Size:           0.45,
		Softness:       0.35,
		PulseFrequency: 1.2,
	}
}

func (DamageVignette) Type() Type                 { return TypeDamageVignette }
func (DamageVignette) VariantFlags() VariantFlags { return 0 }

// Flash is a full-screen color flash for impacts, flashbangs, or transitions.
type Flash struct {
	// Color is the flash color as linear RGBA.
	Color mgl32.Vec4
	// Blend selects the mix mode: 0 is additive, 1 replaces the scene color.
	Blend float32
}

// WhiteFlash returns a full-replace white flash (flashbang style).
//
// Returns:
//   - Flash: the preset parameters
func WhiteFlash() Flash {
	return Flash{
		Color: mgl32.Vec4{1, 1, 1, 1},
		Blend: 1,
	}
}

// ImpactFlash returns a brief warm additive flash for hits.
//
// Returns:
//   - Flash: the preset parameters
func ImpactFlash() Flash {
	return Flash{
		Color: mgl32.Vec4{1, 0.9, 0.8, 0.3},
		Blend: 0,
	}
}

func (Flash) Type() Type                 { return TypeFlash }
func (Flash) VariantFlags() VariantFlags { return 0 }

// SpeedLines draws anime-style motion lines converging on a focus point.
type SpeedLines struct {
	// Focus is the convergence point in normalized screen coordinates.
	Focus mgl32.Vec2
	// Color is the line color as linear RGBA.
	Color mgl32.Vec4
	// LineCount is the number of radial lines.
	LineCount uint32
	// Thickness and Length shape each line; Speed animates the flicker.
	Thickness float32
	Length    float32
	Speed     float32
}

// DefaultSpeedLines returns white lines converging on screen center.
//
// Returns:
//   - SpeedLines: the preset parameters
func DefaultSpeedLines() SpeedLines {
	return SpeedLines{
		Focus:     mgl32.Vec2{0.5, 0.5},
		Color:     mgl32.Vec4{1, 1, 1, 0.8},
		LineCount: 48,
		Thickness: 0.35,
		Length:    0.4,
		Speed:     10,
	}
}

func (SpeedLines) Type() Type                 { return TypeSpeedLines }
func (SpeedLines) VariantFlags() VariantFlags { return 0 }
