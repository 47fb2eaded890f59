package effect

import "github.com/go-gl/mathgl/mgl32"

// RgbSplit offsets the red, green, and blue channels independently, the
// classic chromatic glitch.
type RgbSplit struct {
	// RedOffset, GreenOffset, BlueOffset are per-channel UV offsets.
	RedOffset   mgl32.Vec2
	GreenOffset mgl32.Vec2
	BlueOffset  mgl32.Vec2
	// Animated jitters the offsets over time instead of holding them fixed.
	Animated bool
}

// DefaultRgbSplit returns a small horizontal split preset.
//
// Returns:
//   - RgbSplit: the preset parameters
func DefaultRgbSplit() RgbSplit {
	return RgbSplit{
		RedOffset:  mgl32.Vec2{0.005, 0},
		BlueOffset: mgl32.Vec2{-0.005, 0},
		Animated:   true,
	}
}

func (RgbSplit) Type() Type                 { return TypeRgbSplit }
func (RgbSplit) VariantFlags() VariantFlags { return 0 }

// ScanlineGlitch displaces horizontal bands of the image, like a failing
// analog signal.
type ScanlineGlitch struct {
	// Density is the fraction of scanlines affected per frame.
	Density float32
	// Displacement is the maximum horizontal shift in UV units.
	Displacement float32
	// LineHeight is the height of each displaced band in UV units.
	LineHeight float32
	// FlickerSpeed controls how fast affected bands change.
	FlickerSpeed float32
}

// DefaultScanlineGlitch returns a moderate signal-degradation preset.
//
// Returns:
//   - ScanlineGlitch: the preset parameters
func DefaultScanlineGlitch() ScanlineGlitch {
	return ScanlineGlitch{
		Density:      0.1,
		Displacement: 0.02,
		LineHeight:   0.005,
		FlickerSpeed: 12,
	}
}

func (ScanlineGlitch) Type() Type                 { return TypeScanlineGlitch }
func (ScanlineGlitch) VariantFlags() VariantFlags { return 0 }

// BlockGlitch displaces random rectangular blocks of the image, the
// datamosh/corruption look.
type BlockGlitch struct {
	// BlockSize is the block dimensions in UV units.
	BlockSize mgl32.Vec2
	// MaxDisplacement is the maximum block shift in UV units.
	MaxDisplacement float32
	// Probability is the chance any given block is displaced.
	Probability float32
	// UpdateRate is how many times per second the block pattern reshuffles.
	UpdateRate float32
}

// DefaultBlockGlitch returns a coarse corruption preset.
//
// Returns:
//   - BlockGlitch: the preset parameters
func DefaultBlockGlitch() BlockGlitch {
	return BlockGlitch{
		BlockSize:       mgl32.Vec2{0.08, 0.05},
		MaxDisplacement: 0.05,
		Probability:     0.2,
		UpdateRate:      15,
	}
}

func (BlockGlitch) Type() Type                 { return TypeBlockGlitch }
func (BlockGlitch) VariantFlags() VariantFlags { return 0 }

// StaticNoise overlays analog TV static.
type StaticNoise struct {
	// GrainSize scales the noise grain; 1 is single-pixel.
	GrainSize float32
	// ColorAmount blends between monochrome (0) and RGB (1) noise.
	ColorAmount float32
	// BlendMode blends between additive (0) and replace (1).
	BlendMode float32
}

// DefaultStaticNoise returns a light monochrome static preset.
//
// Returns:
//   - StaticNoise: the preset parameters
func DefaultStaticNoise() StaticNoise {
	return StaticNoise{
		GrainSize:   1,
		ColorAmount: 0.1,
		BlendMode:   0.25,
	}
}

func (StaticNoise) Type() Type                 { return TypeStaticNoise }
func (StaticNoise) VariantFlags() VariantFlags { return 0 }

// EmpInterference combines brightness flicker, rolling interference bands,
// static bursts, and scanline displacement for an electromagnetic-pulse hit.
type EmpInterference struct {
	// FlickerRate is flickers per second; FlickerStrength their depth.
	FlickerRate     float32
	FlickerStrength float32
	// BandCount rolling bands move at BandSpeed with BandIntensity darkening.
	BandCount     float32
	BandIntensity float32
	BandSpeed     float32
	// StaticIntensity is the baseline static overlay strength.
	StaticIntensity float32
	// BurstProbability is the per-frame chance of a full-screen static burst.
	BurstProbability float32
	// ScanlineDisplacement is the horizontal tearing strength.
	ScanlineDisplacement float32
	// ChromaticAmount is the color fringing strength.
	ChromaticAmount float32
}

// DefaultEmpInterference returns a heavy systems-failure preset.
//
// Returns:
//   - EmpInterference: the preset parameters
func DefaultEmpInterference() EmpInterference {
	return EmpInterference{
		FlickerRate:          18,
		FlickerStrength:      0.35,
		BandCount:            6,
		BandIntensity:        0.4,
		BandSpeed:            2.5,
		StaticIntensity:      0.25,
		BurstProbability:     0.05,
		ScanlineDisplacement: 0.015,
		ChromaticAmount:      0.006,
	}
}

func (EmpInterference) Type() Type                 { return TypeEmpInterference }
func (EmpInterference) VariantFlags() VariantFlags { return 0 }

// CrtMaskShape selects the CRT screen outline.
type CrtMaskShape uint32

const (
	// CrtMaskRounded is a curved-corner rectangle.
	CrtMaskRounded CrtMaskShape = iota

	// CrtMaskSquare is a hard-edged rectangle.
	CrtMaskSquare
)

// CrtPhosphor selects the CRT phosphor mask pattern.
type CrtPhosphor uint32

const (
	// CrtPhosphorNone disables the phosphor mask.
	CrtPhosphorNone CrtPhosphor = iota

	// CrtPhosphorAperture is a vertical aperture-grille pattern.
	CrtPhosphorAperture

	// CrtPhosphorShadow is a staggered shadow-mask dot pattern.
	CrtPhosphorShadow
)

// Crt emulates a curved CRT monitor: scanlines, barrel curvature, phosphor
// mask, bloom, vignette, and flicker.
type Crt struct {
	// ScanlineIntensity and ScanlineCount shape the horizontal scanlines.
	ScanlineIntensity float32
	ScanlineCount     float32
	// Curvature is the barrel distortion amount; CornerRadius rounds the mask.
	Curvature    float32
	CornerRadius float32
	// MaskShape and Phosphor select the screen outline and subpixel pattern.
	MaskShape CrtMaskShape
	Phosphor  CrtPhosphor
	// PhosphorIntensity is the phosphor mask strength.
	PhosphorIntensity float32
	// Bloom, Vignette, Flicker, and ColorBleed are the remaining analog artifacts.
	Bloom      float32
	Vignette   float32
	Flicker    float32
	ColorBleed float32
	// Brightness and Saturation compensate for the darkening mask.
	Brightness float32
	Saturation float32
}

// DefaultCrt returns a nostalgic consumer-TV preset.
//
// Returns:
//   - Crt: the preset parameters
func DefaultCrt() Crt {
	return Crt{
		ScanlineIntensity: 0.25,
		ScanlineCount:     480,
		Curvature:         0.08,
		CornerRadius:      0.04,
		MaskShape:         CrtMaskRounded,
		Phosphor:          CrtPhosphorAperture,
		PhosphorIntensity: 0.15,
		Bloom:             0.3,
		Vignette:          0.25,
		Flicker:           0.03,
		ColorBleed:        0.3,
		Brightness:        1.15,
		Saturation:        1.1,
	}
}

func (Crt) Type() Type                 { return TypeCrt }
func (Crt) VariantFlags() VariantFlags { return 0 }
