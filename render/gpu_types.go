package render

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Nub/screenfx/effect"
)

// GPUShockwave is the GPU-aligned uniform block for the shockwave pass.
// Matches the WGSL ShockwaveUniform struct layout exactly.
// Size: 32 bytes (std140 aligned).
type GPUShockwave struct {
	Center    [2]float32 // offset  0: ring center in normalized screen coords (8 bytes)
	Strength  float32    // offset  8: peak UV displacement on the ring
	Progress  float32    // offset 12: lifetime progress 0..1, drives the ring radius
	RingWidth float32    // offset 16: width of the distortion ring
	MaxRadius float32    // offset 20: radius the ring reaches at progress 1
	Intensity float32    // offset 24: eased lifetime intensity 0..1
	_pad      float32    // offset 28: padding to 32 bytes
}

// Size returns the size of the GPUShockwave struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUShockwave) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUShockwave struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUShockwave) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Center[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Center[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Strength))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Progress))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.RingWidth))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.MaxRadius))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Intensity))
	return buf
}

// GPURadialBlur is the GPU-aligned uniform block for the radial blur pass.
// Matches the WGSL RadialBlurUniform struct layout exactly.
// Size: 32 bytes (std140 aligned).
type GPURadialBlur struct {
	Center    [2]float32 // offset  0: blur focal point in normalized screen coords (8 bytes)
	Strength  float32    // offset  8: maximum sample reach toward the focal point
	Intensity float32    // offset 12: eased lifetime intensity 0..1
	Samples   uint32     // offset 16: number of taps along the blur direction
	_pad0     float32    // offset 20
	_pad1     float32    // offset 24
	_pad2     float32    // offset 28: padding to 32 bytes
}

// Size returns the size of the GPURadialBlur struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPURadialBlur) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPURadialBlur struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPURadialBlur) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Center[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Center[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Strength))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[16:20], g.Samples)
	return buf
}

// GPURaindrops is the GPU-aligned uniform block for the raindrops pass.
// Matches the WGSL RaindropsUniform struct layout exactly.
// Size: 32 bytes (std140 aligned).
type GPURaindrops struct {
	Time          float32 // offset  0: frame time in seconds, drives drop animation
	Intensity     float32 // offset  4: eased lifetime intensity 0..1
	DropSize      float32 // offset  8: droplet cell size in UV space
	Density       float32 // offset 12: fraction of cells carrying a drop
	Speed         float32 // offset 16: slide speed multiplier
	Refraction    float32 // offset 20: UV displacement through each droplet lens
	TrailStrength float32 // offset 24: strength of the streak above each drop
	_pad          float32 // offset 28: padding to 32 bytes
}

// Size returns the size of the GPURaindrops struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPURaindrops) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPURaindrops struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPURaindrops) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.DropSize))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Density))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Speed))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Refraction))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.TrailStrength))
	return buf
}

// GPUHeatHaze is the GPU-aligned uniform block for the heat haze pass.
// Matches the WGSL HeatHazeUniform struct layout exactly.
// Size: 32 bytes (std140 aligned).
type GPUHeatHaze struct {
	Direction [2]float32 // offset  0: shimmer displacement direction (8 bytes)
	Amplitude float32    // offset  8: peak UV displacement
	Frequency float32    // offset 12: vertical wave frequency
	Speed     float32    // offset 16: wave scroll speed
	Time      float32    // offset 20: frame time in seconds
	Intensity float32    // offset 24: eased lifetime intensity 0..1
	_pad      float32    // offset 28: padding to 32 bytes
}

// Size returns the size of the GPUHeatHaze struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUHeatHaze) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUHeatHaze struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUHeatHaze) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Direction[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Direction[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Amplitude))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Frequency))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Speed))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Intensity))
	return buf
}

// GPURgbSplit is the GPU-aligned uniform block for the RGB split pass.
// Matches the WGSL RgbSplitUniform struct layout exactly.
// Size: 48 bytes (std140 aligned).
type GPURgbSplit struct {
	RedOffset   [2]float32 // offset  0: red channel UV offset (8 bytes)
	GreenOffset [2]float32 // offset  8: green channel UV offset (8 bytes)
	BlueOffset  [2]float32 // offset 16: blue channel UV offset (8 bytes)
	Intensity   float32    // offset 24: eased lifetime intensity 0..1
	Time        float32    // offset 28: frame time in seconds
	Animated    uint32     // offset 32: nonzero enables time-based wobble
	_pad0       float32    // offset 36
	_pad1       float32    // offset 40
	_pad2       float32    // offset 44: padding to 48 bytes
}

// Size returns the size of the GPURgbSplit struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPURgbSplit) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPURgbSplit struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPURgbSplit) Marshal() []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.RedOffset[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.RedOffset[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.GreenOffset[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.GreenOffset[1]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.BlueOffset[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.BlueOffset[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[32:36], g.Animated)
	return buf
}

// GPUScanlineGlitch is the GPU-aligned uniform block for the scanline glitch pass.
// Matches the WGSL ScanlineGlitchUniform struct layout exactly.
// Size: 32 bytes (std140 aligned).
type GPUScanlineGlitch struct {
	Density      float32 // offset  0: fraction of bands displaced each tick
	Displacement float32 // offset  4: peak horizontal band displacement
	LineHeight   float32 // offset  8: band height in UV space
	FlickerSpeed float32 // offset 12: band reroll rate in Hz
	Time         float32 // offset 16: frame time in seconds
	Intensity    float32 // offset 20: eased lifetime intensity 0..1
	_pad0        float32 // offset 24
	_pad1        float32 // offset 28: padding to 32 bytes
}

// Size returns the size of the GPUScanlineGlitch struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUScanlineGlitch) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUScanlineGlitch struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUScanlineGlitch) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Density))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Displacement))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.LineHeight))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.FlickerSpeed))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Intensity))
	return buf
}

// GPUBlockGlitch is the GPU-aligned uniform block for the block glitch pass.
// Matches the WGSL BlockGlitchUniform struct layout exactly.
// Size: 32 bytes (std140 aligned).
type GPUBlockGlitch struct {
	BlockSize       [2]float32 // offset  0: displaced block size in UV space (8 bytes)
	MaxDisplacement float32    // offset  8: peak UV displacement per block
	Probability     float32    // offset 12: fraction of blocks displaced each tick
	UpdateRate      float32    // offset 16: block reroll rate in Hz
	Time            float32    // offset 20: frame time in seconds
	Intensity       float32    // offset 24: eased lifetime intensity 0..1
	_pad            float32    // offset 28: padding to 32 bytes
}

// Size returns the size of the GPUBlockGlitch struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUBlockGlitch) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUBlockGlitch struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUBlockGlitch) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.BlockSize[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.BlockSize[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.MaxDisplacement))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Probability))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.UpdateRate))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Intensity))
	return buf
}

// GPUStaticNoise is the GPU-aligned uniform block for the static noise pass.
// Matches the WGSL StaticNoiseUniform struct layout exactly.
// Size: 32 bytes (std140 aligned).
type GPUStaticNoise struct {
	GrainSize   float32 // offset  0: grain cell size in UV space
	ColorAmount float32 // offset  4: 0 monochrome, 1 full RGB noise
	BlendMode   float32 // offset  8: 0 additive, 1 replace
	Time        float32 // offset 12: frame time in seconds
	Intensity   float32 // offset 16: eased lifetime intensity 0..1
	_pad0       float32 // offset 20
	_pad1       float32 // offset 24
	_pad2       float32 // offset 28: padding to 32 bytes
}

// Size returns the size of the GPUStaticNoise struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUStaticNoise) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUStaticNoise struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUStaticNoise) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.GrainSize))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.ColorAmount))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.BlendMode))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Intensity))
	return buf
}

// GPUEmpInterference is the GPU-aligned uniform block for the EMP interference pass.
// Matches the WGSL EmpUniform struct layout exactly.
// Size: 48 bytes (std140 aligned).
type GPUEmpInterference struct {
	Time                 float32 // offset  0: frame time in seconds
	Intensity            float32 // offset  4: eased lifetime intensity 0..1
	FlickerRate          float32 // offset  8: brightness flicker rate in Hz
	FlickerStrength      float32 // offset 12: brightness flicker depth
	BandCount            float32 // offset 16: number of interference bands
	BandIntensity        float32 // offset 20: band displacement strength
	BandSpeed            float32 // offset 24: band scroll speed
	StaticIntensity      float32 // offset 28: broadband static strength
	BurstProbability     float32 // offset 32: chance of a full-frame desync per tick
	ScanlineDisplacement float32 // offset 36: per-line displacement during bursts
	ChromaticAmount      float32 // offset 40: horizontal channel separation
	_pad                 float32 // offset 44: padding to 48 bytes
}

// Size returns the size of the GPUEmpInterference struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUEmpInterference) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUEmpInterference struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUEmpInterference) Marshal() []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.FlickerRate))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.FlickerStrength))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.BandCount))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.BandIntensity))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.BandSpeed))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.StaticIntensity))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.BurstProbability))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.ScanlineDisplacement))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.ChromaticAmount))
	return buf
}

// GPUCrt is the GPU-aligned uniform block for the CRT pass.
// Matches the WGSL CrtUniform struct layout exactly.
// Size: 80 bytes (std140 aligned).
type GPUCrt struct {
	ScanlineIntensity float32 // offset  0: scanline darkening depth
	ScanlineCount     float32 // offset  4: number of scanlines across the screen
	Curvature         float32 // offset  8: barrel distortion amount
	CornerRadius      float32 // offset 12: rounded corner radius in UV space
	Phosphor          uint32  // offset 16: phosphor pattern (0 none, 1 aperture, 2 shadow)
	PhosphorIntensity float32 // offset 20: phosphor mask depth
	Bloom             float32 // offset 24: soft glow strength
	Vignette          float32 // offset 28: edge darkening
	Flicker           float32 // offset 32: refresh flicker depth
	ColorBleed        float32 // offset 36: horizontal channel bleed in pixels
	Brightness        float32 // offset 40: output brightness multiplier
	Saturation        float32 // offset 44: output saturation multiplier
	ScreenWidth       float32 // offset 48: viewport width in pixels
	ScreenHeight      float32 // offset 52: viewport height in pixels
	Time              float32 // offset 56: frame time in seconds
	Intensity         float32 // offset 60: eased lifetime intensity 0..1
	MaskShape         uint32  // offset 64: screen outline (0 rounded, 1 square)
	_pad0             float32 // offset 68
	_pad1             float32 // offset 72
	_pad2             float32 // offset 76: padding to 80 bytes
}

// Size returns the size of the GPUCrt struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUCrt) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCrt struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload.
func (g *GPUCrt) Marshal() []byte {
	buf := make([]byte, 80)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.ScanlineIntensity))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.ScanlineCount))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Curvature))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.CornerRadius))
	binary.LittleEndian.PutUint32(buf[16:20], g.Phosphor)
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.PhosphorIntensity))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Bloom))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Vignette))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Flicker))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.ColorBleed))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Brightness))
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.Saturation))
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(g.ScreenWidth))
	binary.LittleEndian.PutUint32(buf[52:56], math.Float32bits(g.ScreenHeight))
	binary.LittleEndian.PutUint32(buf[56:60], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[60:64], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[64:68], g.MaskShape)
	return buf
}

// GPUDamageVignette is the GPU-aligned uniform block for the damage vignette pass.
// Matches the WGSL DamageVignetteUniform struct layout exactly.
// Size: 48 bytes (std140 aligned).
type GPUDamageVignette struct {
	Color          [4]float32 // offset  0: vignette RGBA color, alpha scales coverage (16 bytes)
	VignetteSize   float32    // offset 16: fraction of the screen covered from the edges
	Softness       float32    // offset 20: gradient width
	PulseFrequency float32    // offset 24: heartbeat pulse rate in Hz, 0 disables
	Time           float32    // offset 28: frame time in seconds
	Intensity      float32    // offset 32: eased lifetime intensity 0..1
	_pad0          float32    // offset 36
	_pad1          float32    // offset 40
	_pad2          float32    // offset 44: padding to 48 bytes
}

// Size returns the size of the GPUDamageVignette struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUDamageVignette) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUDamageVignette struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUDamageVignette) Marshal() []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Color[3]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.VignetteSize))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Softness))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.PulseFrequency))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.Intensity))
	return buf
}

// GPUFlash is the GPU-aligned uniform block for the flash pass.
// Matches the WGSL FlashUniform struct layout exactly.
// Size: 32 bytes (std140 aligned).
type GPUFlash struct {
	Color     [4]float32 // offset  0: flash RGBA color, alpha scales coverage (16 bytes)
	Blend     float32    // offset 16: 0 additive, 1 alpha mix
	Intensity float32    // offset 20: eased lifetime intensity 0..1
	_pad0     float32    // offset 24
	_pad1     float32    // offset 28: padding to 32 bytes
}

// Size returns the size of the GPUFlash struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUFlash) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFlash struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUFlash) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Color[3]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Blend))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Intensity))
	return buf
}

// GPUSpeedLines is the GPU-aligned uniform block for the speed lines pass.
// Matches the WGSL SpeedLinesUniform struct layout exactly.
// Size: 48 bytes (std140 aligned).
type GPUSpeedLines struct {
	Focus     [2]float32 // offset  0: convergence point in normalized screen coords (8 bytes)
	Time      float32    // offset  8: frame time in seconds
	Intensity float32    // offset 12: eased lifetime intensity 0..1
	Color     [4]float32 // offset 16: line RGBA color, alpha scales coverage (16 bytes)
	LineCount uint32     // offset 32: number of angular sectors
	Thickness float32    // offset 36: line thickness within its sector
	Length    float32    // offset 40: how far lines reach toward the focus
	Speed     float32    // offset 44: inward animation speed
}

// Size returns the size of the GPUSpeedLines struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUSpeedLines) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUSpeedLines struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUSpeedLines) Marshal() []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Focus[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Focus[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Time))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Color[3]))
	binary.LittleEndian.PutUint32(buf[32:36], g.LineCount)
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Thickness))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Length))
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.Speed))
	return buf
}

// uniformSizes maps each effect type to the byte size of its uniform block.
var uniformSizes = map[effect.Type]uint64{
	effect.TypeShockwave:       32,
	effect.TypeRadialBlur:      32,
	effect.TypeRaindrops:       32,
	effect.TypeHeatHaze:        32,
	effect.TypeRgbSplit:        48,
	effect.TypeScanlineGlitch:  32,
	effect.TypeBlockGlitch:     32,
	effect.TypeStaticNoise:     32,
	effect.TypeEmpInterference: 48,
	effect.TypeCrt:             80,
	effect.TypeDamageVignette:  48,
	effect.TypeFlash:           32,
	effect.TypeSpeedLines:      48,
}

// UniformSizeOf returns the uniform block byte size for an effect type.
//
// Parameters:
//   - t: the effect type to look up
//
// Returns:
//   - uint64: the uniform block size in bytes, 0 for an unknown type
func UniformSizeOf(t effect.Type) uint64 {
	return uniformSizes[t]
}

// marshalUniform builds the marshaled uniform block for one effect snapshot.
// The viewport dimensions are only consumed by effects that sample in pixel
// space (currently CRT).
//
// Parameters:
//   - s: the effect snapshot to encode
//   - time: frame time in seconds since the renderer started
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - []byte: the uniform block ready for buffer upload, nil for an unknown params type
func marshalUniform(s Snapshot, time float32, width, height uint32) []byte {
	switch p := s.Params.(type) {
	case effect.Shockwave:
		g := GPUShockwave{
			Center:    [2]float32{p.Center.X(), p.Center.Y()},
			Strength:  p.Strength,
			Progress:  s.Progress,
			RingWidth: p.RingWidth,
			MaxRadius: p.MaxRadius,
			Intensity: s.Intensity,
		}
		return g.Marshal()
	case effect.RadialBlur:
		g := GPURadialBlur{
			Center:    [2]float32{p.Center.X(), p.Center.Y()},
			Strength:  p.Strength,
			Intensity: s.Intensity,
			Samples:   p.Samples,
		}
		return g.Marshal()
	case effect.Raindrops:
		g := GPURaindrops{
			Time:          time,
			Intensity:     s.Intensity,
			DropSize:      p.DropSize,
			Density:       p.Density,
			Speed:         p.Speed,
			Refraction:    p.Refraction,
			TrailStrength: p.TrailStrength,
		}
		return g.Marshal()
	case effect.HeatHaze:
		g := GPUHeatHaze{
			Direction: [2]float32{p.Direction.X(), p.Direction.Y()},
			Amplitude: p.Amplitude,
			Frequency: p.Frequency,
			Speed:     p.Speed,
			Time:      time,
			Intensity: s.Intensity,
		}
		return g.Marshal()
	case effect.RgbSplit:
		var animated uint32
		if p.Animated {
			animated = 1
		}
		g := GPURgbSplit{
			RedOffset:   [2]float32{p.RedOffset.X(), p.RedOffset.Y()},
			GreenOffset: [2]float32{p.GreenOffset.X(), p.GreenOffset.Y()},
			BlueOffset:  [2]float32{p.BlueOffset.X(), p.BlueOffset.Y()},
			Intensity:   s.Intensity,
			Time:        time,
			Animated:    animated,
		}
		return g.Marshal()
	case effect.ScanlineGlitch:
		g := GPUScanlineGlitch{
			Density:      p.Density,
			Displacement: p.Displacement,
			LineHeight:   p.LineHeight,
			FlickerSpeed: p.FlickerSpeed,
			Time:         time,
			Intensity:    s.Intensity,
		}
		return g.Marshal()
	case effect.BlockGlitch:
		g := GPUBlockGlitch{
			BlockSize:       [2]float32{p.BlockSize.X(), p.BlockSize.Y()},
			MaxDisplacement: p.MaxDisplacement,
			Probability:     p.Probability,
			UpdateRate:      p.UpdateRate,
			Time:            time,
			Intensity:       s.Intensity,
		}
		return g.Marshal()
	case effect.StaticNoise:
		g := GPUStaticNoise{
			GrainSize:   p.GrainSize,
			ColorAmount: p.ColorAmount,
			BlendMode:   p.BlendMode,
			Time:        time,
			Intensity:   s.Intensity,
		}
		return g.Marshal()
	case effect.EmpInterference:
		g := GPUEmpInterference{
			Time:                 time,
			Intensity:            s.Intensity,
			FlickerRate:          p.FlickerRate,
			FlickerStrength:      p.FlickerStrength,
			BandCount:            p.BandCount,
			BandIntensity:        p.BandIntensity,
			BandSpeed:            p.BandSpeed,
			StaticIntensity:      p.StaticIntensity,
			BurstProbability:     p.BurstProbability,
			ScanlineDisplacement: p.ScanlineDisplacement,
			ChromaticAmount:      p.ChromaticAmount,
		}
		return g.Marshal()
	case effect.Crt:
		g := GPUCrt{
			ScanlineIntensity: p.ScanlineIntensity,
			ScanlineCount:     p.ScanlineCount,
			Curvature:         p.Curvature,
			CornerRadius:      p.CornerRadius,
			Phosphor:          uint32(p.Phosphor),
			PhosphorIntensity: p.PhosphorIntensity,
			Bloom:             p.Bloom,
			Vignette:          p.Vignette,
			Flicker:           p.Flicker,
			ColorBleed:        p.ColorBleed,
			Brightness:        p.Brightness,
			Saturation:        p.Saturation,
			ScreenWidth:       float32(width),
			ScreenHeight:      float32(height),
			Time:              time,
			Intensity:         s.Intensity,
			MaskShape:         uint32(p.MaskShape),
		}
		return g.Marshal()
	case effect.DamageVignette:
		g := GPUDamageVignette{
			Color:          [4]float32{p.Color.X(), p.Color.Y(), p.Color.Z(), p.Color.W()},
			VignetteSize:   p.Size,
			Softness:       p.Softness,
			PulseFrequency: p.PulseFrequency,
			Time:           time,
			Intensity:      s.Intensity,
		}
		return g.Marshal()
	case effect.Flash:
		g := GPUFlash{
			Color:     [4]float32{p.Color.X(), p.Color.Y(), p.Color.Z(), p.Color.W()},
			Blend:     p.Blend,
			Intensity: s.Intensity,
		}
		return g.Marshal()
	case effect.SpeedLines:
		g := GPUSpeedLines{
			Focus:     [2]float32{p.Focus.X(), p.Focus.Y()},
			Time:      time,
			Intensity: s.Intensity,
			Color:     [4]float32{p.Color.X(), p.Color.Y(), p.Color.Z(), p.Color.W()},
			LineCount: p.LineCount,
			Thickness: p.Thickness,
			Length:    p.Length,
			Speed:     p.Speed,
		}
		return g.Marshal()
	default:
		return nil
	}
}
