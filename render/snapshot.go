package render

import (
	"sort"

	"github.com/Nub/screenfx/effect"
	"github.com/Nub/screenfx/registry"
)

// visibilityThreshold is the intensity below which an effect contributes
// nothing visible and is dropped from the frame snapshot.
const visibilityThreshold = 0.001

// Snapshot is a renderer-side copy of one live effect, decoupled from the
// registry so the render path never reads simulation state mid-tick.
type Snapshot struct {
	// ID is the registry identity of the source instance.
	ID uint64
	// Type is the effect type tag, cached from Params for cheap dispatch.
	Type effect.Type
	// Params is the effect-type-specific parameter set, copied by value.
	Params effect.Params
	// Intensity is the eased lifetime intensity at extraction time (0..1).
	Intensity float32
	// Progress is the raw lifetime progress at extraction time (0..1).
	Progress float32
}

// FrameSnapshot is the complete renderer input for one frame. Each extraction
// fully replaces the previous frame's contents.
type FrameSnapshot struct {
	// Time is the accumulated time in seconds since extraction began.
	Time float32
	// Delta is the simulation step that produced this frame, in seconds.
	Delta float32
	// Effects holds the visible effects in render order: distortion passes
	// first, then glitch, then feedback, preserving spawn order within each
	// category.
	Effects []Snapshot
}

// Empty reports whether the frame has no visible effects.
//
// Returns:
//   - bool: true when no effect passes need to run
func (f *FrameSnapshot) Empty() bool {
	return len(f.Effects) == 0
}

// Extractor copies live effect state out of a registry into reusable frame
// snapshots. It is not safe for concurrent use; the renderer owns it.
type Extractor struct {
	frame FrameSnapshot
}

// NewExtractor creates an Extractor with an empty frame.
//
// Returns:
//   - *Extractor: the new extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract builds the frame snapshot for the current registry contents. The
// returned frame is owned by the extractor and valid until the next call;
// its backing storage is reused across frames.
//
// Parameters:
//   - reg: the registry to copy live effects from
//   - delta: the simulation step for this frame, in seconds
//
// Returns:
//   - *FrameSnapshot: the visible effects in render order
func (e *Extractor) Extract(reg registry.Registry, delta float32) *FrameSnapshot {
	e.frame.Time += delta
	e.frame.Delta = delta
	e.frame.Effects = e.frame.Effects[:0]

	reg.Each(func(inst *registry.Instance) {
		intensity := inst.Lifetime.Intensity()
		if intensity < visibilityThreshold {
			return
		}
		e.frame.Effects = append(e.frame.Effects, Snapshot{
			ID:        inst.ID,
			Type:      inst.Params.Type(),
			Params:    inst.Params,
			Intensity: intensity,
			Progress:  inst.Lifetime.Progress(),
		})
	})

	// Registry iteration is spawn-ordered; a stable sort by category keeps
	// that order within distortion, glitch and feedback groups.
	sort.SliceStable(e.frame.Effects, func(i, j int) bool {
		return effect.CategoryOf(e.frame.Effects[i].Type) < effect.CategoryOf(e.frame.Effects[j].Type)
	})
	return &e.frame
}
