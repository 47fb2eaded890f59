package render

import (
	"testing"

	"github.com/Nub/screenfx/effect"
	"github.com/Nub/screenfx/registry"
)

// fullOn is a lifetime shape that is at intensity 1 from the first frame.
func fullOn(duration float32) effect.Lifetime {
	return effect.NewLifetime(duration, effect.WithFades(0, 0))
}

func TestExtractOrdersByCategory(t *testing.T) {
	reg := registry.NewRegistry(registry.WithTickWorkers(2))

	// Spawn in deliberately scrambled category order.
	flash := reg.Spawn(effect.Flash{Blend: 1}, fullOn(10))
	shockA := reg.Spawn(effect.ShockwaveAt(0.2, 0.2), fullOn(10))
	split := reg.Spawn(effect.RgbSplit{}, fullOn(10))
	shockB := reg.Spawn(effect.ShockwaveAt(0.8, 0.8), fullOn(10))

	frame := NewExtractor().Extract(reg, 0.016)
	if len(frame.Effects) != 4 {
		t.Fatalf("extracted %d effects, want 4", len(frame.Effects))
	}

	// Distortion first, then glitch, then feedback; spawn order within the
	// distortion group is preserved.
	wantIDs := []uint64{shockA, shockB, split, flash}
	for i, want := range wantIDs {
		if got := frame.Effects[i].ID; got != want {
			t.Errorf("effect[%d].ID = %d, want %d (order %v)", i, got, want, frame.Effects)
		}
	}
}

func TestExtractSkipsInvisibleEffects(t *testing.T) {
	reg := registry.NewRegistry(registry.WithTickWorkers(2))

	// A fade-in spanning the whole duration keeps intensity at 0 at t=0.
	reg.Spawn(effect.Flash{Blend: 1}, effect.NewLifetime(10, effect.WithFades(10, 0)))
	visible := reg.Spawn(effect.ShockwaveAt(0.5, 0.5), fullOn(10))

	frame := NewExtractor().Extract(reg, 0.016)
	if len(frame.Effects) != 1 {
		t.Fatalf("extracted %d effects, want 1", len(frame.Effects))
	}
	if frame.Effects[0].ID != visible {
		t.Errorf("extracted ID %d, want %d", frame.Effects[0].ID, visible)
	}
}

func TestExtractReplacesPreviousFrame(t *testing.T) {
	reg := registry.NewRegistry(registry.WithTickWorkers(2))
	e := NewExtractor()

	a := reg.Spawn(effect.Flash{Blend: 1}, fullOn(10))
	b := reg.Spawn(effect.ShockwaveAt(0.5, 0.5), fullOn(10))

	first := e.Extract(reg, 0.5)
	if len(first.Effects) != 2 {
		t.Fatalf("first frame has %d effects, want 2", len(first.Effects))
	}

	reg.ForceExpire(b)
	second := e.Extract(reg, 0.5)
	if len(second.Effects) != 1 {
		t.Fatalf("second frame has %d effects, want 1", len(second.Effects))
	}
	if second.Effects[0].ID != a {
		t.Errorf("second frame ID = %d, want %d", second.Effects[0].ID, a)
	}

	// Time accumulates across frames, delta is per-frame.
	if second.Time != 1.0 {
		t.Errorf("frame time = %v, want 1.0", second.Time)
	}
	if second.Delta != 0.5 {
		t.Errorf("frame delta = %v, want 0.5", second.Delta)
	}
}

func TestExtractEmptyRegistry(t *testing.T) {
	reg := registry.NewRegistry(registry.WithTickWorkers(2))
	frame := NewExtractor().Extract(reg, 0.016)
	if !frame.Empty() {
		t.Error("frame from empty registry should be empty")
	}
}

func TestSnapshotCachesTypeAndLifetimeState(t *testing.T) {
	reg := registry.NewRegistry(registry.WithTickWorkers(2))
	reg.Spawn(effect.ShockwaveAt(0.5, 0.5), fullOn(2))
	reg.Tick(1) // halfway through

	frame := NewExtractor().Extract(reg, 0.016)
	if len(frame.Effects) != 1 {
		t.Fatalf("extracted %d effects, want 1", len(frame.Effects))
	}
	s := frame.Effects[0]
	if s.Type != effect.TypeShockwave {
		t.Errorf("snapshot type = %s, want shockwave", s.Type)
	}
	if s.Intensity != 1 {
		t.Errorf("snapshot intensity = %v, want 1", s.Intensity)
	}
	if s.Progress != 0.5 {
		t.Errorf("snapshot progress = %v, want 0.5", s.Progress)
	}
}
