package registry

import (
	"testing"

	"github.com/Nub/screenfx/effect"
)

func spawnFlash(r Registry, duration float32) uint64 {
	return r.Spawn(effect.Flash{Blend: 1}, effect.NewLifetime(duration))
}

func TestSpawnAssignsUniqueIDsInOrder(t *testing.T) {
	r := NewRegistry(WithTickWorkers(2))

	a := spawnFlash(r, 1)
	b := spawnFlash(r, 1)
	c := spawnFlash(r, 1)
	if a == b || b == c {
		t.Fatalf("ids not unique: %d %d %d", a, b, c)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}

	var seen []uint64
	r.Each(func(inst *Instance) {
		seen = append(seen, inst.ID)
	})
	if len(seen) != 3 || seen[0] != a || seen[1] != b || seen[2] != c {
		t.Errorf("spawn order not preserved: %v", seen)
	}
}

func TestGetReturnsLiveInstance(t *testing.T) {
	r := NewRegistry(WithTickWorkers(2))
	id := r.Spawn(effect.ShockwaveAt(0.5, 0.5), effect.NewLifetime(1))

	inst := r.Get(id)
	if inst == nil {
		t.Fatal("Get returned nil for live instance")
	}
	if inst.Params.Type() != effect.TypeShockwave {
		t.Errorf("params type = %s, want shockwave", inst.Params.Type())
	}
	if r.Get(id+100) != nil {
		t.Error("Get returned an instance for an unknown id")
	}
}

func TestTickAdvancesAndRemovesExpired(t *testing.T) {
	r := NewRegistry(WithTickWorkers(4))

	short := spawnFlash(r, 0.1)
	long := spawnFlash(r, 10)

	r.Tick(0.05)
	if r.Len() != 2 {
		t.Fatalf("Len() after partial tick = %d, want 2", r.Len())
	}

	r.Tick(0.1) // pushes the short one past its duration
	if r.Len() != 1 {
		t.Fatalf("Len() after expiry = %d, want 1", r.Len())
	}
	if r.Get(short) != nil {
		t.Error("expired instance still retrievable")
	}
	inst := r.Get(long)
	if inst == nil {
		t.Fatal("surviving instance lost")
	}
	if got := inst.Lifetime.Elapsed(); got < 0.14 || got > 0.16 {
		t.Errorf("survivor elapsed = %v, want 0.15", got)
	}
}

func TestTickPreservesSurvivorOrder(t *testing.T) {
	r := NewRegistry(WithTickWorkers(2))

	a := spawnFlash(r, 10)
	spawnFlash(r, 0.05)
	c := spawnFlash(r, 10)
	spawnFlash(r, 0.05)
	e := spawnFlash(r, 10)

	r.Tick(0.1)

	var seen []uint64
	r.Each(func(inst *Instance) {
		seen = append(seen, inst.ID)
	})
	want := []uint64{a, c, e}
	if len(seen) != len(want) {
		t.Fatalf("survivors = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("survivors = %v, want %v", seen, want)
		}
	}
	// Index map must still resolve after compaction.
	for _, id := range want {
		if r.Get(id) == nil {
			t.Errorf("survivor %d not retrievable after compaction", id)
		}
	}
}

func TestForceExpireRemovesImmediately(t *testing.T) {
	r := NewRegistry(WithTickWorkers(2))

	a := spawnFlash(r, 10)
	b := spawnFlash(r, 10)
	c := spawnFlash(r, 10)

	r.ForceExpire(b)
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if r.Get(b) != nil {
		t.Error("force-expired instance still retrievable")
	}
	if r.Get(a) == nil || r.Get(c) == nil {
		t.Error("unrelated instances lost on force expire")
	}

	// Removing an unknown id is a no-op.
	r.ForceExpire(9999)
	if r.Len() != 2 {
		t.Errorf("Len() after unknown ForceExpire = %d, want 2", r.Len())
	}
}

func TestSpawnPanicsOnMisuse(t *testing.T) {
	r := NewRegistry(WithTickWorkers(2))

	assertPanics := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		fn()
	}

	assertPanics("nil params", func() {
		r.Spawn(nil, effect.NewLifetime(1))
	})
	assertPanics("nil lifetime", func() {
		r.Spawn(effect.Flash{}, nil)
	})
}

func TestTickOnEmptyRegistry(t *testing.T) {
	r := NewRegistry(WithTickWorkers(2))
	r.Tick(0.016)
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}
