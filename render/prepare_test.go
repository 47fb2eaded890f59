package render

import (
	"errors"
	"testing"

	"github.com/Nub/screenfx/effect"
	"github.com/Nub/screenfx/render/bind_group_provider"
	"github.com/cogentcore/webgpu/wgpu"
)

// fakeSlotBackend records slot allocations and buffer writes without a GPU.
type fakeSlotBackend struct {
	initCalls  int
	initErrs   map[effect.Type]error
	writeCalls int
	lastWrites []bind_group_provider.BufferWrite
}

func (f *fakeSlotBackend) InitUniformSlot(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	f.initCalls++
	for t, err := range f.initErrs {
		if descriptor.Label == t.String()+"_uniform_layout" {
			return err
		}
	}
	return nil
}

func (f *fakeSlotBackend) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writeCalls++
	f.lastWrites = append(f.lastWrites[:0], writes...)
}

func frameWith(params ...effect.Params) *FrameSnapshot {
	frame := &FrameSnapshot{Time: 1.0}
	for i, p := range params {
		frame.Effects = append(frame.Effects, Snapshot{
			ID:        uint64(i + 1),
			Type:      p.Type(),
			Params:    p,
			Intensity: 1,
			Progress:  0.5,
		})
	}
	return frame
}

func TestPrepareBuildsOrderedPasses(t *testing.T) {
	backend := &fakeSlotBackend{}
	p := NewPreparer(backend)

	frame := frameWith(
		effect.ShockwaveAt(0.2, 0.2),
		effect.ShockwaveAt(0.8, 0.8),
		effect.Flash{Blend: 1},
	)
	passes := p.Prepare(frame, 1920, 1080)

	if len(passes) != 3 {
		t.Fatalf("prepared %d passes, want 3", len(passes))
	}
	for i, pass := range passes {
		if pass.Snapshot.ID != frame.Effects[i].ID {
			t.Errorf("pass[%d] out of order: ID %d, want %d", i, pass.Snapshot.ID, frame.Effects[i].ID)
		}
		if pass.Uniforms == nil {
			t.Errorf("pass[%d] has no uniform slot", i)
		}
	}

	// Two concurrent shockwaves need two distinct slots.
	if passes[0].Uniforms == passes[1].Uniforms {
		t.Error("concurrent instances of one type shared a uniform slot")
	}

	// All uploads for the frame land in a single batch.
	if backend.writeCalls != 1 {
		t.Errorf("WriteBuffers called %d times, want 1", backend.writeCalls)
	}
	if len(backend.lastWrites) != 3 {
		t.Fatalf("staged %d writes, want 3", len(backend.lastWrites))
	}
	for i, w := range backend.lastWrites {
		want := UniformSizeOf(frame.Effects[i].Type)
		if uint64(len(w.Data)) != want {
			t.Errorf("write[%d] has %d bytes, want %d", i, len(w.Data), want)
		}
	}
}

func TestPrepareReusesSlotsAcrossFrames(t *testing.T) {
	backend := &fakeSlotBackend{}
	p := NewPreparer(backend)

	frame := frameWith(effect.ShockwaveAt(0.5, 0.5), effect.Flash{Blend: 1})
	first := p.Prepare(frame, 800, 600)
	if backend.initCalls != 2 {
		t.Fatalf("first frame allocated %d slots, want 2", backend.initCalls)
	}

	second := p.Prepare(frame, 800, 600)
	if backend.initCalls != 2 {
		t.Errorf("second frame allocated more slots: %d calls", backend.initCalls)
	}
	if first[0].Uniforms != second[0].Uniforms {
		t.Error("slot not reused across frames")
	}
}

func TestPrepareSkipsOnSlotAllocationFailure(t *testing.T) {
	backend := &fakeSlotBackend{
		initErrs: map[effect.Type]error{
			effect.TypeShockwave: errors.New("device lost"),
		},
	}
	p := NewPreparer(backend)

	frame := frameWith(effect.ShockwaveAt(0.5, 0.5), effect.Flash{Blend: 1})
	passes := p.Prepare(frame, 800, 600)

	if len(passes) != 1 {
		t.Fatalf("prepared %d passes, want 1", len(passes))
	}
	if passes[0].Snapshot.Type != effect.TypeFlash {
		t.Errorf("surviving pass is %s, want flash", passes[0].Snapshot.Type)
	}

	// The failed slot is not pooled; the next frame retries the allocation.
	before := backend.initCalls
	p.Prepare(frame, 800, 600)
	if backend.initCalls != before+1 {
		t.Errorf("allocation not retried: %d calls, want %d", backend.initCalls, before+1)
	}
}

func TestPrepareEmptyFrame(t *testing.T) {
	backend := &fakeSlotBackend{}
	p := NewPreparer(backend)

	passes := p.Prepare(&FrameSnapshot{}, 800, 600)
	if len(passes) != 0 {
		t.Errorf("prepared %d passes for empty frame, want 0", len(passes))
	}
	if backend.writeCalls != 0 {
		t.Errorf("WriteBuffers called for empty frame")
	}
}
