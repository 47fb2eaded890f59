package render

import (
	"fmt"

	"github.com/Nub/screenfx/effect"
	"github.com/Nub/screenfx/render/bind_group_provider"
	"github.com/Nub/screenfx/render/shader"
	"github.com/cogentcore/webgpu/wgpu"
	log "github.com/sirupsen/logrus"
)

// SlotBackend is the slice of the renderer backend the preparer needs: slot
// allocation and buffer uploads.
type SlotBackend interface {
	InitUniformSlot(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error
	WriteBuffers(writes []bind_group_provider.BufferWrite)
}

// PreparedPass is one effect pass ready to encode: the snapshot it renders
// and the uniform slot holding its GPU data.
type PreparedPass struct {
	Snapshot Snapshot
	Uniforms bind_group_provider.BindGroupProvider
}

// slotKey identifies one uniform slot in the frame pool. Slots are keyed by
// effect type and per-type instance index, so two concurrent shockwaves get
// two distinct buffers while the pool stays stable across frames.
type slotKey struct {
	t     effect.Type
	index int
}

// Preparer stages per-effect uniform data for the frame's passes. It owns a
// pool of uniform slots that grows to the high-water mark of concurrent
// instances and is reused every frame. Not safe for concurrent use; the
// renderer owns it.
type Preparer struct {
	backend SlotBackend
	slots   map[slotKey]bind_group_provider.BindGroupProvider
	counts  map[effect.Type]int
	warned  map[effect.Type]bool
	writes  []bind_group_provider.BufferWrite
	passes  []PreparedPass
}

// NewPreparer creates a Preparer with an empty slot pool.
//
// Parameters:
//   - backend: the backend used for slot allocation and buffer writes
//
// Returns:
//   - *Preparer: the new preparer
func NewPreparer(backend SlotBackend) *Preparer {
	return &Preparer{
		backend: backend,
		slots:   make(map[slotKey]bind_group_provider.BindGroupProvider),
		counts:  make(map[effect.Type]int),
		warned:  make(map[effect.Type]bool),
	}
}

// Prepare builds the ordered pass list for one frame: assigns each snapshot a
// uniform slot, marshals its uniform block and stages all buffer writes to
// the GPU queue in a single batch. A snapshot whose slot cannot be allocated
// is skipped for this frame with a warning logged once per effect type; the
// allocation retries naturally on later frames.
//
// Parameters:
//   - frame: the frame snapshot to prepare
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - []PreparedPass: the passes in render order, owned by the preparer until the next call
func (p *Preparer) Prepare(frame *FrameSnapshot, width, height uint32) []PreparedPass {
	p.passes = p.passes[:0]
	p.writes = p.writes[:0]
	for t := range p.counts {
		delete(p.counts, t)
	}

	for _, s := range frame.Effects {
		index := p.counts[s.Type]
		p.counts[s.Type] = index + 1

		key := slotKey{t: s.Type, index: index}
		slot, ok := p.slots[key]
		if !ok {
			slot = bind_group_provider.NewBindGroupProvider(fmt.Sprintf("%s[%d]", s.Type, index))
			descriptor := shader.UniformLayoutDescriptor(s.Type, UniformSizeOf(s.Type))
			if err := p.backend.InitUniformSlot(slot, descriptor); err != nil {
				if !p.warned[s.Type] {
					p.warned[s.Type] = true
					log.WithError(err).Warnf("uniform slot allocation failed for effect %s, skipping", s.Type)
				}
				continue
			}
			p.slots[key] = slot
		}

		data := marshalUniform(s, frame.Time, width, height)
		if data == nil {
			continue
		}
		p.writes = append(p.writes, bind_group_provider.BufferWrite{
			Provider: slot,
			Binding:  shader.BindingUniformBuffer,
			Offset:   0,
			Data:     data,
		})
		p.passes = append(p.passes, PreparedPass{Snapshot: s, Uniforms: slot})
	}

	if len(p.writes) > 0 {
		p.backend.WriteBuffers(p.writes)
	}
	return p.passes
}

// Release frees every uniform slot in the pool.
func (p *Preparer) Release() {
	for key, slot := range p.slots {
		slot.Release()
		delete(p.slots, key)
	}
}
