package registry

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Nub/screenfx/effect"
)

// Instance is one live effect: its parameter variant plus the lifetime that
// drives its intensity. Exactly one Lifetime exists per Instance; neither
// outlives the other.
type Instance struct {
	// ID is the opaque identity assigned at spawn.
	ID uint64
	// Params is the effect-type-specific parameter set.
	Params effect.Params
	// Lifetime drives the instance's intensity and expiry.
	Lifetime effect.Lifetime
}

// registry is the implementation of the Registry interface.
type registry struct {
	mu *sync.RWMutex

	// instances maps IDs to their index in the ordered slice.
	instances map[uint64]int
	// ordered keeps spawn order; extraction order is defined by this slice.
	ordered []*Instance
	nextID  uint64

	// tickPool manages a bounded set of reusable goroutines for the parallel
	// lifetime advance in Tick. Workers persist across frames, avoiding
	// per-frame goroutine spawn/teardown overhead.
	tickPool    worker.DynamicWorkerPool
	tickWorkers int
}

// Registry owns the set of currently-live effect instances on the simulation
// side. Spawning adds an instance; Tick advances every lifetime and removes
// the expired; the render-side extractor enumerates the survivors in spawn
// order. Thread-safe for concurrent access.
type Registry interface {
	// Spawn creates a live effect instance from a parameter variant and a
	// lifetime, returning its identity. The effect type set is closed:
	// passing nil params or a params value with an out-of-range type tag is
	// caller misuse and panics.
	//
	// Parameters:
	//   - params: the effect-type-specific parameters (must be a valid variant)
	//   - lt: the lifetime controlling intensity and expiry (must not be nil)
	//
	// Returns:
	//   - uint64: the assigned instance identity
	Spawn(params effect.Params, lt effect.Lifetime) uint64

	// Tick advances every live lifetime by delta seconds, in parallel over
	// the worker pool with a per-frame barrier, then removes expired
	// instances. Must complete before the frame's snapshot extraction runs.
	//
	// Parameters:
	//   - delta: elapsed wall-clock seconds since the previous tick
	Tick(delta float32)

	// Get retrieves a live instance by identity.
	//
	// Parameters:
	//   - id: the instance identity returned by Spawn
	//
	// Returns:
	//   - *Instance: the instance, or nil if not live
	Get(id uint64) *Instance

	// ForceExpire removes an instance before its lifetime ends. The next
	// extraction simply will not see it; no mid-frame cancellation is needed
	// since passes are per-frame-atomic.
	//
	// Parameters:
	//   - id: the instance identity to remove
	ForceExpire(id uint64)

	// Each calls fn for every live instance in spawn order. The callback must
	// not spawn or remove instances.
	//
	// Parameters:
	//   - fn: the function invoked per instance
	Each(fn func(inst *Instance))

	// Len returns the number of live instances.
	//
	// Returns:
	//   - int: the live instance count
	Len() int
}

// Compile-time check that registry implements Registry.
var _ Registry = &registry{}

// NewRegistry creates an empty effect Registry.
//
// Parameters:
//   - opts: a variadic list of RegistryOption functions to configure the registry
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(opts ...RegistryOption) Registry {
	r := &registry{
		mu:          &sync.RWMutex{},
		instances:   make(map[uint64]int),
		nextID:      1,
		tickWorkers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range opts {
		opt(r)
	}

	// Initialize the tick pool after options so WithTickWorkers can override
	// the default. Queue size of 256 accommodates typical live effect counts
	// with headroom.
	r.tickPool = worker.NewDynamicWorkerPool(r.tickWorkers, 256, 1*time.Second)

	return r
}

func (r *registry) Spawn(params effect.Params, lt effect.Lifetime) uint64 {
	if params == nil {
		panic("registry: Spawn requires non-nil effect params")
	}
	if !params.Type().Valid() {
		panic(fmt.Sprintf("registry: Spawn called with unknown effect type %d", params.Type()))
	}
	if lt == nil {
		panic("registry: Spawn requires a non-nil Lifetime")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	inst := &Instance{ID: id, Params: params, Lifetime: lt}
	r.instances[id] = len(r.ordered)
	r.ordered = append(r.ordered, inst)
	return id
}

func (r *registry) Tick(delta float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.ordered) == 0 {
		return
	}

	// Phase 1: parallel lifetime advance. Each instance's lifetime is touched
	// by exactly one task, so no per-instance locking is needed. A WaitGroup
	// provides the per-frame barrier; extraction never observes a
	// partially-advanced frame because Tick holds the write lock throughout.
	var wg sync.WaitGroup
	for i, inst := range r.ordered {
		wg.Add(1)
		instCap := inst
		r.tickPool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				instCap.Lifetime.Advance(delta)
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Phase 2: drop expired instances, preserving spawn order of survivors.
	r.removeExpiredLocked()
}

// removeExpiredLocked compacts the ordered slice in place, dropping expired
// instances. Caller must hold the write lock.
func (r *registry) removeExpiredLocked() {
	kept := r.ordered[:0]
	for _, inst := range r.ordered {
		if inst.Lifetime.Expired() {
			delete(r.instances, inst.ID)
			continue
		}
		r.instances[inst.ID] = len(kept)
		kept = append(kept, inst)
	}
	// Clear the tail so removed instances can be collected.
	for i := len(kept); i < len(r.ordered); i++ {
		r.ordered[i] = nil
	}
	r.ordered = kept
}

func (r *registry) Get(id uint64) *Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.instances[id]
	if !ok {
		return nil
	}
	return r.ordered[idx]
}

func (r *registry) ForceExpire(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.instances[id]
	if !ok {
		return
	}
	delete(r.instances, id)
	r.ordered = append(r.ordered[:idx], r.ordered[idx+1:]...)
	for i := idx; i < len(r.ordered); i++ {
		r.instances[r.ordered[i].ID] = i
	}
}

func (r *registry) Each(fn func(inst *Instance)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inst := range r.ordered {
		fn(inst)
	}
}

func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}
