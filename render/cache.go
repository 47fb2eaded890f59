package render

import (
	"fmt"
	"sync"

	"github.com/Nub/screenfx/effect"
	"github.com/Nub/screenfx/render/pipeline"
)

// CompileFunc builds a ready-to-use pipeline for one (effect type, variant)
// pair. The renderer backend supplies this; tests supply fakes.
type CompileFunc func(t effect.Type, flags effect.VariantFlags) (pipeline.Pipeline, error)

// cacheKey identifies one compiled pipeline specialization.
type cacheKey struct {
	t     effect.Type
	flags effect.VariantFlags
}

// cacheEntry tracks one compilation, in flight or finished. ready is closed
// once p and err are final.
type cacheEntry struct {
	ready chan struct{}
	p     pipeline.Pipeline
	err   error
}

// pipelineCache is the implementation of the PipelineCache interface.
type pipelineCache struct {
	mu      sync.Mutex
	compile CompileFunc
	entries map[cacheKey]*cacheEntry
}

// PipelineCache caches compiled effect pipelines keyed by effect type and
// variant flags. Repeated lookups for the same key return the identical
// pipeline handle, and concurrent first lookups compile exactly once.
type PipelineCache interface {
	// GetOrCreate returns the cached pipeline for the key, compiling it on
	// first use. Concurrent callers for the same key block until the single
	// in-flight compilation finishes and then share its result. A failed
	// compilation is not cached; the next lookup retries.
	//
	// Parameters:
	//   - t: the effect type
	//   - flags: the variant flags baked into the pipeline
	//
	// Returns:
	//   - pipeline.Pipeline: the cached or newly compiled pipeline
	//   - error: the compilation error, if any
	GetOrCreate(t effect.Type, flags effect.VariantFlags) (pipeline.Pipeline, error)

	// Warm eagerly compiles every known effect pipeline, including the
	// variant specializations spawn presets can reach. It stops at the
	// first failure and returns the compile error wrapped with the
	// offending effect type, so a broken shader surfaces at startup rather
	// than at some later spawn.
	//
	// Returns:
	//   - error: the first compile failure, or nil once every pipeline is cached
	Warm() error

	// Invalidate drops every cached specialization of one effect type. The
	// next lookup recompiles from current shader sources.
	//
	// Parameters:
	//   - t: the effect type to drop
	Invalidate(t effect.Type)

	// InvalidateAll drops the entire cache.
	InvalidateAll()

	// Len returns the number of cached pipelines, counting each variant
	// specialization separately.
	//
	// Returns:
	//   - int: the cache size
	Len() int
}

var _ PipelineCache = &pipelineCache{}

// NewPipelineCache creates a PipelineCache backed by the given compile function.
//
// Parameters:
//   - compile: the function invoked once per (type, variant) key
//
// Returns:
//   - PipelineCache: the new cache, empty until warmed or first used
func NewPipelineCache(compile CompileFunc) PipelineCache {
	return &pipelineCache{
		compile: compile,
		entries: make(map[cacheKey]*cacheEntry),
	}
}

func (c *pipelineCache) GetOrCreate(t effect.Type, flags effect.VariantFlags) (pipeline.Pipeline, error) {
	key := cacheKey{t: t, flags: flags}

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.mu.Unlock()
		<-e.ready
		return e.p, e.err
	}
	e := &cacheEntry{ready: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	e.p, e.err = c.compile(t, flags)
	if e.err != nil {
		c.mu.Lock()
		if c.entries[key] == e {
			delete(c.entries, key)
		}
		c.mu.Unlock()
	}
	close(e.ready)
	return e.p, e.err
}

// warmVariants lists the variant specializations warmed beyond the base
// pipeline of each type.
var warmVariants = map[effect.Type][]effect.VariantFlags{
	effect.TypeShockwave: {effect.VariantChromatic},
}

func (c *pipelineCache) Warm() error {
	for _, t := range effect.AllTypes() {
		if _, err := c.GetOrCreate(t, 0); err != nil {
			return fmt.Errorf("pipeline warm failed for effect %s: %w", t, err)
		}
		for _, flags := range warmVariants[t] {
			if _, err := c.GetOrCreate(t, flags); err != nil {
				return fmt.Errorf("pipeline warm failed for effect %s variant %#x: %w", t, uint32(flags), err)
			}
		}
	}
	return nil
}

func (c *pipelineCache) Invalidate(t effect.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.t == t {
			delete(c.entries, key)
		}
	}
}

func (c *pipelineCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*cacheEntry)
}

func (c *pipelineCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
