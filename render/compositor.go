package render

import (
	"github.com/Nub/screenfx/render/bind_group_provider"
	"github.com/Nub/screenfx/render/pipeline"
	log "github.com/sirupsen/logrus"
)

// PassBackend is the slice of the renderer backend the compositor needs:
// encoding one full-screen effect pass with ping-pong swap.
type PassBackend interface {
	EncodeEffectPass(p pipeline.Pipeline, uniforms bind_group_provider.BindGroupProvider) error
}

// Compositor encodes the frame's effect passes in order, bouncing the image
// between the backend's ping-pong textures. A pass that cannot run — missing
// pipeline or encode failure — is skipped so one broken effect never takes
// down the rest of the chain.
type Compositor struct {
	backend PassBackend
	cache   PipelineCache
	warned  map[cacheKey]bool
}

// NewCompositor creates a Compositor drawing pipelines from the given cache.
//
// Parameters:
//   - backend: the backend that encodes passes
//   - cache: the pipeline cache to resolve (type, variant) pairs against
//
// Returns:
//   - *Compositor: the new compositor
func NewCompositor(backend PassBackend, cache PipelineCache) *Compositor {
	return &Compositor{
		backend: backend,
		cache:   cache,
		warned:  make(map[cacheKey]bool),
	}
}

// Composite encodes every prepared pass in order. An empty pass list is a
// no-op: no backend call is made and the seeded scene reaches the screen
// untouched.
//
// Parameters:
//   - passes: the prepared passes in render order
//
// Returns:
//   - int: the number of passes successfully encoded
func (c *Compositor) Composite(passes []PreparedPass) int {
	if len(passes) == 0 {
		return 0
	}

	encoded := 0
	for _, pass := range passes {
		flags := pass.Snapshot.Params.VariantFlags()
		key := cacheKey{t: pass.Snapshot.Type, flags: flags}

		pl, err := c.cache.GetOrCreate(pass.Snapshot.Type, flags)
		if err != nil {
			c.warnOnce(key, "pipeline compilation failed for effect %s, skipping pass", err)
			continue
		}
		if err := c.backend.EncodeEffectPass(pl, pass.Uniforms); err != nil {
			c.warnOnce(key, "pass encoding failed for effect %s, skipping pass", err)
			continue
		}
		encoded++
	}
	return encoded
}

func (c *Compositor) warnOnce(key cacheKey, format string, err error) {
	if c.warned[key] {
		return
	}
	c.warned[key] = true
	log.WithError(err).Warnf(format, key.t)
}
