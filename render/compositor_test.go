package render

import (
	"errors"
	"testing"

	"github.com/Nub/screenfx/effect"
	"github.com/Nub/screenfx/render/bind_group_provider"
	"github.com/Nub/screenfx/render/pipeline"
)

// fakePassBackend records encoded passes and can fail selected pipelines.
type fakePassBackend struct {
	encoded    []string
	encodeErrs map[string]error
}

func (f *fakePassBackend) EncodeEffectPass(p pipeline.Pipeline, uniforms bind_group_provider.BindGroupProvider) error {
	key := p.PipelineKey()
	if err := f.encodeErrs[key]; err != nil {
		return err
	}
	f.encoded = append(f.encoded, key)
	return nil
}

func passesFor(params ...effect.Params) []PreparedPass {
	var passes []PreparedPass
	for i, p := range params {
		passes = append(passes, PreparedPass{
			Snapshot: Snapshot{
				ID:        uint64(i + 1),
				Type:      p.Type(),
				Params:    p,
				Intensity: 1,
			},
			Uniforms: bind_group_provider.NewBindGroupProvider(p.Type().String()),
		})
	}
	return passes
}

func TestCompositeEncodesInOrder(t *testing.T) {
	backend := &fakePassBackend{}
	cache := NewPipelineCache(func(typ effect.Type, flags effect.VariantFlags) (pipeline.Pipeline, error) {
		return pipeline.NewPipeline(typ.String()), nil
	})
	c := NewCompositor(backend, cache)

	encoded := c.Composite(passesFor(
		effect.ShockwaveAt(0.5, 0.5),
		effect.RgbSplit{},
		effect.Flash{Blend: 1},
	))
	if encoded != 3 {
		t.Fatalf("encoded %d passes, want 3", encoded)
	}
	want := []string{"shockwave", "rgb_split", "flash"}
	for i := range want {
		if backend.encoded[i] != want[i] {
			t.Errorf("pass[%d] = %q, want %q", i, backend.encoded[i], want[i])
		}
	}
}

func TestCompositeEmptyIsNoOp(t *testing.T) {
	backend := &fakePassBackend{}
	compiled := false
	cache := NewPipelineCache(func(typ effect.Type, flags effect.VariantFlags) (pipeline.Pipeline, error) {
		compiled = true
		return pipeline.NewPipeline(typ.String()), nil
	})
	c := NewCompositor(backend, cache)

	if got := c.Composite(nil); got != 0 {
		t.Errorf("Composite(nil) = %d, want 0", got)
	}
	if compiled || len(backend.encoded) != 0 {
		t.Error("empty composite touched the backend or cache")
	}
}

func TestCompositeSkipsFailedCompile(t *testing.T) {
	backend := &fakePassBackend{}
	cache := NewPipelineCache(func(typ effect.Type, flags effect.VariantFlags) (pipeline.Pipeline, error) {
		if typ == effect.TypeShockwave {
			return nil, errors.New("wgsl error")
		}
		return pipeline.NewPipeline(typ.String()), nil
	})
	c := NewCompositor(backend, cache)

	encoded := c.Composite(passesFor(
		effect.ShockwaveAt(0.5, 0.5),
		effect.Flash{Blend: 1},
	))
	if encoded != 1 {
		t.Fatalf("encoded %d passes, want 1", encoded)
	}
	if len(backend.encoded) != 1 || backend.encoded[0] != "flash" {
		t.Errorf("surviving passes = %v, want [flash]", backend.encoded)
	}
}

func TestCompositeSkipsFailedEncode(t *testing.T) {
	backend := &fakePassBackend{
		encodeErrs: map[string]error{"rgb_split": errors.New("encoder dead")},
	}
	cache := NewPipelineCache(func(typ effect.Type, flags effect.VariantFlags) (pipeline.Pipeline, error) {
		return pipeline.NewPipeline(typ.String()), nil
	})
	c := NewCompositor(backend, cache)

	encoded := c.Composite(passesFor(
		effect.ShockwaveAt(0.5, 0.5),
		effect.RgbSplit{},
		effect.Flash{Blend: 1},
	))
	if encoded != 2 {
		t.Fatalf("encoded %d passes, want 2", encoded)
	}
	want := []string{"shockwave", "flash"}
	for i := range want {
		if backend.encoded[i] != want[i] {
			t.Errorf("pass[%d] = %q, want %q", i, backend.encoded[i], want[i])
		}
	}
}

func TestCompositeResolvesVariantPipelines(t *testing.T) {
	backend := &fakePassBackend{}
	var keys []string
	cache := NewPipelineCache(func(typ effect.Type, flags effect.VariantFlags) (pipeline.Pipeline, error) {
		key := typ.String()
		if flags&effect.VariantChromatic != 0 {
			key += "+chromatic"
		}
		keys = append(keys, key)
		return pipeline.NewPipeline(key), nil
	})
	c := NewCompositor(backend, cache)

	plain := effect.ShockwaveAt(0.5, 0.5)
	plain.Chromatic = false
	chroma := effect.ShockwaveAt(0.5, 0.5)
	chroma.Chromatic = true

	if got := c.Composite(passesFor(plain, chroma)); got != 2 {
		t.Fatalf("encoded %d passes, want 2", got)
	}
	if len(keys) != 2 || keys[0] == keys[1] {
		t.Errorf("variant flags did not produce distinct pipelines: %v", keys)
	}
}
