package shader

import (
	"strings"
	"testing"

	"github.com/Nub/screenfx/effect"
)

func TestFragmentSourceExistsForEveryType(t *testing.T) {
	for _, typ := range effect.AllTypes() {
		src := fragmentSource(typ)
		if src == "" {
			t.Errorf("no fragment source for %s", typ)
			continue
		}
		if !strings.Contains(src, "fn fragment") {
			t.Errorf("%s source has no fragment entry point", typ)
		}
		if !strings.Contains(src, "screen_texture") {
			t.Errorf("%s source does not sample the screen texture", typ)
		}
	}
	if got := fragmentSource(effect.Type(-1)); got != "" {
		t.Error("unknown type should have no source")
	}
}

func TestForEffectAssemblesModule(t *testing.T) {
	s := ForEffect(effect.TypeShockwave, 0, 32)
	if s.Key() != "shockwave" {
		t.Errorf("key = %q, want \"shockwave\"", s.Key())
	}
	if s.VertexEntryPoint() != "vertex" || s.FragmentEntryPoint() != "fragment" {
		t.Errorf("entry points = %q/%q", s.VertexEntryPoint(), s.FragmentEntryPoint())
	}
	src := s.Source()
	// One module carries both stages.
	if !strings.Contains(src, "fn vertex") || !strings.Contains(src, "fn fragment") {
		t.Error("assembled source missing an entry point")
	}

	layouts := s.BindGroupLayoutDescriptors()
	if len(layouts) != 2 {
		t.Fatalf("shader declares %d bind groups, want 2", len(layouts))
	}
	tex := s.BindGroupLayoutDescriptor(GroupScreenTexture)
	if len(tex.Entries) != 2 {
		t.Errorf("screen texture group has %d entries, want texture + sampler", len(tex.Entries))
	}
	uni := s.BindGroupLayoutDescriptor(GroupUniforms)
	if len(uni.Entries) != 1 {
		t.Fatalf("uniform group has %d entries, want 1", len(uni.Entries))
	}
	if got := uni.Entries[0].Buffer.MinBindingSize; got != 32 {
		t.Errorf("uniform MinBindingSize = %d, want 32", got)
	}
}

func TestChromaticVariantSubstitution(t *testing.T) {
	base := fragmentSource(effect.TypeShockwave)
	if !strings.Contains(base, chromaticOff) {
		t.Fatal("shockwave source does not declare the chromatic constant")
	}

	specialized := applyVariants(base, effect.VariantChromatic)
	if !strings.Contains(specialized, chromaticOn) {
		t.Error("chromatic variant not enabled in specialized source")
	}
	if strings.Contains(specialized, chromaticOff) {
		t.Error("disabled chromatic constant still present after specialization")
	}

	// Zero flags leave the source untouched.
	if got := applyVariants(base, 0); got != base {
		t.Error("applyVariants with zero flags modified the source")
	}

	// Flags are harmless on sources without the constant.
	flash := fragmentSource(effect.TypeFlash)
	if got := applyVariants(flash, effect.VariantChromatic); got != flash {
		t.Error("chromatic flag modified a source without the constant")
	}
}

func TestVariantKeys(t *testing.T) {
	if got := variantKey(effect.TypeShockwave, 0); got != "shockwave" {
		t.Errorf("base key = %q", got)
	}
	if got := variantKey(effect.TypeShockwave, effect.VariantChromatic); got != "shockwave+chromatic" {
		t.Errorf("variant key = %q", got)
	}
	// Keys for distinct flags must never collide: the pipeline cache keys
	// compiled modules on them.
	if variantKey(effect.TypeShockwave, 0) == variantKey(effect.TypeShockwave, effect.VariantChromatic) {
		t.Error("variant keys collide")
	}
}

func TestUniformLayoutDescriptorPerType(t *testing.T) {
	d := UniformLayoutDescriptor(effect.TypeCrt, 80)
	if d.Label != "crt_uniform_layout" {
		t.Errorf("label = %q", d.Label)
	}
	if len(d.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(d.Entries))
	}
	e := d.Entries[0]
	if e.Binding != BindingUniformBuffer {
		t.Errorf("binding = %d, want %d", e.Binding, BindingUniformBuffer)
	}
	if e.Buffer.MinBindingSize != 80 {
		t.Errorf("MinBindingSize = %d, want 80", e.Buffer.MinBindingSize)
	}
}
