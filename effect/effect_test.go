package effect

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTypeStringAndValid(t *testing.T) {
	cases := map[Type]string{
		TypeShockwave:       "shockwave",
		TypeRadialBlur:      "radial_blur",
		TypeEmpInterference: "emp_interference",
		TypeSpeedLines:      "speed_lines",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
		if !typ.Valid() {
			t.Errorf("%s should be valid", want)
		}
	}

	for _, typ := range []Type{-1, typeCount, typeCount + 10} {
		if typ.Valid() {
			t.Errorf("type %d should be invalid", typ)
		}
		if got := typ.String(); got != "unknown" {
			t.Errorf("String() for invalid type = %q, want \"unknown\"", got)
		}
	}
}

func TestAllTypesCoversTheClosedSet(t *testing.T) {
	types := AllTypes()
	if len(types) != int(typeCount) {
		t.Fatalf("AllTypes returned %d types, want %d", len(types), typeCount)
	}
	seen := map[Type]bool{}
	for _, typ := range types {
		if seen[typ] {
			t.Errorf("duplicate type %s", typ)
		}
		seen[typ] = true
		if !typ.Valid() {
			t.Errorf("AllTypes yielded invalid type %d", typ)
		}
	}
}

func TestCategoryOrdering(t *testing.T) {
	// Distortion before glitch before feedback: the compositor sorts on the
	// numeric category value.
	if !(CategoryDistortion < CategoryGlitch && CategoryGlitch < CategoryFeedback) {
		t.Fatal("category constants are not in pass order")
	}
	cases := map[Type]Category{
		TypeShockwave:      CategoryDistortion,
		TypeHeatHaze:       CategoryDistortion,
		TypeRgbSplit:       CategoryGlitch,
		TypeCrt:            CategoryGlitch,
		TypeDamageVignette: CategoryFeedback,
		TypeFlash:          CategoryFeedback,
	}
	for typ, want := range cases {
		if got := CategoryOf(typ); got != want {
			t.Errorf("CategoryOf(%s) = %s, want %s", typ, got, want)
		}
	}
}

func TestParamsTypeTags(t *testing.T) {
	params := []Params{
		Shockwave{}, RadialBlur{}, Raindrops{}, HeatHaze{},
		RgbSplit{}, ScanlineGlitch{}, BlockGlitch{}, StaticNoise{},
		EmpInterference{}, Crt{}, DamageVignette{}, Flash{}, SpeedLines{},
	}
	seen := map[Type]bool{}
	for _, p := range params {
		typ := p.Type()
		if !typ.Valid() {
			t.Errorf("%T reports invalid type %d", p, typ)
		}
		if seen[typ] {
			t.Errorf("%T reuses type %s", p, typ)
		}
		seen[typ] = true
	}
	if len(seen) != int(typeCount) {
		t.Errorf("params cover %d types, want %d", len(seen), typeCount)
	}
}

func TestShockwaveVariantFlags(t *testing.T) {
	plain := Shockwave{Center: mgl32.Vec2{0.5, 0.5}}
	if got := plain.VariantFlags(); got != 0 {
		t.Errorf("plain shockwave flags = %v, want 0", got)
	}
	chroma := Shockwave{Chromatic: true}
	if got := chroma.VariantFlags(); got != VariantChromatic {
		t.Errorf("chromatic shockwave flags = %v, want %v", got, VariantChromatic)
	}
	// Variantless types always report zero regardless of values.
	if got := (Flash{Blend: 1}).VariantFlags(); got != 0 {
		t.Errorf("flash flags = %v, want 0", got)
	}
}

func TestShockwaveAtDefaults(t *testing.T) {
	s := ShockwaveAt(0.25, 0.75)
	if s.Center != (mgl32.Vec2{0.25, 0.75}) {
		t.Errorf("center = %v, want {0.25 0.75}", s.Center)
	}
	if s.Strength <= 0 || s.RingWidth <= 0 || s.MaxRadius <= 0 {
		t.Errorf("defaults should be positive: %+v", s)
	}
}
