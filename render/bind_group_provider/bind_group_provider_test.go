package bind_group_provider

import "testing"

func TestProviderCarriesLabel(t *testing.T) {
	p := NewBindGroupProvider("shockwave[0]")
	if got := p.Label(); got != "shockwave[0]" {
		t.Errorf("Label() = %q, want \"shockwave[0]\"", got)
	}
}

func TestProviderUninitializedResources(t *testing.T) {
	p := NewBindGroupProvider("slot")
	if p.BindGroup() != nil {
		t.Error("BindGroup() should be nil before initialization")
	}
	if p.BindGroupLayout() != nil {
		t.Error("BindGroupLayout() should be nil before initialization")
	}
	if p.Buffer(0) != nil {
		t.Error("Buffer(0) should be nil before initialization")
	}
}

func TestProviderReleaseIsNilSafe(t *testing.T) {
	p := NewBindGroupProvider("slot")
	p.SetBuffer(0, nil)
	p.SetBindGroup(nil)
	p.SetBindGroupLayout(nil)
	// Must not panic on nil entries.
	p.Release()
	if p.Buffer(0) != nil {
		t.Error("Buffer(0) should be gone after Release")
	}
}
