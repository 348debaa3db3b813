package model

import "testing"

func TestMaterialImmutable(t *testing.T) {
	props := map[string]float64{PropEI: 5000}
	m := NewMaterial("test", props)

	// Mutating the source map must not leak into the material.
	props[PropEI] = 1

	if got := m.EI(); got != 5000 {
		t.Errorf("EI after source mutation: got %v, want 5000", got)
	}
}

func TestMaterialProperty(t *testing.T) {
	m := NewMaterial("test", map[string]float64{PropEI: 5000, PropGA: 1200})

	if v, ok := m.Property(PropGA); !ok || v != 1200 {
		t.Errorf("GA: got %v (ok=%v), want 1200", v, ok)
	}
	if _, ok := m.Property("J"); ok {
		t.Error("unknown property should not resolve")
	}
	if m.EI() != 5000 {
		t.Errorf("EI: got %v, want 5000", m.EI())
	}
}

func TestLoadTotal(t *testing.T) {
	mat := NewMaterial("test", map[string]float64{PropEI: 5000})
	b := NewBeam(4, 3, mat)

	uniform := NewUniformLoad(10)
	if got := uniform.Total(b); got != 70 {
		t.Errorf("uniform total: got %v, want 70", got)
	}

	split := NewSpanLoads(12, 8)
	if got := split.Total(b); got != 72 {
		t.Errorf("per-span total: got %v, want 72", got)
	}
}

func TestPresets(t *testing.T) {
	for _, m := range Presets() {
		if m.Name() == "" {
			t.Error("preset with empty name")
		}
		if m.EI() <= 0 {
			t.Errorf("preset %q has non-positive EI", m.Name())
		}
	}

	if _, ok := PresetByName("concrete-300x500"); !ok {
		t.Error("known preset not found")
	}
	if _, ok := PresetByName("unobtainium"); ok {
		t.Error("unknown preset resolved")
	}
}
