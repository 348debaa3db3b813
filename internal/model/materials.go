package model

// Preset section catalog.
//
// Flexural rigidities are EI = E·I in kN-m², computed from typical
// elastic moduli (concrete 25 GPa, steel 200 GPa, timber 11 GPa) and
// gross section properties.

// Presets returns the built-in material sections, in display order.
func Presets() []Material {
	return []Material{
		NewMaterial("concrete-300x500", map[string]float64{
			PropEI: 78125, // 25e6 kN/m² × 0.3·0.5³/12 m⁴
		}),
		NewMaterial("concrete-300x600", map[string]float64{
			PropEI: 135000,
		}),
		NewMaterial("steel-w310x39", map[string]float64{
			PropEI: 16980, // Ix = 84.9e6 mm⁴
		}),
		NewMaterial("steel-w460x74", map[string]float64{
			PropEI: 66600, // Ix = 333e6 mm⁴
		}),
		NewMaterial("timber-100x300", map[string]float64{
			PropEI: 2475,
		}),
	}
}

// PresetByName looks up a preset section by its identifier.
func PresetByName(name string) (Material, bool) {
	for _, m := range Presets() {
		if m.Name() == name {
			return m, true
		}
	}
	return Material{}, false
}
