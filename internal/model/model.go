package model

// Property symbols recognized in a material's property map.
const (
	PropEI = "EI" // flexural rigidity (kN-m²)
	PropGA = "GA" // shear rigidity (kN)
)

// Material is a named set of section stiffness properties.
// It is immutable once constructed; the constructor copies the
// property map so callers cannot mutate it afterwards.
type Material struct {
	name       string
	properties map[string]float64
}

// NewMaterial creates a material with the given property map.
func NewMaterial(name string, properties map[string]float64) Material {
	props := make(map[string]float64, len(properties))
	for k, v := range properties {
		props[k] = v
	}
	return Material{name: name, properties: props}
}

// Name returns the material identifier.
func (m Material) Name() string {
	return m.name
}

// Property looks up a property by symbol.
func (m Material) Property(symbol string) (float64, bool) {
	v, ok := m.properties[symbol]
	return v, ok
}

// EI returns the flexural rigidity, or 0 if the material does not
// define one.
func (m Material) EI() float64 {
	return m.properties[PropEI]
}

// Beam describes the spans of a beam line. SecondarySpan is 0 for
// single-span conditions.
type Beam struct {
	PrimarySpan   float64 // L1 (m)
	SecondarySpan float64 // L2 (m), 0 when unused
	Material      Material
}

// NewBeam creates a beam over one or two spans.
func NewBeam(primarySpan, secondarySpan float64, material Material) Beam {
	return Beam{
		PrimarySpan:   primarySpan,
		SecondarySpan: secondarySpan,
		Material:      material,
	}
}

// Length returns the total supported length.
func (b Beam) Length() float64 {
	return b.PrimarySpan + b.SecondarySpan
}

// Load holds the uniform distributed load on each span (kN/m).
// Support reactions are always derived by the analysis package,
// never supplied by the caller.
type Load struct {
	W1 float64 // distributed load on span 1
	W2 float64 // distributed load on span 2
}

// NewUniformLoad applies the same distributed load to both spans.
func NewUniformLoad(w float64) Load {
	return Load{W1: w, W2: w}
}

// NewSpanLoads applies a distinct distributed load per span.
func NewSpanLoads(w1, w2 float64) Load {
	return Load{W1: w1, W2: w2}
}

// Total returns the total applied load on the beam (kN).
func (l Load) Total(b Beam) float64 {
	return l.W1*b.PrimarySpan + l.W2*b.SecondarySpan
}
