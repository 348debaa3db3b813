package analysis

import "github.com/alexiusacademia/gobeam/internal/model"

// Two-span continuous beam over three supports, uniform distributed
// load per span. The beam is statically indeterminate; the interior
// support moment comes from the three-moment equation, after which
// the reactions follow from statics.

// Reactions holds the derived support forces of a two-span beam (kN).
type Reactions struct {
	R1 float64 // end support, span 1 side
	R2 float64 // interior support
	R3 float64 // end support, span 2 side
}

// SolveReactions computes the support reactions of a two-span
// continuous beam from the per-span distributed loads.
func SolveReactions(b model.Beam, l model.Load) Reactions {
	l1 := b.PrimarySpan
	l2 := b.SecondarySpan

	// Three-moment equation with simple end supports (M0 = M2 = 0):
	// the interior support moment is hogging (negative).
	m1 := -(l.W1*l1*l1*l1 + l.W2*l2*l2*l2) / (8 * (l1 + l2))

	r1 := m1/l1 + l.W1*l1/2
	r3 := m1/l2 + l.W2*l2/2
	r2 := l.Total(b) - r1 - r3
	return Reactions{R1: r1, R2: r2, R3: r3}
}

// InteriorMoment returns the hogging bending moment over the middle
// support (kN-m).
func (r Reactions) InteriorMoment(b model.Beam, l model.Load) float64 {
	return r.R1*b.PrimarySpan - l.W1*b.PrimarySpan*b.PrimarySpan/2
}

func twoSpanBendingMoment(b model.Beam, l model.Load) Equation {
	l1 := b.PrimarySpan
	total := b.Length()
	r := SolveReactions(b, l)

	return func(x float64) Point {
		switch {
		case x < 0 || x > total:
			return Point{X: x}
		case x <= l1:
			return Point{X: x, Y: r.R1*x - l.W1*x*x/2}
		default:
			s := x - l1
			m := r.R1*x + r.R2*s - l.W1*l1*(x-l1/2) - l.W2*s*s/2
			return Point{X: x, Y: m}
		}
	}
}

func twoSpanShearForce(b model.Beam, l model.Load) Equation {
	l1 := b.PrimarySpan
	l2 := b.SecondarySpan
	total := b.Length()
	r := SolveReactions(b, l)

	return func(x float64) Point {
		switch {
		case x < 0:
			return Point{X: x}
		case x == 0:
			return Point{X: x, Y: r.R1}
		case x > 0 && x < l1:
			return Point{X: x, Y: r.R1 - l.W1*x}
		case x == l1:
			// Value just left of the interior support; the R2 jump
			// belongs to the second segment.
			return Point{X: x, Y: r.R1 - l.W1*l1}
		case x > l1 && x <= total:
			return Point{X: x, Y: r.R1 + r.R2 - l.W1*l1 - l.W2*(x-l1)}
		default:
			// Beyond the far support every load is balanced.
			return Point{X: x, Y: r.R1 + r.R2 + r.R3 - l.W1*l1 - l.W2*l2}
		}
	}
}

// twoSpanDeflection integrates EI·y″ = M(x) once per span. Each span
// has y = 0 at both of its supports; slope continuity at the interior
// support is implied by the three-moment compatibility condition, so
// no extra matching constant is needed.
func twoSpanDeflection(b model.Beam, l model.Load, scale float64) Equation {
	l1 := b.PrimarySpan
	l2 := b.SecondarySpan
	total := b.Length()
	ei := b.Material.EI()

	r := SolveReactions(b, l)
	mi := r.InteriorMoment(b, l)
	// Shear just right of the interior support.
	vi := r.R1 + r.R2 - l.W1*l1

	// Integration constants from y(0)=y(L1)=0 and y(L1)=y(L1+L2)=0.
	c1 := l.W1*l1*l1*l1/24 - r.R1*l1*l1/6
	d1 := -(mi*l2/2 + vi*l2*l2/6 - l.W2*l2*l2*l2/24)

	return func(x float64) Point {
		if x < 0 || x > total {
			return Point{X: x}
		}
		var u float64 // EI·y
		if x <= l1 {
			u = r.R1*x*x*x/6 - l.W1*x*x*x*x/24 + c1*x
		} else {
			s := x - l1
			u = mi*s*s/2 + vi*s*s*s/6 - l.W2*s*s*s*s/24 + d1*s
		}
		return Point{X: x, Y: u / ei * mmPerM * scale}
	}
}
