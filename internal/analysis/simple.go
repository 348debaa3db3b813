package analysis

import "github.com/alexiusacademia/gobeam/internal/model"

// Simply supported single span under a uniform distributed load.
// Standard Euler-Bernoulli closed forms; every quantity is zero
// outside [0, L].

func simpleDeflection(b model.Beam, l model.Load, scale float64) Equation {
	span := b.PrimarySpan
	ei := b.Material.EI()
	w := l.W1

	return func(x float64) Point {
		if x < 0 || x > span {
			return Point{X: x}
		}
		// y = -(w·x / 24EI)·(L³ - 2L·x² + x³), in metres
		y := -(w * x / (24 * ei)) * (span*span*span - 2*span*x*x + x*x*x)
		return Point{X: x, Y: y * mmPerM * scale}
	}
}

func simpleBendingMoment(b model.Beam, l model.Load) Equation {
	span := b.PrimarySpan
	w := l.W1

	return func(x float64) Point {
		if x < 0 || x > span {
			return Point{X: x}
		}
		return Point{X: x, Y: -(w * x / 2) * (span - x)}
	}
}

func simpleShearForce(b model.Beam, l model.Load) Equation {
	span := b.PrimarySpan
	w := l.W1

	return func(x float64) Point {
		if x < 0 || x > span {
			return Point{X: x}
		}
		return Point{X: x, Y: w * (span/2 - x)}
	}
}
