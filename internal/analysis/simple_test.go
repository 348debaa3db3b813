package analysis

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/model"
)

const tol = 1e-9

func approx(t *testing.T, got, want, tolerance float64, msg string) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s: got %.9f, want %.9f", msg, got, want)
	}
}

func testBeam() (model.Beam, model.Load) {
	mat := model.NewMaterial("test", map[string]float64{model.PropEI: 5000})
	return model.NewBeam(4, 0, mat), model.NewUniformLoad(10)
}

func TestSimpleBoundaryConditions(t *testing.T) {
	b, l := testBeam()
	span := b.PrimarySpan

	deflection, err := GetDeflection(b, l, SimplySupported)
	if err != nil {
		t.Fatalf("GetDeflection: %v", err)
	}
	moment, err := GetBendingMoment(b, l, SimplySupported)
	if err != nil {
		t.Fatalf("GetBendingMoment: %v", err)
	}
	shear, err := GetShearForce(b, l, SimplySupported)
	if err != nil {
		t.Fatalf("GetShearForce: %v", err)
	}

	approx(t, deflection.Equation(0).Y, 0, tol, "y(0)")
	approx(t, deflection.Equation(span).Y, 0, tol, "y(L)")
	approx(t, moment.Equation(0).Y, 0, tol, "M(0)")
	approx(t, moment.Equation(span).Y, 0, tol, "M(L)")
	approx(t, shear.Equation(span/2).Y, 0, tol, "V(L/2)")
}

func TestSimpleMidspanValues(t *testing.T) {
	b, l := testBeam()

	deflection, _ := GetDeflection(b, l, SimplySupported)
	moment, _ := GetBendingMoment(b, l, SimplySupported)
	shear, _ := GetShearForce(b, l, SimplySupported)

	// Midspan deflection: 5wL⁴/384EI = 5·10·256/(384·5000) m, in mm.
	approx(t, deflection.Equation(2).Y, -5.0*10*256/(384*5000)*1000, 1e-6, "y(L/2)")
	// Midspan moment: wL²/8 = 20 kN-m, sagging negative.
	approx(t, moment.Equation(2).Y, -20, tol, "M(L/2)")
	// End shears: ±wL/2.
	approx(t, shear.Equation(0).Y, 20, tol, "V(0)")
	approx(t, shear.Equation(4).Y, -20, tol, "V(L)")
}

func TestSimpleZeroOutsideSpan(t *testing.T) {
	b, l := testBeam()

	for _, cond := range []func(model.Beam, model.Load, Condition) (*Result, error){
		GetDeflection, GetBendingMoment, GetShearForce,
	} {
		r, err := cond(b, l, SimplySupported)
		if err != nil {
			t.Fatalf("analyzer: %v", err)
		}
		for _, x := range []float64{-2, -0.001, 4.001, 10} {
			if y := r.Equation(x).Y; y != 0 {
				t.Errorf("quantity at x=%.3f outside span: got %v, want 0", x, y)
			}
		}
	}
}

func TestSimpleMomentSymmetry(t *testing.T) {
	b, l := testBeam()
	moment, _ := GetBendingMoment(b, l, SimplySupported)

	span := b.PrimarySpan
	for x := 0.0; x <= span/2; x += 0.1 {
		left := moment.Equation(x).Y
		right := moment.Equation(span - x).Y
		approx(t, left, right, 1e-9, "M symmetry about midspan")
	}
}

func TestEquationIdempotent(t *testing.T) {
	b, l := testBeam()
	deflection, _ := GetDeflection(b, l, SimplySupported)

	first := deflection.Equation(1.3)
	second := deflection.Equation(1.3)
	if first != second {
		t.Errorf("repeated evaluation differs: %+v vs %+v", first, second)
	}
}
