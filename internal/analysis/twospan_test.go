package analysis

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gobeam/internal/model"
)

func twoSpanBeam(l1, l2, w1, w2 float64) (model.Beam, model.Load) {
	mat := model.NewMaterial("test", map[string]float64{model.PropEI: 5000})
	return model.NewBeam(l1, l2, mat), model.NewSpanLoads(w1, w2)
}

func TestTwoSpanEqualSpansReactions(t *testing.T) {
	// Equal spans under uniform load have the textbook reactions
	// 3wL/8 at the ends and 10wL/8 over the interior support.
	b, l := twoSpanBeam(4, 4, 10, 10)
	r := SolveReactions(b, l)

	approx(t, r.R1, 3.0*10*4/8, 1e-9, "R1")
	approx(t, r.R3, 3.0*10*4/8, 1e-9, "R3")
	approx(t, r.R2, 10.0*10*4/8, 1e-9, "R2")
	// Interior hogging moment wL²/8.
	approx(t, r.InteriorMoment(b, l), -10.0*16/8, 1e-9, "M over interior support")
}

func TestTwoSpanEquilibrium(t *testing.T) {
	cases := []struct {
		l1, l2, w1, w2 float64
	}{
		{4, 3, 10, 10},
		{6, 4, 12, 8},
		{2.5, 5.5, 7, 15},
	}
	for _, c := range cases {
		b, l := twoSpanBeam(c.l1, c.l2, c.w1, c.w2)
		r := SolveReactions(b, l)
		approx(t, r.R1+r.R2+r.R3, c.w1*c.l1+c.w2*c.l2, 1e-9, "sum of reactions vs total load")
	}
}

func TestTwoSpanMomentContinuityAtInterior(t *testing.T) {
	b, l := twoSpanBeam(4, 3, 12, 8)
	moment, err := GetBendingMoment(b, l, TwoSpanUnequal)
	if err != nil {
		t.Fatalf("GetBendingMoment: %v", err)
	}

	left := moment.Equation(b.PrimarySpan).Y
	right := moment.Equation(b.PrimarySpan + 1e-9).Y
	approx(t, left, right, 1e-5, "M continuity at interior support")
}

func TestTwoSpanMomentBoundaries(t *testing.T) {
	b, l := twoSpanBeam(4, 3, 12, 8)
	moment, _ := GetBendingMoment(b, l, TwoSpanUnequal)

	approx(t, moment.Equation(0).Y, 0, 1e-9, "M(0)")
	approx(t, moment.Equation(b.Length()).Y, 0, 1e-9, "M at far support")
	if y := moment.Equation(b.Length() + 0.5).Y; y != 0 {
		t.Errorf("M beyond beam: got %v, want 0", y)
	}
	if y := moment.Equation(-0.5).Y; y != 0 {
		t.Errorf("M before beam: got %v, want 0", y)
	}
}

func TestTwoSpanShearProfile(t *testing.T) {
	b, l := twoSpanBeam(4, 3, 12, 8)
	r := SolveReactions(b, l)
	shear, _ := GetShearForce(b, l, TwoSpanUnequal)

	approx(t, shear.Equation(0).Y, r.R1, 1e-9, "V(0) = R1")
	approx(t, shear.Equation(2).Y, r.R1-12*2, 1e-9, "V within span 1")
	// Value just left of the interior support (before the R2 jump).
	approx(t, shear.Equation(4).Y, r.R1-12*4, 1e-9, "V at interior support")
	approx(t, shear.Equation(5).Y, r.R1+r.R2-12*4-8*1, 1e-9, "V within span 2")
	// Beyond the far support everything balances out.
	approx(t, shear.Equation(8).Y, 0, 1e-9, "V beyond beam")
}

func TestTwoSpanDeflectionZeroAtSupports(t *testing.T) {
	b, l := twoSpanBeam(4, 3, 12, 8)
	deflection, err := GetDeflection(b, l, TwoSpanUnequal)
	if err != nil {
		t.Fatalf("GetDeflection: %v", err)
	}

	approx(t, deflection.Equation(0).Y, 0, 1e-9, "y at left support")
	approx(t, deflection.Equation(4).Y, 0, 1e-9, "y at interior support")
	approx(t, deflection.Equation(7).Y, 0, 1e-9, "y at right support")

	// The heavily loaded span sags; the short lightly loaded span is
	// lifted by the rotation over the interior support.
	if y := deflection.Equation(1.8).Y; y >= 0 {
		t.Errorf("span 1 should sag: y=%v", y)
	}
	if y := deflection.Equation(5.0).Y; y <= 0 {
		t.Errorf("span 2 should lift near the interior support: y=%v", y)
	}
}

func TestTwoSpanSlopeContinuityAtInterior(t *testing.T) {
	// The three-moment compatibility condition implies a smooth
	// deflected shape over the middle support; check the numeric
	// slope from both sides.
	b, l := twoSpanBeam(4, 3, 12, 8)
	deflection, _ := GetDeflection(b, l, TwoSpanUnequal)

	h := 1e-6
	slopeLeft := (deflection.Equation(4).Y - deflection.Equation(4-h).Y) / h
	slopeRight := (deflection.Equation(4+h).Y - deflection.Equation(4).Y) / h
	approx(t, slopeLeft, slopeRight, 1e-2, "slope continuity at interior support")
}

func TestTwoSpanDeflectionScale(t *testing.T) {
	b, l := twoSpanBeam(4, 3, 12, 8)

	base, err := GetDeflectionScaled(b, l, TwoSpanUnequal, 1)
	if err != nil {
		t.Fatalf("GetDeflectionScaled: %v", err)
	}
	doubled, err := GetDeflectionScaled(b, l, TwoSpanUnequal, 2)
	if err != nil {
		t.Fatalf("GetDeflectionScaled: %v", err)
	}

	for _, x := range []float64{0.5, 2, 4.5, 6.2} {
		approx(t, doubled.Equation(x).Y, 2*base.Equation(x).Y, 1e-9, "scaled deflection")
	}
}

func TestTwoSpanEqualSpansSymmetry(t *testing.T) {
	// Equal spans under equal loads deflect symmetrically about the
	// interior support.
	b, l := twoSpanBeam(4, 4, 10, 10)
	deflection, _ := GetDeflection(b, l, TwoSpanUnequal)

	for _, x := range []float64{0.5, 1.5, 3} {
		left := deflection.Equation(x).Y
		right := deflection.Equation(8 - x).Y
		if math.Abs(left-right) > 1e-9 {
			t.Errorf("deflection symmetry at x=%v: %v vs %v", x, left, right)
		}
	}
}
