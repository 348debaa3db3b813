// Package analysis evaluates closed-form deflection, bending-moment
// and shear-force equations for supported beam configurations.
//
// Every operation returns a Result wrapping a pure evaluator; sampling
// the evaluator over a position range produces the (x, y) series that
// the chart package consumes. Sign convention: downward load positive,
// sagging deflection negative, sagging moment negative for the single
// span (matching the source formulas).
package analysis

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/model"
)

// Condition selects the support configuration of the beam.
type Condition string

const (
	// SimplySupported is a single span on two end supports.
	SimplySupported Condition = "simply-supported"

	// TwoSpanUnequal is a continuous beam over three supports with
	// (possibly) unequal spans.
	TwoSpanUnequal Condition = "two-span-unequal"
)

// ErrInvalidCondition is returned when a requested support condition
// is not one of the supported configurations.
var ErrInvalidCondition = errors.New("invalid support condition")

// mmPerM converts a deflection computed in metres to millimetres.
// The source applied a 1/1e9 stiffness scaling together with 1000³
// on cubed distances; those cancel, leaving exactly this one factor.
const mmPerM = 1000.0

// Point is a single sampled value of a beam quantity at position X.
type Point struct {
	X float64 // position along the beam (m)
	Y float64 // quantity value at X
}

// Equation evaluates one beam quantity at a position. Equations are
// pure: the same x always yields the same point.
type Equation func(x float64) Point

// Result pairs the analyzed inputs with the produced evaluator.
type Result struct {
	Beam     model.Beam
	Load     model.Load
	Equation Equation
}

// Series is a sampled (x, y) sequence ready for charting.
type Series struct {
	X []float64
	Y []float64
}

// Sample evaluates the result's equation from start to stop
// (inclusive) at the given step.
func (r Result) Sample(start, stop, step float64) Series {
	var s Series
	if step <= 0 || stop < start {
		return s
	}
	for x := start; x <= stop+step/2; x += step {
		p := r.Equation(x)
		s.X = append(s.X, p.X)
		s.Y = append(s.Y, p.Y)
	}
	return s
}

// GetDeflection returns the deflection equation (mm) for the beam
// under the given load and support condition.
func GetDeflection(b model.Beam, l model.Load, condition Condition) (*Result, error) {
	return GetDeflectionScaled(b, l, condition, 1)
}

// GetDeflectionScaled is GetDeflection with an explicit scale factor
// applied to the deflection ordinate. The factor covers display
// exaggeration of the two-span diagram; it is scoped to this single
// analysis, not read from any ambient state.
func GetDeflectionScaled(b model.Beam, l model.Load, condition Condition, scale float64) (*Result, error) {
	switch condition {
	case SimplySupported:
		if err := validateSimple(b); err != nil {
			return nil, err
		}
		return &Result{Beam: b, Load: l, Equation: simpleDeflection(b, l, scale)}, nil
	case TwoSpanUnequal:
		if err := validateTwoSpan(b); err != nil {
			return nil, err
		}
		return &Result{Beam: b, Load: l, Equation: twoSpanDeflection(b, l, scale)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCondition, condition)
	}
}

// GetBendingMoment returns the bending-moment equation (kN-m).
func GetBendingMoment(b model.Beam, l model.Load, condition Condition) (*Result, error) {
	switch condition {
	case SimplySupported:
		if err := validateSimple(b); err != nil {
			return nil, err
		}
		return &Result{Beam: b, Load: l, Equation: simpleBendingMoment(b, l)}, nil
	case TwoSpanUnequal:
		if err := validateTwoSpan(b); err != nil {
			return nil, err
		}
		return &Result{Beam: b, Load: l, Equation: twoSpanBendingMoment(b, l)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCondition, condition)
	}
}

// GetShearForce returns the shear-force equation (kN).
func GetShearForce(b model.Beam, l model.Load, condition Condition) (*Result, error) {
	switch condition {
	case SimplySupported:
		if err := validateSimple(b); err != nil {
			return nil, err
		}
		return &Result{Beam: b, Load: l, Equation: simpleShearForce(b, l)}, nil
	case TwoSpanUnequal:
		if err := validateTwoSpan(b); err != nil {
			return nil, err
		}
		return &Result{Beam: b, Load: l, Equation: twoSpanShearForce(b, l)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidCondition, condition)
	}
}

func validateSimple(b model.Beam) error {
	if b.PrimarySpan <= 0 {
		return fmt.Errorf("invalid beam geometry: span=%.3f m", b.PrimarySpan)
	}
	if ei := b.Material.EI(); ei <= 0 {
		return fmt.Errorf("invalid material %q: EI=%.3f", b.Material.Name(), ei)
	}
	return nil
}

func validateTwoSpan(b model.Beam) error {
	if b.PrimarySpan <= 0 || b.SecondarySpan <= 0 {
		return fmt.Errorf("invalid beam geometry: spans=%.3f, %.3f m",
			b.PrimarySpan, b.SecondarySpan)
	}
	if ei := b.Material.EI(); ei <= 0 {
		return fmt.Errorf("invalid material %q: EI=%.3f", b.Material.Name(), ei)
	}
	return nil
}
