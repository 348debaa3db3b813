package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/chart"
	"github.com/alexiusacademia/gobeam/internal/model"
)

// resolveMaterial builds the material from either a preset name or an
// explicit EI value. Exactly one of the two must be given.
func resolveMaterial(preset string, ei float64) (model.Material, error) {
	if preset != "" {
		m, ok := model.PresetByName(preset)
		if !ok {
			return model.Material{}, fmt.Errorf("unknown preset section %q (see 'gobeam materials')", preset)
		}
		return m, nil
	}
	if ei <= 0 {
		return model.Material{}, fmt.Errorf("provide --ei or --material")
	}
	return model.NewMaterial("", map[string]float64{model.PropEI: ei}), nil
}

// selectQuantity picks the sampled result and chart labels for the
// requested diagram quantity.
func selectQuantity(quantity string, deflection, moment, shear *analysis.Result) (*analysis.Result, chart.Options, error) {
	switch quantity {
	case "deflection":
		return deflection, chart.Options{
			Title:  "Deflection Diagram",
			XLabel: "Position x (m)",
			YLabel: "Deflection (mm)",
		}, nil
	case "moment":
		return moment, chart.Options{
			Title:  "Bending Moment Diagram",
			XLabel: "Position x (m)",
			YLabel: "Moment (kN-m)",
		}, nil
	case "shear":
		return shear, chart.Options{
			Title:  "Shear Force Diagram",
			XLabel: "Position x (m)",
			YLabel: "Shear (kN)",
		}, nil
	default:
		return nil, chart.Options{}, fmt.Errorf("unknown quantity %q: use deflection, moment or shear", quantity)
	}
}

// renderDiagram exports and/or draws the sampled series as requested.
func renderDiagram(s analysis.Series, opts chart.Options, plotFile string, ascii bool) {
	cs := chart.Series{X: s.X, Y: s.Y}

	if ascii {
		fmt.Println(chart.DrawASCII(cs, opts))
	}
	if plotFile != "" {
		if err := chart.Export(cs, opts, plotFile); err != nil {
			fmt.Printf("Error: could not export chart: %v\n", err)
			return
		}
		fmt.Printf("  Diagram saved to %s\n\n", plotFile)
	}
}

// seriesMin returns the smallest y in the series and its position.
// For deflection and sagging moment this is the extreme value.
func seriesMin(s analysis.Series) (float64, float64) {
	if len(s.Y) == 0 {
		return 0, 0
	}
	minY, at := s.Y[0], s.X[0]
	for i, y := range s.Y {
		if y < minY {
			minY = y
			at = s.X[i]
		}
	}
	return minY, at
}

// seriesMax returns the largest y in the series and its position.
func seriesMax(s analysis.Series) (float64, float64) {
	if len(s.Y) == 0 {
		return 0, 0
	}
	maxY, at := s.Y[0], s.X[0]
	for i, y := range s.Y {
		if y > maxY {
			maxY = y
			at = s.X[i]
		}
	}
	return maxY, at
}
