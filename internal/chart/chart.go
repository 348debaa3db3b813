// Package chart renders sampled analysis series as line charts, either
// exported to an image file or drawn in the terminal.
package chart

// Kind selects the chart style.
type Kind string

const (
	Line    Kind = "line"
	Scatter Kind = "scatter"
)

// Defaults applied by Options.withDefaults when a field is left empty.
const (
	DefaultLabel  = "Analysis Result"
	DefaultColor  = "blue"
	DefaultXLabel = "Position (x)"
	DefaultYLabel = "Value (y)"
)

// Series is the sampled (x, y) data to draw. The two slices must have
// equal length.
type Series struct {
	X []float64
	Y []float64
}

// Options configures a chart. Zero-value fields fall back to defaults.
type Options struct {
	Type   Kind   // chart style, default Line
	Title  string // chart title, default the series label
	Label  string // series name, default "Analysis Result"
	Color  string // stroke color name, default "blue"
	XLabel string // default "Position (x)"
	YLabel string // default "Value (y)"
}

func (o Options) withDefaults() Options {
	if o.Type == "" {
		o.Type = Line
	}
	if o.Label == "" {
		o.Label = DefaultLabel
	}
	if o.Title == "" {
		o.Title = o.Label
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.XLabel == "" {
		o.XLabel = DefaultXLabel
	}
	if o.YLabel == "" {
		o.YLabel = DefaultYLabel
	}
	return o
}
