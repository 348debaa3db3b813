package chart

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// DrawASCII renders the series as a terminal line chart. The x values
// are assumed evenly spaced; the footer reports the covered range so
// the horizontal axis stays readable.
func DrawASCII(s Series, opts Options) string {
	if len(s.Y) == 0 {
		return ""
	}
	opts = opts.withDefaults()

	graph := asciigraph.Plot(s.Y,
		asciigraph.Height(12),
		asciigraph.Width(64),
		asciigraph.Caption(opts.Title),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  %s: %.3f to %.3f\n", opts.XLabel, s.X[0], s.X[len(s.X)-1]))
	sb.WriteString(fmt.Sprintf("  %s: %.3f to %.3f\n", opts.YLabel, minOf(s.Y), maxOf(s.Y)))
	return sb.String()
}

func minOf(v []float64) float64 {
	m := v[0]
	for _, x := range v {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}
