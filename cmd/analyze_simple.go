package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/spf13/cobra"
)

var (
	// Analysis inputs
	simpleSpan     float64
	simpleEI       float64
	simpleMaterial string
	simpleLoad     float64

	// Output options
	simpleQuantity string
	simpleStep     float64
	simplePlotFile string
	simpleASCII    bool
	simpleLabel    string
	simpleColor    string
)

var analyzeSimpleCmd = &cobra.Command{
	Use:   "simple",
	Short: "Analyze a simply supported span under uniform load",
	Long: `Compute deflection, bending moment and shear force for a simply
supported single span carrying a uniform distributed load.

The closed-form Euler-Bernoulli equations are used; deflections are
reported in millimetres, moments in kN-m and shears in kN.

Examples:
  # 4 m span, EI = 5000 kN-m², w = 10 kN/m
  gobeam analyze simple --span 4 --ei 5000 --load 10

  # Use a preset section and export the moment diagram
  gobeam analyze simple -L 6 --material concrete-300x500 -w 12 \
      --quantity moment --plot bmd.png

  # Terminal deflection diagram
  gobeam analyze simple -L 4 --ei 5000 -w 10 -q deflection --ascii`,
	Run: runAnalyzeSimple,
}

func init() {
	analyzeCmd.AddCommand(analyzeSimpleCmd)

	// Geometry and material flags
	analyzeSimpleCmd.Flags().Float64VarP(&simpleSpan, "span", "L", 0, "Span length (m) [required]")
	analyzeSimpleCmd.Flags().Float64Var(&simpleEI, "ei", 0, "Flexural rigidity EI (kN-m²)")
	analyzeSimpleCmd.Flags().StringVar(&simpleMaterial, "material", "", "Preset section name (see 'gobeam materials')")

	// Loading flag
	analyzeSimpleCmd.Flags().Float64VarP(&simpleLoad, "load", "w", 0, "Uniform distributed load (kN/m) [required]")

	// Output flags
	analyzeSimpleCmd.Flags().StringVarP(&simpleQuantity, "quantity", "q", "moment", "Diagram quantity: deflection, moment or shear")
	analyzeSimpleCmd.Flags().Float64Var(&simpleStep, "step", 0, "Sampling step (m), defaults to span/100")
	analyzeSimpleCmd.Flags().StringVar(&simplePlotFile, "plot", "", "Export the diagram to this file (png/svg/pdf)")
	analyzeSimpleCmd.Flags().BoolVar(&simpleASCII, "ascii", false, "Draw the diagram in the terminal")
	analyzeSimpleCmd.Flags().StringVar(&simpleLabel, "label", "", "Series label for the chart")
	analyzeSimpleCmd.Flags().StringVar(&simpleColor, "color", "", "Stroke color for the chart")

	analyzeSimpleCmd.MarkFlagRequired("span")
	analyzeSimpleCmd.MarkFlagRequired("load")
}

func runAnalyzeSimple(cmd *cobra.Command, args []string) {
	mat, err := resolveMaterial(simpleMaterial, simpleEI)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	b := model.NewBeam(simpleSpan, 0, mat)
	l := model.NewUniformLoad(simpleLoad)

	deflection, err := analysis.GetDeflection(b, l, analysis.SimplySupported)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	moment, err := analysis.GetBendingMoment(b, l, analysis.SimplySupported)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	shear, err := analysis.GetShearForce(b, l, analysis.SimplySupported)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	step := simpleStep
	if step <= 0 {
		step = b.PrimarySpan / 100
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SIMPLY SUPPORTED BEAM ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", b.PrimarySpan)
	if mat.Name() != "" {
		fmt.Fprintf(w, "  Section:\t%s\n", mat.Name())
	}
	fmt.Fprintf(w, "  Flexural Rigidity (EI):\t%.0f kN-m²\n", mat.EI())
	fmt.Fprintf(w, "  Distributed Load (w):\t%.2f kN/m\n", l.W1)
	w.Flush()
	fmt.Println()

	// Support reactions
	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  R1 (left):\t%.2f kN\n", l.W1*b.PrimarySpan/2)
	fmt.Fprintf(w, "  R2 (right):\t%.2f kN\n", l.W1*b.PrimarySpan/2)
	w.Flush()
	fmt.Println()

	// Extreme values
	dMin, dAt := seriesMin(deflection.Sample(0, b.PrimarySpan, step))
	mMin, mAt := seriesMin(moment.Sample(0, b.PrimarySpan, step))

	fmt.Println("EXTREME VALUES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max deflection:\t%.2f mm\tat x = %.2f m\n", dMin, dAt)
	fmt.Fprintf(w, "  Max moment:\t%.2f kN-m\tat x = %.2f m\n", mMin, mAt)
	fmt.Fprintf(w, "  Max shear:\t%.2f kN\tat supports\n", shear.Equation(0).Y)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  MAX DEFLECTION = %.2f mm     \n", dMin)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	result, opts, err := selectQuantity(simpleQuantity, deflection, moment, shear)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	opts.Label = simpleLabel
	opts.Color = simpleColor

	renderDiagram(result.Sample(0, b.PrimarySpan, step), opts, simplePlotFile, simpleASCII)
}
