package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	// Unfactored distributed loads (kN/m)
	loadDead       float64
	loadLive       float64
	loadRoof       float64
	loadWind       float64
	loadEarthquake float64
	loadRain       float64

	// Options
	loadShowAll    bool
	loadSimplified bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Calculate factored distributed load using NSCP load combinations",
	Long: `Calculate the factored distributed load (wu) based on NSCP 2015
load combinations.

Provide unfactored distributed loads from different load types and
this command will compute the factored loads for all applicable NSCP
load combinations. The governing wu can then be fed to
'gobeam analyze simple' or 'gobeam analyze twospan'.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  gobeam load --dead 8 --live 5

  # With wind load
  gobeam load --dead 8 --live 5 --wind 3

  # Show all combinations
  gobeam load --dead 8 --live 5 --all`,
	Run: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	// Distributed load flags
	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Distributed dead load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Distributed live load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadRoof, "roof", "r", 0, "Distributed roof live load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Distributed wind load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadEarthquake, "earthquake", "e", 0, "Distributed earthquake load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadRain, "rain", "R", 0, "Distributed rain load (kN/m)")

	// Options
	loadCmd.Flags().BoolVarP(&loadShowAll, "all", "a", false, "Show all load combination results")
	loadCmd.Flags().BoolVarP(&loadSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runLoad(cmd *cobra.Command, args []string) {
	loads := nscp.ServiceLoads{
		Dead:       loadDead,
		Live:       loadLive,
		Roof:       loadRoof,
		Wind:       loadWind,
		Earthquake: loadEarthquake,
		Rain:       loadRain,
	}

	// Check if any load is provided
	if loads.Dead == 0 && loads.Live == 0 && loads.Roof == 0 &&
		loads.Wind == 0 && loads.Earthquake == 0 && loads.Rain == 0 {
		fmt.Println("Error: Please provide at least one unfactored load.")
		fmt.Println("Use 'gobeam load --help' for usage information.")
		return
	}

	// Select which combinations to use
	combinations := nscp.LoadCombinations
	if loadSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NSCP 2015 FACTORED LOAD CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Print input loads
	fmt.Println("UNFACTORED LOADS (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if loads.Dead != 0 {
		fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", loads.Dead)
	}
	if loads.Live != 0 {
		fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", loads.Live)
	}
	if loads.Roof != 0 {
		fmt.Fprintf(w, "  Roof Live Load (Lr):\t%.2f\n", loads.Roof)
	}
	if loads.Wind != 0 {
		fmt.Fprintf(w, "  Wind Load (W):\t%.2f\n", loads.Wind)
	}
	if loads.Earthquake != 0 {
		fmt.Fprintf(w, "  Earthquake Load (E):\t%.2f\n", loads.Earthquake)
	}
	if loads.Rain != 0 {
		fmt.Fprintf(w, "  Rain Load (R):\t%.2f\n", loads.Rain)
	}
	w.Flush()
	fmt.Println()

	// Calculate governing load
	maxWu, governingCombo := nscp.GoverningLoad(loads, combinations)

	if loadShowAll {
		// Show all combinations
		fmt.Println("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\twu (kN/m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")

		for _, combo := range combinations {
			wu := combo.FactoredLoad(loads)
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, wu, marker)
		}
		w.Flush()
		fmt.Println()
	}

	// Print result
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED LOAD (wu) = %.2f kN/m  \n", maxWu)
	fmt.Printf("  ╚═══════════════════════════════════╝\n")
	fmt.Println()

	// Hand the governing load straight to the analyzers.
	fmt.Println("NEXT STEPS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  gobeam analyze simple --span <L> --ei <EI> --load %.2f\n", maxWu)
	fmt.Printf("  gobeam analyze twospan --span1 <L1> --span2 <L2> --ei <EI> --load %.2f\n", maxWu)
	fmt.Println()
}
