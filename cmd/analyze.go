package cmd

import (
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Beam deflection, moment and shear analysis",
	Long: `Analyze a beam under uniform distributed loading using
closed-form equations.

Subcommands:
  simple   - Simply supported single span
  twospan  - Two-span continuous beam with unequal spans

Each subcommand prints the key results and can export the selected
diagram as a chart image or draw it in the terminal.`,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
