package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the preset material sections",
	Long: `List the built-in material sections and their flexural
rigidities. A preset name can be passed to the analyze subcommands
via --material instead of specifying --ei directly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("PRESET SECTIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tEI (kN-m²)\n")
		fmt.Fprintf(w, "  ────\t──────────\n")
		for _, m := range model.Presets() {
			fmt.Fprintf(w, "  %s\t%.0f\n", m.Name(), m.EI())
		}
		w.Flush()
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
