package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Continuous Beam Analysis Tool",
	Long: `gobeam - Go Beam Analyzer

A CLI tool for closed-form analysis of beams under uniform
distributed loading.

This tool helps structural engineers compute:
  - Deflection, bending moment and shear force diagrams
  - Simply supported single spans
  - Two-span continuous beams with unequal spans (three-moment method)
  - Governing factored loads from NSCP 2015 load combinations

Diagrams can be exported as PNG/SVG/PDF charts or drawn in the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Analyzer                                        ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for closed-form beam analysis under uniform")
		fmt.Println("  distributed loading.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Simply supported span analysis")
		fmt.Println("    • Two-span continuous beam analysis (unequal spans)")
		fmt.Println("    • Deflection, bending moment and shear force diagrams")
		fmt.Println("    • Factored load calculation using NSCP load combinations")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
