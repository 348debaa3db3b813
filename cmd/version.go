package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobeam v%s\n", version.Version)
		fmt.Println("Continuous Beam Analysis Tool")
		fmt.Println("Closed-form deflection, moment and shear diagrams")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
