// probectl is the command-line companion to the ProjectProbe API: it runs a
// one-shot repository analysis and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:          "probectl",
		Short:        "Analyze GitHub repositories from the command line",
		SilenceUsage: true,
	}

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the probectl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("probectl " + version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
