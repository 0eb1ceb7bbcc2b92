package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "codecheck",
	Short:        "Parse, execute and lint Python-style snippets",
	Long:         `codecheck runs the same diagnostic pipeline as the /analyze endpoint from the command line.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(analyzeCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Uint64("max-steps", 0, "bound snippet execution to this many steps (0 = unbounded)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
