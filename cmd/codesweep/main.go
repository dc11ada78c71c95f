package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/accrava/codesweep/internal/logging"
)

var flagDebug bool

var rootCmd = &cobra.Command{
	Use:           "codesweep",
	Short:         "Rule-based static scanner for security and style issues",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(flagDebug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "verbose logging")
}

// exit codes: 0 = clean, 1 = blocking findings, 2 = hard error
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}
