package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/accrava/codesweep/internal/report"
	"github.com/accrava/codesweep/internal/rules"
	"github.com/accrava/codesweep/internal/tools"
	"github.com/accrava/codesweep/internal/types"
)

var flagNoTools bool

func init() {
	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Check files for style and formatting issues",
		RunE:  runLint,
	}
	rootCmd.AddCommand(cmd)

	addCommonFlags(cmd, "lint-results.json")
	cmd.Flags().BoolVar(&flagNoTools, "no-tools", false, "skip external formatters")
}

func runLint(cmd *cobra.Command, args []string) error {
	root, _ := filepath.Abs(flagPath)
	local, global := loadConfigs(root)

	maxBytes := pickInt64(cmd, "max-bytes", flagMaxBytes, local.MaxBytes, global.MaxBytes, 1<<20)
	paths, err := selectFiles(root, args, maxBytes)
	if err != nil {
		return err
	}

	// External formatters run after the rule pass and fold their findings
	// into the same results so they count toward the score.
	extra := func(results []types.FileResult) {
		if flagNoTools {
			return
		}
		for i := range results {
			if results[i].Error != "" {
				continue
			}
			if strings.HasSuffix(results[i].File, ".go") {
				results[i].Findings = append(results[i].Findings, tools.Gofmt(results[i].File)...)
			}
		}
	}

	return runBatch(cmd, paths, rules.Lint(), local, global, report.LintWeights, extra)
}
