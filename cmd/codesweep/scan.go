package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/accrava/codesweep/internal/report"
	"github.com/accrava/codesweep/internal/rules"
)

var flagRuleFiles []string

func init() {
	cmd := &cobra.Command{
		Use:   "scan [files...]",
		Short: "Scan files for security vulnerability patterns",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	addCommonFlags(cmd, "security-results.json")
	cmd.Flags().StringSliceVar(&flagRuleFiles, "rules", nil, "extra YAML rule files")
}

func runScan(cmd *cobra.Command, args []string) error {
	root, _ := filepath.Abs(flagPath)
	local, global := loadConfigs(root)

	ruleFiles := flagRuleFiles
	if len(ruleFiles) == 0 {
		if len(local.RuleFiles) > 0 {
			ruleFiles = local.RuleFiles
		} else {
			ruleFiles = global.RuleFiles
		}
	}
	cat, err := rules.WithExtra(ruleFiles)
	if err != nil {
		return err
	}

	maxBytes := pickInt64(cmd, "max-bytes", flagMaxBytes, local.MaxBytes, global.MaxBytes, 1<<20)
	paths, err := selectFiles(root, args, maxBytes)
	if err != nil {
		return err
	}

	return runBatch(cmd, paths, cat, local, global, report.SecurityWeights, nil)
}
