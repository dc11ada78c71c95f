package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/accrava/codesweep/internal/config"
	"github.com/accrava/codesweep/internal/gitio"
	"github.com/accrava/codesweep/internal/ignore"
	"github.com/accrava/codesweep/internal/logging"
	"github.com/accrava/codesweep/internal/report"
	"github.com/accrava/codesweep/internal/rules"
	"github.com/accrava/codesweep/internal/scan"
	"github.com/accrava/codesweep/internal/types"
)

// Flags shared by scan and lint.
var (
	flagPath     string
	flagStaged   bool
	flagBase     string
	flagJSON     bool
	flagOut      string
	flagThreads  int
	flagMaxBytes int64

	flagWeightHigh   int
	flagWeightMedium int
	flagWeightLow    int
	flagCautionMed   int
	flagQualityScore int
	flagSuggestLow   int
)

func addCommonFlags(cmd *cobra.Command, defaultOut string) {
	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "root to scan when no files are given")
	cmd.Flags().BoolVar(&flagStaged, "staged", false, "scan files with staged changes")
	cmd.Flags().StringVar(&flagBase, "base", "", "scan files changed vs base ref (e.g. main)")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit the report as JSON on stdout")
	cmd.Flags().StringVar(&flagOut, "out", defaultOut, "report file path")
	cmd.Flags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip walked files larger than this")

	cmd.Flags().IntVar(&flagWeightHigh, "weight-high", 0, "score deduction per high finding")
	cmd.Flags().IntVar(&flagWeightMedium, "weight-medium", 0, "score deduction per medium finding")
	cmd.Flags().IntVar(&flagWeightLow, "weight-low", 0, "score deduction per low finding")
	cmd.Flags().IntVar(&flagCautionMed, "caution-medium", 0, "medium findings above this trigger caution")
	cmd.Flags().IntVar(&flagQualityScore, "quality-score", 0, "score below this needs improvement")
	cmd.Flags().IntVar(&flagSuggestLow, "suggestion-low", 0, "low findings above this trigger suggestions")
}

// loadConfigs layers local over global config; either may be absent.
func loadConfigs(root string) (local, global config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		local = c
	}
	return local, global
}

// pickInt resolves CLI > local > global > default. The CLI value only counts
// when the flag was actually set, so zero stays a usable override value.
func pickInt(cmd *cobra.Command, name string, cli int, local, global *int, def int) int {
	if cmd.Flags().Changed(name) {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return def
}

func pickInt64(cmd *cobra.Command, name string, cli int64, local, global *int64, def int64) int64 {
	if cmd.Flags().Changed(name) {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return def
}

func resolveWeights(cmd *cobra.Command, local, global *config.WeightsConfig, def report.Weights) report.Weights {
	var lh, lm, ll, gh, gm, gl *int
	if local != nil {
		lh, lm, ll = local.High, local.Medium, local.Low
	}
	if global != nil {
		gh, gm, gl = global.High, global.Medium, global.Low
	}
	return report.Weights{
		High:   pickInt(cmd, "weight-high", flagWeightHigh, lh, gh, def.High),
		Medium: pickInt(cmd, "weight-medium", flagWeightMedium, lm, gm, def.Medium),
		Low:    pickInt(cmd, "weight-low", flagWeightLow, ll, gl, def.Low),
	}
}

func resolveThresholds(cmd *cobra.Command, local, global *config.ThresholdsConfig, def report.Thresholds) report.Thresholds {
	var lc, lq, ls, gc, gq, gs *int
	if local != nil {
		lc, lq, ls = local.CautionMedium, local.QualityScore, local.SuggestionLow
	}
	if global != nil {
		gc, gq, gs = global.CautionMedium, global.QualityScore, global.SuggestionLow
	}
	return report.Thresholds{
		CautionMedium: pickInt(cmd, "caution-medium", flagCautionMed, lc, gc, def.CautionMedium),
		QualityScore:  pickInt(cmd, "quality-score", flagQualityScore, lq, gq, def.QualityScore),
		SuggestionLow: pickInt(cmd, "suggestion-low", flagSuggestLow, ls, gs, def.SuggestionLow),
	}
}

// selectFiles decides what to scan: explicit args win, then git selection
// modes, then a filesystem walk of the root. Git failures degrade to an empty
// batch rather than a hard error.
func selectFiles(root string, args []string, maxBytes int64) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if flagStaged || flagBase != "" {
		ctx, cancel := gitio.WithTimeout()
		defer cancel()
		var paths []string
		var err error
		if flagStaged {
			paths, err = gitio.StagedFiles(ctx, root)
		} else {
			paths, err = gitio.ChangedFiles(ctx, root, flagBase)
		}
		if err != nil {
			logging.L.Warnw("git file listing failed", "error", err)
			return nil, nil
		}
		// deleted files show up in diffs; skip anything no longer on disk
		var out []string
		for _, p := range paths {
			full := filepath.Join(root, p)
			if _, err := os.Stat(full); err == nil {
				out = append(out, full)
			}
		}
		return out, nil
	}

	ign, _ := ignore.Load(filepath.Join(root, ".codesweepignore"))
	return scan.Targets(root, ign, maxBytes)
}

// runBatch is the shared back half of scan and lint: scan, aggregate, render,
// persist, and translate blocking findings into the exit status.
func runBatch(cmd *cobra.Command, paths []string, cat *rules.Catalog, local, global config.FileConfig, defWeights report.Weights, extra func([]types.FileResult)) error {
	weights := resolveWeights(cmd, local.Weights, global.Weights, defWeights)
	thresholds := resolveThresholds(cmd, local.Thresholds, global.Thresholds, report.DefaultThresholds)
	threads := pickInt(cmd, "threads", flagThreads, local.Threads, global.Threads, 0)

	results := scan.Batch(paths, cat, scan.Options{Threads: threads})
	if extra != nil {
		extra(results)
	}

	sum := report.Build(results, weights, thresholds)

	if flagJSON {
		if err := report.EncodeJSON(os.Stdout, sum); err != nil {
			return err
		}
	} else {
		report.PrintTable(os.Stdout, sum)
	}
	if flagOut != "" {
		if err := report.WriteJSON(flagOut, sum); err != nil {
			return err
		}
	}

	if report.ShouldFail(sum) {
		os.Exit(1)
	}
	return nil
}
