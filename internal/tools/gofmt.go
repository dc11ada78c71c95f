// Package tools shells out to external formatters. Tool absence, failure, or
// timeout is never fatal: it just contributes zero findings.
package tools

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/accrava/codesweep/internal/logging"
	"github.com/accrava/codesweep/internal/types"
)

const gofmtTimeout = 15 * time.Second

// Gofmt reports whether a Go file is unformatted.
func Gofmt(path string) []types.Finding {
	ctx, cancel := context.WithTimeout(context.Background(), gofmtTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "gofmt", "-l", path).Output()
	if err != nil {
		logging.L.Debugw("gofmt unavailable or failed", "file", path, "error", err)
		return nil
	}
	if strings.TrimSpace(string(out)) == "" {
		return nil
	}
	return []types.Finding{{
		File:     path,
		Line:     1,
		Category: "gofmt",
		Severity: types.SevMed,
		Message:  "File is not properly formatted. Run 'gofmt -w' to fix.",
		RuleID:   "gofmt",
	}}
}
