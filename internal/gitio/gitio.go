// Package gitio lists candidate files from git. The engine treats version
// control as an external collaborator: any git failure here degrades to an
// empty candidate list instead of aborting the run.
package gitio

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const cmdTimeout = 10 * time.Second

func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cmdTimeout)
}

// ChangedFiles returns the paths changed relative to base (e.g. "main").
func ChangedFiles(ctx context.Context, root, base string) ([]string, error) {
	return nameOnly(ctx, root, "diff", "--name-only", base)
}

// StagedFiles returns the paths with staged changes.
func StagedFiles(ctx context.Context, root string) ([]string, error) {
	return nameOnly(ctx, root, "diff", "--name-only", "--cached")
}

func nameOnly(ctx context.Context, root string, args ...string) ([]string, error) {
	full := append([]string{"-C", root}, args...)
	out, err := exec.CommandContext(ctx, "git", full...).Output()
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}
