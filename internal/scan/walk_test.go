package scan

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/accrava/codesweep/internal/ignore"
)

func TestTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.py", "print('hi')\n")
	writeFile(t, dir, "skip.log", "noise\n")
	writeFile(t, dir, ".codesweepignore", "*.log\n")
	if err := os.WriteFile(filepath.Join(dir, "blob.bin"), []byte{0x00, 0x01, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "node_modules", "dep"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "node_modules", "dep"), "index.js", "eval(x)\n")

	ign, err := ignore.Load(filepath.Join(dir, ".codesweepignore"))
	if err != nil {
		t.Fatalf("ignore.Load: %v", err)
	}
	paths, err := Targets(dir, ign, 1<<20)
	if err != nil {
		t.Fatalf("Targets: %v", err)
	}

	got := map[string]bool{}
	for _, p := range paths {
		rel, _ := filepath.Rel(dir, p)
		got[rel] = true
	}
	if !got["keep.py"] {
		t.Fatalf("expected keep.py in targets, got %v", paths)
	}
	if got["skip.log"] {
		t.Fatalf("ignored file included")
	}
	if got["blob.bin"] {
		t.Fatalf("binary file included")
	}
	for rel := range got {
		if strings.HasPrefix(rel, "node_modules") {
			t.Fatalf("vendored dir not skipped: %s", rel)
		}
	}
}

func TestTargets_MaxBytes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "big.py", strings.Repeat("a", 64))
	paths, err := Targets(dir, ignore.Matcher{}, 16)
	if err != nil {
		t.Fatalf("Targets: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected oversized file skipped, got %v", paths)
	}
}
