package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	body := `threads: 4
max_bytes: 123
rule_files: [extra.yaml]
weights:
  high: 20
  medium: 7
thresholds:
  caution_medium: 2
  quality_score: 70
`
	p := writeTemp(t, dir, "codesweep.yaml", body)
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 4 {
		t.Fatalf("expected threads=4, got %#v", cfg.Threads)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 123 {
		t.Fatalf("expected max_bytes=123, got %#v", cfg.MaxBytes)
	}
	if len(cfg.RuleFiles) != 1 || cfg.RuleFiles[0] != "extra.yaml" {
		t.Fatalf("expected rule_files, got %#v", cfg.RuleFiles)
	}
	if cfg.Weights == nil || cfg.Weights.High == nil || *cfg.Weights.High != 20 {
		t.Fatalf("expected weights.high=20, got %#v", cfg.Weights)
	}
	if cfg.Weights.Low != nil {
		t.Fatalf("expected absent weights.low to stay nil")
	}
	if cfg.Thresholds == nil || cfg.Thresholds.QualityScore == nil || *cfg.Thresholds.QualityScore != 70 {
		t.Fatalf("expected thresholds.quality_score=70, got %#v", cfg.Thresholds)
	}
	if cfg.Thresholds.SuggestionLow != nil {
		t.Fatalf("expected absent thresholds.suggestion_low to stay nil")
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "codesweep.yaml", "threads: 1\n")
	writeTemp(t, dir, ".codesweep.yaml", "threads: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 7 {
		t.Fatalf("expected threads=7 from .codesweep.yaml, got %#v", cfg.Threads)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "codesweep")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yml"), []byte("threads: 9\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 9 {
		t.Fatalf("expected threads=9 from global config, got %#v", cfg.Threads)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}
