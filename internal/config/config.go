package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the YAML config files. Fields are pointers so absence
// can be told apart from an explicit zero when layering CLI > local > global.
type FileConfig struct {
	Threads    *int              `yaml:"threads"`
	MaxBytes   *int64            `yaml:"max_bytes"`
	RuleFiles  []string          `yaml:"rule_files"`
	Weights    *WeightsConfig    `yaml:"weights"`
	Thresholds *ThresholdsConfig `yaml:"thresholds"`
}

// WeightsConfig overrides the per-severity score deductions.
type WeightsConfig struct {
	High   *int `yaml:"high"`
	Medium *int `yaml:"medium"`
	Low    *int `yaml:"low"`
}

// ThresholdsConfig overrides the recommendation decision-list cutoffs.
type ThresholdsConfig struct {
	CautionMedium *int `yaml:"caution_medium"`
	QualityScore  *int `yaml:"quality_score"`
	SuggestionLow *int `yaml:"suggestion_low"`
}

func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal finds a config in the scan root, preferring the dotfile.
func LoadLocal(dir string) (FileConfig, error) {
	for _, name := range []string{".codesweep.yaml", "codesweep.yaml", ".codesweep.yml", "codesweep.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, errors.New("no local config found")
}

// LoadGlobal looks under XDG_CONFIG_HOME (falling back to ~/.config) for
// codesweep/config.yml.
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return FileConfig{}, errors.New("no global config dir")
		}
		base = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yml", "config.yaml"} {
		p := filepath.Join(base, "codesweep", name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, errors.New("no global config found")
}
