package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/accrava/codesweep/internal/logging"
	"github.com/accrava/codesweep/internal/types"
)

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	ID        string   `yaml:"id"`
	Category  string   `yaml:"category"`
	Pattern   string   `yaml:"pattern"`
	Unless    string   `yaml:"unless"`
	Message   string   `yaml:"message"`
	Severity  string   `yaml:"severity"`
	Languages []string `yaml:"languages"`
}

// LoadSpecs reads extra rule specs from a YAML file. Entries missing a
// required field are logged and dropped; the file itself failing to parse is
// an error since that usually means a misconfigured run.
func LoadSpecs(path string) ([]Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file: %w", err)
	}
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rule file %s: %w", path, err)
	}

	var specs []Spec
	for _, e := range rf.Rules {
		if e.ID == "" || e.Category == "" || e.Pattern == "" {
			logging.L.Warnw("dropping incomplete rule entry", "file", path, "rule", e.ID)
			continue
		}
		sev := types.Severity(e.Severity)
		if sev.Rank() == 0 {
			logging.L.Warnw("dropping rule with unknown severity", "file", path, "rule", e.ID, "severity", e.Severity)
			continue
		}
		specs = append(specs, Spec{
			ID:        e.ID,
			Category:  e.Category,
			Pattern:   e.Pattern,
			Unless:    e.Unless,
			Message:   e.Message,
			Severity:  sev,
			Languages: e.Languages,
		})
	}
	return specs, nil
}

// WithExtra builds a security catalog from the builtin table plus any specs
// loaded from the given rule files.
func WithExtra(paths []string) (*Catalog, error) {
	specs := make([]Spec, len(builtinSecurity))
	copy(specs, builtinSecurity)
	for _, p := range paths {
		extra, err := LoadSpecs(p)
		if err != nil {
			return nil, err
		}
		specs = append(specs, extra...)
	}
	return New(specs), nil
}
