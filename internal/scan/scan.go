package scan

import (
	"os"
	"strings"

	"github.com/accrava/codesweep/internal/match"
	"github.com/accrava/codesweep/internal/rules"
	"github.com/accrava/codesweep/internal/types"
)

// File scans one file with the universal rules plus the subset for its
// language. A read failure is recorded on the result, not returned: one
// unreadable file must not abort the batch.
func File(path string, cat *rules.Catalog) types.FileResult {
	lang := Language(path)
	res := types.FileResult{File: path, Language: lang}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Findings = Bytes(path, data, cat.Applicable(lang))
	return res
}

// Bytes scans raw content already in memory, line by line. Invalid UTF-8 is
// substituted rather than rejected so partially binary or oddly encoded files
// still get scanned.
func Bytes(path string, data []byte, rs []rules.Rule) []types.Finding {
	text := strings.ToValidUTF8(string(data), "�")
	lines := strings.Split(text, "\n")

	var findings []types.Finding
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		for _, hit := range match.Line(line, rs) {
			findings = append(findings, types.Finding{
				File:     path,
				Line:     i + 1,
				Column:   hit.Column,
				Category: hit.Rule.Category,
				Severity: hit.Rule.Severity,
				Message:  hit.Rule.Message,
				Snippet:  strings.TrimSpace(line),
				RuleID:   hit.Rule.ID,
			})
		}
	}
	return findings
}
