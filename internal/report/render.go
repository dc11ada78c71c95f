package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/accrava/codesweep/internal/types"
)

// PrintTable renders a human-readable summary, findings sorted by file then
// line.
func PrintTable(w io.Writer, sum types.BatchSummary) {
	fmt.Fprintf(w, "Files scanned: %d\n", sum.TotalFiles)
	fmt.Fprintf(w, "Files with issues: %d\n", sum.FilesWithIssues)

	var findings []types.Finding
	for _, r := range sum.Results {
		findings = append(findings, r.Findings...)
		if r.Error != "" {
			fmt.Fprintf(w, "error  %s: %s\n", r.File, r.Error)
		}
	}
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].File == findings[j].File {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].File < findings[j].File
	})
	for _, f := range findings {
		fmt.Fprintf(w, "%-6s %-24s %s:%d  %s\n", f.Severity, f.Category, f.File, f.Line, f.Message)
	}

	fmt.Fprintf(w, "High: %d  Medium: %d  Low: %d\n",
		sum.SeverityBreakdown[types.SevHigh],
		sum.SeverityBreakdown[types.SevMed],
		sum.SeverityBreakdown[types.SevLow])
	fmt.Fprintf(w, "Score: %d/100\n", sum.Score)
	fmt.Fprintf(w, "Recommendation: %s\n", sum.Recommendation)
}
