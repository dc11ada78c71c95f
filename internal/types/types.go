package types

type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Rank orders severities for threshold comparisons; unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SevLow:
		return 1
	case SevMed:
		return 2
	case SevHigh:
		return 3
	}
	return 0
}

// Finding is one rule match at a specific file and line.
type Finding struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Column   int      `json:"column,omitempty"`
	Category string   `json:"category"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Snippet  string   `json:"snippet"`
	RuleID   string   `json:"rule_id,omitempty"`
}

// FileResult holds everything produced for a single scanned file.
// Error is set instead of findings when the file could not be read.
type FileResult struct {
	File     string    `json:"file"`
	Language string    `json:"language,omitempty"`
	Findings []Finding `json:"findings"`
	Error    string    `json:"error,omitempty"`
}

// BatchSummary is the full report for one invocation.
type BatchSummary struct {
	TotalFiles        int              `json:"total_files"`
	FilesWithIssues   int              `json:"files_with_issues"`
	SeverityBreakdown map[Severity]int `json:"severity_breakdown"`
	CategoryBreakdown map[string]int   `json:"category_breakdown"`
	Score             int              `json:"score"`
	Recommendation    string           `json:"recommendation"`
	Results           []FileResult     `json:"results"`
}
