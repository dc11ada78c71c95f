package report

import "github.com/accrava/codesweep/internal/types"

// Weights is the per-finding score deduction by severity tier.
type Weights struct {
	High   int
	Medium int
	Low    int
}

// Thresholds are the decision-list cutoffs for the recommendation.
type Thresholds struct {
	CautionMedium int // more medium findings than this -> caution
	QualityScore  int // score below this -> needs improvement
	SuggestionLow int // more low findings than this -> suggestions
}

// Security and lint runs score differently: a style warning costs far less
// than a vulnerability. Both use the same ternary severity scale.
var (
	SecurityWeights = Weights{High: 15, Medium: 5, Low: 5}
	LintWeights     = Weights{High: 10, Medium: 2, Low: 2}

	DefaultThresholds = Thresholds{CautionMedium: 3, QualityScore: 60, SuggestionLow: 5}
)

// Summarize aggregates per-file results into a batch summary. It is a pure
// function of its input: identical results always yield an identical summary.
// The recommendation field is filled by Recommend.
func Summarize(results []types.FileResult, w Weights) types.BatchSummary {
	sum := types.BatchSummary{
		TotalFiles:        len(results),
		SeverityBreakdown: map[types.Severity]int{types.SevHigh: 0, types.SevMed: 0, types.SevLow: 0},
		CategoryBreakdown: map[string]int{},
		Results:           results,
	}
	for _, r := range results {
		if len(r.Findings) > 0 {
			sum.FilesWithIssues++
		}
		for _, f := range r.Findings {
			sum.SeverityBreakdown[f.Severity]++
			sum.CategoryBreakdown[f.Category]++
		}
	}

	score := 100
	score -= sum.SeverityBreakdown[types.SevHigh] * w.High
	score -= sum.SeverityBreakdown[types.SevMed] * w.Medium
	score -= sum.SeverityBreakdown[types.SevLow] * w.Low
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	sum.Score = score
	return sum
}

// Build summarizes and attaches the recommendation in one step.
func Build(results []types.FileResult, w Weights, th Thresholds) types.BatchSummary {
	sum := Summarize(results, w)
	sum.Recommendation = Recommend(sum, th)
	return sum
}

// ShouldFail reports whether the batch contains a blocking finding. This
// drives the process exit status, the one contract CI integrations depend on.
func ShouldFail(sum types.BatchSummary) bool {
	return sum.SeverityBreakdown[types.SevHigh] > 0
}
