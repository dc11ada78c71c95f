package report

import "github.com/accrava/codesweep/internal/types"

// Verdict labels, worst first.
const (
	NotRecommended   = "not recommended"
	MergeWithCaution = "merge with caution"
	NeedsImprovement = "needs improvement"
	ApprovedSuggest  = "approved with suggestions"
	Approved         = "approved"
)

// Recommend maps a summary to a verdict. The checks form a decision list
// evaluated top-down; the first matching branch wins.
func Recommend(sum types.BatchSummary, th Thresholds) string {
	high := sum.SeverityBreakdown[types.SevHigh]
	med := sum.SeverityBreakdown[types.SevMed]
	low := sum.SeverityBreakdown[types.SevLow]

	switch {
	case high > 0:
		return NotRecommended
	case med > th.CautionMedium:
		return MergeWithCaution
	case sum.Score < th.QualityScore:
		return NeedsImprovement
	case med > 0 || low > th.SuggestionLow:
		return ApprovedSuggest
	default:
		return Approved
	}
}
