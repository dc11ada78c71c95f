package report

import (
	"testing"

	"github.com/accrava/codesweep/internal/types"
)

func summaryWith(high, med, low, score int) types.BatchSummary {
	return types.BatchSummary{
		Score: score,
		SeverityBreakdown: map[types.Severity]int{
			types.SevHigh: high,
			types.SevMed:  med,
			types.SevLow:  low,
		},
	}
}

func TestRecommend_DecisionList(t *testing.T) {
	th := DefaultThresholds
	cases := []struct {
		name string
		sum  types.BatchSummary
		want string
	}{
		{"high blocks regardless of score", summaryWith(1, 0, 0, 100), NotRecommended},
		{"high wins over many mediums", summaryWith(2, 10, 0, 0), NotRecommended},
		{"mediums above threshold", summaryWith(0, 4, 0, 80), MergeWithCaution},
		{"mediums at threshold fall through", summaryWith(0, 3, 0, 85), ApprovedSuggest},
		{"low score needs improvement", summaryWith(0, 0, 0, 59), NeedsImprovement},
		{"score at threshold passes", summaryWith(0, 0, 0, 60), Approved},
		{"one medium suggests", summaryWith(0, 1, 0, 95), ApprovedSuggest},
		{"many lows suggest", summaryWith(0, 0, 6, 70), ApprovedSuggest},
		{"few lows approved", summaryWith(0, 0, 5, 75), Approved},
		{"clean", summaryWith(0, 0, 0, 100), Approved},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Recommend(c.sum, th); got != c.want {
				t.Fatalf("Recommend(%+v) = %q, want %q", c.sum.SeverityBreakdown, got, c.want)
			}
		})
	}
}

func TestRecommend_CustomThresholds(t *testing.T) {
	th := Thresholds{CautionMedium: 0, QualityScore: 90, SuggestionLow: 0}
	if got := Recommend(summaryWith(0, 1, 0, 95), th); got != MergeWithCaution {
		t.Fatalf("expected custom caution threshold to apply, got %q", got)
	}
	if got := Recommend(summaryWith(0, 0, 0, 89), th); got != NeedsImprovement {
		t.Fatalf("expected custom quality threshold to apply, got %q", got)
	}
	if got := Recommend(summaryWith(0, 0, 1, 95), th); got != ApprovedSuggest {
		t.Fatalf("expected custom suggestion threshold to apply, got %q", got)
	}
}
