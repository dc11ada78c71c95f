package match

import (
	"reflect"
	"testing"

	"github.com/accrava/codesweep/internal/rules"
	"github.com/accrava/codesweep/internal/types"
)

func compiled(t *testing.T, specs ...rules.Spec) []rules.Rule {
	t.Helper()
	c := rules.New(specs)
	var rs []rules.Rule
	for _, cat := range c.Categories() {
		rs = append(rs, c.ForCategory(cat)...)
	}
	return rs
}

func TestLine_OneHitPerRule(t *testing.T) {
	rs := compiled(t, rules.Spec{ID: "r", Category: "c", Pattern: `foo`, Severity: types.SevLow})
	hits := Line("foo foo foo", rs)
	if len(hits) != 1 {
		t.Fatalf("expected one hit per rule, got %d", len(hits))
	}
	if hits[0].Column != 1 {
		t.Fatalf("expected column of first match, got %d", hits[0].Column)
	}
}

func TestLine_MultipleRulesSameLine(t *testing.T) {
	rs := compiled(t,
		rules.Spec{ID: "a", Category: "c1", Pattern: `foo`, Severity: types.SevLow},
		rules.Spec{ID: "b", Category: "c2", Pattern: `bar`, Severity: types.SevMed},
	)
	hits := Line("foo bar", rs)
	if len(hits) != 2 {
		t.Fatalf("expected two distinct rules to hit, got %d", len(hits))
	}
}

func TestLine_UnlessSuppresses(t *testing.T) {
	rs := compiled(t, rules.Spec{
		ID: "http", Category: "c", Pattern: `http://`,
		Unless: `http://localhost`, Severity: types.SevMed,
	})
	if hits := Line("curl http://example.com", rs); len(hits) != 1 {
		t.Fatalf("expected hit for external http url, got %d", len(hits))
	}
	if hits := Line("curl http://localhost:8080", rs); len(hits) != 0 {
		t.Fatalf("expected localhost to be suppressed")
	}
}

func TestLine_Deterministic(t *testing.T) {
	rs := compiled(t,
		rules.Spec{ID: "a", Category: "c1", Pattern: `eval\(`, Severity: types.SevHigh},
		rules.Spec{ID: "b", Category: "c2", Pattern: `\+`, Severity: types.SevLow},
	)
	line := `eval(x + y)`
	first := Line(line, rs)
	second := Line(line, rs)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("matching is not deterministic: %v vs %v", first, second)
	}
}

func TestLine_NoMatch(t *testing.T) {
	rs := compiled(t, rules.Spec{ID: "r", Category: "c", Pattern: `nothing`, Severity: types.SevLow})
	if hits := Line("clean line", rs); hits != nil {
		t.Fatalf("expected nil hits, got %v", hits)
	}
}
