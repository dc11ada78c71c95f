// Package match applies compiled rules to single lines of text. Matching is
// purely textual: no cross-line state, no tokenization, no awareness of
// string or comment context. That trades precision for recall, so a rule may
// fire inside a comment or string literal.
package match

import "github.com/accrava/codesweep/internal/rules"

// Hit records one rule matching a line. Column is the 1-based byte offset of
// the first match.
type Hit struct {
	Rule   rules.Rule
	Column int
}

// Line tests each rule against the line. A rule produces at most one hit
// (first match wins per rule); distinct rules may each hit the same line.
func Line(line string, rs []rules.Rule) []Hit {
	var hits []Hit
	for _, r := range rs {
		loc := r.Expr.FindStringIndex(line)
		if loc == nil {
			continue
		}
		if r.Unless != nil && r.Unless.MatchString(line) {
			continue
		}
		hits = append(hits, Hit{Rule: r, Column: loc[0] + 1})
	}
	return hits
}
