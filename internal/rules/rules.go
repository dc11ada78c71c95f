package rules

import (
	"regexp"
	"sort"

	"github.com/accrava/codesweep/internal/logging"
	"github.com/accrava/codesweep/internal/types"
)

// Rule is one compiled detection pattern. Expr is matched case-insensitively
// against a single line; when Unless is non-nil a line matching it is not
// reported even if Expr matches (RE2 has no lookahead, so exclusions that the
// pattern itself cannot express live here).
type Rule struct {
	ID       string
	Category string
	Severity types.Severity
	Message  string
	Expr     *regexp.Regexp
	Unless   *regexp.Regexp
}

// Spec is the uncompiled form of a rule. Languages empty means the rule is
// universal and applies to every file.
type Spec struct {
	ID        string
	Category  string
	Pattern   string
	Unless    string
	Message   string
	Severity  types.Severity
	Languages []string
}

// Catalog is an immutable registry of rules, partitioned into universal rules
// and per-language subsets. Built once at startup and safe for concurrent use.
type Catalog struct {
	universal []Rule
	byLang    map[string][]Rule
	byCat     map[string][]Rule
}

// New compiles specs into a catalog. A spec whose pattern does not compile is
// logged and skipped so one bad rule cannot take down the whole scan.
func New(specs []Spec) *Catalog {
	c := &Catalog{
		byLang: make(map[string][]Rule),
		byCat:  make(map[string][]Rule),
	}
	for _, s := range specs {
		r, err := compile(s)
		if err != nil {
			logging.L.Warnw("skipping rule with invalid pattern", "rule", s.ID, "error", err)
			continue
		}
		c.byCat[r.Category] = append(c.byCat[r.Category], r)
		if len(s.Languages) == 0 {
			c.universal = append(c.universal, r)
			continue
		}
		for _, lang := range s.Languages {
			c.byLang[lang] = append(c.byLang[lang], r)
		}
	}
	return c
}

// Default returns the builtin security catalog.
func Default() *Catalog {
	return New(builtinSecurity)
}

// Lint returns the builtin style catalog.
func Lint() *Catalog {
	return New(builtinLint)
}

func compile(s Spec) (Rule, error) {
	expr, err := regexp.Compile("(?i)" + s.Pattern)
	if err != nil {
		return Rule{}, err
	}
	var unless *regexp.Regexp
	if s.Unless != "" {
		unless, err = regexp.Compile("(?i)" + s.Unless)
		if err != nil {
			return Rule{}, err
		}
	}
	return Rule{
		ID:       s.ID,
		Category: s.Category,
		Severity: s.Severity,
		Message:  s.Message,
		Expr:     expr,
		Unless:   unless,
	}, nil
}

// Universal returns the rules applied to every file.
func (c *Catalog) Universal() []Rule { return c.universal }

// ForLanguage returns the extra rules for one language tag, or nil.
func (c *Catalog) ForLanguage(lang string) []Rule { return c.byLang[lang] }

// Applicable returns universal rules plus the subset for lang, in catalog
// order. The result is freshly allocated; callers may not see shared state.
func (c *Catalog) Applicable(lang string) []Rule {
	extra := c.byLang[lang]
	out := make([]Rule, 0, len(c.universal)+len(extra))
	out = append(out, c.universal...)
	out = append(out, extra...)
	return out
}

// ForCategory returns all rules in one category, universal or not.
func (c *Catalog) ForCategory(cat string) []Rule { return c.byCat[cat] }

// Categories returns every category name in the catalog, sorted.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.byCat))
	for cat := range c.byCat {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Len reports the total number of compiled rules.
func (c *Catalog) Len() int {
	n := 0
	for _, rs := range c.byCat {
		n += len(rs)
	}
	return n
}
