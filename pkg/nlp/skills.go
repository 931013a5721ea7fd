package nlp

import (
	"fmt"
	"regexp"
	"strings"
)

var defaultSkills = []string{
	"Python",
	"Java",
	"C++",
	"Machine Learning",
	"Data Science",
	"AI",
	"TensorFlow",
	"SQL",
	"Pandas",
}

// DefaultSkills returns a copy of the built-in catalog, in match order.
func DefaultSkills() []string {
	return append([]string(nil), defaultSkills...)
}

// MatchMode selects how catalog entries are looked up in resume text.
type MatchMode string

const (
	// MatchSubstring is plain case-insensitive containment ("AI" matches "email").
	MatchSubstring MatchMode = "substring"
	// MatchWord requires the entry to be bounded by non-alphanumerics or text edges.
	MatchWord MatchMode = "word"
)

// ParseMatchMode maps a config value to a MatchMode.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchWord:
		return MatchWord, nil
	default:
		return "", fmt.Errorf("unknown skill match mode %q", s)
	}
}

type entry struct {
	name  string
	lower string
	re    *regexp.Regexp
}

// Catalog is an ordered, read-only list of known skills. Safe for concurrent use.
type Catalog struct {
	mode    MatchMode
	entries []entry
}

// NewCatalog builds a catalog. Blank entries and case-insensitive duplicates
// (after NormalizeSkill) are dropped; the first spelling wins.
func NewCatalog(skills []string, mode MatchMode) *Catalog {
	if mode == "" {
		mode = MatchSubstring
	}
	c := &Catalog{mode: mode}
	seen := map[string]struct{}{}
	for _, s := range skills {
		s = NormalizeSkill(s)
		if s == "" {
			continue
		}
		lower := strings.ToLower(s)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		e := entry{name: s, lower: lower}
		if mode == MatchWord {
			e.re = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}])` + regexp.QuoteMeta(s) + `(?:$|[^\p{L}\p{N}])`)
		}
		c.entries = append(c.entries, e)
	}
	return c
}

// Skills returns the catalog entries in order.
func (c *Catalog) Skills() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.name
	}
	return out
}

// Mode reports how the catalog matches.
func (c *Catalog) Mode() MatchMode { return c.mode }

// Match returns every catalog entry found in text, once each, in catalog order.
func (c *Catalog) Match(text string) []string {
	if text == "" {
		return []string{}
	}
	lower := strings.ToLower(text)
	out := []string{}
	for _, e := range c.entries {
		if !strings.Contains(lower, e.lower) {
			continue
		}
		if e.re != nil && !e.re.MatchString(text) {
			continue
		}
		out = append(out, e.name)
	}
	return out
}
