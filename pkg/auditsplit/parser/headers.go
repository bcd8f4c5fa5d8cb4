// Package parser locates audit tables in Excel sheets and reads their rows.
package parser

import "strings"

// HeaderMatcher describes how a header cell is recognised.
type HeaderMatcher struct {
	// Name is the expected header text, compared after normalisation.
	Name string
	// Include lists keywords that must all appear for a fallback match.
	Include []string
	// Exclude lists keywords that disqualify a fallback match.
	Exclude []string
}

// NormalizeHeader collapses whitespace and newlines and lower-cases s.
func NormalizeHeader(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// exact reports whether h matches Name after normalisation.
func (m HeaderMatcher) exact(h string) bool {
	name := NormalizeHeader(m.Name)
	return name != "" && NormalizeHeader(h) == name
}

// fallback reports whether h carries every Include keyword and no Exclude keyword.
func (m HeaderMatcher) fallback(h string) bool {
	if len(m.Include) == 0 {
		return false
	}
	norm := NormalizeHeader(h)
	if norm == "" {
		return false
	}
	for _, kw := range m.Include {
		if !strings.Contains(norm, NormalizeHeader(kw)) {
			return false
		}
	}
	for _, kw := range m.Exclude {
		if strings.Contains(norm, NormalizeHeader(kw)) {
			return false
		}
	}
	return true
}

// FindColumn returns the 1-based column of the header cell matching m, or 0.
// An exact match anywhere in the row wins over a keyword match.
func FindColumn(header []string, m HeaderMatcher) int {
	for i, h := range header {
		if m.exact(h) {
			return i + 1
		}
	}
	for i, h := range header {
		if m.fallback(h) {
			return i + 1
		}
	}
	return 0
}
