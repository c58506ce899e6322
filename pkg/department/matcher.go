package department

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match returns the first department whose alias or keyword occurs in text.
//
// Departments are scanned in declaration order, aliases before keywords, so the
// earliest declared term wins. A term only counts when it is not glued to other
// letters or digits: "ram" matches "16gb ram stick" but not "program". A plain
// plural suffix is tolerated.
func (c *Catalog) Match(text string) *Department {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return nil
	}

	for i := range c.departments {
		d := &c.departments[i]
		for _, alias := range d.Aliases {
			if containsTerm(lower, strings.ToLower(alias)) {
				out := clone(*d)
				return &out
			}
		}
		for _, kw := range d.Keywords {
			if containsTerm(lower, strings.ToLower(kw)) {
				out := clone(*d)
				return &out
			}
		}
	}
	return nil
}

// containsTerm reports whether term occurs in s at word boundaries.
func containsTerm(s, term string) bool {
	if term == "" {
		return false
	}
	for from := 0; from <= len(s)-len(term); {
		idx := strings.Index(s[from:], term)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(term)
		if boundaryBefore(s, start) && (boundaryAfter(s, end) || (len(term) >= minPluralTerm && pluralAfter(s, end))) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		from = start + size
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

// minPluralTerm keeps short codes like "cs" from matching "css" or "cses".
const minPluralTerm = 4

// pluralAfter accepts a trailing "s" or "es" so "sensors" still matches "sensor".
func pluralAfter(s string, i int) bool {
	for _, suffix := range []string{"s", "es"} {
		if strings.HasPrefix(s[i:], suffix) && boundaryAfter(s, i+len(suffix)) {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
