// Package textmatch decides whether free-text answers from PER assessments
// read as an affirmative in English or Spanish.
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// affirmativeWords are matched as substrings, not whole words, so text such
// as "business" also matches through "si".
var affirmativeWords = []string{"yes", "sí", "si"}

// IsAffirmative reports whether v is a non-empty string containing one of the
// affirmative words once lower-cased and stripped of diacritics. Any other
// value, including nil and nil pointers, is not affirmative.
func IsAffirmative(v any) bool {
	var text string
	switch t := v.(type) {
	case string:
		text = t
	case *string:
		if t == nil {
			return false
		}
		text = *t
	default:
		return false
	}

	if text == "" {
		return false
	}

	normalized := Fold(text)
	for _, w := range affirmativeWords {
		if strings.Contains(normalized, w) {
			return true
		}
	}

	return false
}

// Fold lower-cases s, decomposes it (NFD) and drops nonspacing marks.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}

	return folded
}
