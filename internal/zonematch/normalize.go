package zonematch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics strips combining marks so that names copied out of PDFs with
// stray accents still compare equal.
var foldDiacritics = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases a zone or sub-zone name, collapses whitespace, strips
// a leading "zona " prefix and drops a trailing parenthetical annotation.
// Normalizing an already-normalized name is a no-op.
func Normalize(name string) string {
	s, _, err := transform.String(foldDiacritics, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = dropParenthetical(s)
	s = strings.TrimPrefix(s, "zona ")
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// NormalizeLoose additionally strips every non-alphanumeric rune. Used by the
// containment strategies where punctuation and spacing differ between sources.
func NormalizeLoose(name string) string {
	s := Normalize(name)
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// dropParenthetical removes a trailing "(...)" annotation, keeping interior
// parentheses untouched.
func dropParenthetical(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, ")") {
		return s
	}
	open := strings.LastIndex(s, "(")
	if open <= 0 {
		return s
	}
	return strings.TrimSpace(s[:open])
}
