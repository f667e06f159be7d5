package qa

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics removes diacritical marks from a string (e.g., "Jiří" -> "Jiri").
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// normalizeQuestion normalizes a question for keyword matching
// (lowercase, no diacritics, collapsed whitespace).
func normalizeQuestion(question string) string {
	question = removeDiacritics(question)
	question = strings.ToLower(question)
	return strings.Join(strings.Fields(question), " ")
}
