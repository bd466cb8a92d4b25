package quiz

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Match reports whether a user answer counts as correct. Both arguments are
// expected to be trimmed and lower-cased by the caller. The rules, in order:
// exact equality, equality after stripping diacritics, and substring
// containment in either direction as long as the rune-length difference is
// at most 2. The last rule intentionally tolerates small typos and accepts
// prefixes like "cas" for "casa".
func Match(userAnswer, correctAnswer string) bool {
	if userAnswer == correctAnswer {
		return true
	}

	if stripDiacritics(userAnswer) == stripDiacritics(correctAnswer) {
		return true
	}

	if strings.Contains(userAnswer, correctAnswer) || strings.Contains(correctAnswer, userAnswer) {
		diff := utf8.RuneCountInString(userAnswer) - utf8.RuneCountInString(correctAnswer)
		if diff < 0 {
			diff = -diff
		}
		return diff <= 2
	}

	return false
}

func stripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// Normalize prepares raw user input for Match.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
