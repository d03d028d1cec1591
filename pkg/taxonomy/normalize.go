package taxonomy

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// normalize folds text into the form rules are matched against: NFKC
// compatibility form, lowercased, surrounding whitespace removed.
func normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFKC.String(text)))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// containsWord reports whether word occurs in text with no letter or digit
// directly before or after it. Every occurrence is tried, so "pot" is found in
// "potato pot" even though the first occurrence is rejected.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}

	for start := 0; start+len(word) <= len(text); {
		i := strings.Index(text[start:], word)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(word)

		before, _ := utf8.DecodeLastRuneInString(text[:i])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if (i == 0 || !isWordRune(before)) && (end == len(text) || !isWordRune(after)) {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[i:])
		start = i + size
	}

	return false
}
