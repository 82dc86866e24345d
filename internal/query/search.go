package query

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Search returns the records whose name has a word starting with q, compared
// case-insensitively, in input order. Words begin at the start of the name,
// after any non-alphanumeric rune, and at camel-case humps, so "ace" finds
// "AceOfSpades" and "BlueAce" but not "Racer". A blank q matches everything.
func Search[T Record](records []T, q string) []T {
	fold := cases.Fold()
	q = fold.String(strings.TrimSpace(q))
	out := make([]T, 0, len(records))
	for _, r := range records {
		if q == "" || hasWordPrefix(fold, r.FilterName(), q) {
			out = append(out, r)
		}
	}
	return out
}

func hasWordPrefix(fold cases.Caser, name, q string) bool {
	for _, i := range wordStarts(name) {
		if strings.HasPrefix(fold.String(name[i:]), q) {
			return true
		}
	}
	return false
}

// wordStarts returns the byte offsets at which a word begins.
func wordStarts(s string) []int {
	var starts []int
	prev := rune(-1)
	for i, r := range s {
		if isWordRune(r) && startsWord(prev, r) {
			starts = append(starts, i)
		}
		prev = r
	}
	return starts
}

func startsWord(prev, r rune) bool {
	switch {
	case prev < 0 || !isWordRune(prev):
		return true
	case unicode.IsUpper(r) && unicode.IsLower(prev):
		return true
	case unicode.IsDigit(r) != unicode.IsDigit(prev):
		return true
	default:
		return false
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
