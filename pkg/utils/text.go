package utils

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// TruncateRunes cuts s to at most max runes and appends suffix when it had to cut.
func TruncateRunes(s string, max int, suffix string) string {
	if max < 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + suffix
}

// FirstRunes returns the first n runes of s.
func FirstRunes(s string, n int) string {
	return TruncateRunes(s, n, "")
}

// Itoa formats v, or returns "" when v is nil.
func Itoa(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// Atoi parses a trimmed integer string, reporting whether it was one.
func Atoi(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
