package utils

import (
	"strings"
	"unicode/utf8"
)

// TruncateHead keeps at most n bytes from the start of s without splitting a rune.
// Invalid UTF-8 in the result is dropped.
func TruncateHead(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) > n {
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	return strings.ToValidUTF8(s, "")
}

// TruncateTail keeps at most n bytes from the end of s without splitting a rune.
// Invalid UTF-8 in the result is dropped.
func TruncateTail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) > n {
		start := len(s) - n
		for start < len(s) && !utf8.RuneStart(s[start]) {
			start++
		}
		s = s[start:]
	}
	return strings.ToValidUTF8(s, "")
}
