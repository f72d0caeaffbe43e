package coclash

import (
	"bytes"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateInput reports whether data can be rendered as statement text.
// Binary blobs are rejected up front so the renderer only ever sees text;
// what it does with that text is then total.
func ValidateInput(data []byte) error {
	if !utf8.Valid(data) {
		return errors.New("input is not valid UTF-8")
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return errors.New("input contains NUL bytes")
	}
	return nil
}

// Sanitize strips control characters that would corrupt terminal output.
// Newlines and tabs survive; carriage returns and everything else in the
// control planes do not. Statement text arrives from the network and is not
// trusted to be clean.
func Sanitize(text string) string {
	if !strings.ContainsFunc(text, isControlRune) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !isControlRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isControlRune(r rune) bool {
	if r == '\n' || r == '\t' {
		return false
	}
	return unicode.IsControl(r)
}
