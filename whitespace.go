package coclash

import "strings"

const (
	visibleSpace   = "•"
	visibleNewline = "⏎"
)

// ShowWhitespace makes spaces and newlines visible, for displaying test
// case data where trailing whitespace decides pass or fail. Spaces become
// bullets and newlines gain a return symbol painted with marks; base is
// re-applied after each symbol so the surrounding style survives.
func ShowWhitespace(text string, base, marks Style, color bool) string {
	if !color {
		base = Style{}
		marks = Style{}
	}
	var b strings.Builder
	for _, r := range text {
		switch r {
		case ' ':
			b.WriteString(mark(visibleSpace, base, marks))
		case '\n':
			b.WriteString(mark(visibleNewline, base, marks))
			b.WriteByte('\n')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func mark(symbol string, base, marks Style) string {
	if marks.Prefix == "" {
		return symbol
	}
	return ansiReset + marks.Prefix + symbol + ansiReset + base.Prefix
}
