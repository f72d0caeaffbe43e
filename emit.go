package coclash

import "strings"

// Reset is the ANSI reset sequence. Styled output always ends with it.
const Reset = "\x1b[0m"

const ansiReset = Reset

// prefixFor composes the ANSI prefix for an effective style. Composition
// order puts the widest-scoped attribute first so emphasis sequences layer
// on top of heading and color sequences.
func prefixFor(st EffectiveStyle, styles Styles) string {
	var b strings.Builder
	if st.Heading >= 1 && st.Heading <= 6 {
		b.WriteString(styles.Heading[st.Heading-1].Prefix)
	}
	switch st.Color {
	case ColorConstant:
		b.WriteString(styles.Constant.Prefix)
	case ColorVariable:
		b.WriteString(styles.Variable.Prefix)
	}
	if st.Monospace {
		b.WriteString(styles.Monospace.Prefix)
	}
	if st.Bold {
		b.WriteString(styles.Bold.Prefix)
	}
	if st.Italic {
		b.WriteString(styles.Italic.Prefix)
	}
	return b.String()
}

// emit serializes laid-out lines. ANSI state is switched only when the
// composed prefix changes between runs; styled output always ends with a
// single reset so nothing leaks into the shell.
func emit(lines []line, styles Styles, color bool) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	current := ""

	set := func(prefix string) {
		if !color || prefix == current {
			return
		}
		if current != "" {
			b.WriteString(ansiReset)
		}
		b.WriteString(prefix)
		current = prefix
	}

	for i, ln := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if len(ln.runs) == 0 && ln.marker == "" {
			continue
		}
		b.WriteString(strings.Repeat(" ", ln.indent))
		if ln.marker != "" {
			set(styles.ListMarker.Prefix)
			b.WriteString(ln.marker)
		}
		for _, r := range ln.runs {
			set(prefixFor(r.style, styles))
			b.WriteString(r.text)
		}
	}
	if color {
		b.WriteString(ansiReset)
	}
	b.WriteByte('\n')
	return b.String()
}
