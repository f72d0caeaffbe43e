package coclash

// Options controls statement rendering.
type Options struct {
	// Width is the target line width in columns. Zero or negative selects
	// the default of 80; values under 10 are clamped up to 10.
	Width int
	// Color enables ANSI styling. When false the output is plain text.
	Color bool
	// Theme supplies the styles used when Color is set. Nil selects the
	// default theme.
	Theme Theme
}

// DefaultOptions returns rendering options for an 80 column color terminal.
func DefaultOptions() Options {
	return Options{Width: defaultWidth, Color: true, Theme: DefaultTheme()}
}

// Render converts statement markup to terminal text. It never fails:
// malformed markup degrades gracefully and always produces output.
func Render(markup string, opts Options) string {
	theme := opts.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	toks := tokenize(Sanitize(markup))
	root := build(toks)
	spans := resolve(root)
	lines := layout(spans, opts.Width)
	return emit(lines, theme.Styles(), opts.Color)
}

// RenderPlain renders markup without any ANSI styling.
func RenderPlain(markup string, width int) string {
	return Render(markup, Options{Width: width, Color: false, Theme: PlainTheme()})
}
