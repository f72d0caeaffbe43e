package coclash

import (
	"sort"
	"strings"

	"github.com/coclash/coclash/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer and the CLI.
type Styles struct {
	Title      Style
	Link       Style
	Bold       Style
	Italic     Style
	Monospace  Style
	Constant   Style
	Variable   Style
	Heading    [6]Style
	ListMarker Style
	Success    Style
	Failure    Style
	Input      Style
	Output     Style
	Whitespace Style
}

// Theme provides named styles for statement rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Title:      style(palette.Bold, p.Title),
		Link:       style(p.Link),
		Bold:       style(palette.Bold),
		Italic:     style(palette.Italic),
		Monospace:  style(p.Monospace),
		Constant:   style(p.Constant),
		Variable:   style(p.Variable),
		Heading: [6]Style{
			style(palette.Bold, p.Heading[0]), style(palette.Bold, p.Heading[1]),
			style(palette.Bold, p.Heading[2]), style(p.Heading[3]),
			style(p.Heading[4]), style(p.Heading[5]),
		},
		ListMarker: style(p.ListMarker),
		Success:    style(p.Success),
		Failure:    style(palette.Bold, p.Failure),
		Input:      style(p.Input),
		Output:     style(p.Output),
		Whitespace: style(palette.Dim, p.Whitespace),
	}
}

var builtinThemes = map[string]Theme{
	"default":        theme{name: "default", styles: stylesFromPalette(palette.PaletteDefault)},
	"gruvbox":        theme{name: "gruvbox", styles: stylesFromPalette(palette.PaletteGruvbox)},
	"nord":           theme{name: "nord", styles: stylesFromPalette(palette.PaletteNord)},
	"solarized-dark": theme{name: "solarized-dark", styles: stylesFromPalette(palette.PaletteSolarizedDark)},
	"plain":          theme{name: "plain", styles: Styles{}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}

// PlainTheme returns the colorless built-in theme.
func PlainTheme() Theme {
	return builtinThemes["plain"]
}
