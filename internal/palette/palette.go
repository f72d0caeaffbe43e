// Package palette defines ANSI prefix sequences for statement rendering.
package palette

// Attribute prefixes shared by every palette.
const (
	Bold      = "\x1b[1m"
	Dim       = "\x1b[2m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette holds the color prefixes for one named look. Empty fields render
// without color for that slot.
type Palette struct {
	Title      string
	Link       string
	Variable   string
	Constant   string
	Monospace  string
	ListMarker string
	Heading    [6]string
	Success    string
	Failure    string
	Input      string
	Output     string
	Whitespace string
}

// PaletteDefault mirrors the classic 16-color look: yellow titles and
// variables, blue constants, green expected output.
var PaletteDefault = Palette{
	Title:      "\x1b[33m",
	Link:       "\x1b[33m",
	Variable:   "\x1b[33m",
	Constant:   "\x1b[34m",
	Monospace:  "",
	ListMarker: "\x1b[36m",
	Heading:    [6]string{"\x1b[33m", "\x1b[33m", "\x1b[33m", "\x1b[33m", "\x1b[33m", "\x1b[33m"},
	Success:    "\x1b[32m",
	Failure:    "\x1b[31m",
	Input:      "\x1b[37m",
	Output:     "\x1b[32m",
	Whitespace: "\x1b[90m",
}

var PaletteGruvbox = Palette{
	Title:      "\x1b[38;5;214m",
	Link:       "\x1b[38;5;109m",
	Variable:   "\x1b[38;5;214m",
	Constant:   "\x1b[38;5;109m",
	Monospace:  "\x1b[38;5;142m",
	ListMarker: "\x1b[38;5;208m",
	Heading: [6]string{
		"\x1b[38;5;208m", "\x1b[38;5;214m", "\x1b[38;5;214m",
		"\x1b[38;5;223m", "\x1b[38;5;223m", "\x1b[38;5;223m",
	},
	Success:    "\x1b[38;5;142m",
	Failure:    "\x1b[38;5;167m",
	Input:      "\x1b[38;5;223m",
	Output:     "\x1b[38;5;142m",
	Whitespace: "\x1b[38;5;243m",
}

var PaletteNord = Palette{
	Title:      "\x1b[38;5;110m",
	Link:       "\x1b[38;5;109m",
	Variable:   "\x1b[38;5;222m",
	Constant:   "\x1b[38;5;110m",
	Monospace:  "\x1b[38;5;144m",
	ListMarker: "\x1b[38;5;109m",
	Heading: [6]string{
		"\x1b[38;5;110m", "\x1b[38;5;110m", "\x1b[38;5;111m",
		"\x1b[38;5;146m", "\x1b[38;5;146m", "\x1b[38;5;146m",
	},
	Success:    "\x1b[38;5;144m",
	Failure:    "\x1b[38;5;174m",
	Input:      "\x1b[38;5;253m",
	Output:     "\x1b[38;5;144m",
	Whitespace: "\x1b[38;5;240m",
}

var PaletteSolarizedDark = Palette{
	Title:      "\x1b[38;5;136m",
	Link:       "\x1b[38;5;33m",
	Variable:   "\x1b[38;5;136m",
	Constant:   "\x1b[38;5;33m",
	Monospace:  "\x1b[38;5;37m",
	ListMarker: "\x1b[38;5;166m",
	Heading: [6]string{
		"\x1b[38;5;166m", "\x1b[38;5;136m", "\x1b[38;5;136m",
		"\x1b[38;5;244m", "\x1b[38;5;244m", "\x1b[38;5;244m",
	},
	Success:    "\x1b[38;5;64m",
	Failure:    "\x1b[38;5;160m",
	Input:      "\x1b[38;5;254m",
	Output:     "\x1b[38;5;64m",
	Whitespace: "\x1b[38;5;240m",
}
