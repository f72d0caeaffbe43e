// Package coclash renders puzzle statement markup to ANSI for terminal
// display.
//
// Statement markup is a small tag-based format (<b>, <i>, <code>, <const>,
// <var>, headings and lists) authored by puzzle contributors and therefore
// frequently malformed: tags nest themselves, closes do not match opens, and
// stray closes appear mid-sentence. The renderer never rejects input; every
// statement, however broken, produces output.
//
// Rendering is a pure pipeline over an in-memory statement:
//
//	raw text -> tokens -> tag tree -> resolved styles -> wrapped lines -> text
//
// Prose is re-wrapped to the requested width while code regions are
// reproduced verbatim, unwrapped and untrimmed, with any tags inside them
// kept as literal characters.
//
// Example:
//
//	out := coclash.Render("Read <var>n</var> lines of <b>input</b>.", coclash.Options{
//		Width: 80,
//		Color: true,
//		Theme: coclash.DefaultTheme(),
//	})
//	fmt.Print(out)
//
// The renderer holds no global state; concurrent calls on different inputs
// are safe.
package coclash
