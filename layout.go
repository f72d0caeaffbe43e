package coclash

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

const (
	defaultWidth = 80
	minWidth     = 10
)

// run is a stretch of output text sharing one effective style.
type run struct {
	text  string
	style EffectiveStyle
}

// line is one finished output line. indent is in columns, marker is the
// list bullet or number printed between indent and the first run.
type line struct {
	indent int
	marker string
	runs   []run
}

// layout wraps a resolved span sequence into lines of at most width columns.
// Prose wraps greedily at word boundaries; a word wider than the whole line
// overflows unsplit. Monospace spans containing newlines are reproduced one
// source line per output line with no width limit applied.
func layout(spans []span, width int) []line {
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	e := &engine{width: width}
	for _, sp := range spans {
		switch sp.kind {
		case spanBreak:
			e.breakBlock(sp)
		case spanText:
			if sp.style.Monospace {
				e.monospace(sp)
			} else {
				e.prose(sp)
			}
		}
	}
	e.flushWord()
	e.closeLine()
	return e.lines
}

type engine struct {
	width int
	lines []line

	cur      line
	open     bool
	curWidth int
	lineBase int // indent + marker width of the open line

	contIndent int // indent for wrap continuations of the current block

	pendingIndent int
	pendingMarker string
	pendingBlank  bool
	any           bool

	word      []run
	wordWidth int
}

func (e *engine) breakBlock(sp span) {
	e.flushWord()
	e.closeLine()
	if sp.blank {
		e.pendingBlank = true
	}
	e.pendingIndent = sp.indent
	e.pendingMarker = sp.marker
}

// prose splits a text span into whitespace-separated words. A run of
// whitespace containing two or more newlines acts as a paragraph break;
// longer runs collapse to the same single separator.
func (e *engine) prose(sp span) {
	text := sp.text
	i := 0
	for i < len(text) {
		if isSpaceByte(text[i]) {
			j := i
			newlines := 0
			for j < len(text) && isSpaceByte(text[j]) {
				if text[j] == '\n' {
					newlines++
				}
				j++
			}
			e.flushWord()
			if newlines >= 2 {
				e.paragraphBreak()
			}
			i = j
			continue
		}
		j := i
		for j < len(text) && !isSpaceByte(text[j]) {
			j++
		}
		e.addFragment(text[i:j], sp.style)
		i = j
	}
}

// monospace handles verbatim code spans. Single-line spans join the word
// buffer as one unbreakable fragment so inline code glues to neighboring
// punctuation; spans with newlines are emitted line for line, width exempt.
func (e *engine) monospace(sp span) {
	if !strings.Contains(sp.text, "\n") {
		e.addFragment(sp.text, sp.style)
		return
	}
	e.flushWord()
	parts := strings.Split(sp.text, "\n")
	for idx, part := range parts {
		e.ensureLine()
		if part != "" {
			e.appendRun(part, sp.style)
		}
		if idx < len(parts)-1 {
			e.closeLine()
			e.pendingIndent = e.contIndent
			e.pendingMarker = ""
		}
	}
}

func (e *engine) paragraphBreak() {
	if e.open {
		e.pendingIndent = e.contIndent
	}
	e.closeLine()
	e.pendingBlank = true
	e.pendingMarker = ""
}

func (e *engine) addFragment(text string, st EffectiveStyle) {
	if text == "" {
		return
	}
	e.word = append(e.word, run{text: text, style: st})
	e.wordWidth += ansi.PrintableRuneWidth(text)
}

// flushWord places the buffered word on the current line, wrapping first if
// it does not fit and the line already has content.
func (e *engine) flushWord() {
	if len(e.word) == 0 {
		return
	}
	e.ensureLine()
	sep := 0
	if e.curWidth > e.lineBase {
		sep = 1
	}
	if sep == 1 && e.curWidth+sep+e.wordWidth > e.width {
		e.wrapLine()
		sep = 0
	}
	if sep == 1 {
		e.appendRun(" ", e.word[0].style)
	}
	for _, frag := range e.word {
		e.appendRun(frag.text, frag.style)
	}
	e.word = e.word[:0]
	e.wordWidth = 0
}

func (e *engine) appendRun(text string, st EffectiveStyle) {
	if n := len(e.cur.runs); n > 0 && e.cur.runs[n-1].style == st {
		e.cur.runs[n-1].text += text
	} else {
		e.cur.runs = append(e.cur.runs, run{text: text, style: st})
	}
	e.curWidth += ansi.PrintableRuneWidth(text)
}

func (e *engine) ensureLine() {
	if e.open {
		return
	}
	if e.any && e.pendingBlank {
		e.lines = append(e.lines, line{})
	}
	e.pendingBlank = false
	e.cur = line{indent: e.pendingIndent, marker: e.pendingMarker}
	e.lineBase = e.pendingIndent + ansi.PrintableRuneWidth(e.pendingMarker)
	e.contIndent = e.lineBase
	e.curWidth = e.lineBase
	e.pendingMarker = ""
	e.open = true
	e.any = true
}

func (e *engine) wrapLine() {
	e.closeLine()
	e.cur = line{indent: e.contIndent}
	e.lineBase = e.contIndent
	e.curWidth = e.contIndent
	e.open = true
}

func (e *engine) closeLine() {
	if !e.open {
		return
	}
	e.lines = append(e.lines, e.cur)
	e.cur = line{}
	e.open = false
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
