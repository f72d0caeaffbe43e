package coclash

import (
	"strconv"

	"github.com/muesli/reflow/ansi"
)

// ColorClass selects the themed color slot for a text run.
type ColorClass uint8

const (
	ColorNone ColorClass = iota
	ColorConstant
	ColorVariable
)

// EffectiveStyle is the fully composed set of visual attributes applying to
// one leaf text run after folding its ancestor chain.
type EffectiveStyle struct {
	Bold      bool
	Italic    bool
	Monospace bool
	Heading   int // 0 = not a heading, otherwise 1..6
	Color     ColorClass
}

type spanKind uint8

const (
	spanText spanKind = iota
	spanBreak
)

// span is one element of the resolved, document-ordered run sequence. Break
// spans carry the block indent and optional list marker for the content that
// follows; blank reports whether the boundary wants a blank separator line.
type span struct {
	kind   spanKind
	text   string
	style  EffectiveStyle
	indent int
	marker string
	blank  bool
}

// resolve walks the style tree left to right and folds ancestor chains into
// effective styles per leaf. Boolean emphasis is OR-combined so self-nested
// tags stay idempotent; heading level and color class are nearest-ancestor
// wins.
func resolve(root *node) []span {
	r := &resolver{}
	r.walk(root, EffectiveStyle{}, blockCtx{})
	return r.spans
}

type blockCtx struct {
	indent int
}

type resolver struct {
	spans []span
}

func (r *resolver) breakAt(ctx blockCtx, marker string, blank bool) {
	r.spans = append(r.spans, span{kind: spanBreak, indent: ctx.indent, marker: marker, blank: blank})
}

func (r *resolver) walk(n *node, st EffectiveStyle, ctx blockCtx) {
	switch n.kind {
	case kindText:
		r.spans = append(r.spans, span{kind: spanText, text: n.text, style: st})
		return
	case kindBold:
		st.Bold = true
	case kindItalic:
		st.Italic = true
	case kindMonospace:
		st.Monospace = true
	case kindConstant:
		st.Color = ColorConstant
	case kindVariable:
		st.Color = ColorVariable
	case kindHeading:
		st.Heading = n.level
		r.breakAt(ctx, "", true)
		r.walkChildren(n, st, ctx)
		r.breakAt(ctx, "", true)
		return
	case kindParagraph:
		r.breakAt(ctx, "", true)
		r.walkChildren(n, st, ctx)
		r.breakAt(ctx, "", true)
		return
	case kindList:
		r.walkList(n, st, ctx)
		return
	case kindListItem:
		// A list item outside any list still renders as one.
		r.walkItem(n, st, ctx, "- ")
		return
	}
	r.walkChildren(n, st, ctx)
}

func (r *resolver) walkChildren(n *node, st EffectiveStyle, ctx blockCtx) {
	for _, c := range n.children {
		r.walk(c, st, ctx)
	}
}

func (r *resolver) walkList(n *node, st EffectiveStyle, ctx blockCtx) {
	r.breakAt(ctx, "", false)
	counter := 0
	for _, c := range n.children {
		if c.kind == kindListItem {
			counter++
			marker := "- "
			if n.ordered {
				marker = strconv.Itoa(counter) + ". "
			}
			r.walkItem(c, st, ctx, marker)
			continue
		}
		r.walk(c, st, ctx)
	}
	r.breakAt(ctx, "", false)
}

func (r *resolver) walkItem(n *node, st EffectiveStyle, ctx blockCtx, marker string) {
	r.breakAt(ctx, marker, false)
	inner := ctx
	inner.indent += ansi.PrintableRuneWidth(marker)
	r.walkChildren(n, st, inner)
	r.breakAt(ctx, "", false)
}
