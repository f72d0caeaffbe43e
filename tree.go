package coclash

type nodeKind uint8

const (
	kindDocument nodeKind = iota
	kindParagraph
	kindHeading
	kindList
	kindListItem
	kindBold
	kindItalic
	kindMonospace
	kindConstant
	kindVariable
	kindText
	kindForeign
)

// node is one element of the style tree. Interior nodes own their children;
// kindText leaves own a literal text span.
type node struct {
	kind     nodeKind
	level    int    // kindHeading: 1..6
	ordered  bool   // kindList
	name     string // source tag name (foreign nodes keep theirs for reference)
	text     string // kindText
	children []*node
}

// kindForTag maps a lowercased tag name onto the closed node kind enum.
// Unrecognized names become foreign passthrough nodes.
func kindForTag(name string) (kind nodeKind, level int, ordered bool) {
	switch name {
	case "b", "strong":
		return kindBold, 0, false
	case "i", "em":
		return kindItalic, 0, false
	case "code", "pre", "tt":
		return kindMonospace, 0, false
	case "const":
		return kindConstant, 0, false
	case "var":
		return kindVariable, 0, false
	case "p":
		return kindParagraph, 0, false
	case "ul":
		return kindList, 0, false
	case "ol":
		return kindList, 0, true
	case "li":
		return kindListItem, 0, false
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return kindHeading, int(name[1] - '0'), false
	}
	return kindForeign, 0, false
}

type openTag struct {
	n    *node
	name string
}

// build consumes tokens in order and produces a complete style tree. It
// never fails: malformed nesting is recovered, unclosed tags are implicitly
// closed at end of input, and stray closes are dropped.
//
// Inside a monospace node no descendant tag is interpreted; tag tokens are
// appended as literal text from their raw source and only a close matching
// the region's own tag name ends it.
func build(toks []token) *node {
	root := &node{kind: kindDocument}
	stack := []openTag{{n: root}}

	top := func() *openTag { return &stack[len(stack)-1] }

	for _, tok := range toks {
		if top().n.kind == kindMonospace {
			if tok.kind == tokenClose && tok.text == top().name {
				stack = stack[:len(stack)-1]
				continue
			}
			appendText(top().n, literalText(tok))
			continue
		}

		switch tok.kind {
		case tokenText, tokenEscape:
			appendText(top().n, tok.text)
		case tokenOpen:
			kind, level, ordered := kindForTag(tok.text)
			child := &node{kind: kind, level: level, ordered: ordered, name: tok.text}
			top().n.children = append(top().n.children, child)
			stack = append(stack, openTag{n: child, name: tok.text})
		case tokenClose:
			// Scan for the nearest enclosing tag of the same name; anything
			// opened in between is implicitly closed. A close with no
			// matching open is a no-op.
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].name == tok.text {
					stack = stack[:i]
					break
				}
			}
		}
	}
	// Unclosed tags at end of input close implicitly in stack order.
	return root
}

func literalText(tok token) string {
	switch tok.kind {
	case tokenText, tokenEscape:
		return tok.text
	default:
		return tok.raw
	}
}

// appendText merges adjacent literal spans into one text leaf.
func appendText(parent *node, text string) {
	if text == "" {
		return
	}
	if n := len(parent.children); n > 0 && parent.children[n-1].kind == kindText {
		parent.children[n-1].text += text
		return
	}
	parent.children = append(parent.children, &node{kind: kindText, text: text})
}
