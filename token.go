package coclash

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokenText tokenKind = iota
	tokenOpen
	tokenClose
	tokenEscape
)

const maxEntityLen = 32

// token is one lexical element of statement markup. raw always holds the
// exact source bytes so monospace regions can reproduce them verbatim.
type token struct {
	kind  tokenKind
	text  string // text/escape: literal content; open/close: lowercased tag name
	attrs []tagAttr
	raw   string
}

type tagAttr struct {
	key   string
	value string
}

// tokenize scans statement markup into a flat token sequence. It is total:
// any delimiter sequence that does not parse as a tag or entity is emitted
// as literal text.
func tokenize(markup string) []token {
	var toks []token
	textStart := 0
	i := 0

	flushText := func(end int) {
		if end > textStart {
			toks = append(toks, token{kind: tokenText, text: markup[textStart:end], raw: markup[textStart:end]})
		}
	}

	for i < len(markup) {
		switch markup[i] {
		case '<':
			if tag, selfClose, end, ok := parseTag(markup, i); ok {
				flushText(i)
				toks = append(toks, tag)
				if selfClose {
					toks = append(toks, token{kind: tokenClose, text: tag.text})
				}
				i = end
				textStart = i
				continue
			}
			i++
		case '&':
			if lit, end, ok := parseEntity(markup, i); ok {
				flushText(i)
				toks = append(toks, token{kind: tokenEscape, text: lit, raw: markup[i:end]})
				i = end
				textStart = i
				continue
			}
			i++
		default:
			i++
		}
	}
	flushText(len(markup))
	return toks
}

// parseTag attempts to read a well-formed open or close tag starting at
// markup[i] == '<'. Close tags take no attributes.
func parseTag(markup string, i int) (tok token, selfClose bool, end int, ok bool) {
	j := i + 1
	closing := false
	if j < len(markup) && markup[j] == '/' {
		closing = true
		j++
	}
	name, j, ok := parseTagName(markup, j)
	if !ok {
		return token{}, false, 0, false
	}

	var attrs []tagAttr
	for {
		k := skipTagSpace(markup, j)
		if k >= len(markup) {
			return token{}, false, 0, false
		}
		if markup[k] == '>' {
			j = k + 1
			break
		}
		if markup[k] == '/' && k+1 < len(markup) && markup[k+1] == '>' {
			if closing {
				return token{}, false, 0, false
			}
			selfClose = true
			j = k + 2
			break
		}
		if k == j || closing {
			// Attributes require leading space and only appear on opens.
			return token{}, false, 0, false
		}
		attr, next, attrOK := parseAttr(markup, k)
		if !attrOK {
			return token{}, false, 0, false
		}
		attrs = append(attrs, attr)
		j = next
	}

	kind := tokenOpen
	if closing {
		kind = tokenClose
	}
	return token{kind: kind, text: strings.ToLower(name), attrs: attrs, raw: markup[i:j]}, selfClose, j, true
}

func parseTagName(markup string, i int) (string, int, bool) {
	start := i
	if i >= len(markup) || !isNameStart(markup[i]) {
		return "", 0, false
	}
	i++
	for i < len(markup) && isNameByte(markup[i]) {
		i++
	}
	return markup[start:i], i, true
}

func parseAttr(markup string, i int) (tagAttr, int, bool) {
	key, i, ok := parseTagName(markup, i)
	if !ok {
		return tagAttr{}, 0, false
	}
	if i >= len(markup) || markup[i] != '=' {
		return tagAttr{key: strings.ToLower(key)}, i, true
	}
	i++
	if i >= len(markup) || (markup[i] != '"' && markup[i] != '\'') {
		return tagAttr{}, 0, false
	}
	quote := markup[i]
	i++
	start := i
	for i < len(markup) && markup[i] != quote {
		if markup[i] == '>' || markup[i] == '\n' {
			return tagAttr{}, 0, false
		}
		i++
	}
	if i >= len(markup) {
		return tagAttr{}, 0, false
	}
	return tagAttr{key: strings.ToLower(key), value: markup[start:i]}, i + 1, true
}

func skipTagSpace(markup string, i int) int {
	for i < len(markup) && (markup[i] == ' ' || markup[i] == '\t') {
		i++
	}
	return i
}

func isNameStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameByte(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9') || b == '-'
}

var namedEntities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"quot": "\"",
	"apos": "'",
	"nbsp": " ",
}

// parseEntity attempts to read an HTML entity starting at markup[i] == '&'.
func parseEntity(markup string, i int) (string, int, bool) {
	semi := strings.IndexByte(markup[i:], ';')
	if semi <= 1 || semi > maxEntityLen {
		return "", 0, false
	}
	body := markup[i+1 : i+semi]
	end := i + semi + 1
	if lit, ok := namedEntities[strings.ToLower(body)]; ok {
		return lit, end, true
	}
	if len(body) > 1 && body[0] == '#' {
		numeric := body[1:]
		base := 10
		if numeric[0] == 'x' || numeric[0] == 'X' {
			numeric = numeric[1:]
			base = 16
		}
		if n, err := strconv.ParseInt(numeric, base, 32); err == nil && n > 0 && utf8.ValidRune(rune(n)) {
			return string(rune(n)), end, true
		}
	}
	return "", 0, false
}
