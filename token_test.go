package coclash

import "testing"

func kinds(toks []token) []tokenKind {
	out := make([]tokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.kind
	}
	return out
}

func TestTokenizeTags(t *testing.T) {
	toks := tokenize("a<b>x</b>c")
	want := []struct {
		kind tokenKind
		text string
	}{
		{tokenText, "a"},
		{tokenOpen, "b"},
		{tokenText, "x"},
		{tokenClose, "b"},
		{tokenText, "c"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), kinds(toks))
	}
	for i, w := range want {
		if toks[i].kind != w.kind || toks[i].text != w.text {
			t.Errorf("token %d: got {%d %q}, want {%d %q}", i, toks[i].kind, toks[i].text, w.kind, w.text)
		}
	}
}

func TestTokenizeNormalizesTagName(t *testing.T) {
	toks := tokenize("<B >x")
	if len(toks) != 2 || toks[0].kind != tokenOpen || toks[0].text != "b" {
		t.Fatalf("got %+v, want lowercased open tag", toks)
	}
	if toks[0].raw != "<B >" {
		t.Errorf("raw = %q, want %q", toks[0].raw, "<B >")
	}
}

func TestTokenizeSelfClosing(t *testing.T) {
	toks := tokenize("<br/>")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want open plus synthetic close", len(toks))
	}
	if toks[0].kind != tokenOpen || toks[1].kind != tokenClose || toks[1].text != "br" {
		t.Errorf("got %+v", toks)
	}
}

func TestTokenizeAttributes(t *testing.T) {
	toks := tokenize(`<a href="top" download>x`)
	if len(toks) != 2 || toks[0].kind != tokenOpen {
		t.Fatalf("got %+v", toks)
	}
	attrs := toks[0].attrs
	if len(attrs) != 2 || attrs[0].key != "href" || attrs[0].value != "top" || attrs[1].key != "download" {
		t.Errorf("attrs = %+v", attrs)
	}
}

func TestTokenizeMalformedTagIsText(t *testing.T) {
	for _, markup := range []string{"<1>", "a < b", "</b x>", "<b", "<>"} {
		toks := tokenize(markup)
		if len(toks) != 1 || toks[0].kind != tokenText || toks[0].text != markup {
			t.Errorf("tokenize(%q) = %+v, want single text token", markup, toks)
		}
	}
}

func TestTokenizeEntities(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"&lt;", "<"},
		{"&GT;", ">"},
		{"&amp;", "&"},
		{"&quot;", "\""},
		{"&apos;", "'"},
		{"&nbsp;", " "},
		{"&#65;", "A"},
		{"&#x41;", "A"},
	}
	for _, c := range cases {
		toks := tokenize(c.in)
		if len(toks) != 1 || toks[0].kind != tokenEscape || toks[0].text != c.want {
			t.Errorf("tokenize(%q) = %+v, want escape %q", c.in, toks, c.want)
		}
	}
}

func TestTokenizeBadEntityIsText(t *testing.T) {
	for _, markup := range []string{"&bogus;", "&;", "&#zz;", "&#0;", "& lt;"} {
		toks := tokenize(markup)
		if len(toks) != 1 || toks[0].kind != tokenText || toks[0].text != markup {
			t.Errorf("tokenize(%q) = %+v, want single text token", markup, toks)
		}
	}
}
