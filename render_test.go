package coclash

import (
	"strings"
	"testing"
)

func TestRenderPlain(t *testing.T) {
	cases := []struct {
		name   string
		markup string
		width  int
		want   string
	}{
		{"plain text", "Hello world", 80, "Hello world\n"},
		{"greedy wrap", "aaa bbb ccc ddd", 10, "aaa bbb\nccc ddd\n"},
		{"overlong word overflows unsplit", "aa bbbbbbbbbbbbbb cc", 10, "aa\nbbbbbbbbbbbbbb\ncc\n"},
		{"single newline joins", "one\ntwo\n\nthree", 80, "one two\n\nthree\n"},
		{"blank runs collapse", "one\n\n\n\ntwo", 80, "one\n\ntwo\n"},
		{"entities decode", "&lt;b&gt;not bold&lt;/b&gt;", 80, "<b>not bold</b>\n"},
		{"inline code is one atom", "run <code>a b</code> now", 5, "run\na b\nnow\n"},
		{"code keeps tags literal", "<code>x <b>y</b>\nz</code>", 80, "x <b>y</b>\nz\n"},
		{"code suppresses tag interpretation", "Plain <b>bold</b> and <code>raw<b>tag</b></code> text", 80, "Plain bold and raw<b>tag</b> text\n"},
		{"code exempt from width", "<code>" + strings.Repeat("x", 30) + "\nok</code>", 10, strings.Repeat("x", 30) + "\nok\n"},
		{"unordered list", "<ul><li>one</li><li>two</li></ul>", 80, "- one\n- two\n"},
		{"ordered list numbering", "<ol><li>x</li><li>y</li></ol>", 80, "1. x\n2. y\n"},
		{"nested list indents", "<ul><li>a<ul><li>b</li></ul></li></ul>", 80, "- a\n  - b\n"},
		{"continuation aligns under marker", "<ul><li>aaa bbb ccc</li></ul>", 9, "- aaa bbb\n  ccc\n"},
		{"heading is a block", "<h1>Title</h1>text", 80, "Title\n\ntext\n"},
		{"paragraph tags", "a<p>b</p>c", 80, "a\n\nb\n\nc\n"},
		{"unknown tag passes content through", "x <span>y</span> z", 80, "x y z\n"},
		{"stray close is a no-op", "a</b>b", 80, "ab\n"},
		{"mismatched close recovers", "<i><b>X</i>Y</b>", 80, "XY\n"},
		{"unclosed tag closes at end", "<b>bold", 80, "bold\n"},
		{"lone angle bracket is literal", "a < b", 80, "a < b\n"},
		{"empty input", "", 80, ""},
		{"tiny width clamps to minimum", "aaaa bbbb", 3, "aaaa bbbb\n"},
		{"control characters stripped", "a\x01b", 80, "ab\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := RenderPlain(c.markup, c.width)
			if got != c.want {
				t.Errorf("RenderPlain(%q, %d):\ngot:  %q\nwant: %q", c.markup, c.width, got, c.want)
			}
		})
	}
}

func TestRenderNeverPanics(t *testing.T) {
	hostile := []string{
		"<", ">", "</", "<b><i><b><i>", "</b></b></b>",
		"<code><code></code>", "<code>unterminated",
		strings.Repeat("<b>", 1000), "&#xffffffff;", "\x00\x1b[31m",
		"<ul><ol><li></ul></ol>",
	}
	for _, markup := range hostile {
		_ = RenderPlain(markup, 40)
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize("a\r\x01b\tc\nd"); got != "ab\tc\nd" {
		t.Errorf("got %q", got)
	}
	clean := "plain text"
	if got := Sanitize(clean); got != clean {
		t.Errorf("got %q, want input unchanged", got)
	}
}

func TestShowWhitespace(t *testing.T) {
	got := ShowWhitespace("a b\nc", Style{}, Style{}, false)
	if got != "a•b⏎\nc" {
		t.Errorf("got %q", got)
	}
	marks := Style{Prefix: "\x1b[90m"}
	base := Style{Prefix: "\x1b[32m"}
	want := "a" + ansiReset + marks.Prefix + "•" + ansiReset + base.Prefix + "b"
	if got := ShowWhitespace("a b", base, marks, true); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
