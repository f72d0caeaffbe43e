package coclash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStatementGolden(t *testing.T) {
	markup, err := os.ReadFile(filepath.Join("testdata", "statement.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(filepath.Join("testdata", "statement_40.golden"))
	if err != nil {
		t.Fatal(err)
	}
	got := RenderPlain(string(markup), 40)
	if got != string(want) {
		t.Errorf("rendered statement diverges from golden:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestValidateInput(t *testing.T) {
	if err := ValidateInput([]byte("ok text")); err != nil {
		t.Errorf("plain text rejected: %v", err)
	}
	if err := ValidateInput([]byte{0xff, 0xfe, 0x00}); err == nil {
		t.Error("invalid UTF-8 accepted")
	}
	if err := ValidateInput([]byte("a\x00b")); err == nil {
		t.Error("NUL byte accepted")
	}
}
