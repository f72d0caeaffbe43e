package coclash

import (
	"sort"
	"testing"
)

func TestAvailableThemes(t *testing.T) {
	names := AvailableThemes()
	if !sort.StringsAreSorted(names) {
		t.Errorf("theme names not sorted: %v", names)
	}
	for _, want := range []string{"default", "gruvbox", "nord", "plain", "solarized-dark"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("theme %q missing from %v", want, names)
		}
	}
}

func TestThemeByName(t *testing.T) {
	if th, ok := ThemeByName(""); !ok || th.Name() != "default" {
		t.Errorf("empty name: got %v %v, want default", th, ok)
	}
	if th, ok := ThemeByName(" Nord "); !ok || th.Name() != "nord" {
		t.Errorf("lookup is not case and space insensitive: %v %v", th, ok)
	}
	if _, ok := ThemeByName("no-such-theme"); ok {
		t.Error("unknown theme name should not resolve")
	}
}

func TestPlainThemeHasNoPrefixes(t *testing.T) {
	st := PlainTheme().Styles()
	if st.Bold.Prefix != "" || st.Variable.Prefix != "" || st.Heading[0].Prefix != "" {
		t.Errorf("plain theme carries ANSI prefixes: %+v", st)
	}
}

func TestDefaultThemeStylesNonEmpty(t *testing.T) {
	st := DefaultTheme().Styles()
	if st.Bold.Prefix == "" || st.Variable.Prefix == "" || st.Constant.Prefix == "" {
		t.Errorf("default theme is missing prefixes: %+v", st)
	}
	for i, h := range st.Heading {
		if h.Prefix == "" {
			t.Errorf("heading level %d has no prefix", i+1)
		}
	}
}
