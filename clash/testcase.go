package clash

import (
	"encoding/json"
	"fmt"
	"sort"
)

// TestCase pairs a puzzle input with its expected output. Index is 1-based
// and assigned on decode; the wire format does not carry it.
type TestCase struct {
	Index       int
	Title       string
	TestIn      string
	TestOut     string
	IsValidator bool
}

func (t *TestCase) UnmarshalJSON(b []byte) error {
	var raw struct {
		Title       json.RawMessage `json:"title"`
		TestIn      string          `json:"testIn"`
		TestOut     string          `json:"testOut"`
		IsValidator bool            `json:"isValidator"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t.TestIn = raw.TestIn
	t.TestOut = raw.TestOut
	t.IsValidator = raw.IsValidator
	t.Title = decodeTitle(raw.Title)
	return nil
}

// decodeTitle accepts both the plain string form and the legacy
// {"2": "Test 2"} wrapper that old contributions still carry.
func decodeTitle(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err == nil && len(m) > 0 {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return m[keys[0]]
	}
	return ""
}

// DisplayTitle returns the authored title, or a positional fallback when
// the contribution left it blank.
func (t TestCase) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return fmt.Sprintf("Test %d", t.Index)
}
