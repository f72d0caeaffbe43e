package clash

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHandle reports a public handle that is not a hex string.
var ErrInvalidHandle = errors.New("invalid public handle")

// PublicHandle identifies a contribution. Handles are hex strings; anything
// else is rejected at parse time so a typo fails before it hits the network.
type PublicHandle string

// ParseHandle validates and normalizes a handle string.
func ParseHandle(s string) (PublicHandle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidHandle)
	}
	for _, r := range s {
		if !isHexRune(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidHandle, s)
		}
	}
	return PublicHandle(strings.ToLower(s)), nil
}

func isHexRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}

func (h PublicHandle) String() string { return string(h) }

func (h *PublicHandle) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseHandle(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
