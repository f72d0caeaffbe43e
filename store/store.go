// Package store keeps fetched puzzles on disk and tracks which one is
// current.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/coclash/coclash/clash"
)

var (
	// ErrNotFound reports a handle with no stored puzzle.
	ErrNotFound = errors.New("clash not stored")
	// ErrNoCurrent reports that no puzzle has been selected yet.
	ErrNoCurrent = errors.New("no current clash")
	// ErrNoMatch reports that no stored puzzle satisfies the mode filter.
	ErrNoMatch = errors.New("no stored clash matches")
)

// Store is a directory of puzzle JSON files plus a current-puzzle marker.
// Layout: <dir>/clashes/<handle>.json and <dir>/current.
type Store struct {
	dir string
}

// New opens the default store under the XDG data directory.
func New() (*Store, error) {
	return NewAt(filepath.Join(xdg.DataHome, "coclash"))
}

// NewAt opens a store rooted at dir, creating it as needed.
func NewAt(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, "clashes"), 0o755); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store root.
func (s *Store) Dir() string { return s.dir }

func (s *Store) clashPath(handle clash.PublicHandle) string {
	return filepath.Join(s.dir, "clashes", handle.String()+".json")
}

func (s *Store) currentPath() string {
	return filepath.Join(s.dir, "current")
}

// Write stores the raw JSON of a fetched puzzle.
func (s *Store) Write(handle clash.PublicHandle, raw []byte) error {
	if err := os.WriteFile(s.clashPath(handle), raw, 0o644); err != nil {
		return fmt.Errorf("store clash %s: %w", handle, err)
	}
	return nil
}

// RawJSON returns the stored JSON for a handle.
func (s *Store) RawJSON(handle clash.PublicHandle) ([]byte, error) {
	raw, err := os.ReadFile(s.clashPath(handle))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, handle)
	}
	if err != nil {
		return nil, fmt.Errorf("read clash %s: %w", handle, err)
	}
	return raw, nil
}

// Read loads and decodes a stored puzzle.
func (s *Store) Read(handle clash.PublicHandle) (*clash.Clash, error) {
	raw, err := s.RawJSON(handle)
	if err != nil {
		return nil, err
	}
	c, err := clash.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("decode clash %s: %w", handle, err)
	}
	return c, nil
}

// Handles lists every stored handle, sorted.
func (s *Store) Handles() ([]clash.PublicHandle, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, "clashes"))
	if err != nil {
		return nil, fmt.Errorf("list clashes: %w", err)
	}
	var handles []clash.PublicHandle
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		h, err := clash.ParseHandle(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles, nil
}

// Count returns the number of stored puzzles.
func (s *Store) Count() (int, error) {
	handles, err := s.Handles()
	if err != nil {
		return 0, err
	}
	return len(handles), nil
}

// Current returns the handle of the selected puzzle.
func (s *Store) Current() (clash.PublicHandle, error) {
	raw, err := os.ReadFile(s.currentPath())
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoCurrent
	}
	if err != nil {
		return "", fmt.Errorf("read current: %w", err)
	}
	return clash.ParseHandle(strings.TrimSpace(string(raw)))
}

// SetCurrent marks a stored puzzle as the one commands operate on.
func (s *Store) SetCurrent(handle clash.PublicHandle) error {
	if _, err := os.Stat(s.clashPath(handle)); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, handle)
	}
	if err := os.WriteFile(s.currentPath(), []byte(handle.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("set current: %w", err)
	}
	return nil
}

// Random picks any stored puzzle.
func (s *Store) Random() (*clash.Clash, error) {
	return s.RandomWithModes(false, false, false)
}

// RandomWithModes picks a stored puzzle supporting at least one of the
// requested modes. No modes requested means any puzzle qualifies. Each
// stored puzzle is tried at most once.
func (s *Store) RandomWithModes(fastest, shortest, reverse bool) (*clash.Clash, error) {
	handles, err := s.Handles()
	if err != nil {
		return nil, err
	}
	if len(handles) == 0 {
		return nil, ErrNoMatch
	}
	rand.Shuffle(len(handles), func(i, j int) {
		handles[i], handles[j] = handles[j], handles[i]
	})
	for _, h := range handles {
		c, err := s.Read(h)
		if err != nil {
			continue
		}
		if matchesModes(c, fastest, shortest, reverse) {
			return c, nil
		}
	}
	return nil, ErrNoMatch
}

func matchesModes(c *clash.Clash, fastest, shortest, reverse bool) bool {
	if !fastest && !shortest && !reverse {
		return true
	}
	return fastest && c.IsFastest() ||
		shortest && c.IsShortest() ||
		reverse && c.IsReverse()
}
