package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coclash/coclash/clash"
)

func testClashJSON(title string, fastest, shortest, reverse bool) []byte {
	return []byte(fmt.Sprintf(`{
		"id": 1,
		"publicHandle": "abc123",
		"lastVersion": {"version": 1, "data": {
			"title": %q, "fastest": %t, "shortest": %t, "reverse": %t,
			"statement": "s", "testCases": [],
			"inputDescription": "", "outputDescription": ""
		}},
		"type": "CLASHOFCODE", "upVotes": 0, "downVotes": 0
	}`, title, fastest, shortest, reverse))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewAt(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestWriteReadRoundtrip(t *testing.T) {
	s := newTestStore(t)
	h := clash.PublicHandle("aaaa01")
	raw := testClashJSON("First", true, false, false)

	require.NoError(t, s.Write(h, raw))

	back, err := s.RawJSON(h)
	require.NoError(t, err)
	assert.Equal(t, raw, back)

	c, err := s.Read(h)
	require.NoError(t, err)
	assert.Equal(t, "First", c.Title())
}

func TestReadMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Read(clash.PublicHandle("ffff"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHandlesAndCount(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write("bbbb", testClashJSON("B", false, false, false)))
	require.NoError(t, s.Write("aaaa", testClashJSON("A", false, false, false)))

	handles, err := s.Handles()
	require.NoError(t, err)
	assert.Equal(t, []clash.PublicHandle{"aaaa", "bbbb"}, handles)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCurrent(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Current()
	assert.ErrorIs(t, err, ErrNoCurrent)

	err = s.SetCurrent("aaaa")
	assert.ErrorIs(t, err, ErrNotFound, "current must point at a stored clash")

	require.NoError(t, s.Write("aaaa", testClashJSON("A", false, false, false)))
	require.NoError(t, s.SetCurrent("aaaa"))

	h, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, clash.PublicHandle("aaaa"), h)
}

func TestRandomWithModes(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write("aaaa", testClashJSON("Fast", true, false, false)))
	require.NoError(t, s.Write("bbbb", testClashJSON("Rev", false, false, true)))

	c, err := s.RandomWithModes(false, false, true)
	require.NoError(t, err)
	assert.Equal(t, "Rev", c.Title())

	_, err = s.RandomWithModes(false, true, false)
	assert.ErrorIs(t, err, ErrNoMatch)

	c, err = s.Random()
	require.NoError(t, err)
	assert.Contains(t, []string{"Fast", "Rev"}, c.Title())
}

func TestRandomEmptyStore(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Random()
	assert.ErrorIs(t, err, ErrNoMatch)
}
