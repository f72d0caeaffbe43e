package clash

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"id": 52,
	"publicHandle": "682102420fbce0fce95e0ee56095ea2b9924",
	"lastVersion": {
		"version": 3,
		"data": {
			"title": "Sum it",
			"fastest": true,
			"reverse": false,
			"shortest": true,
			"statement": "Sum <var>a</var> and <var>b</var>.",
			"testCases": [
				{"title": "Test 1", "testIn": "1 2", "testOut": "3", "isValidator": false},
				{"title": {"2": "Validator 1"}, "testIn": "3 4", "testOut": "7", "isValidator": true}
			],
			"constraints": "0 <= a, b <= 100",
			"stubGenerator": "read a:int b:int",
			"inputDescription": "Two integers.",
			"outputDescription": "Their sum."
		}
	},
	"type": "CLASHOFCODE",
	"upVotes": 10,
	"downVotes": 2
}`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "Sum it", c.Title())
	assert.Equal(t, "682102420fbce0fce95e0ee56095ea2b9924", c.PublicHandle.String())
	assert.Equal(t, "Sum <var>a</var> and <var>b</var>.", c.Statement())
	assert.Equal(t, "0 <= a, b <= 100", c.Constraints())
	assert.Equal(t, "read a:int b:int", c.StubGenerator())
	assert.True(t, c.IsFastest())
	assert.True(t, c.IsShortest())
	assert.False(t, c.IsReverse())
	assert.False(t, c.IsReverseOnly())
}

func TestTestcaseDecoding(t *testing.T) {
	c, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)

	tcs := c.Testcases()
	require.Len(t, tcs, 2)

	assert.Equal(t, 1, tcs[0].Index)
	assert.Equal(t, "Test 1", tcs[0].Title)
	assert.False(t, tcs[0].IsValidator)

	// Legacy object-wrapped title.
	assert.Equal(t, 2, tcs[1].Index)
	assert.Equal(t, "Validator 1", tcs[1].Title)
	assert.True(t, tcs[1].IsValidator)
}

func TestDisplayTitleFallback(t *testing.T) {
	tc := TestCase{Index: 3}
	assert.Equal(t, "Test 3", tc.DisplayTitle())
}

func TestParseHandle(t *testing.T) {
	h, err := ParseHandle(" 682102420FBCE0 ")
	require.NoError(t, err)
	assert.Equal(t, PublicHandle("682102420fbce0"), h)

	for _, bad := range []string{"", "not-hex", "1234g", "68 21"} {
		_, err := ParseHandle(bad)
		assert.ErrorIs(t, err, ErrInvalidHandle, "handle %q", bad)
	}
}

func TestHandleUnmarshalRejectsGarbage(t *testing.T) {
	var h PublicHandle
	err := json.Unmarshal([]byte(`"zzzz"`), &h)
	assert.ErrorIs(t, err, ErrInvalidHandle)
}

func TestIsReverseOnly(t *testing.T) {
	c := &Clash{}
	c.LastVersion.Data.Reverse = true
	assert.True(t, c.IsReverseOnly())
	c.LastVersion.Data.Fastest = true
	assert.False(t, c.IsReverseOnly())
}
