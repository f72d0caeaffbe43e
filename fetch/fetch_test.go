package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `{
	"id": 1,
	"publicHandle": "abc123",
	"lastVersion": {"version": 1, "data": {
		"title": "T", "statement": "s", "testCases": [],
		"inputDescription": "", "outputDescription": ""
	}},
	"type": "CLASHOFCODE", "upVotes": 0, "downVotes": 0
}`

func TestClashFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `["abc123", true]`, string(body))
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zerolog.Nop())
	raw, err := c.Clash(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, payload, string(raw))
}

func TestClashFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zerolog.Nop())
	_, err := c.Clash(context.Background(), "abc123")
	assert.ErrorContains(t, err, "unexpected status")
}

func TestClashFetchBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, zerolog.Nop())
	_, err := c.Clash(context.Background(), "abc123")
	assert.ErrorContains(t, err, "bad payload")
}

func TestDefaultEndpoint(t *testing.T) {
	c := NewClient("", zerolog.Nop())
	assert.Equal(t, DefaultEndpoint, c.endpoint)
}
