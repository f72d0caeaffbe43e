// Package fetch downloads puzzle contributions from the CodinGame API.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/coclash/coclash/clash"
)

// DefaultEndpoint is the public contribution lookup service.
const DefaultEndpoint = "https://www.codingame.com/services/Contribution/findContribution"

const requestTimeout = 10 * time.Second

// Client fetches contributions by public handle.
type Client struct {
	endpoint string
	http     *http.Client
	log      zerolog.Logger
}

// NewClient returns a client for the given endpoint; an empty endpoint
// selects the public API.
func NewClient(endpoint string, log zerolog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: requestTimeout},
		log:      log,
	}
}

// Clash fetches the raw JSON of one contribution. The API takes a JSON
// array body of the handle and a flag selecting the full payload.
func (c *Client) Clash(ctx context.Context, handle clash.PublicHandle) ([]byte, error) {
	body, err := json.Marshal([]any{handle.String(), true})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug().Str("handle", handle.String()).Str("endpoint", c.endpoint).Msg("fetching clash")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", handle, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", handle, resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: read body: %w", handle, err)
	}
	if _, err := clash.Parse(raw); err != nil {
		return nil, fmt.Errorf("fetch %s: bad payload: %w", handle, err)
	}

	c.log.Debug().Int("bytes", len(raw)).Msg("clash fetched")
	return raw, nil
}
