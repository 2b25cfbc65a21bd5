// Package profiles retrieves the property profile name list from the Supabase
// REST API, falling back to the local catalog when the remote source is
// unavailable. This list only feeds the UI dropdown; forecasting never reads
// it.
package profiles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

var (
	ErrNotConfigured = errors.New("supabase url or api key not configured")
	ErrBadStatus     = errors.New("unexpected status from supabase")
)

// Client fetches profile names from the Supabase profiles table.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient returns a Supabase REST client. An empty baseURL or apiKey yields
// a client whose calls fail with ErrNotConfigured.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Configured reports whether the client has credentials to call Supabase.
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.apiKey != ""
}

type profileRow struct {
	Name string `json:"name"`
}

// Names fetches the profile names, dropping rows with an empty name.
func (c *Client) Names(ctx context.Context) ([]string, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	u := c.baseURL + "/rest/v1/profiles?select=name"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build supabase request, %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch supabase profiles, %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("status %d: %s, %w", resp.StatusCode, body, ErrBadStatus)
	}

	var rows []profileRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode supabase profiles, %w", err)
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Name == "" {
			continue
		}
		names = append(names, row.Name)
	}
	return names, nil
}
