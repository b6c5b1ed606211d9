// Package viewcount implements the view-count lookup port. The primary
// adapter calls a configured lookup service; a fallback scrapes the public
// YouTube watch page when no service is configured.
package viewcount

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"clipfund/internal/core/port"
)

// Client resolves view counts through an HTTP lookup service that accepts
// {"urls": [...]} and answers {"results": [{"viewCount": n}]}.
type Client struct {
	lookupURL  string
	httpClient *http.Client
}

// NewClient creates a lookup-service client.
func NewClient(lookupURL string, timeout time.Duration) *Client {
	return &Client{
		lookupURL:  lookupURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type lookupRequest struct {
	URLs []string `json:"urls"`
}

type lookupResponse struct {
	Results []struct {
		ViewCount json.Number `json:"viewCount"`
	} `json:"results"`
	Error string `json:"error"`
}

// Views returns the current view count for a video URL. Missing or
// malformed counts in an otherwise successful response coerce to 0.
func (c *Client) Views(ctx context.Context, videoURL string) (int64, error) {
	payload, err := json.Marshal(lookupRequest{URLs: []string{videoURL}})
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.lookupURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", port.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: read response: %v", port.ErrUpstream, err)
	}

	var out lookupResponse
	decodeErr := json.Unmarshal(body, &out)
	if resp.StatusCode != http.StatusOK {
		if decodeErr == nil && out.Error != "" {
			return 0, fmt.Errorf("%w: %s", port.ErrUpstream, out.Error)
		}
		return 0, fmt.Errorf("%w: lookup returned status %d", port.ErrUpstream, resp.StatusCode)
	}
	if decodeErr != nil {
		return 0, fmt.Errorf("%w: parse response: %v", port.ErrUpstream, decodeErr)
	}
	if len(out.Results) == 0 {
		return 0, nil
	}
	views, err := out.Results[0].ViewCount.Int64()
	if err != nil || views < 0 {
		return 0, nil
	}
	return views, nil
}
