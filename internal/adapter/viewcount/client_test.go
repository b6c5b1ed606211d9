package viewcount

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipfund/internal/core/port"
)

func TestClientViews(t *testing.T) {
	var gotURLs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req lookupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotURLs = req.URLs
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"viewCount":123456}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	views, err := c.Views(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, int64(123456), views)
	assert.Equal(t, []string{"https://youtu.be/dQw4w9WgXcQ"}, gotURLs)
}

func TestClientViewsStringCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":[{"viewCount":"7890"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	views, err := c.Views(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, int64(7890), views)
}

func TestClientViewsMissingResultsCoercesToZero(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty_results", `{"results":[]}`},
		{"no_results_key", `{}`},
		{"missing_view_count", `{"results":[{}]}`},
		{"malformed_view_count", `{"results":[{"viewCount":"many"}]}`},
		{"negative_view_count", `{"results":[{"viewCount":-5}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			views, err := c.Views(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
			require.NoError(t, err)
			assert.Zero(t, views)
		})
	}
}

func TestClientViewsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Views(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrUpstream)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestClientViewsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Views(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorIs(t, err, port.ErrUpstream)
}

func TestScraperViews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><meta itemprop="interactionCount" content="424242"></head><body></body></html>`))
	}))
	defer srv.Close()

	s := NewYouTubeScraper(time.Second)
	s.httpClient = srv.Client()
	// Point the scraper at the stub by rewriting the request host.
	s.httpClient.Transport = rewriteHost(srv.URL)

	views, err := s.Views(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, int64(424242), views)
}

func TestScraperViewsMissingMetaTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html><head></head><body>no stats here</body></html>`))
	}))
	defer srv.Close()

	s := NewYouTubeScraper(time.Second)
	s.httpClient = srv.Client()
	s.httpClient.Transport = rewriteHost(srv.URL)

	_, err := s.Views(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorIs(t, err, port.ErrUpstream)
}

func TestScraperRejectsNonYouTubeURL(t *testing.T) {
	s := NewYouTubeScraper(time.Second)
	_, err := s.Views(context.Background(), "https://vimeo.com/12345")
	assert.ErrorIs(t, err, port.ErrUpstream)
}

// rewriteHost redirects every request to the test server regardless of the
// URL the scraper built.
func rewriteHost(target string) http.RoundTripper {
	return roundTripFunc(func(r *http.Request) (*http.Response, error) {
		r2 := r.Clone(r.Context())
		r2.URL.Scheme = "http"
		r2.URL.Host = targetHost(target)
		r2.Host = r2.URL.Host
		return http.DefaultTransport.RoundTrip(r2)
	})
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func targetHost(rawURL string) string {
	const prefix = "http://"
	return rawURL[len(prefix):]
}
