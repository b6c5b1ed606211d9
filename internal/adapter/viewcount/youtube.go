package viewcount

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// YouTubeScraper resolves a video's view count from the public watch page
// markup. It is the fallback when no lookup service is configured.
type YouTubeScraper struct {
	httpClient *http.Client
}

// NewYouTubeScraper creates a scraper with the given request timeout.
func NewYouTubeScraper(timeout time.Duration) *YouTubeScraper {
	return &YouTubeScraper{httpClient: &http.Client{Timeout: timeout}}
}

// Views fetches the canonical watch page and reads the interactionCount
// meta tag. Non-YouTube URLs and pages without the tag are upstream
// failures, not zero counts.
func (s *YouTubeScraper) Views(ctx context.Context, videoURL string) (int64, error) {
	if !domain.IsYouTubeURL(videoURL) {
		return 0, fmt.Errorf("%w: not a YouTube video URL: %s", port.ErrUpstream, videoURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, domain.YouTubeWatchURL(videoURL), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept-Language", "en")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", port.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: watch page returned status %d", port.ErrUpstream, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: parse watch page: %v", port.ErrUpstream, err)
	}

	raw, ok := doc.Find(`meta[itemprop="interactionCount"]`).Attr("content")
	if !ok {
		return 0, fmt.Errorf("%w: watch page has no view count", port.ErrUpstream)
	}
	views, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || views < 0 {
		return 0, nil
	}
	return views, nil
}
