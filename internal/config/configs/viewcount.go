package configs

import "time"

// Viewcount configures how submission view counts are resolved. When
// LookupURL is set, counts are fetched from that service; otherwise the
// public YouTube watch page is scraped directly.
type Viewcount struct {
	// LookupURL is the full URL of the view-count lookup endpoint, e.g.
	// https://example.com/api/youtube-views.
	LookupURL string `env:"LOOKUP_URL"`
	// Timeout bounds each lookup request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}
