package domain

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Platform identifies where a submitted video is hosted. YouTube links are
// recognized by URL shape; everything else is treated as uploaded media.
type Platform string

const (
	PlatformYouTube  Platform = "youtube"
	PlatformUploaded Platform = "uploaded"
)

// SubmissionStatus is the moderation state of a submission. Submissions
// created through the API default to approved because content validation
// runs upstream of submission creation.
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// ValidSubmissionStatus reports whether s is one of the known statuses.
func ValidSubmissionStatus(s SubmissionStatus) bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	default:
		return false
	}
}

// Submission is a single piece of content a contributor submitted against
// a campaign. ViewCount is refreshed by the reconciliation sweep and
// EarnedAmount is always recomputed from it, never incremented.
type Submission struct {
	ID           uuid.UUID
	CampaignID   uuid.UUID
	UserID       uuid.UUID
	VideoURL     string
	Platform     Platform
	Status       SubmissionStatus
	ViewCount    int64
	EarnedAmount float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Earned returns the payout owed for the given view count at the campaign
// rate: views/1000 * rate.
func Earned(viewCount int64, ratePer1KViews float64) float64 {
	return float64(viewCount) / 1000 * ratePer1KViews
}

// youtubePattern matches watch, shorts and short-link YouTube video URLs.
var youtubePattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com/(watch\?v=|shorts/)|youtu\.be/)[\w-]{11}`)

// IsYouTubeURL reports whether raw points at a YouTube video.
func IsYouTubeURL(raw string) bool {
	return youtubePattern.MatchString(raw)
}

// youtubeHostPattern is the looser gate used before content validation: any
// path under a YouTube host.
var youtubeHostPattern = regexp.MustCompile(`(?i)^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+`)

// IsYouTubeHost reports whether raw points anywhere under a YouTube host.
func IsYouTubeHost(raw string) bool {
	return youtubeHostPattern.MatchString(raw)
}

// DetectPlatform tags the hosting platform for a video URL.
func DetectPlatform(raw string) Platform {
	if IsYouTubeURL(raw) {
		return PlatformYouTube
	}
	return PlatformUploaded
}

// ValidVideoURL reports whether raw is a well-formed absolute http(s) URL.
func ValidVideoURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// YouTubeWatchURL normalizes a YouTube video URL into its canonical watch
// form, extracting the video id from shorts and youtu.be shapes. It
// returns raw unchanged when no id can be extracted.
func YouTubeWatchURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	var id string
	switch {
	case strings.HasSuffix(u.Host, "youtu.be"):
		id = strings.TrimPrefix(u.Path, "/")
	case strings.HasPrefix(u.Path, "/shorts/"):
		id = strings.TrimPrefix(u.Path, "/shorts/")
	case u.Path == "/watch":
		id = u.Query().Get("v")
	}
	if len(id) < 11 {
		return raw
	}
	return "https://www.youtube.com/watch?v=" + id[:11]
}
