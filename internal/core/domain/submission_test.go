package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"http://youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"https://youtube.com/shorts/dQw4w9WgXcQ", PlatformYouTube},
		{"https://youtu.be/dQw4w9WgXcQ", PlatformYouTube},
		{"https://youtu.be/short", PlatformUploaded},
		{"https://www.youtube.com/channel/UCabc", PlatformUploaded},
		{"https://vimeo.com/12345", PlatformUploaded},
		{"https://cdn.example.com/clip.mp4", PlatformUploaded},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), tt.url)
	}
}

func TestEarned(t *testing.T) {
	assert.Equal(t, 0.0, Earned(0, 5))
	assert.Equal(t, 5.0, Earned(1000, 5))
	assert.Equal(t, 2.5, Earned(500, 5))
	assert.InDelta(t, 0.005, Earned(1, 5), 1e-9)
}

func TestValidVideoURL(t *testing.T) {
	assert.True(t, ValidVideoURL("https://youtu.be/dQw4w9WgXcQ"))
	assert.True(t, ValidVideoURL("http://example.com/clip.mp4"))
	assert.False(t, ValidVideoURL("ftp://example.com/clip.mp4"))
	assert.False(t, ValidVideoURL("youtu.be/dQw4w9WgXcQ"), "missing scheme")
	assert.False(t, ValidVideoURL("https://"))
	assert.False(t, ValidVideoURL("not a url"))
}

func TestYouTubeWatchURL(t *testing.T) {
	const want = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	assert.Equal(t, want, YouTubeWatchURL("https://youtu.be/dQw4w9WgXcQ"))
	assert.Equal(t, want, YouTubeWatchURL("https://www.youtube.com/shorts/dQw4w9WgXcQ"))
	assert.Equal(t, want, YouTubeWatchURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s"))
	assert.Equal(t, want, YouTubeWatchURL(want))

	// No extractable id: returned unchanged.
	assert.Equal(t, "https://youtu.be/x", YouTubeWatchURL("https://youtu.be/x"))
	assert.Equal(t, "https://example.com/v", YouTubeWatchURL("https://example.com/v"))
}

func TestIsYouTubeHost(t *testing.T) {
	assert.True(t, IsYouTubeHost("https://www.youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.True(t, IsYouTubeHost("https://youtube.com/playlist?list=PLx"))
	assert.True(t, IsYouTubeHost("youtu.be/dQw4w9WgXcQ"))
	assert.False(t, IsYouTubeHost("https://nottheyoutube.example.com/watch"))
	assert.False(t, IsYouTubeHost("https://vimeo.com/12345"))
}
