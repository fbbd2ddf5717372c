package utils

import (
	"net/url"
	"strings"
)

const (
	youTubeLongHost  = "youtube.com"
	youTubeShortHost = "youtu.be"
)

// ExtractYouTubeID returns the video identifier of a YouTube link.
// Long-form links (any host containing youtube.com) carry it in the v query
// parameter, short links (youtu.be) in the path. Unknown hosts, unparseable
// input and empty identifiers all yield ok == false.
func ExtractYouTubeID(rawURL string) (id string, ok bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case strings.Contains(host, youTubeLongHost):
		id = u.Query().Get("v")
	case host == youTubeShortHost:
		id = strings.TrimPrefix(u.EscapedPath(), "/")
	}

	return id, id != ""
}

// IsYouTube reports whether rawURL resolves to a YouTube video identifier.
func IsYouTube(rawURL string) bool {
	_, ok := ExtractYouTubeID(rawURL)
	return ok
}

// YouTubeThumbnailURL returns the default thumbnail for a video identifier.
func YouTubeThumbnailURL(id string) string {
	return "https://img.youtube.com/vi/" + id + "/0.jpg"
}

// YouTubeEmbedURL returns the iframe player URL for a video identifier.
func YouTubeEmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}

// ThumbnailFor derives a thumbnail from a video URL when it is a YouTube link.
func ThumbnailFor(videoURL string) (string, bool) {
	id, ok := ExtractYouTubeID(videoURL)
	if !ok {
		return "", false
	}
	return YouTubeThumbnailURL(id), true
}
