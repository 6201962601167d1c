package utils

import "strings"

// EmbedURL rewrites a YouTube watch or share link into the player-embeddable
// form. The second return value is false for any other URL shape.
//
// Recognized shapes:
//
//	https://www.youtube.com/watch?v=<id>[&...]
//	https://youtu.be/<id>[?...]
func EmbedURL(rawURL string) (string, bool) {
	var videoID string

	if _, after, found := strings.Cut(rawURL, "watch?v="); found {
		videoID, _, _ = strings.Cut(after, "&")
	} else if _, after, found := strings.Cut(rawURL, "youtu.be/"); found {
		videoID, _, _ = strings.Cut(after, "?")
	}

	if videoID == "" {
		return "", false
	}
	return "https://www.youtube.com/embed/" + videoID, true
}
