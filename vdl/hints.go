package vdl

import "strings"

const wikiURL = "https://github.com/yt-dlp/yt-dlp/wiki"

// TroubleshootingHints returns guidance lines selected by scanning the
// failure text for known patterns. bilibili selects the platform
// specific hint set.
func TroubleshootingHints(errText string, bilibili bool) []string {
	if !bilibili {
		return []string{
			"General troubleshooting:",
			"  - Check if the URL is correct and the video is still available",
			"  - Try a different quality setting",
			"  - Check your internet connection",
			"  - For private/restricted videos, try using cookies from your browser",
		}
	}

	lower := strings.ToLower(errText)
	hints := []string{"For Bilibili videos:"}

	switch {
	case strings.Contains(errText, "412"):
		hints = append(hints,
			"  - 412 error: Content not available in your region or requires login",
			"  - Try using cookies from your browser",
			"  - Wait a few minutes before retrying",
		)
	case strings.Contains(errText, "403") || strings.Contains(lower, "forbidden"):
		hints = append(hints,
			"  - 403 error: Access forbidden - Video might be restricted",
			"  - Try using cookies or a different quality setting",
		)
	case strings.Contains(errText, "404") || strings.Contains(lower, "not found"):
		hints = append(hints,
			"  - 404 error: Video not found - Check if the URL is correct",
		)
	case strings.Contains(lower, "login"):
		hints = append(hints,
			"  - Login required - Use cookies from your browser",
		)
	default:
		hints = append(hints,
			"  - Try using cookies from your browser",
			"  - Try a different quality setting (e.g., 720p instead of 1080p)",
			"  - Check your internet connection",
		)
	}

	return hints
}
