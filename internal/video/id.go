// Package video resolves user-supplied YouTube references: video ID
// extraction, transcript fetching, and best-effort metadata lookup.
package video

import (
	"net/url"
	"regexp"
	"strings"
)

// idPattern matches a canonical 11-character YouTube video ID.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// fallbackPatterns cover URL shapes the structured parser misses.
// Order matters: the bare trailing-ID match is the last resort.
var fallbackPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/embed/|youtu\.be/|/v/|/e/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`([A-Za-z0-9_-]{11})$`),
}

// ExtractVideoID resolves a bare ID or any common YouTube URL shape
// (watch, youtu.be, embed, /v/, shorts, music/mobile hosts) to the
// canonical 11-character video ID. Malformed URLs never fail hard;
// they fall through to the regex patterns.
func ExtractVideoID(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if idPattern.MatchString(s) {
		return s, true
	}
	if id := idFromURL(s); id != "" {
		return id, true
	}
	for _, re := range fallbackPatterns {
		if m := re.FindStringSubmatch(s); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func idFromURL(s string) string {
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	var id string
	switch host {
	case "youtube.com", "m.youtube.com", "music.youtube.com":
		if u.Path == "/watch" {
			id = u.Query().Get("v")
		} else {
			for _, prefix := range []string{"/embed/", "/v/", "/shorts/"} {
				if strings.HasPrefix(u.Path, prefix) {
					id, _, _ = strings.Cut(strings.TrimPrefix(u.Path, prefix), "/")
					break
				}
			}
		}
	case "youtu.be":
		id, _, _ = strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	}

	if idPattern.MatchString(id) {
		return id
	}
	return ""
}
