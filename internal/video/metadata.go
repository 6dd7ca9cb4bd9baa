package video

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	titlePlaceholder       = "Unknown Title"
	descriptionPlaceholder = "No Description Available"
	titleError             = "Error fetching title"
	descriptionError       = "Error fetching description"
)

var (
	ogTitleRE       = regexp.MustCompile(`<meta property="og:title" content="([^"]*)"`)
	ogDescriptionRE = regexp.MustCompile(`<meta property="og:description" content="([^"]*)"`)
)

// MetadataClient looks up a video's title and description. It prefers
// the YouTube Data API when an API key is configured and falls back to
// scraping the watch page's OG tags. Lookups never fail the caller:
// any failure yields placeholder strings.
type MetadataClient struct {
	http *http.Client
	yt   *youtube.Service
}

func NewMetadataClient(ctx context.Context, apiKey string) *MetadataClient {
	c := &MetadataClient{http: &http.Client{Timeout: 10 * time.Second}}
	if apiKey != "" {
		svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
		if err != nil {
			slog.Warn("youtube data api unavailable, falling back to page scrape", slog.Any("err", err))
		} else {
			c.yt = svc
		}
	}
	return c
}

// Lookup returns best-effort (title, description) for a video ID.
func (c *MetadataClient) Lookup(ctx context.Context, videoID string) (string, string) {
	if c.yt != nil {
		resp, err := c.yt.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
		if err == nil && len(resp.Items) > 0 && resp.Items[0].Snippet != nil {
			return resp.Items[0].Snippet.Title, resp.Items[0].Snippet.Description
		}
		slog.Warn("youtube data api lookup failed, falling back to page scrape",
			slog.String("id", videoID), slog.Any("err", err))
	}
	return c.scrape(ctx, videoID)
}

func (c *MetadataClient) scrape(ctx context.Context, videoID string) (string, string) {
	pageURL := "https://www.youtube.com/watch?v=" + videoID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return titleError, descriptionError
	}
	req.Header.Set("User-Agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0 Safari/537.36")

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("metadata scrape failed", slog.String("id", videoID), slog.Any("err", err))
		return titleError, descriptionError
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Error("metadata scrape failed", slog.String("id", videoID), slog.Int("status", resp.StatusCode))
		return titleError, descriptionError
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return titleError, descriptionError
	}

	title := titlePlaceholder
	if m := ogTitleRE.FindSubmatch(body); m != nil {
		title = unescapeMeta(string(m[1]))
	}
	description := descriptionPlaceholder
	if m := ogDescriptionRE.FindSubmatch(body); m != nil {
		description = unescapeMeta(string(m[1]))
	}
	return title, description
}

func unescapeMeta(s string) string {
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	return s
}
