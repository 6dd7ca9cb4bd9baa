// Package transcript holds the transcript data model and the windowing
// logic that fits long transcripts into a bounded model context.
package transcript

import (
	"fmt"
	"math"
	"strings"
)

// Segment is one spoken unit of a video transcript with its start time.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration,omitempty"`
}

// Flatten joins segment texts into one flat transcript string.
func Flatten(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if t := strings.TrimSpace(seg.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// FormatSegments renders segments as "[HH:MM:SS] text ..." so the model
// can cite timestamps in its answers.
func FormatSegments(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		t := strings.TrimSpace(seg.Text)
		if t == "" {
			continue
		}
		parts = append(parts, FormatTimestamp(seg.Start)+" "+t)
	}
	return strings.Join(parts, " ")
}

// FormatTimestamp converts seconds to zero-padded [HH:MM:SS].
// Invalid or negative input is coerced to zero.
func FormatTimestamp(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("[%02d:%02d:%02d]", h, m, s)
}

// Windows splits text into overlapping windows of at most maxChars
// characters. Consecutive windows share overlap characters so context
// survives a split boundary; the final window may be shorter and may
// overlap less with its predecessor. The caller must keep
// overlap < maxChars. Empty text yields no windows.
func Windows(text string, maxChars, overlap int) []string {
	if text == "" {
		return nil
	}
	step := maxChars - overlap
	var windows []string
	for pos := 0; pos < len(text); pos += step {
		end := pos + maxChars
		if end > len(text) {
			end = len(text)
		}
		windows = append(windows, text[pos:end])
		if end == len(text) {
			break
		}
	}
	return windows
}
