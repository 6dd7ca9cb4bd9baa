package assistant

import (
	"regexp"
	"strings"
)

// listMarkerRE strips leading bullet markers and "N." numbering the
// model sometimes adds despite being told not to.
var listMarkerRE = regexp.MustCompile(`(?m)^\s*[-*]\s*|\d+\.\s*`)

// cleanResponse removes markdown bold markers and trims whitespace.
func cleanResponse(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "**", ""))
}

// parseTopics turns a comma-separated model response into an ordered
// list of trimmed, non-empty topics. Bold markers are removed before
// list markers so "**- Topic**" does not leave a stray asterisk behind.
func parseTopics(raw string) []string {
	cleaned := listMarkerRE.ReplaceAllString(cleanResponse(raw), "")
	topics := make([]string, 0)
	for _, part := range strings.Split(cleaned, ",") {
		if topic := strings.TrimSpace(part); topic != "" {
			topics = append(topics, topic)
		}
	}
	return topics
}
