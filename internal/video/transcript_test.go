package video

import (
	"testing"
)

func TestParseTimedText(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0.08" dur="3.2">hello   everyone</text>
  <text start="3.28" dur="2.5">welcome &amp; thanks for
watching</text>
  <text start="5.78" dur="1.0">   </text>
  <text start="6.78" dur="2.0">it&#39;s time to begin</text>
</transcript>`)

	segments, err := parseTimedText(data)
	if err != nil {
		t.Fatalf("parseTimedText returned error: %v", err)
	}
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3 (blank line dropped)", len(segments))
	}

	if segments[0].Text != "hello everyone" {
		t.Errorf("segment 0 text = %q, want collapsed whitespace", segments[0].Text)
	}
	if segments[0].Start != 0.08 || segments[0].Duration != 3.2 {
		t.Errorf("segment 0 timing = %v/%v, want 0.08/3.2", segments[0].Start, segments[0].Duration)
	}
	if segments[1].Text != "welcome & thanks for watching" {
		t.Errorf("segment 1 text = %q, want entities unescaped and newlines collapsed", segments[1].Text)
	}
	if segments[2].Text != "it's time to begin" {
		t.Errorf("segment 2 text = %q", segments[2].Text)
	}
}

func TestParseTimedTextEmptyDocument(t *testing.T) {
	segments, err := parseTimedText([]byte(`<transcript></transcript>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("got %d segments, want 0", len(segments))
	}
}

func TestParseTimedTextMalformedXML(t *testing.T) {
	if _, err := parseTimedText([]byte(`<transcript><text start="0"`)); err == nil {
		t.Error("malformed XML should return an error")
	}
}

func TestNeedsPoToken(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"plain track", "https://www.youtube.com/api/timedtext?v=abc&lang=en", false},
		{"po token experiment", "https://www.youtube.com/api/timedtext?v=abc&exp=xpe&lang=en", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needsPoToken(tt.url); got != tt.want {
				t.Errorf("needsPoToken(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestPickTrack(t *testing.T) {
	manualEN := captionTrack{BaseURL: "https://x/manual-en", LanguageCode: "en"}
	manualDE := captionTrack{BaseURL: "https://x/manual-de", LanguageCode: "de"}
	autoEN := captionTrack{BaseURL: "https://x/auto-en", LanguageCode: "en", Kind: "asr"}
	manualENGB := captionTrack{BaseURL: "https://x/manual-en-gb", LanguageCode: "en-GB"}
	blocked := captionTrack{BaseURL: "https://x/manual-en&exp=xpe", LanguageCode: "en"}

	tests := []struct {
		name    string
		tracks  []captionTrack
		wantURL string
		ok      bool
	}{
		{"manual preferred over auto", []captionTrack{autoEN, manualEN}, manualEN.BaseURL, true},
		{"preferred language order", []captionTrack{manualENGB, manualEN}, manualEN.BaseURL, true},
		{"auto when no manual match", []captionTrack{manualDE, autoEN}, autoEN.BaseURL, true},
		{"english prefix fallback", []captionTrack{manualDE, {BaseURL: "https://x/en-IN", LanguageCode: "en-IN"}}, "https://x/en-IN", true},
		{"first usable as last resort", []captionTrack{manualDE}, manualDE.BaseURL, true},
		{"po token tracks skipped", []captionTrack{blocked, autoEN}, autoEN.BaseURL, true},
		{"all tracks blocked", []captionTrack{blocked}, "", false},
		{"no tracks", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickTrack(tt.tracks, defaultLanguages)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got.BaseURL != tt.wantURL {
				t.Errorf("picked %q, want %q", got.BaseURL, tt.wantURL)
			}
		})
	}
}
