package video

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare id", "abc12345678", "abc12345678", true},
		{"bare id with spaces", "  abc12345678  ", "abc12345678", true},
		{"watch url", "https://www.youtube.com/watch?v=abc12345678", "abc12345678", true},
		{"watch url extra params", "https://www.youtube.com/watch?v=abc12345678&t=42s&list=PLx", "abc12345678", true},
		{"watch url no scheme", "youtube.com/watch?v=abc12345678", "abc12345678", true},
		{"short url", "https://youtu.be/abc12345678", "abc12345678", true},
		{"short url with query", "https://youtu.be/abc12345678?t=30", "abc12345678", true},
		{"shorts", "https://www.youtube.com/shorts/abc12345678", "abc12345678", true},
		{"embed", "https://www.youtube.com/embed/abc12345678", "abc12345678", true},
		{"embed trailing path", "https://www.youtube.com/embed/abc12345678/extra", "abc12345678", true},
		{"legacy v path", "https://youtube.com/v/abc12345678", "abc12345678", true},
		{"mobile host", "https://m.youtube.com/watch?v=abc12345678", "abc12345678", true},
		{"music host", "https://music.youtube.com/watch?v=abc12345678", "abc12345678", true},
		{"e path via regex", "https://www.youtube.com/e/abc12345678", "abc12345678", true},
		{"trailing id on foreign host", "https://example.com/not-youtube", "not-youtube", true},
		{"http scheme", "http://www.youtube.com/watch?v=abc12345678", "abc12345678", true},
		{"empty", "", "", false},
		{"unrelated text", "not a video reference", "", false},
		{"too short id", "abc123", "", false},
		{"watch without v", "https://www.youtube.com/watch?list=PLabcdef", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.input)
			if ok != tt.ok {
				t.Fatalf("ExtractVideoID(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractVideoIDIdempotent(t *testing.T) {
	id, ok := ExtractVideoID("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if !ok {
		t.Fatal("first extraction failed")
	}
	again, ok := ExtractVideoID(id)
	if !ok || again != id {
		t.Errorf("re-extraction = %q, %v; want %q, true", again, ok, id)
	}
}

func TestExtractVideoIDMalformedURLDoesNotPanic(t *testing.T) {
	// Inputs that break url.Parse must fall through, not fail hard.
	inputs := []string{
		"https://youtube.com/watch?v=%zz",
		"http://[::1]:namedport/watch",
		"youtube.com/%%%",
	}
	for _, input := range inputs {
		if _, ok := ExtractVideoID(input); ok {
			t.Errorf("ExtractVideoID(%q) unexpectedly succeeded", input)
		}
	}
}
