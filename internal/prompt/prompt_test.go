package prompt

import (
	"strings"
	"testing"
)

func TestRenderHistoryCapsTurns(t *testing.T) {
	history := make([]Turn, 14)
	for i := range history {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		history[i] = Turn{Role: role, Text: turnLabel(i)}
	}

	rendered := RenderHistory(history, 12)

	if strings.Contains(rendered, turnLabel(0)) || strings.Contains(rendered, turnLabel(1)) {
		t.Error("oldest turns should be dropped")
	}
	if !strings.Contains(rendered, turnLabel(2)) || !strings.Contains(rendered, turnLabel(13)) {
		t.Error("recent turns should be kept")
	}
	if len(strings.Split(rendered, "\n")) != 12 {
		t.Errorf("rendered %d lines, want 12", len(strings.Split(rendered, "\n")))
	}
}

func turnLabel(i int) string {
	return "turn-" + string(rune('A'+i))
}

func TestRenderHistorySpeakerLabels(t *testing.T) {
	rendered := RenderHistory([]Turn{
		{Role: "user", Text: "hi"},
		{Role: "assistant", Text: "hello"},
	}, 12)
	want := "You: hi\nSanchar: hello"
	if rendered != want {
		t.Errorf("RenderHistory = %q, want %q", rendered, want)
	}
}

func TestChatPromptContents(t *testing.T) {
	p := Chat("[00:00:05] welcome to the show", "what is this about?", nil, 12)

	for _, fragment := range []string{
		"welcome to the show",
		"what is this about?",
		"[HH:MM:SS]",
		"ONLY",
	} {
		if !strings.Contains(p, fragment) {
			t.Errorf("chat prompt missing %q", fragment)
		}
	}
}

func TestChatWindowPromptContents(t *testing.T) {
	p := ChatWindow("segment text here", "who is speaking?")
	if !strings.Contains(p, "segment text here") || !strings.Contains(p, "who is speaking?") {
		t.Error("window prompt missing segment or query")
	}
	if !strings.Contains(p, "The information is not available in the video's transcript.") {
		t.Error("window prompt missing fallback instruction")
	}
}

func TestTopicsPromptForbidsListMarkup(t *testing.T) {
	p := Topics("some transcript")
	if !strings.Contains(p, "comma-separated") {
		t.Error("topics prompt should request a comma-separated list")
	}
	if !strings.Contains(p, "some transcript") {
		t.Error("topics prompt missing segment")
	}
}

func TestSynthesizePromptContents(t *testing.T) {
	p := Synthesize("summary one\n\n---\n\nsummary two")
	if !strings.Contains(p, "summary one") || !strings.Contains(p, "Key Takeaways") {
		t.Error("synthesis prompt missing summaries or format section")
	}
}
