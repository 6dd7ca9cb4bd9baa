// Package prompt builds the model-input text for each task kind.
// Templates are data; the only logic here is history rendering.
package prompt

import (
	"fmt"
	"strings"
)

// Turn is one exchange in a chat conversation.
type Turn struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

const chatTemplate = `You are Sanchar, an AI video assistant. Answer the user's question based ONLY on the video content below. The transcript is formatted with timestamps like [HH:MM:SS].

REQUIREMENTS:
1) Begin your answer with the most relevant timestamp in [HH:MM:SS] format.
2) Keep your answer concise and factual.
3) If you cannot find an answer in the video, say so.

--- PREVIOUS CONVERSATION ---
%s

--- VIDEO CONTENT ---
%s
---

User Query: %s

Sanchar's Answer:`

const chatWindowTemplate = `You are an AI assistant specialized in analyzing YouTube video transcripts. A user is asking a question about a video. Here is a relevant segment (or the entire) transcript of the video:

---
%s
---

Based ONLY on the provided transcript segment, answer the following question from the user:
User Query: %s

IMPORTANT: If the answer is directly related to a specific point or event in the video and you can identify an approximate timestamp from the context, include the timestamp in your answer. Format the timestamp as [HH:MM:SS]. For example: 'The speaker mentions X at [00:01:15].' If the information is NOT present in the provided transcript segment, state clearly that 'The information is not available in the video's transcript.' Do not make up information.`

const summarizeTemplate = `Provide a detailed summary of the following video content segment. Focus on key points, arguments, and conclusions.

---
%s
---`

const synthesizeTemplate = `You are Sanchar, a helpful AI video assistant. You will be given several summaries from different parts of a single video. Synthesize them into a structured response.

FORMAT:
1) Summary: a concise paragraph of the whole video.
2) Key Takeaways: a bulleted list of the most important points.

--- Individual Summaries ---
%s

--- Final Synthesized Response ---`

const topicsTemplate = `Analyze the following video content and extract the top 5-10 most important key topics. Return a simple, clean, comma-separated list (e.g., 'Topic 1, Topic 2, Topic 3'). Do not use numbers or bullet points.

---
%s
---`

// Chat renders the whole-transcript chat prompt: persona, recent
// conversation history, timestamped content, and the user query.
func Chat(formattedTranscript, userQuery string, history []Turn, historyTurns int) string {
	return fmt.Sprintf(chatTemplate, RenderHistory(history, historyTurns), formattedTranscript, userQuery)
}

// ChatWindow renders the per-window chat prompt used when the
// transcript is tried one window at a time.
func ChatWindow(window, userQuery string) string {
	return fmt.Sprintf(chatWindowTemplate, window, userQuery)
}

// SummarizeWindow renders the first-phase summary prompt for one window.
func SummarizeWindow(window string) string {
	return fmt.Sprintf(summarizeTemplate, window)
}

// Synthesize renders the second-phase prompt that merges per-window
// summaries into one structured response.
func Synthesize(joinedSummaries string) string {
	return fmt.Sprintf(synthesizeTemplate, joinedSummaries)
}

// Topics renders the topic-extraction prompt for a single segment.
func Topics(segment string) string {
	return fmt.Sprintf(topicsTemplate, segment)
}

// RenderHistory renders the most recent limit turns as speaker-labeled
// lines. A non-positive limit keeps all turns.
func RenderHistory(history []Turn, limit int) string {
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	lines := make([]string, 0, len(history))
	for _, turn := range history {
		speaker := "Sanchar"
		if turn.Role == "user" {
			speaker = "You"
		}
		lines = append(lines, speaker+": "+turn.Text)
	}
	return strings.Join(lines, "\n")
}
