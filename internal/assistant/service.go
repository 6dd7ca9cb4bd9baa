// Package assistant orchestrates transcript windowing, prompt assembly,
// and generation calls for the chat, summarize, and topic tasks.
// Generation failures are never surfaced as errors; each task absorbs
// them into its fixed fallback text.
package assistant

import (
	"context"
	"log/slog"
	"strings"

	"talktoyt.app/backend/internal/generation"
	"talktoyt.app/backend/internal/prompt"
	"talktoyt.app/backend/internal/transcript"
)

const (
	// windowFallback answers chunked chat when no window produced a
	// usable result.
	windowFallback = "The information is not available in the video's transcript."
	// chatFallback answers whole-transcript chat when the model gave
	// nothing usable.
	chatFallback = "I'm sorry, I couldn't find an answer to that in the video content."
	emptySummary  = "There is no content to summarize."
	failedSummary = "I could not generate a summary for this video."
)

// disqualifyingPhrases mark a chunked-chat answer as a non-answer;
// matching is case-insensitive.
var disqualifyingPhrases = []string{"not available", "cannot process"}

// Options configures one Service. The three source variants of this
// backend differed only in these knobs, so they are explicit here
// instead of living in parallel copies.
type Options struct {
	// MaxChunkChars bounds one window of transcript text.
	MaxChunkChars int
	// OverlapChars is repeated between consecutive windows; must stay
	// below MaxChunkChars.
	OverlapChars int
	// ChunkedChat tries transcript windows in order instead of issuing
	// a single whole-transcript call. Requests that carry timestamped
	// segments always use the whole-transcript path.
	ChunkedChat bool
	// HistoryTurns caps the conversation history rendered into a prompt.
	HistoryTurns int
}

func (o Options) withDefaults() Options {
	if o.MaxChunkChars <= 0 {
		o.MaxChunkChars = 12000
	}
	if o.OverlapChars <= 0 {
		o.OverlapChars = 500
	}
	if o.HistoryTurns <= 0 {
		o.HistoryTurns = 12
	}
	return o
}

// Service drives one request at a time, strictly sequentially: later
// windows are only attempted after earlier ones fail, and summaries are
// collected in transcript order before synthesis.
type Service struct {
	gen  generation.Generator
	opts Options
}

func New(gen generation.Generator, opts Options) *Service {
	return &Service{gen: gen, opts: opts.withDefaults()}
}

// ChatRequest carries one chat task. Either Segments (preferred, with
// timestamps) or Transcript must be set.
type ChatRequest struct {
	Query      string
	Transcript string
	Segments   []transcript.Segment
	History    []prompt.Turn
}

// Chat answers a question about the video. It never fails: when the
// generation service yields nothing usable the fixed fallback string is
// returned, never an empty one.
func (s *Service) Chat(ctx context.Context, req ChatRequest) string {
	if len(req.Segments) > 0 || !s.opts.ChunkedChat {
		return s.chatWhole(ctx, req)
	}
	return s.chatWindowed(ctx, req)
}

func (s *Service) chatWhole(ctx context.Context, req ChatRequest) string {
	formatted := req.Transcript
	if len(req.Segments) > 0 {
		formatted = transcript.FormatSegments(req.Segments)
	}

	p := prompt.Chat(formatted, req.Query, req.History, s.opts.HistoryTurns)
	slog.Info("chat generation call", slog.Int("prompt_chars", len(p)))

	res, err := s.gen.Generate(ctx, p)
	if err != nil {
		slog.Error("chat generation failed", slog.Any("err", err))
		return chatFallback
	}
	if res.Empty() {
		if res.BlockReason != "" {
			slog.Warn("chat response blocked", slog.String("reason", res.BlockReason))
		}
		return chatFallback
	}
	if answer := cleanResponse(res.Text); answer != "" {
		return answer
	}
	return chatFallback
}

func (s *Service) chatWindowed(ctx context.Context, req ChatRequest) string {
	windows := transcript.Windows(req.Transcript, s.opts.MaxChunkChars, s.opts.OverlapChars)
	if len(windows) == 0 {
		windows = []string{req.Transcript}
	}

	for i, window := range windows {
		slog.Info("chat window generation call",
			slog.Int("window", i+1), slog.Int("windows", len(windows)))

		res, err := s.gen.Generate(ctx, prompt.ChatWindow(window, req.Query))
		if err != nil {
			slog.Error("chat window generation failed", slog.Int("window", i+1), slog.Any("err", err))
			continue
		}
		if res.Empty() {
			if res.BlockReason != "" {
				slog.Warn("chat window blocked", slog.Int("window", i+1), slog.String("reason", res.BlockReason))
			}
			continue
		}
		answer := cleanResponse(res.Text)
		if answer == "" || isDisqualified(answer) {
			continue
		}
		return answer
	}
	return windowFallback
}

func isDisqualified(answer string) bool {
	lower := strings.ToLower(answer)
	for _, phrase := range disqualifyingPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Summarize produces a summary of the transcript. Long transcripts are
// summarized per window and the partial summaries merged by a second
// synthesis call.
func (s *Service) Summarize(ctx context.Context, text string) string {
	windows := transcript.Windows(text, s.opts.MaxChunkChars, s.opts.OverlapChars)
	if len(windows) == 0 {
		return emptySummary
	}

	summaries := make([]string, 0, len(windows))
	for i, window := range windows {
		slog.Info("summarize window", slog.Int("window", i+1), slog.Int("windows", len(windows)))

		res, err := s.gen.Generate(ctx, prompt.SummarizeWindow(window))
		if err != nil {
			slog.Error("summary generation failed", slog.Int("window", i+1), slog.Any("err", err))
			continue
		}
		if res.Empty() {
			if res.BlockReason != "" {
				slog.Warn("summary window blocked", slog.Int("window", i+1), slog.String("reason", res.BlockReason))
			}
			continue
		}
		summaries = append(summaries, res.Text)
	}
	if len(summaries) == 0 {
		return emptySummary
	}

	final := summaries[0]
	if len(summaries) > 1 {
		slog.Info("synthesizing final summary", slog.Int("partials", len(summaries)))
		res, err := s.gen.Generate(ctx, prompt.Synthesize(strings.Join(summaries, "\n\n---\n\n")))
		if err != nil {
			slog.Error("summary synthesis failed", slog.Any("err", err))
			final = ""
		} else {
			final = res.Text
		}
	}

	if cleaned := cleanResponse(final); cleaned != "" {
		return cleaned
	}
	return failedSummary
}

// ExtractTopics pulls key topics from the leading window of the
// transcript. Empty or failed model output yields an empty list, not
// an error.
func (s *Service) ExtractTopics(ctx context.Context, text string) []string {
	segment := text
	if len(segment) > s.opts.MaxChunkChars {
		segment = segment[:s.opts.MaxChunkChars]
	}

	res, err := s.gen.Generate(ctx, prompt.Topics(segment))
	if err != nil {
		slog.Error("topic generation failed", slog.Any("err", err))
		return []string{}
	}
	if res.Empty() && res.BlockReason != "" {
		slog.Warn("topic response blocked", slog.String("reason", res.BlockReason))
	}
	return parseTopics(res.Text)
}
