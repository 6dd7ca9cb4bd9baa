// Package handlers implements the JSON endpoints of the service.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"talktoyt.app/backend/internal/assistant"
	"talktoyt.app/backend/internal/transcript"
	"talktoyt.app/backend/internal/video"
)

// TranscriptFetcher supplies the ordered transcript for a video ID.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string) ([]transcript.Segment, error)
}

// MetadataFetcher supplies best-effort (title, description); it never fails.
type MetadataFetcher interface {
	Lookup(ctx context.Context, videoID string) (string, string)
}

// Assistant runs the chat, summarize, and topic tasks.
type Assistant interface {
	Chat(ctx context.Context, req assistant.ChatRequest) string
	Summarize(ctx context.Context, text string) string
	ExtractTopics(ctx context.Context, text string) []string
}

type Handler struct {
	transcripts TranscriptFetcher
	metadata    MetadataFetcher
	assistant   Assistant
}

func New(transcripts TranscriptFetcher, metadata MetadataFetcher, a Assistant) *Handler {
	return &Handler{transcripts: transcripts, metadata: metadata, assistant: a}
}

type extractVideoInfoRequest struct {
	VideoURL string `json:"video_url"`
}

type extractVideoInfoResponse struct {
	VideoID        string               `json:"videoId"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Transcript     string               `json:"transcript"`
	TranscriptList []transcript.Segment `json:"transcript_list"`
}

// ExtractVideoInfo resolves a video URL to its ID, metadata, and
// transcript (both flat text and timestamped segments).
func (h *Handler) ExtractVideoInfo(w http.ResponseWriter, r *http.Request) {
	var req extractVideoInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VideoURL == "" {
		writeError(w, http.StatusBadRequest, "Video URL is required")
		return
	}

	videoID, ok := video.ExtractVideoID(req.VideoURL)
	if !ok {
		slog.Warn("invalid video url", slog.String("url", req.VideoURL))
		writeError(w, http.StatusBadRequest, "Invalid YouTube URL")
		return
	}

	title, description := h.metadata.Lookup(r.Context(), videoID)

	segments, err := h.transcripts.Fetch(r.Context(), videoID)
	switch {
	case errors.Is(err, video.ErrNoTranscript):
		writeError(w, http.StatusNotFound, "A transcript could not be found for this video.")
		return
	case errors.Is(err, video.ErrTranscriptsDisabled):
		writeError(w, http.StatusForbidden, "Transcripts are disabled for this video.")
		return
	case err != nil:
		slog.Error("transcript fetch failed", slog.String("id", videoID), slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred while fetching the transcript.")
		return
	}

	slog.Info("transcript extracted",
		slog.String("id", videoID), slog.Int("segments", len(segments)))

	writeJSON(w, http.StatusOK, extractVideoInfoResponse{
		VideoID:        videoID,
		Title:          title,
		Description:    description,
		Transcript:     transcript.Flatten(segments),
		TranscriptList: segments,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", slog.Any("err", err))
	}
}

// writeError sends {"error": message}. Internal detail stays in the
// logs; the message here is what the client sees.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
