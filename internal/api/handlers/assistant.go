package handlers

import (
	"encoding/json"
	"net/http"

	"talktoyt.app/backend/internal/assistant"
	"talktoyt.app/backend/internal/prompt"
	"talktoyt.app/backend/internal/transcript"
)

type chatRequest struct {
	UserQuery           string               `json:"user_query"`
	VideoTranscript     string               `json:"video_transcript"`
	VideoTranscriptList []transcript.Segment `json:"video_transcript_list"`
	ConversationHistory []prompt.Turn        `json:"conversation_history"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// ChatWithVideo answers a question about the video from its transcript.
// Generation failures never surface as HTTP errors; the assistant's
// fallback text is returned instead.
func (h *Handler) ChatWithVideo(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.UserQuery == "" {
		writeError(w, http.StatusBadRequest, "User query is required")
		return
	}
	if req.VideoTranscript == "" && len(req.VideoTranscriptList) == 0 {
		writeError(w, http.StatusBadRequest, "Either 'video_transcript_list' or 'video_transcript' is required")
		return
	}

	response := h.assistant.Chat(r.Context(), assistant.ChatRequest{
		Query:      req.UserQuery,
		Transcript: req.VideoTranscript,
		Segments:   req.VideoTranscriptList,
		History:    req.ConversationHistory,
	})
	writeJSON(w, http.StatusOK, chatResponse{Response: response})
}

type summarizeRequest struct {
	VideoTranscript string `json:"video_transcript"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// SummarizeVideo returns a summary of the transcript.
func (h *Handler) SummarizeVideo(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VideoTranscript == "" {
		writeError(w, http.StatusBadRequest, "Video transcript is required")
		return
	}

	summary := h.assistant.Summarize(r.Context(), req.VideoTranscript)
	writeJSON(w, http.StatusOK, summarizeResponse{Summary: summary})
}

type topicsRequest struct {
	VideoTranscript string `json:"video_transcript"`
}

type topicsResponse struct {
	Topics []string `json:"topics"`
}

// ExtractTopics returns the key topics of the transcript as an ordered
// list. Empty model output yields an empty list, not an error.
func (h *Handler) ExtractTopics(w http.ResponseWriter, r *http.Request) {
	var req topicsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VideoTranscript == "" {
		writeError(w, http.StatusBadRequest, "Video transcript is required")
		return
	}

	topics := h.assistant.ExtractTopics(r.Context(), req.VideoTranscript)
	if topics == nil {
		topics = []string{}
	}
	writeJSON(w, http.StatusOK, topicsResponse{Topics: topics})
}
