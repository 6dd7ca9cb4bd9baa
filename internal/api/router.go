// Package api wires the HTTP routes.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"talktoyt.app/backend/internal/api/handlers"
	"talktoyt.app/backend/internal/api/middleware"
)

func NewRouter(h *handlers.Handler) http.Handler {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	apiRoutes := r.PathPrefix("/api").Subrouter()
	apiRoutes.Use(middleware.RequestLogger)
	apiRoutes.HandleFunc("/extract-video-info", h.ExtractVideoInfo).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/chat-with-video", h.ChatWithVideo).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/summarize-video", h.SummarizeVideo).Methods(http.MethodPost)
	apiRoutes.HandleFunc("/extract-topics", h.ExtractTopics).Methods(http.MethodPost)

	// Open CORS so any frontend origin can connect. Scope this down
	// when the frontend domain is fixed.
	return cors.Default().Handler(r)
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// methodNotAllowed answers wrong-method requests with the same JSON
// error shape the handlers use.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"error": "Method not allowed"}`))
}
