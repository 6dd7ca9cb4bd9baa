package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"talktoyt.app/backend/internal/api"
	"talktoyt.app/backend/internal/api/handlers"
	"talktoyt.app/backend/internal/assistant"
	"talktoyt.app/backend/internal/config"
	"talktoyt.app/backend/internal/generation"
	"talktoyt.app/backend/internal/video"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v\n", err)
	}

	cfg := config.Load()
	ctx := context.Background()

	var gen generation.Generator
	switch cfg.Provider {
	case "openai":
		gen = generation.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		log.Println("Using OpenAI generation backend")
	default:
		g, err := generation.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		gen = g
		log.Println("Using Gemini generation backend")
	}

	svc := assistant.New(gen, assistant.Options{
		MaxChunkChars: cfg.MaxChunkChars,
		OverlapChars:  cfg.OverlapChars,
		ChunkedChat:   cfg.ChunkedChat,
		HistoryTurns:  cfg.HistoryTurns,
	})

	transcripts := video.NewTranscriptClient()
	metadata := video.NewMetadataClient(ctx, cfg.YouTubeAPIKey)

	router := api.NewRouter(handlers.New(transcripts, metadata, svc))

	log.Printf("Starting HTTP server on %s...", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, router); err != nil {
		log.Fatalf("HTTP server error: %v", err)
	}
}
