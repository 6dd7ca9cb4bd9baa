// Package config reads the service configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config is read once at startup and treated as read-only afterwards.
type Config struct {
	ListenAddr string

	// Provider selects the generation backend: "gemini" or "openai".
	Provider     string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	// YouTubeAPIKey enables Data API metadata lookups; empty falls back
	// to page scraping.
	YouTubeAPIKey string

	MaxChunkChars int
	OverlapChars  int
	ChunkedChat   bool
	HistoryTurns  int
}

// Load builds the configuration from environment variables. A missing
// generation API key is logged but does not abort startup; generation
// calls will simply fail until one is provided.
func Load() *Config {
	cfg := &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		Provider:      getEnv("GENERATION_PROVIDER", "gemini"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", ""),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", ""),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		MaxChunkChars: getEnvInt("MAX_CHUNK_CHARS", 12000),
		OverlapChars:  getEnvInt("OVERLAP_CHARS", 500),
		ChunkedChat:   getEnvBool("CHUNKED_CHAT", false),
		HistoryTurns:  getEnvInt("HISTORY_TURNS", 12),
	}

	if cfg.Provider == "gemini" && cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not found in environment variables. Please set it.")
	}
	if cfg.Provider == "openai" && cfg.OpenAIAPIKey == "" {
		log.Println("OPENAI_API_KEY not found in environment variables. Please set it.")
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}
