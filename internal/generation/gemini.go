package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel balances speed and context length for chat use.
const DefaultGeminiModel = "gemini-1.5-flash"

// Gemini generates text through the Google Generative AI API.
type Gemini struct {
	model *genai.GenerativeModel
}

// NewGemini constructs a Gemini-backed generator. The client is built
// once and is safe to share across request handlers.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Gemini{model: client.GenerativeModel(model)}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (Result, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Result{}, fmt.Errorf("gemini generate: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		var res Result
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			res.BlockReason = resp.PromptFeedback.BlockReason.String()
		}
		return res, nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return Result{Text: sb.String()}, nil
}
