package services

import (
	"context"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
)

// Generator is the raw gateway contract: ordered prompt parts in, model text
// out. GeminiService is the production implementation.
type Generator interface {
	Generate(ctx context.Context, parts ...genai.Part) (string, error)
}

// Assistant composes the gateway with response normalization and per-feature
// shape validation. It is the dependency the HTTP handlers consume.
type Assistant struct {
	gw Generator
}

func NewAssistant(gw Generator) *Assistant {
	return &Assistant{gw: gw}
}

// AnalyzeFood asks the model for nutrition data for a decoded image. The
// format string is the image format name from image.Decode ("jpeg", "png").
func (a *Assistant) AnalyzeFood(ctx context.Context, img []byte, format string) (map[string]interface{}, error) {
	raw, err := a.gw.Generate(ctx, genai.Text(nutritionPrompt), genai.ImageData(format, img))
	if err != nil {
		return nil, err
	}

	obj, err := NormalizeModelJSON(raw)
	if err != nil {
		slog.Error("unusable analysis response", "raw", truncate(raw, 200))
		return nil, err
	}
	if err := validateNutritionShape(obj); err != nil {
		slog.Error("analysis response shape mismatch", "raw", truncate(raw, 200))
		return nil, err
	}

	return obj, nil
}

// Chat renders the ChefPal prompt for the query and prior transcript and
// returns the parsed {"response": ...} object.
func (a *Assistant) Chat(ctx context.Context, query, chatHistory string) (map[string]interface{}, error) {
	prompt := buildChatPrompt(query, chatHistory)

	raw, err := a.gw.Generate(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	obj, err := NormalizeModelJSON(raw)
	if err != nil {
		slog.Error("unusable chat response", "raw", truncate(raw, 200))
		return nil, err
	}
	if err := validateChatShape(obj); err != nil {
		slog.Error("chat response shape mismatch", "raw", truncate(raw, 200))
		return nil, err
	}

	return obj, nil
}
