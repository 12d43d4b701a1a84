package llm

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/ankoehn/ai-content-writer/config"
)

// geminiClient implements Client using the Google GenAI SDK.
type geminiClient struct {
	model       string
	temperature float32
	maxTokens   int32
	apiKey      string
}

func newGeminiClient(cfg config.LLMConfig) (*geminiClient, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("llm: gemini api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm: model is required")
	}
	return &geminiClient{
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		maxTokens:   int32(cfg.MaxTokens),
		apiKey:      cfg.GeminiAPIKey,
	}, nil
}

func (c *geminiClient) Complete(ctx context.Context, system, user string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
			Temperature:       genai.Ptr(c.temperature),
			MaxOutputTokens:   c.maxTokens,
		},
	)
	if err != nil {
		return "", err
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("gemini: empty completion")
	}
	return text, nil
}
