package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ankoehn/ai-content-writer/config"
)

// Client is the generation collaborator capability: render a system and a
// user message against the configured model and return the generated text.
// Empty output counts as failure; callers never retry.
type Client interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Provider identifies a supported LLM backend.
type Provider string

const (
	ProviderOpenAI   Provider = "openai"
	ProviderDeepSeek Provider = "deepseek"
	ProviderGemini   Provider = "gemini"
)

// New builds the Client selected by cfg.Provider.
func New(cfg config.LLMConfig) (Client, error) {
	switch Provider(strings.ToLower(cfg.Provider)) {
	case ProviderOpenAI:
		return newOpenAIClient(cfg, cfg.OpenAIAPIKey, "")
	case ProviderDeepSeek:
		// DeepSeek exposes an OpenAI-compatible API behind its own base URL.
		return newOpenAIClient(cfg, cfg.DeepSeekAPIKey, cfg.DeepSeekAPIBase)
	case ProviderGemini:
		return newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}
