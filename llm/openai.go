package llm

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ankoehn/ai-content-writer/config"
)

// openAIClient implements Client using the official openai-go SDK (chat
// completions). With a base URL it also serves OpenAI-compatible providers
// such as DeepSeek.
type openAIClient struct {
	model       string
	temperature float64
	maxTokens   int
	opts        []option.RequestOption
}

func newOpenAIClient(cfg config.LLMConfig, apiKey, baseURL string) (*openAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("llm: api key missing")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm: model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openAIClient{
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		opts:        opts,
	}, nil
}

func (c *openAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	client := openai.NewClient(c.opts...)

	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(system),
		openai.UserMessage(user),
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    msgs,
		Temperature: openai.Float(c.temperature),
		MaxTokens:   openai.Int(int64(c.maxTokens)),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", errors.New("openai: empty completion")
	}
	return text, nil
}
