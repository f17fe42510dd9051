package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// Gemini's OpenAI-compatible endpoint.
	DefaultOracleBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultOracleModel   = "gemini-2.0-flash"

	oracleRequestTimeout = 10 * time.Second // Upper bound for any single HTTP exchange
)

var errNoChoices = errors.New("chat completion returned no choices")

// OpenAIClient talks to any OpenAI-compatible chat-completion API. It is safe
// for concurrent use.
type OpenAIClient struct {
	Client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, baseURL, model string) *OpenAIClient {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	config.HTTPClient = &http.Client{
		Timeout: oracleRequestTimeout,
	}
	if model == "" {
		model = DefaultOracleModel
	}

	slog.Info("[OpenAIClient] Client initialized",
		slog.String("base_url", config.BaseURL),
		slog.String("model", model),
		slog.Duration("timeout", oracleRequestTimeout))

	return &OpenAIClient{
		Client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Complete sends prompt as a single user message and returns the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errNoChoices
	}

	slog.Debug("[OpenAIClient] Chat completion finished",
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
		slog.Duration("elapsed", time.Since(start)))

	return resp.Choices[0].Message.Content, nil
}

// Ping lists the available models; the health monitor uses it as a cheap probe.
func (c *OpenAIClient) Ping(ctx context.Context) error {
	if _, err := c.Client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}
