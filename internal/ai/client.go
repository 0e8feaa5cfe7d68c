package ai

import (
	"context"
	"time"

	"github.com/alibigame/alibi/internal/errors"
	"github.com/sashabaranov/go-openai"
)

// Sampling parameters for the detective's responses. Kept from the original
// tuning: long enough for a pointed question, warm enough to stay in
// character.
const (
	maxTokens   = 500
	temperature = 0.8
	callTimeout = 30 * time.Second
)

// Client wraps the chat-completion backend. The base URL is configurable so
// tests can point it at a stub server.
type Client struct {
	client *openai.Client
	model  string
}

func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete submits the prompt pair and returns the generated text. The call
// carries a bounded timeout; there is no retry here, the caller decides
// whether to try again.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	completion, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{ //nolint:exhaustruct // this is better for readability
			Model:       c.model,
			MaxTokens:   maxTokens,
			Temperature: temperature,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "create chat completion")
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
