// Package llm talks to an OpenAI-compatible chat-completion endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"moneybrief/internal/config"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrEmptyCompletion is returned when the endpoint answers without content
var ErrEmptyCompletion = errors.New("llm: empty completion")

// Completer sends a single prompt and returns the generated text
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client is a Completer backed by openai-go. It makes exactly one request
// per call.
type Client struct {
	client *openai.Client
	cfg    config.AIConfig
}

// NewClient creates a client from the AI config
func NewClient(cfg config.AIConfig) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")+"/"))
	}
	if cfg.TimeoutMS > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(cfg.TimeoutMS)*time.Millisecond))
	}
	client := openai.NewClient(opts...)
	return &Client{client: &client, cfg: cfg}
}

// Complete sends prompt as a single chat completion and returns the trimmed reply
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.cfg.System),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.cfg.Temperature),
	}
	if c.cfg.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.cfg.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
