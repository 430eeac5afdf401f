// Package agent is the collaborator boundary to the external
// agent-orchestration engine. The rest of the system hands it one
// chat.AgentInput and gets back one opaque text result; everything the
// engine does internally (delegation between coach roles, tool calls such
// as image generation, its own memory) is invisible here.
package agent

import (
	"context"
	"fmt"
	"math"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nourjazi01/hack-seneca/internal/chat"
)

type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	MaxRetries int
	Timeout    time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "gpt-4o-mini",
		MaxRetries: 1,
		Timeout:    60 * time.Second,
	}
}

// Client invokes the agent engine over its OpenAI-compatible completion
// surface.
type Client struct {
	client *openai.Client
	config *Config
}

func NewClient(cfg *Config) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Invoke runs one agent turn. The call is bounded by the configured timeout
// independently of the caller's context so one slow turn cannot hold the
// request slot forever.
func (c *Client) Invoke(ctx context.Context, input chat.AgentInput) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: renderTask(input)},
		},
	}

	var result string
	err := c.doWithRetry(ctx, func() error {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("empty completion response")
		}
		result = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("agent invocation: %w", err)
	}
	return result, nil
}

func (c *Client) doWithRetry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if attempt < c.config.MaxRetries-1 {
			wait := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return lastErr
}
