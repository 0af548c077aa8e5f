package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lixenwraith/space-invaders/config"
	openai "github.com/sashabaranov/go-openai"
)

// ChatDecider asks an OpenAI-compatible chat completions endpoint
// (OpenAI or Azure OpenAI) for each decision
type ChatDecider struct {
	client *openai.Client
	model  string
}

// NewChatDecider builds a client from the agent configuration
func NewChatDecider(cfg config.AgentConfig) *ChatDecider {
	var cc openai.ClientConfig
	if cfg.Azure {
		cc = openai.DefaultAzureConfig(cfg.APIKey, cfg.Endpoint)
	} else {
		cc = openai.DefaultConfig(cfg.APIKey)
		if cfg.Endpoint != "" {
			cc.BaseURL = cfg.Endpoint
		}
	}
	cc.HTTPClient = &http.Client{Timeout: cfg.Timeout()}

	return &ChatDecider{
		client: openai.NewClientWithConfig(cc),
		model:  cfg.Model,
	}
}

// Decide sends the frames and parses the reply. Malformed replies are
// repaired by ParseResponse; only transport failures return an error.
func (d *ChatDecider) Decide(ctx context.Context, req Request) (Decision, error) {
	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(req)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return Decision{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Decision{}, errors.New("chat completion: no choices in response")
	}
	return ParseResponse(resp.Choices[0].Message.Content), nil
}
