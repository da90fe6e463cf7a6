package llm

import (
	"context"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicClient implements Client using the official Anthropic SDK.
type anthropicClient struct {
	client anthropic.Client
	cfg    Config
}

func newAnthropicClient(cfg Config) (*anthropicClient, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, &ConfigError{
			Message: "chave da API da Anthropic não configurada; defina ANTHROPIC_API_KEY",
		}
	}
	return &anthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		cfg:    cfg,
	}, nil
}

func (c *anthropicClient) Send(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.cfg.Model),
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: anthropic.Float(c.cfg.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", &CallError{Message: "falha na chamada à Anthropic", Cause: err}
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(variant.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &CallError{Message: "resposta vazia da Anthropic"}
	}
	return sb.String(), nil
}

func (c *anthropicClient) Model() string {
	return c.cfg.Model
}
