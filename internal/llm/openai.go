package llm

import (
	"context"
	"os"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAIClient implements Client using the official openai-go SDK
// (chat completions).
type openAIClient struct {
	client openai.Client
	cfg    Config
}

func newOpenAIClient(cfg Config) (*openAIClient, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, &ConfigError{
			Message: "chave da API da OpenAI não configurada; defina OPENAI_API_KEY",
		}
	}
	return &openAIClient{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		cfg:    cfg,
	}, nil
}

func (c *openAIClient) Send(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature:         openai.Float(c.cfg.Temperature),
		MaxCompletionTokens: openai.Int(c.cfg.MaxTokens),
	})
	if err != nil {
		return "", &CallError{Message: "falha na chamada à OpenAI", Cause: err}
	}
	if len(resp.Choices) == 0 {
		return "", &CallError{Message: "resposta vazia da OpenAI"}
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *openAIClient) Model() string {
	return c.cfg.Model
}
