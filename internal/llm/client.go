// Package llm provides a provider-agnostic chat client for the ETP system.
// The supported providers form a closed set (OpenAI and Anthropic), resolved
// once at construction; everything above this package talks to the single
// Send capability.
package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over LLM chat providers.
type Client interface {
	// Send issues one chat turn with a system instruction and a user
	// instruction, returning the model's text output.
	Send(ctx context.Context, system, user string) (string, error)
	// Model returns the configured model identifier.
	Model() string
}

// NewClient creates a client for the configured provider. A missing API key
// or an unsupported provider yields a *ConfigError before any network call.
func NewClient(cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg)
	case ProviderAnthropic:
		return newAnthropicClient(cfg)
	default:
		return nil, &ConfigError{
			Message: fmt.Sprintf("provedor não suportado: %q (use %q ou %q)",
				cfg.Provider, ProviderOpenAI, ProviderAnthropic),
		}
	}
}
