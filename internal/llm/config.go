package llm

// Provider identifies an LLM provider.
type Provider string

// Supported providers.
const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Default generation parameters, matching the original ETP service.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 4000

	defaultOpenAIModel    = "gpt-4o-mini"
	defaultAnthropicModel = "claude-3-opus-20240229"
)

// Config holds the construction parameters for a Client.
// APIKey may be empty, in which case the provider's environment variable
// (OPENAI_API_KEY or ANTHROPIC_API_KEY) is consulted.
type Config struct {
	Provider    Provider
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int64
}

// DefaultConfig returns the default configuration for a provider.
func DefaultConfig(provider Provider) Config {
	cfg := Config{
		Provider:    provider,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
	switch provider {
	case ProviderAnthropic:
		cfg.Model = defaultAnthropicModel
	default:
		cfg.Model = defaultOpenAIModel
	}
	return cfg
}

// withDefaults fills zero-valued generation parameters.
func (c Config) withDefaults() Config {
	if c.Model == "" {
		switch c.Provider {
		case ProviderAnthropic:
			c.Model = defaultAnthropicModel
		default:
			c.Model = defaultOpenAIModel
		}
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	return c
}
