package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LGPDNOW/etp-generator-maelson/internal/etp"
	"github.com/LGPDNOW/etp-generator-maelson/internal/llm"
)

// Provider flags shared by every subcommand that calls an LLM.
var (
	flagProvider string
	flagModel    string
	flagAPIKey   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "LLM provider: openai or anthropic (default picks openai when OPENAI_API_KEY is set, anthropic otherwise)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Model name (defaults to the provider's default model)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key (overrides OPENAI_API_KEY / ANTHROPIC_API_KEY env vars)")
}

// clientFromFlags builds the LLM client selected by the persistent flags.
func clientFromFlags() (llm.Client, error) {
	provider := llm.Provider(flagProvider)
	if flagProvider == "" {
		if os.Getenv("OPENAI_API_KEY") != "" {
			provider = llm.ProviderOpenAI
		} else {
			provider = llm.ProviderAnthropic
		}
	}

	cfg := llm.DefaultConfig(provider)
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	return llm.NewClient(cfg)
}

// readFields loads a Fields JSON file.
func readFields(path string) (*etp.Fields, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fields file: %w", err)
	}
	var fields etp.Fields
	if err := json.Unmarshal(content, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields JSON: %w", err)
	}
	return &fields, nil
}

// writeOutput writes data to path, creating parent directories, or to
// stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// writeJSON marshals v with indentation and writes it via writeOutput.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput(path, data)
}
