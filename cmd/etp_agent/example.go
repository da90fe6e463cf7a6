package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LGPDNOW/etp-generator-maelson/internal/assistant"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Generate a sample text for one ETP field",
	RunE:  runExample,
}

var (
	exampleField       string
	exampleContextFile string
	exampleOutputFile  string
)

func init() {
	exampleCmd.Flags().StringVar(&exampleField, "field", "", "Field name, e.g. declaracao_viabilidade (required)")
	exampleCmd.Flags().StringVar(&exampleContextFile, "context", "", "Path to a JSON object with previously filled fields (optional)")
	exampleCmd.Flags().StringVarP(&exampleOutputFile, "out", "o", "", "Path to output text file (default stdout)")

	if err := exampleCmd.MarkFlagRequired("field"); err != nil {
		panic(fmt.Sprintf("failed to mark field flag as required: %v", err))
	}

	rootCmd.AddCommand(exampleCmd)
}

func runExample(_ *cobra.Command, _ []string) error {
	var contexto map[string]string
	if exampleContextFile != "" {
		raw, err := os.ReadFile(exampleContextFile)
		if err != nil {
			return fmt.Errorf("failed to read context file: %w", err)
		}
		if err := json.Unmarshal(raw, &contexto); err != nil {
			return fmt.Errorf("failed to unmarshal context JSON: %w", err)
		}
	}

	client, err := clientFromFlags()
	if err != nil {
		return err
	}

	texto, err := assistant.New(client).Example(context.Background(), exampleField, contexto)
	if err != nil {
		return fmt.Errorf("failed to generate example: %w", err)
	}
	return writeOutput(exampleOutputFile, []byte(texto))
}
