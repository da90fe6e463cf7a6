package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LGPDNOW/etp-generator-maelson/internal/assistant"
)

var critiqueCmd = &cobra.Command{
	Use:   "critique",
	Short: "Critique the content of one ETP field",
	Long:  "Reviews one field's content against its rubric, returning positive points, concerns, suggestions, an improved example and a quality tier as JSON.",
	RunE:  runCritique,
}

var (
	critiqueField       string
	critiqueContentFile string
	critiqueContextFile string
	critiqueOutputFile  string
)

func init() {
	critiqueCmd.Flags().StringVar(&critiqueField, "field", "", "Field name, e.g. descricao_problema (required)")
	critiqueCmd.Flags().StringVarP(&critiqueContentFile, "content", "c", "", "Path to a file with the field content (required)")
	critiqueCmd.Flags().StringVar(&critiqueContextFile, "context", "", "Path to a JSON object with previously filled fields (optional)")
	critiqueCmd.Flags().StringVarP(&critiqueOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := critiqueCmd.MarkFlagRequired("field"); err != nil {
		panic(fmt.Sprintf("failed to mark field flag as required: %v", err))
	}
	if err := critiqueCmd.MarkFlagRequired("content"); err != nil {
		panic(fmt.Sprintf("failed to mark content flag as required: %v", err))
	}

	rootCmd.AddCommand(critiqueCmd)
}

func runCritique(_ *cobra.Command, _ []string) error {
	content, err := os.ReadFile(critiqueContentFile)
	if err != nil {
		return fmt.Errorf("failed to read content file: %w", err)
	}

	var contexto map[string]string
	if critiqueContextFile != "" {
		raw, err := os.ReadFile(critiqueContextFile)
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

	result := assistant.New(client).Critique(context.Background(), critiqueField, string(content), contexto)
	return writeJSON(critiqueOutputFile, result)
}
