package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LGPDNOW/etp-generator-maelson/internal/etp"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the 17-section ETP document from collected fields",
	Long:  "Generates a complete Estudo Técnico Preliminar from a fields JSON file, issuing one LLM call per section group and auditing the assembled document for missing sections.",
	RunE:  runGenerate,
}

var (
	generateFieldsFile string
	generateOutputFile string
	generateReportFile string
)

func init() {
	generateCmd.Flags().StringVarP(&generateFieldsFile, "fields", "f", "", "Path to ETP fields JSON file (required)")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to output document file (default stdout)")
	generateCmd.Flags().StringVar(&generateReportFile, "report", "", "Path to completeness report JSON file (optional)")

	if err := generateCmd.MarkFlagRequired("fields"); err != nil {
		panic(fmt.Sprintf("failed to mark fields flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	fields, err := readFields(generateFieldsFile)
	if err != nil {
		return err
	}

	client, err := clientFromFlags()
	if err != nil {
		return err
	}

	result, err := etp.NewGenerator(client).Generate(context.Background(), fields)
	if err != nil {
		return fmt.Errorf("failed to generate document: %w", err)
	}

	if err := writeOutput(generateOutputFile, []byte(result.Document)); err != nil {
		return err
	}
	if generateReportFile != "" {
		if err := writeJSON(generateReportFile, result.Completeness); err != nil {
			return err
		}
	}
	return nil
}
