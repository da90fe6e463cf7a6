package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LGPDNOW/etp-generator-maelson/internal/assistant"
)

var validateConsistencyCmd = &cobra.Command{
	Use:   "validate-consistency",
	Short: "Review the whole study for cross-field contradictions",
	Long:  "Sends every filled field to the LLM for a cross-field consistency review and prints the resulting narrative.",
	RunE:  runValidateConsistency,
}

var validateAlignmentCmd = &cobra.Command{
	Use:   "validate-alignment",
	Short: "Run local structural checks over the study",
	Long:  "Checks required fields, lexical overlap between problem and solution, and advantage language in the justification. Runs entirely locally, without any LLM call.",
	RunE:  runValidateAlignment,
}

var (
	validateFieldsFile string
	validateOutputFile string
)

func init() {
	for _, cmd := range []*cobra.Command{validateConsistencyCmd, validateAlignmentCmd} {
		cmd.Flags().StringVarP(&validateFieldsFile, "fields", "f", "", "Path to ETP fields JSON file (required)")
		cmd.Flags().StringVarP(&validateOutputFile, "out", "o", "", "Path to output file (default stdout)")
		if err := cmd.MarkFlagRequired("fields"); err != nil {
			panic(fmt.Sprintf("failed to mark fields flag as required: %v", err))
		}
		rootCmd.AddCommand(cmd)
	}
}

func runValidateConsistency(_ *cobra.Command, _ []string) error {
	fields, err := readFields(validateFieldsFile)
	if err != nil {
		return err
	}

	client, err := clientFromFlags()
	if err != nil {
		return err
	}

	parecer, err := assistant.New(client).ValidateConsistency(context.Background(), fields)
	if err != nil {
		return fmt.Errorf("failed to validate consistency: %w", err)
	}
	return writeOutput(validateOutputFile, []byte(parecer))
}

func runValidateAlignment(_ *cobra.Command, _ []string) error {
	fields, err := readFields(validateFieldsFile)
	if err != nil {
		return err
	}
	return writeJSON(validateOutputFile, assistant.ValidateAlignment(fields))
}
