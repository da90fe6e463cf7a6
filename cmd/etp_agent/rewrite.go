package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LGPDNOW/etp-generator-maelson/internal/assistant"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite a field text in one of three improvement modes",
	Long:  "Rewrites a text correcting grammar only (gramatica), elevating technical register (tecnico) or improving clarity and formality overall (geral), returning the improved text and a change summary as JSON.",
	RunE:  runRewrite,
}

var (
	rewriteTextFile   string
	rewriteMode       string
	rewriteOutputFile string
)

func init() {
	rewriteCmd.Flags().StringVarP(&rewriteTextFile, "text", "t", "", "Path to a file with the text to rewrite (required)")
	rewriteCmd.Flags().StringVarP(&rewriteMode, "mode", "m", assistant.ModeGeral, "Rewrite mode: gramatica, tecnico or geral")
	rewriteCmd.Flags().StringVarP(&rewriteOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := rewriteCmd.MarkFlagRequired("text"); err != nil {
		panic(fmt.Sprintf("failed to mark text flag as required: %v", err))
	}

	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(_ *cobra.Command, _ []string) error {
	texto, err := os.ReadFile(rewriteTextFile)
	if err != nil {
		return fmt.Errorf("failed to read text file: %w", err)
	}

	client, err := clientFromFlags()
	if err != nil {
		return err
	}

	result, err := assistant.New(client).Rewrite(context.Background(), string(texto), rewriteMode)
	if err != nil {
		return fmt.Errorf("failed to rewrite text: %w", err)
	}
	return writeJSON(rewriteOutputFile, result)
}
