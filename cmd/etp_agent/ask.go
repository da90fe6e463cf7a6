package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LGPDNOW/etp-generator-maelson/internal/llm"
	"github.com/LGPDNOW/etp-generator-maelson/internal/rag"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask a question about Lei nº 14.133/2021",
	Long:  "Indexes the given normative documents (PDF or plain text), retrieves the fragments most relevant to the question and answers grounded on them. An optional history JSON file carries the conversation so far.",
	RunE:  runAsk,
}

var (
	askQuestion    string
	askDocs        []string
	askHistoryFile string
	askOutputFile  string
)

func init() {
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "Question to answer (required)")
	askCmd.Flags().StringSliceVarP(&askDocs, "doc", "d", nil, "Path to a normative document; repeatable (required)")
	askCmd.Flags().StringVar(&askHistoryFile, "history", "", "Path to a conversation history JSON file (optional)")
	askCmd.Flags().StringVarP(&askOutputFile, "out", "o", "", "Path to output text file (default stdout)")

	if err := askCmd.MarkFlagRequired("question"); err != nil {
		panic(fmt.Sprintf("failed to mark question flag as required: %v", err))
	}
	if err := askCmd.MarkFlagRequired("doc"); err != nil {
		panic(fmt.Sprintf("failed to mark doc flag as required: %v", err))
	}

	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, _ []string) error {
	var historico []rag.Message
	if askHistoryFile != "" {
		raw, err := os.ReadFile(askHistoryFile)
		if err != nil {
			return fmt.Errorf("failed to read history file: %w", err)
		}
		if err := json.Unmarshal(raw, &historico); err != nil {
			return fmt.Errorf("failed to unmarshal history JSON: %w", err)
		}
	}

	client, err := clientFromFlags()
	if err != nil {
		return err
	}

	// Embeddings always go through OpenAI; --api-key only feeds them when
	// OpenAI is also the chat provider.
	embedKey := ""
	if llm.Provider(flagProvider) == llm.ProviderOpenAI {
		embedKey = flagAPIKey
	}

	ctx := context.Background()
	index, err := rag.OpenIndex(ctx, askDocs, embedKey)
	if err != nil {
		return fmt.Errorf("failed to index documents: %w", err)
	}

	resposta, err := rag.NewChain(index, client).AskWithHistory(ctx, askQuestion, historico)
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}
	return writeOutput(askOutputFile, []byte(resposta))
}
