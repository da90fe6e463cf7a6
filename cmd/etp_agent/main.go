// Package main implements the etp_agent CLI for generating and reviewing
// Estudos Técnicos Preliminares under Lei nº 14.133/2021.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "etp_agent",
	Short: "Gerador e assistente de Estudos Técnicos Preliminares",
	Long:  "etp_agent gera Estudos Técnicos Preliminares de 17 seções a partir dos dados coletados, critica e reescreve campos individuais e responde perguntas sobre a Lei nº 14.133/2021 com base em documentos indexados.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
