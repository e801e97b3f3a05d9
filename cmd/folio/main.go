// Package main provides the folio entry point: the portfolio HTTP server and
// the terminal chat client.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio with an LLM chat assistant",
	Long:  "Folio serves a markdown-driven portfolio site with a Gemini-backed chat endpoint, and ships a terminal chat client for talking to it.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
