package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexjordan/folio/internal/config"
	"github.com/alexjordan/folio/internal/content"
	"github.com/alexjordan/folio/internal/llm"
	"github.com/alexjordan/folio/internal/server"
)

var (
	servePort    int
	serveContent string
	serveWatch   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio server",
	Long:  `Start an HTTP server that renders the portfolio page and exposes the chat endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveContent, "content", "", "Content directory (overrides CONTENT_DIR)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Invalidate caches when content files change")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveContent != "" {
		cfg.ContentDir = serveContent
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := content.NewStore(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("content directory: %w", err)
	}

	client, err := llm.NewGeminiClient(context.Background(), cfg.APIKey, llm.Options{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	srv, err := server.New(server.Config{Port: cfg.Port, Watch: serveWatch}, store, client)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
