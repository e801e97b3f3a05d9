package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexjordan/folio/internal/chatui"
)

var (
	chatServer string
	chatState  string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the terminal chat client",
	Long:  `Open an interactive terminal chat against a running portfolio server. The conversation is persisted between runs; ctrl+r starts over.`,
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatServer, "server", "http://localhost:8080", "Base URL of the portfolio server")
	chatCmd.Flags().StringVar(&chatState, "state", "", "Conversation state file (default: per-user config dir)")
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	statePath := chatState
	if statePath == "" {
		path, err := chatui.DefaultSessionPath()
		if err != nil {
			// No usable config dir; run without persistence.
			path = ""
		}
		statePath = path
	}

	model := chatui.New(chatui.Config{
		ServerURL: chatServer,
		StateFile: statePath,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("chat client failed: %w", err)
	}
	return nil
}
