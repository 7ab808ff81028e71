package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quarterturn/bedrock-cli/bedrock"
	"github.com/quarterturn/bedrock-cli/config"
	"github.com/quarterturn/bedrock-cli/convo"
	"github.com/quarterturn/bedrock-cli/history"
	"github.com/quarterturn/bedrock-cli/tui"
)

var (
	chatSystem   string
	chatContinue bool
	chatNoSave   bool
)

func init() {
	// The conversation screen is the root command, so its flags live on
	// rootCmd rather than a subcommand.
	rootCmd.Flags().StringVarP(&chatSystem, "system", "s", "", "System prompt for the entire conversation")
	rootCmd.Flags().BoolVarP(&chatContinue, "continue", "c", false, "Resume the most recent saved session")
	rootCmd.Flags().BoolVar(&chatNoSave, "no-save", false, "Do not persist the session transcript")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfgManager, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	client, err := bedrock.New(cmd.Context(), resolveProfile(cfgManager))
	if err != nil {
		return err
	}

	var store *history.Manager
	if !chatNoSave {
		store, err = history.NewManager()
		if err != nil {
			return fmt.Errorf("failed to create history manager: %w", err)
		}
	}

	var session *convo.Session
	var record *history.Session
	switch {
	case chatContinue:
		if store == nil {
			return fmt.Errorf("--continue cannot be combined with --no-save")
		}
		record, err = store.LastSession()
		if err != nil {
			return err
		}
		session = convo.Resume(record.Model, record.SystemPrompt, nil, record.Messages)
	default:
		model := resolveModel(cfgManager)
		session = convo.New(model, chatSystem, nil)
		if store != nil {
			record = store.StartSession(model, chatSystem)
		}
	}

	p := tea.NewProgram(tui.NewChat(session, client, store, record), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
