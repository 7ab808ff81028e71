package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarterturn/bedrock-cli/bedrock"
	"github.com/quarterturn/bedrock-cli/config"
)

var modelsCmd = &cobra.Command{
	Use:   "models [provider]",
	Short: "List foundation models available to the account",
	Long: `List the Bedrock foundation models visible to the account, with
their input and output modalities. The optional positional argument is
a case-insensitive provider filter, e.g. Amazon or anthropic.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	cfgManager, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	client, err := bedrock.New(cmd.Context(), resolveProfile(cfgManager))
	if err != nil {
		return err
	}

	provider := ""
	if len(args) == 1 {
		provider = args[0]
	}

	models, err := client.ListModels(cmd.Context(), provider)
	if err != nil {
		return err
	}
	for _, m := range models {
		fmt.Println(m)
	}
	return nil
}
