package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarterturn/bedrock-cli/config"
)

var (
	setModel     string
	setProfile   string
	setOutputDir string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted defaults",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the persisted defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgManager, err := config.NewManager()
		if err != nil {
			return fmt.Errorf("failed to create config manager: %w", err)
		}
		fmt.Printf("model:      %s\n", cfgManager.GetDefaultModel())
		fmt.Printf("profile:    %s\n", cfgManager.GetDefaultProfile())
		fmt.Printf("output dir: %s\n", cfgManager.GetDefaultOutputDir())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Persist default model, AWS profile and output directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgManager, err := config.NewManager()
		if err != nil {
			return fmt.Errorf("failed to create config manager: %w", err)
		}
		return cfgManager.SetDefaults(setModel, setProfile, setOutputDir)
	},
}

func init() {
	configSetCmd.Flags().StringVar(&setModel, "model", "", "Default model or inference profile id")
	configSetCmd.Flags().StringVar(&setProfile, "aws-profile", "", "Default AWS profile override")
	configSetCmd.Flags().StringVar(&setOutputDir, "output", "", "Default output directory for saved media")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
