package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quarterturn/bedrock-cli/config"
)

var (
	// Flags
	awsProfile string
	modelID    string
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "bedrock-cli",
		Short: "Command-line clients for Amazon Bedrock",
		Long: `bedrock-cli - invoke Amazon Bedrock models from the terminal.

Supports one-shot prompts with image, video and document attachments,
multi-turn interactive conversations, Nova Canvas image generation, and
foundation model listing.

You must be opted into the models you invoke and have permission for
bedrock:InvokeModel. Region and credentials are selected in the usual
sequence: the --aws-profile override when given, else environment
variables, else the default profile from ~/.aws/config and
~/.aws/credentials.`,
		RunE: runChat,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&awsProfile, "aws-profile", "p", "", "AWS profile override")
	rootCmd.PersistentFlags().StringVarP(&modelID, "model", "m", "", "Model or inference profile id")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Dump raw request and response bodies")

	// Bind flags to viper
	viper.BindPFlags(rootCmd.PersistentFlags())
}

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveModel prefers the --model flag over the persisted default.
func resolveModel(cfg *config.Manager) string {
	if modelID != "" {
		return modelID
	}
	return cfg.GetDefaultModel()
}

// resolveProfile prefers the --aws-profile flag over the persisted
// default; empty means the standard credential chain.
func resolveProfile(cfg *config.Manager) string {
	if awsProfile != "" {
		return awsProfile
	}
	return cfg.GetDefaultProfile()
}

func debugf(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
