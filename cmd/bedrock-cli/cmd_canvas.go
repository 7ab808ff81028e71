package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarterturn/bedrock-cli/bedrock"
	"github.com/quarterturn/bedrock-cli/canvas"
	"github.com/quarterturn/bedrock-cli/config"
)

var (
	canvasNegative string
	canvasOutput   string
	canvasCount    int
	canvasWidth    int
	canvasHeight   int
	canvasQuality  string
	canvasSeed     int64
)

var canvasCmd = &cobra.Command{
	Use:   "canvas [flags] <prompt>",
	Short: "Generate images with Amazon Nova Canvas",
	Long: `Generate images from a text prompt with Amazon Nova Canvas
(` + canvas.ModelID + `) and save them to the output directory.

Example:
  bedrock-cli canvas --negative "birds, ducks" \
      "Picture of a lake with wildlife, photorealistic"`,
	Args: cobra.ExactArgs(1),
	RunE: runCanvas,
}

func init() {
	canvasCmd.Flags().StringVarP(&canvasNegative, "negative", "n", "", "Negative prompt")
	canvasCmd.Flags().StringVarP(&canvasOutput, "output", "o", "", "Output directory for generated images")
	canvasCmd.Flags().IntVar(&canvasCount, "count", 0, "Number of images to generate")
	canvasCmd.Flags().IntVar(&canvasWidth, "width", 0, "Image width in pixels")
	canvasCmd.Flags().IntVar(&canvasHeight, "height", 0, "Image height in pixels")
	canvasCmd.Flags().StringVar(&canvasQuality, "quality", "", "Image quality (standard or premium)")
	canvasCmd.Flags().Int64Var(&canvasSeed, "seed", 0, "Generation seed")

	rootCmd.AddCommand(canvasCmd)
}

func generationConfig(cmd *cobra.Command) *canvas.ImageGenerationConfig {
	cfg := &canvas.ImageGenerationConfig{Quality: canvasQuality}
	changed := canvasQuality != ""
	if cmd.Flags().Changed("count") {
		cfg.NumberOfImages = &canvasCount
		changed = true
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = &canvasWidth
		changed = true
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = &canvasHeight
		changed = true
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = &canvasSeed
		changed = true
	}
	if !changed {
		return nil
	}
	return cfg
}

func runCanvas(cmd *cobra.Command, args []string) error {
	cfgManager, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	req := canvas.BuildRequest(args[0], canvasNegative, generationConfig(cmd))
	body, err := req.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	debugf(">>> request")
	debugf("id: %s", canvas.ModelID)
	debugf("%s", body)

	client, err := bedrock.New(cmd.Context(), resolveProfile(cfgManager))
	if err != nil {
		return err
	}

	rsp, err := client.Invoke(cmd.Context(), canvas.ModelID, body)
	if err != nil {
		return err
	}

	images, err := canvas.Decode(rsp)
	if err != nil {
		return err
	}

	outputDir := canvasOutput
	if outputDir == "" {
		outputDir = cfgManager.GetDefaultOutputDir()
	}
	paths, err := canvas.SaveImages(images, outputDir)
	for _, path := range paths {
		fmt.Printf("Saved image to: %s\n", path)
	}
	return err
}
