package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarterturn/bedrock-cli/bedrock"
	"github.com/quarterturn/bedrock-cli/config"
	"github.com/quarterturn/bedrock-cli/fileref"
	"github.com/quarterturn/bedrock-cli/nova"
)

var (
	invokeSystem    string
	invokePrefill   string
	invokeAttach    []string
	invokeMaxTokens int
	invokeTemp      float64
	invokeTopP      float64
	invokeTopK      int
	invokeStop      []string
)

var invokeCmd = &cobra.Command{
	Use:   "invoke [flags] <prompt>",
	Short: "Send a one-shot prompt with optional media attachments",
	Long: `Send a single prompt to a Nova text model via InvokeModel.

Attachment media type is determined from the file extension:
  Images:    png, jpg, jpeg, gif, webp (local files only)
  Videos:    mp4, mov, mkv, webm, flv, mpeg, mpg, wmv, 3gp (local or s3://)
  Documents: csv, doc, docx, html, md, pdf, txt, xls, xlsx (local files only)

s3:// locations are only supported for video. Not all models support
all modalities.

Example:
  bedrock-cli invoke --attach ~/black_dog.jpeg --attach ~/white_dog.jpeg \
      "What is the difference between these dogs?"`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoke,
}

func init() {
	invokeCmd.Flags().StringVarP(&invokeSystem, "system", "s", "", "System prompt for the request")
	invokeCmd.Flags().StringVarP(&invokePrefill, "assistant", "a", "", "Prefilled assistant response the model continues from")
	invokeCmd.Flags().StringArrayVar(&invokeAttach, "attach", nil, "Media file to attach; repeatable, order preserved")
	invokeCmd.Flags().IntVar(&invokeMaxTokens, "max-tokens", 0, "Maximum new tokens, in (0, 5000]")
	invokeCmd.Flags().Float64Var(&invokeTemp, "temperature", 0, "Sampling temperature, in (0, 1]")
	invokeCmd.Flags().Float64Var(&invokeTopP, "top-p", 0, "Nucleus sampling probability, in (0, 1]")
	invokeCmd.Flags().IntVar(&invokeTopK, "top-k", 0, "Top-k sampling cutoff, >= 0")
	invokeCmd.Flags().StringArrayVar(&invokeStop, "stop", nil, "Stop sequence; repeatable")

	rootCmd.AddCommand(invokeCmd)
}

// inferenceConfig builds the optional knob object from the flags that
// were actually set, so an untouched command line omits the object from
// the wire encoding entirely.
func inferenceConfig(cmd *cobra.Command) *nova.InferenceConfig {
	cfg := &nova.InferenceConfig{StopSequences: invokeStop}
	if cmd.Flags().Changed("max-tokens") {
		cfg.MaxNewTokens = &invokeMaxTokens
	}
	if cmd.Flags().Changed("temperature") {
		cfg.Temperature = &invokeTemp
	}
	if cmd.Flags().Changed("top-p") {
		cfg.TopP = &invokeTopP
	}
	if cmd.Flags().Changed("top-k") {
		cfg.TopK = &invokeTopK
	}
	return cfg
}

func runInvoke(cmd *cobra.Command, args []string) error {
	cfgManager, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}

	refs := make([]fileref.Reference, 0, len(invokeAttach))
	for _, path := range invokeAttach {
		ref, err := fileref.Classify(path)
		if err != nil {
			return err
		}
		refs = append(refs, ref)
	}

	req, err := nova.BuildRequest(args[0], refs, invokeSystem, invokePrefill, nil, inferenceConfig(cmd))
	if err != nil {
		return err
	}
	body, err := req.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	model := resolveModel(cfgManager)
	debugf(">>> request")
	debugf("id: %s", model)
	debugf("%s", body)

	client, err := bedrock.New(cmd.Context(), resolveProfile(cfgManager))
	if err != nil {
		return err
	}

	rsp, err := client.Invoke(cmd.Context(), model, body)
	if err != nil {
		return err
	}
	debugf("<<< response")
	debugf("%s", rsp)

	reply, err := nova.Decode(rsp)
	if err != nil {
		return err
	}

	fmt.Println(reply.Text)
	debugf("stop: %s, tokens in/out/total: %d/%d/%d",
		reply.StopReason, reply.Usage.InputTokens, reply.Usage.OutputTokens, reply.Usage.TotalTokens)
	return nil
}
