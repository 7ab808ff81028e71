// Package bedrock wraps the AWS SDK clients behind the narrow transport
// surface the rest of the tool depends on: invoke one model with one
// serialized body, and list the available models. No retries or
// interpretation of service failures happen here; errors surface as-is.
package bedrock

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Client calls Amazon Bedrock. Runtime calls go to bedrockruntime;
// model listing goes to the control plane.
type Client struct {
	runtime *bedrockruntime.Client
	control *bedrock.Client
}

// New resolves AWS credentials and region and returns a ready client.
//
// Region and credentials are selected in the usual SDK sequence: the
// named profile when one is given, else environment variables, else the
// default profile from ~/.aws/config and ~/.aws/credentials.
func New(ctx context.Context, profile string) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &Client{
		runtime: bedrockruntime.NewFromConfig(cfg),
		control: bedrock.NewFromConfig(cfg),
	}, nil
}

// Invoke sends a JSON request body to the named model (or inference
// profile) and returns the raw JSON response body.
func (c *Client) Invoke(ctx context.Context, modelID string, body []byte) ([]byte, error) {
	out, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return nil, fmt.Errorf("invoke %s: %w", modelID, err)
	}
	return out.Body, nil
}

// ModelSummary is one entry from the foundation model listing.
type ModelSummary struct {
	ID               string
	Name             string
	Provider         string
	InputModalities  []string
	OutputModalities []string
}

func (m ModelSummary) String() string {
	return fmt.Sprintf("%-60s %-12s in:%s out:%s",
		m.ID, m.Provider,
		strings.Join(m.InputModalities, ","),
		strings.Join(m.OutputModalities, ","))
}

// ListModels returns the foundation models visible to the account,
// optionally filtered by provider name, case-insensitively.
func (c *Client) ListModels(ctx context.Context, provider string) ([]ModelSummary, error) {
	out, err := c.control.ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{})
	if err != nil {
		return nil, fmt.Errorf("list foundation models: %w", err)
	}

	models := make([]ModelSummary, 0, len(out.ModelSummaries))
	for _, s := range out.ModelSummaries {
		m := ModelSummary{
			ID:       aws.ToString(s.ModelId),
			Name:     aws.ToString(s.ModelName),
			Provider: aws.ToString(s.ProviderName),
		}
		for _, mod := range s.InputModalities {
			m.InputModalities = append(m.InputModalities, string(mod))
		}
		for _, mod := range s.OutputModalities {
			m.OutputModalities = append(m.OutputModalities, string(mod))
		}
		models = append(models, m)
	}
	return FilterByProvider(models, provider), nil
}

// FilterByProvider keeps the models whose provider matches the filter,
// case-insensitively. An empty filter keeps everything.
func FilterByProvider(models []ModelSummary, provider string) []ModelSummary {
	if provider == "" {
		return models
	}
	var out []ModelSummary
	for _, m := range models {
		if strings.EqualFold(m.Provider, provider) {
			out = append(out, m)
		}
	}
	return out
}
