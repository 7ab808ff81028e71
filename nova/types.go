// Package nova maps CLI-level inputs onto the Amazon Nova request schema
// and decodes Nova responses back into display text.
//
// The structs here serialize to the published request schema:
// https://docs.aws.amazon.com/nova/latest/userguide/complete-request-schema.html
// No response schema is published, so the response structs follow
// observed responses.
package nova

import (
	"encoding/json"
	"fmt"
)

// Role of a message in the conversation. The wire protocol only carries
// user and assistant; system text travels in its own top-level list.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Request is the InvokeModel body for Nova text models.
type Request struct {
	System []SystemPrompt `json:"system,omitempty"`

	// First message must have the user role, alternating from there.
	Messages []Message `json:"messages"`

	// Nil when no knobs are set so the key is omitted entirely; the
	// remote validator rejects an empty object here.
	InferenceConfig *InferenceConfig `json:"inferenceConfig,omitempty"`
}

// SystemPrompt is one element of the conversation-scoped system list.
type SystemPrompt struct {
	Text string `json:"text"`
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role      `json:"role"`
	Content []Content `json:"content"`
}

// Content is an externally tagged content block: exactly one of the
// variant fields is set, and the JSON key doubles as the tag. Unknown
// tags survive decoding in otherTag so the decoder can report them
// instead of dropping them.
type Content struct {
	Text     *string   `json:"text,omitempty"`
	Image    *Image    `json:"image,omitempty"`
	Video    *Video    `json:"video,omitempty"`
	Document *Document `json:"document,omitempty"`

	otherTag string
}

// TextContent wraps plain text as a content block.
func TextContent(s string) Content {
	return Content{Text: &s}
}

// Tag reports which variant this block carries.
func (c Content) Tag() string {
	switch {
	case c.Text != nil:
		return "text"
	case c.Image != nil:
		return "image"
	case c.Video != nil:
		return "video"
	case c.Document != nil:
		return "document"
	case c.otherTag != "":
		return c.otherTag
	default:
		return ""
	}
}

// UnmarshalJSON keeps unknown block tags instead of failing or silently
// discarding them. A block with several tags is malformed.
func (c *Content) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) != 1 {
		return fmt.Errorf("content block must carry exactly one tag, got %d", len(fields))
	}
	for tag, raw := range fields {
		switch tag {
		case "text":
			c.Text = new(string)
			return json.Unmarshal(raw, c.Text)
		case "image":
			c.Image = new(Image)
			return json.Unmarshal(raw, c.Image)
		case "video":
			c.Video = new(Video)
			return json.Unmarshal(raw, c.Video)
		case "document":
			c.Document = new(Document)
			return json.Unmarshal(raw, c.Document)
		default:
			c.otherTag = tag
		}
	}
	return nil
}

// Image is inline-only: Bedrock does not accept S3 references for image
// input.
type Image struct {
	Format string      `json:"format"`
	Source ImageSource `json:"source"`
}

type ImageSource struct {
	Bytes string `json:"bytes"`
}

// Video may be inline bytes or an S3 location; exactly one source field
// is set.
type Video struct {
	Format string      `json:"format"`
	Source VideoSource `json:"source"`
}

type VideoSource struct {
	Bytes      string      `json:"bytes,omitempty"`
	S3Location *S3Location `json:"s3Location,omitempty"`
}

type S3Location struct {
	URI string `json:"uri"`
	// Cross-account access would need a bucketOwner field here; this
	// tool does not support it.
}

// Document is inline-only and carries a display name (the file stem).
type Document struct {
	Format string         `json:"format"`
	Name   string         `json:"name"`
	Source DocumentSource `json:"source"`
}

type DocumentSource struct {
	Bytes string `json:"bytes"`
}

// InferenceConfig holds the optional sampling knobs. Unset knobs are
// omitted so the model falls back to its own defaults.
type InferenceConfig struct {
	MaxNewTokens  *int     `json:"max_new_tokens,omitempty"` // (0, 5000]
	Temperature   *float64 `json:"temperature,omitempty"`    // (0, 1]
	TopP          *float64 `json:"top_p,omitempty"`          // (0, 1]
	TopK          *int     `json:"top_k,omitempty"`          // >= 0
	StopSequences []string `json:"stopSequences,omitempty"`
}

// IsEmpty reports whether no knob is set, in which case the whole
// inferenceConfig object must be left out of the request.
func (c *InferenceConfig) IsEmpty() bool {
	return c == nil ||
		(c.MaxNewTokens == nil && c.Temperature == nil && c.TopP == nil &&
			c.TopK == nil && len(c.StopSequences) == 0)
}

// Validate checks each set knob against its documented range.
func (c *InferenceConfig) Validate() error {
	if c == nil {
		return nil
	}
	if c.MaxNewTokens != nil && (*c.MaxNewTokens <= 0 || *c.MaxNewTokens > 5000) {
		return fmt.Errorf("max_new_tokens must be in (0, 5000], got %d", *c.MaxNewTokens)
	}
	if c.Temperature != nil && (*c.Temperature <= 0 || *c.Temperature > 1) {
		return fmt.Errorf("temperature must be in (0, 1], got %g", *c.Temperature)
	}
	if c.TopP != nil && (*c.TopP <= 0 || *c.TopP > 1) {
		return fmt.Errorf("top_p must be in (0, 1], got %g", *c.TopP)
	}
	if c.TopK != nil && *c.TopK < 0 {
		return fmt.Errorf("top_k must be >= 0, got %d", *c.TopK)
	}
	return nil
}

// Response is the InvokeModel output body for Nova text models.
type Response struct {
	Output     Output `json:"output"`
	StopReason string `json:"stopReason"`
	Usage      Usage  `json:"usage"`
}

type Output struct {
	Message Message `json:"message"`
}

type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	TotalTokens  int `json:"totalTokens"`
}
