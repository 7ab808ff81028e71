package nova

import (
	"encoding/json"

	"github.com/quarterturn/bedrock-cli/fileref"
)

// UserMessage builds a single user turn: the free-text prompt as the
// first block, then one block per attachment in the order given. If any
// attachment fails to encode, the whole message is discarded and the
// specific error returned, so callers never end up holding a
// partially-built turn.
func UserMessage(prompt string, attachments []fileref.Reference) (Message, error) {
	content := make([]Content, 0, len(attachments)+1)
	content = append(content, TextContent(prompt))

	for _, ref := range attachments {
		block, err := AttachmentBlock(ref)
		if err != nil {
			return Message{}, err
		}
		content = append(content, block)
	}

	return Message{Role: RoleUser, Content: content}, nil
}

// BuildRequest assembles a full InvokeModel request: prior conversation
// turns, the new user message, and an optional synthetic assistant
// prefill used to bias the model's continuation. The prefill, when sent,
// is replaced by the model's real reply; it is never retained alongside
// it.
//
// systemPrompt and cfg are optional; when absent the corresponding keys
// are left out of the serialized request entirely.
func BuildRequest(prompt string, attachments []fileref.Reference, systemPrompt, assistantPrefill string, prior []Message, cfg *InferenceConfig) (Request, error) {
	if err := cfg.Validate(); err != nil {
		return Request{}, err
	}

	userMsg, err := UserMessage(prompt, attachments)
	if err != nil {
		return Request{}, err
	}

	messages := make([]Message, 0, len(prior)+2)
	messages = append(messages, prior...)
	messages = append(messages, userMsg)

	if assistantPrefill != "" {
		messages = append(messages, Message{
			Role:    RoleAssistant,
			Content: []Content{TextContent(assistantPrefill)},
		})
	}

	req := Request{Messages: messages}
	if systemPrompt != "" {
		req.System = []SystemPrompt{{Text: systemPrompt}}
	}
	if !cfg.IsEmpty() {
		req.InferenceConfig = cfg
	}
	return req, nil
}

// Marshal serializes the request body for InvokeModel.
func (r Request) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
