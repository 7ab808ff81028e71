// Package convo owns the growing message history of one interactive
// conversation. A session is used from a single goroutine with at most
// one in-flight model call; turns are all-or-nothing, so a failed turn
// leaves the history exactly as it was.
package convo

import (
	"context"

	"github.com/quarterturn/bedrock-cli/fileref"
	"github.com/quarterturn/bedrock-cli/nova"
)

// Invoker is the inference transport: it sends a serialized request body
// to the named model and returns the raw response body. Transport
// failures (network, auth, throttling) are surfaced as-is; the session
// does not retry.
type Invoker interface {
	Invoke(ctx context.Context, modelID string, body []byte) ([]byte, error)
}

// Session holds the model identifier, the conversation-scoped system
// prompt, and the append-only message history.
type Session struct {
	model    string
	system   string
	cfg      *nova.InferenceConfig
	messages []nova.Message
}

// New starts an empty conversation against the given model. system may
// be empty; cfg may be nil.
func New(model, system string, cfg *nova.InferenceConfig) *Session {
	return &Session{model: model, system: system, cfg: cfg}
}

// Resume starts a conversation seeded with previously recorded turns.
func Resume(model, system string, cfg *nova.InferenceConfig, messages []nova.Message) *Session {
	s := New(model, system, cfg)
	s.messages = append(s.messages, messages...)
	return s
}

// Model returns the model identifier the session invokes.
func (s *Session) Model() string { return s.model }

// System returns the conversation-scoped system prompt.
func (s *Session) System() string { return s.system }

// Len reports how many turns the history holds.
func (s *Session) Len() int { return len(s.messages) }

// Messages returns a copy of the accumulated history.
func (s *Session) Messages() []nova.Message {
	out := make([]nova.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Say runs one turn: classify and encode the attachments, build the
// request from the entire accumulated history, invoke the transport, and
// decode the reply. The user message and the assistant reply are
// committed to history together, only after the full round trip
// succeeds.
func (s *Session) Say(ctx context.Context, inv Invoker, prompt string, attachments []string) (nova.DecodedReply, error) {
	refs := make([]fileref.Reference, 0, len(attachments))
	for _, path := range attachments {
		ref, err := fileref.Classify(path)
		if err != nil {
			return nova.DecodedReply{}, err
		}
		refs = append(refs, ref)
	}

	req, err := nova.BuildRequest(prompt, refs, s.system, "", s.messages, s.cfg)
	if err != nil {
		return nova.DecodedReply{}, err
	}
	body, err := req.Marshal()
	if err != nil {
		return nova.DecodedReply{}, err
	}

	rsp, err := inv.Invoke(ctx, s.model, body)
	if err != nil {
		return nova.DecodedReply{}, err
	}

	reply, err := nova.Decode(rsp)
	if err != nil {
		return nova.DecodedReply{}, err
	}

	// Commit both turns now that the round trip is known good. The new
	// user message is the last request message; prefill is never used
	// in multi-turn sessions so it is also the last element overall.
	s.messages = append(s.messages, req.Messages[len(req.Messages)-1], reply.Message)
	return reply, nil
}
