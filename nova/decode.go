package nova

import "encoding/json"

// DecodedReply is the assistant turn extracted from a response body,
// ready for display and for appending to conversation history.
type DecodedReply struct {
	Text       string
	Message    Message
	StopReason string
	Usage      Usage
}

// Decode parses an InvokeModel response body and extracts the assistant
// reply. It fails rather than guess:
//
//   - unparseable bodies fail with MalformedPayloadError, keeping the
//     raw body for diagnosis
//   - a top-level role other than assistant fails with
//     ProtocolViolationError; it is never coerced
//   - more than one text block fails with AmbiguousTextError, since no
//     merge order is defined
//   - any non-text block (media, tool use, guardrail content, unknown
//     tags) fails with UnsupportedModalityError instead of being
//     silently dropped
func Decode(body []byte) (DecodedReply, error) {
	var rsp Response
	if err := json.Unmarshal(body, &rsp); err != nil {
		return DecodedReply{}, &MalformedPayloadError{Body: body, Err: err}
	}

	msg := rsp.Output.Message
	if msg.Role != RoleAssistant {
		return DecodedReply{}, &ProtocolViolationError{Role: msg.Role}
	}

	var text *string
	for _, block := range msg.Content {
		switch tag := block.Tag(); tag {
		case "text":
			if text != nil {
				return DecodedReply{}, &AmbiguousTextError{Body: body}
			}
			text = block.Text
		default:
			return DecodedReply{}, &UnsupportedModalityError{Tag: tag}
		}
	}

	reply := DecodedReply{
		Message:    msg,
		StopReason: rsp.StopReason,
		Usage:      rsp.Usage,
	}
	if text != nil {
		reply.Text = *text
	}
	return reply, nil
}
