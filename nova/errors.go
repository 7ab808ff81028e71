package nova

import "fmt"

// ReadError reports an attachment whose bytes could not be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read attachment %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// UnsupportedCombinationError reports a media kind / storage location
// pairing the schema does not allow, e.g. an image referenced by S3 URI.
type UnsupportedCombinationError struct {
	Path     string
	Kind     string
	Location string
}

func (e *UnsupportedCombinationError) Error() string {
	return fmt.Sprintf("%s attachments cannot be sent from %s storage: %s", e.Kind, e.Location, e.Path)
}

// MalformedPayloadError reports a response body that failed to parse. It
// keeps the raw body for diagnosis.
type MalformedPayloadError struct {
	Body []byte
	Err  error
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed response: %v, body: %s", e.Err, e.Body)
}

func (e *MalformedPayloadError) Unwrap() error { return e.Err }

// ProtocolViolationError reports a response whose top-level message role
// is not assistant.
type ProtocolViolationError struct {
	Role Role
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("response message role is %q, want %q", e.Role, RoleAssistant)
}

// AmbiguousTextError reports a response carrying more than one text
// block. There is no defined rule for merging them, so decoding refuses.
type AmbiguousTextError struct {
	Body []byte
}

func (e *AmbiguousTextError) Error() string {
	return fmt.Sprintf("response had multiple text blocks, body: %s", e.Body)
}

// UnsupportedModalityError reports a response content block this tool
// cannot render (model-originated media, tool use, guardrail content).
type UnsupportedModalityError struct {
	Tag string
}

func (e *UnsupportedModalityError) Error() string {
	return fmt.Sprintf("unsupported %s block in model output", e.Tag)
}
