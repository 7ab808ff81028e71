package nova

import (
	"errors"
	"strings"
	"testing"
)

func TestDecode_TextReply(t *testing.T) {
	body := []byte(`{
	  "output": {"message": {"role": "assistant", "content": [{"text": "Hello!"}]}},
	  "stopReason": "end_turn",
	  "usage": {"inputTokens": 4, "outputTokens": 35, "totalTokens": 39}
	}`)

	reply, err := Decode(body)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if reply.Text != "Hello!" {
		t.Fatalf("expected text Hello!, got %q", reply.Text)
	}
	if reply.StopReason != "end_turn" {
		t.Fatalf("unexpected stop reason: %q", reply.StopReason)
	}
	if reply.Usage.TotalTokens != 39 {
		t.Fatalf("unexpected usage: %+v", reply.Usage)
	}
	if reply.Message.Role != RoleAssistant {
		t.Fatalf("decoded message should keep the assistant role")
	}
}

func TestDecode_RejectsUserRole(t *testing.T) {
	body := []byte(`{"output":{"message":{"role":"user","content":[]}}}`)

	reply, err := Decode(body)
	var protocolErr *ProtocolViolationError
	if !errors.As(err, &protocolErr) {
		t.Fatalf("expected ProtocolViolationError, got %v", err)
	}
	if reply.Text != "" {
		t.Fatalf("no text may be returned on protocol violation")
	}
}

func TestDecode_MalformedBodyKeptInError(t *testing.T) {
	body := []byte(`{"output": nope`)

	_, err := Decode(body)
	var malformedErr *MalformedPayloadError
	if !errors.As(err, &malformedErr) {
		t.Fatalf("expected MalformedPayloadError, got %v", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Fatalf("error should include the raw body: %v", err)
	}
}

func TestDecode_MultipleTextBlocks(t *testing.T) {
	body := []byte(`{"output":{"message":{"role":"assistant","content":[{"text":"a"},{"text":"b"}]}}}`)

	_, err := Decode(body)
	var ambiguousErr *AmbiguousTextError
	if !errors.As(err, &ambiguousErr) {
		t.Fatalf("expected AmbiguousTextError, got %v", err)
	}
}

func TestDecode_MediaOutputFailsLoudly(t *testing.T) {
	body := []byte(`{"output":{"message":{"role":"assistant","content":[
	  {"image":{"format":"png","source":{"bytes":"aGk="}}}
	]}}}`)

	_, err := Decode(body)
	var modalityErr *UnsupportedModalityError
	if !errors.As(err, &modalityErr) {
		t.Fatalf("expected UnsupportedModalityError, got %v", err)
	}
	if modalityErr.Tag != "image" {
		t.Fatalf("expected image tag, got %q", modalityErr.Tag)
	}
}

func TestDecode_UnknownBlockTagFailsLoudly(t *testing.T) {
	body := []byte(`{"output":{"message":{"role":"assistant","content":[
	  {"text":"ok"},
	  {"guardContent":{"text":{"text":"blocked"}}}
	]}}}`)

	_, err := Decode(body)
	var modalityErr *UnsupportedModalityError
	if !errors.As(err, &modalityErr) {
		t.Fatalf("expected UnsupportedModalityError, got %v", err)
	}
	if modalityErr.Tag != "guardContent" {
		t.Fatalf("expected guardContent tag, got %q", modalityErr.Tag)
	}
}

func TestDecode_EmptyContentYieldsEmptyText(t *testing.T) {
	body := []byte(`{"output":{"message":{"role":"assistant","content":[]}},"stopReason":"end_turn"}`)

	reply, err := Decode(body)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if reply.Text != "" {
		t.Fatalf("expected empty text, got %q", reply.Text)
	}
}
