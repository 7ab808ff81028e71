package tui

import (
	"strings"
	"testing"
	"time"
)

func TestRenderTranscript(t *testing.T) {
	now := time.Now()
	out := renderTranscript([]line{
		{role: "user", content: "hello", at: now},
		{role: "assistant", content: "hi there", at: now},
		{role: "system", content: "attaching cat.png", at: now},
		{role: "error", content: "throttled", at: now},
	})

	if !strings.Contains(out, "> hello") {
		t.Fatalf("user line missing prompt marker: %q", out)
	}
	if !strings.Contains(out, "hi there") {
		t.Fatalf("assistant line missing: %q", out)
	}
	if !strings.Contains(out, "attaching cat.png") {
		t.Fatalf("system line missing: %q", out)
	}
	if !strings.Contains(out, "error: throttled") {
		t.Fatalf("error line missing: %q", out)
	}
}

func TestRenderTranscript_Empty(t *testing.T) {
	if out := renderTranscript(nil); out != "" {
		t.Fatalf("empty transcript should render empty, got %q", out)
	}
}
