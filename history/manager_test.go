package history

import (
	"testing"

	"github.com/quarterturn/bedrock-cli/nova"
)

func TestSaveLoadSession(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	session := m.StartSession("us.amazon.nova-lite-v1:0", "be brief")
	session.Messages = []nova.Message{
		{Role: nova.RoleUser, Content: []nova.Content{nova.TextContent("hello there")}},
		{Role: nova.RoleAssistant, Content: []nova.Content{nova.TextContent("hi")}},
	}

	if err := m.SaveSession(session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := m.LoadSession(session.ID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Model != "us.amazon.nova-lite-v1:0" {
		t.Fatalf("unexpected model: %q", loaded.Model)
	}
	if loaded.SystemPrompt != "be brief" {
		t.Fatalf("unexpected system prompt: %q", loaded.SystemPrompt)
	}
	if len(loaded.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(loaded.Messages))
	}
	if *loaded.Messages[0].Content[0].Text != "hello there" {
		t.Fatalf("message content lost in round trip")
	}
	if loaded.Metadata.Title != "hello there" {
		t.Fatalf("title should derive from the first user text, got %q", loaded.Metadata.Title)
	}
}

func TestLastSession(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	if _, err := m.LastSession(); err == nil {
		t.Fatalf("expected error when no sessions are saved")
	}

	first := m.StartSession("model-a", "")
	if err := m.SaveSession(first); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second := m.StartSession("model-b", "")
	if err := m.SaveSession(second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	last, err := m.LastSession()
	if err != nil {
		t.Fatalf("last session failed: %v", err)
	}
	if last.ID != second.ID {
		t.Fatalf("expected most recent session %s, got %s", second.ID, last.ID)
	}
}

func TestListSessions(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	for _, model := range []string{"a", "b", "c"} {
		s := m.StartSession(model, "")
		if err := m.SaveSession(s); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	list, err := m.ListSessions()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(list))
	}
}

func TestStartSession_UniqueIDs(t *testing.T) {
	m, err := NewManagerAt(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	a := m.StartSession("m", "")
	b := m.StartSession("m", "")
	if a.ID == b.ID {
		t.Fatalf("session IDs must be unique")
	}
}
