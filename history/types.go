package history

import (
	"time"

	"github.com/quarterturn/bedrock-cli/nova"
)

// Session represents a saved conversation
type Session struct {
	ID           string         `json:"id"`
	Version      string         `json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Model        string         `json:"model"`
	SystemPrompt string         `json:"system_prompt,omitempty"`
	Metadata     Metadata       `json:"metadata"`
	Messages     []nova.Message `json:"messages"`
}

// Metadata contains session metadata
type Metadata struct {
	Title      string `json:"title"`
	TokenCount int    `json:"token_count"`
}

// MetaIndex tracks the most recent session in the store
type MetaIndex struct {
	Version     string `json:"version"`
	LastSession string `json:"last_session_id,omitempty"`
}

// SessionInfo provides summary information for session listing
type SessionInfo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Messages  int       `json:"messages"`
	Model     string    `json:"model"`
}
