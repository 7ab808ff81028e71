package history

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Manager handles conversation history persistence as flat JSON files,
// one per session, with a small meta index pointing at the most recent.
type Manager struct {
	sessionsDir string
	metaPath    string
	mu          sync.RWMutex
}

// NewManager creates a history manager rooted at ~/.bedrock-cli/sessions
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewManagerAt(filepath.Join(homeDir, ".bedrock-cli", "sessions"))
}

// NewManagerAt creates a history manager rooted at the given directory
func NewManagerAt(dir string) (*Manager, error) {
	m := &Manager{
		sessionsDir: dir,
		metaPath:    filepath.Join(dir, "meta.json"),
	}

	if err := os.MkdirAll(m.sessionsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}

	// Initialize meta if not exists
	if _, err := os.Stat(m.metaPath); os.IsNotExist(err) {
		if err := m.saveMeta(&MetaIndex{Version: "1.0"}); err != nil {
			return nil, fmt.Errorf("failed to initialize meta index: %w", err)
		}
	}

	return m, nil
}

// StartSession creates a new session
func (m *Manager) StartSession(model, systemPrompt string) *Session {
	id := fmt.Sprintf("%s_%s",
		time.Now().Format("20060102_150405"),
		generateRandomID(6))

	return &Session{
		ID:           id,
		Version:      "1.0",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		Model:        model,
		SystemPrompt: systemPrompt,
		Messages:     nil,
	}
}

// SaveSession saves a session to disk and marks it as the most recent
func (m *Manager) SaveSession(session *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session.UpdatedAt = time.Now()

	if session.Metadata.Title == "" {
		session.Metadata.Title = generateTitle(session)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	filename := filepath.Join(m.sessionsDir, session.ID+".json")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	meta, err := m.loadMeta()
	if err != nil {
		return fmt.Errorf("failed to load meta: %w", err)
	}
	meta.LastSession = session.ID
	if err := m.saveMeta(meta); err != nil {
		return fmt.Errorf("failed to save meta: %w", err)
	}

	return nil
}

// LoadSession loads a session from disk
func (m *Manager) LoadSession(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filename := filepath.Join(m.sessionsDir, id+".json")
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// LastSession returns the most recently saved session
func (m *Manager) LastSession() (*Session, error) {
	meta, err := m.loadMeta()
	if err != nil {
		return nil, fmt.Errorf("failed to load meta: %w", err)
	}
	if meta.LastSession == "" {
		return nil, fmt.Errorf("no saved sessions")
	}
	return m.LoadSession(meta.LastSession)
}

// ListSessions returns summaries of all saved sessions, newest first
func (m *Manager) ListSessions() ([]SessionInfo, error) {
	entries, err := os.ReadDir(m.sessionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	var sessions []SessionInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == "meta.json" || !strings.HasSuffix(name, ".json") {
			continue
		}
		session, err := m.LoadSession(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		sessions = append(sessions, SessionInfo{
			ID:        session.ID,
			Title:     session.Metadata.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
			Messages:  len(session.Messages),
			Model:     session.Model,
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	return sessions, nil
}

func (m *Manager) loadMeta() (*MetaIndex, error) {
	data, err := os.ReadFile(m.metaPath)
	if err != nil {
		return nil, err
	}

	var meta MetaIndex
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (m *Manager) saveMeta(meta *MetaIndex) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(m.metaPath, data, 0644)
}

func generateTitle(session *Session) string {
	// Title from the first user text block
	for _, msg := range session.Messages {
		if msg.Role != "user" {
			continue
		}
		for _, block := range msg.Content {
			if block.Text == nil {
				continue
			}
			content := *block.Text
			if idx := strings.IndexByte(content, '\n'); idx != -1 {
				content = content[:idx]
			}
			if len(content) > 50 {
				content = content[:47] + "..."
			}
			return content
		}
	}

	return fmt.Sprintf("Session %s", session.CreatedAt.Format("Jan 02 15:04"))
}

func generateRandomID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, length)
	rand.Read(b)
	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}
	return string(b)
}
