package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the persisted tool defaults
type Config struct {
	DefaultModel     string `json:"default_model"`
	DefaultProfile   string `json:"default_profile,omitempty"`
	DefaultOutputDir string `json:"default_output_dir,omitempty"`
}

// Manager handles configuration persistence
type Manager struct {
	configPath string
	config     *Config
}

// NewManager creates a config manager rooted at ~/.bedrock-cli
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewManagerAt(filepath.Join(homeDir, ".bedrock-cli"))
}

// NewManagerAt creates a config manager rooted at the given directory
func NewManagerAt(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	m := &Manager{
		configPath: filepath.Join(dir, "config.json"),
		config:     &Config{},
	}

	// Load existing config if it exists
	if err := m.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return m, nil
}

// Load reads the configuration from disk
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, m.config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}

// Save writes the configuration to disk
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetDefaultModel returns the default model, falling back to the Nova
// Lite inference profile
func (m *Manager) GetDefaultModel() string {
	if m.config.DefaultModel == "" {
		return "us.amazon.nova-lite-v1:0"
	}
	return m.config.DefaultModel
}

// GetDefaultProfile returns the default AWS profile override, empty when
// the standard credential chain should be used
func (m *Manager) GetDefaultProfile() string {
	return m.config.DefaultProfile
}

// GetDefaultOutputDir returns the directory saved media is written to
func (m *Manager) GetDefaultOutputDir() string {
	if m.config.DefaultOutputDir == "" {
		return "."
	}
	return m.config.DefaultOutputDir
}

// SetDefaults updates and persists the defaults
func (m *Manager) SetDefaults(model, profile, outputDir string) error {
	m.config.DefaultModel = model
	m.config.DefaultProfile = profile
	m.config.DefaultOutputDir = outputDir
	return m.Save()
}
