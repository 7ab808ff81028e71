package fileref

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a leading ~ and any $VAR / ${VAR} environment
// references in a local path. Relative paths stay relative.
func Expand(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return os.ExpandEnv(path), nil
}

// ReadBase64 reads the contents of path into an RFC 4648 base64 string.
// Paths support ~ and env variables.
func ReadBase64(path string) (string, error) {
	expanded, err := Expand(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// WriteBase64 writes the binary decoding of an RFC 4648 base64 string to
// path. Paths support ~ and env variables.
func WriteBase64(path, encoded string) error {
	expanded, err := Expand(path)
	if err != nil {
		return err
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("failed to decode base64 payload for %s: %w", path, err)
	}
	return os.WriteFile(expanded, data, 0644)
}
