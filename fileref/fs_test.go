package fileref

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestExpand_EnvVar(t *testing.T) {
	t.Setenv("FILEREF_TEST_DIR", "/data/media")
	got, err := Expand("$FILEREF_TEST_DIR/cat.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/data/media/cat.png" {
		t.Fatalf("expected env expansion, got %q", got)
	}
}

func TestExpand_Home(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := Expand("~/cat.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(home, "cat.png") {
		t.Fatalf("expected home expansion, got %q", got)
	}
}

func TestReadWriteBase64_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0xff, 0x01}

	src := filepath.Join(dir, "in.png")
	if err := os.WriteFile(src, original, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	encoded, err := ReadBase64(src)
	if err != nil {
		t.Fatalf("ReadBase64 failed: %v", err)
	}
	if encoded != base64.StdEncoding.EncodeToString(original) {
		t.Fatalf("unexpected encoding: %q", encoded)
	}

	dst := filepath.Join(dir, "out.png")
	if err := WriteBase64(dst, encoded); err != nil {
		t.Fatalf("WriteBase64 failed: %v", err)
	}
	decoded, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(decoded) != string(original) {
		t.Fatalf("round trip did not reproduce original bytes")
	}
}

func TestReadBase64_MissingFile(t *testing.T) {
	if _, err := ReadBase64(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWriteBase64_BadEncoding(t *testing.T) {
	if err := WriteBase64(filepath.Join(t.TempDir(), "out.bin"), "!!not-base64!!"); err == nil {
		t.Fatalf("expected error for invalid base64")
	}
}
