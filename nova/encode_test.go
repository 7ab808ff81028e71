package nova

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/quarterturn/bedrock-cli/fileref"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestAttachmentBlock_LocalImage(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	path := writeFixture(t, "cat.png", raw)

	ref, err := fileref.Classify(path)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	block, err := AttachmentBlock(ref)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if block.Image == nil {
		t.Fatalf("expected image block, got %s", block.Tag())
	}
	if block.Image.Format != "png" {
		t.Fatalf("expected png format, got %q", block.Image.Format)
	}
	if block.Image.Source.Bytes != base64.StdEncoding.EncodeToString(raw) {
		t.Fatalf("inline bytes do not match base64 of file contents")
	}
}

func TestAttachmentBlock_LocalDocumentCarriesStem(t *testing.T) {
	path := writeFixture(t, "notes.pdf", []byte("%PDF-1.4"))

	ref, err := fileref.Classify(path)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	block, err := AttachmentBlock(ref)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if block.Document == nil {
		t.Fatalf("expected document block, got %s", block.Tag())
	}
	if block.Document.Name != "notes" {
		t.Fatalf("expected stem as display name, got %q", block.Document.Name)
	}
	if block.Document.Format != "pdf" {
		t.Fatalf("expected pdf format, got %q", block.Document.Format)
	}
}

func TestAttachmentBlock_S3VideoReadsNoBytes(t *testing.T) {
	// No such file exists anywhere; encoding must still succeed because
	// S3 references are sent by location.
	ref, err := fileref.Classify("s3://bucket/movie.webm")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	block, err := AttachmentBlock(ref)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if block.Video == nil {
		t.Fatalf("expected video block, got %s", block.Tag())
	}
	if block.Video.Source.Bytes != "" {
		t.Fatalf("expected no inline bytes for s3 video")
	}
	if block.Video.Source.S3Location == nil || block.Video.Source.S3Location.URI != "s3://bucket/movie.webm" {
		t.Fatalf("expected s3 location source, got %+v", block.Video.Source)
	}
}

func TestAttachmentBlock_S3ImageRejected(t *testing.T) {
	ref, err := fileref.Classify("s3://bucket/cat.png")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	_, err = AttachmentBlock(ref)
	var combErr *UnsupportedCombinationError
	if !errors.As(err, &combErr) {
		t.Fatalf("expected UnsupportedCombinationError, got %v", err)
	}
	if combErr.Path != "s3://bucket/cat.png" {
		t.Fatalf("error should carry the path, got %q", combErr.Path)
	}
}

func TestAttachmentBlock_S3DocumentRejected(t *testing.T) {
	ref, err := fileref.Classify("s3://bucket/report.pdf")
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if _, err := AttachmentBlock(ref); err == nil {
		t.Fatalf("expected error for s3 document")
	}
}

func TestAttachmentBlock_MissingLocalFile(t *testing.T) {
	ref, err := fileref.Classify(filepath.Join(t.TempDir(), "absent.jpg"))
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	_, err = AttachmentBlock(ref)
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected ReadError, got %v", err)
	}
}
