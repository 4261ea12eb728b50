package romloader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestExtractFromRAR_FileNotFound tests error handling for missing files
func TestExtractFromRAR_FileNotFound(t *testing.T) {
	_, _, err := extractFromRAR("/nonexistent/path/test.rar")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

// TestExtractFromRAR_InvalidFormat tests error handling for non-RAR files
func TestExtractFromRAR_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.rar")
	if err := os.WriteFile(path, []byte("not a rar file"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, _, err := extractFromRAR(path)
	if err == nil {
		t.Error("Expected error for invalid RAR file")
	}
}

// TestLoad_RAR_Corrupt tests that Load routes corrupted RAR files to
// the RAR extractor and fails gracefully
func TestLoad_RAR_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.rar")

	// Valid magic but corrupted data
	content := append(append([]byte{}, magicRAR...), make([]byte, 64)...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, _, err := Load(path)
	if err == nil {
		t.Error("Expected error loading invalid RAR file")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Error("RAR file reported as unsupported format")
	}
}
