package summarizer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "summary.md")

	writer := NewWriter()
	if err := writer.Write(path, testSummary(), NewMarkdownFormatter()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "# Conversion Summary") {
		t.Errorf("written file missing header, got:\n%s", string(data))
	}
}

func TestWriter_FormatError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.md")

	failing := FormatFunc(func(summary *Summary) (string, error) {
		return "", os.ErrInvalid
	})

	writer := NewWriter()
	if err := writer.Write(path, testSummary(), failing); err == nil {
		t.Fatal("Write should fail when the formatter fails")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be written when formatting fails")
	}
}
