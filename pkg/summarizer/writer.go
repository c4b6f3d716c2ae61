package summarizer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes formatted summaries to the filesystem.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write renders the summary with the given formatter and writes it to path,
// creating parent directories as needed.
func (w *Writer) Write(path string, summary *Summary, formatter Formatter) error {
	content, err := formatter.Format(summary)
	if err != nil {
		return fmt.Errorf("format summary: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
