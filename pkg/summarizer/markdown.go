package summarizer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NewMarkdownFormatter creates a Formatter that renders a Summary as Markdown.
func NewMarkdownFormatter() Formatter {
	return FormatFunc(formatMarkdown)
}

func formatMarkdown(summary *Summary) (string, error) {
	var b strings.Builder

	b.WriteString("# Conversion Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", summary.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("## Inputs\n\n")
	for i, path := range summary.Inputs.Paths {
		fmt.Fprintf(&b, "%d. %s\n", i+1, filepath.Base(path))
	}
	if summary.Inputs.Skipped > 0 {
		fmt.Fprintf(&b, "\n%d file(s) skipped.\n", summary.Inputs.Skipped)
	}
	fmt.Fprintf(&b, "\nTotal duration: %.1f seconds\n\n", summary.Inputs.TotalDurationSec)

	b.WriteString("## Settings\n\n")
	b.WriteString("| Setting | Value |\n")
	b.WriteString("|---------|-------|\n")
	fmt.Fprintf(&b, "| Quality | %s |\n", summary.Settings.Quality)
	fmt.Fprintf(&b, "| Frame rate | %d fps |\n", summary.Settings.FPS)
	fmt.Fprintf(&b, "| Geometry | %dx%d |\n", summary.Settings.Width, summary.Settings.Height)
	b.WriteString("\n")

	b.WriteString("## Output\n\n")
	fmt.Fprintf(&b, "- Path: %s\n", summary.Output.Path)
	fmt.Fprintf(&b, "- Frames: %d\n", summary.Output.FrameCount)
	fmt.Fprintf(&b, "- Loop duration: %.1f seconds\n", float64(summary.Output.DurationMs)/1000.0)
	fmt.Fprintf(&b, "- File size: %s\n", formatBytes(summary.Output.FileSize))

	return b.String(), nil
}

func formatBytes(size int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case size >= mb:
		return fmt.Sprintf("%.2f MB", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.2f KB", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%d bytes", size)
	}
}
