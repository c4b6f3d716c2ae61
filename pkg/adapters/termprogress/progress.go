// Package termprogress renders a terminal progress bar for long
// frame-by-frame operations. It stays silent when disabled or when
// stdout is not a terminal.
package termprogress

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// Reporter implements ports.Progress.
type Reporter struct {
	enabled bool
	out     io.Writer
	bar     *progressbar.ProgressBar
}

// Compile-time check that Reporter implements ports.Progress.
var _ ports.Progress = (*Reporter)(nil)

// New creates a Reporter that draws to stdout when it is a terminal.
func New() *Reporter {
	return &Reporter{
		enabled: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		out:     os.Stdout,
	}
}

// NewDisabled creates a Reporter that never draws anything.
func NewDisabled() *Reporter {
	return &Reporter{}
}

// Start begins a new bar. A total of -1 renders a spinner.
func (r *Reporter) Start(total int, description string) {
	if !r.enabled {
		return
	}

	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(r.out) }),
	)
}

// Add advances the bar by n steps.
func (r *Reporter) Add(n int) {
	if r.bar == nil {
		return
	}
	r.bar.Add(n)
}

// Finish completes and releases the current bar.
func (r *Reporter) Finish() {
	if r.bar == nil {
		return
	}
	r.bar.Finish()
	r.bar = nil
}
