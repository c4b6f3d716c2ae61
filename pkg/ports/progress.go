package ports

// Progress abstracts per-frame progress reporting during long
// operations. A total of -1 means the frame count is not known in
// advance.
type Progress interface {
	// Start begins a new progress run with the given total and
	// description.
	Start(total int, description string)

	// Add advances the progress by n units.
	Add(n int)

	// Finish completes the current run and clears the display.
	Finish()
}
