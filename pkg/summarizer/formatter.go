package summarizer

// Formatter converts a Summary into a rendered document.
type Formatter interface {
	Format(summary *Summary) (string, error)
}

// FormatFunc adapts a function to the Formatter interface.
type FormatFunc func(summary *Summary) (string, error)

// Format calls the underlying function.
func (f FormatFunc) Format(summary *Summary) (string, error) {
	return f(summary)
}
