package ports

// FileSystem abstracts file system operations.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error

	// Glob returns the names of all files matching a shell pattern,
	// sorted lexically. A pattern matching nothing returns an empty
	// slice, not an error.
	Glob(pattern string) ([]string, error)

	// FileSize returns the size of a file in bytes.
	FileSize(path string) (int64, error)
}
