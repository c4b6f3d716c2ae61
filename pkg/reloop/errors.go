package reloop

import "errors"

// ErrInputNotFound is returned when the input path does not exist.
var ErrInputNotFound = errors.New("reloop: input file not found")

// ErrNoFrames is returned when the input decodes to zero frames.
var ErrNoFrames = errors.New("reloop: no frames found in the input file")
