package resolve

import "errors"

// ErrNoInputs is returned when glob expansion yields no input files
// at all.
var ErrNoInputs = errors.New("resolve: no input files specified or found")

// ErrNoValidInputs is returned when inputs were given but none
// survived existence and extension filtering.
var ErrNoValidInputs = errors.New("resolve: no valid MP4 files found")
