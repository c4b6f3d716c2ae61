// Package resolve implements the input resolution stage.
package resolve

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/micahamd/gif-tools/pkg/pipeline"
	"github.com/micahamd/gif-tools/pkg/ports"
)

// Stage expands glob patterns and filters the candidates down to
// existing MP4 files.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new resolve stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("resolve"),
	}
}

// Execute expands patterns and validates the candidates.
func (s *Stage) Execute(ctx context.Context, input pipeline.ResolveInput) (pipeline.ResolveResult, error) {
	result := pipeline.ResolveResult{}

	expanded := s.expand(input.Patterns)
	if len(expanded) == 0 {
		return result, ErrNoInputs
	}

	// Sanity check before filtering: a run with no MP4-looking input
	// proceeds, but the user gets a heads-up.
	if !anyMP4(expanded) {
		s.logger.Warn("No MP4 files found in inputs. Trying anyway...")
	}

	if len(expanded) > 1 {
		s.logger.Info("Processing %d files in sequence:", len(expanded))
		for i, file := range expanded {
			s.logger.Info("  %d. %s", i+1, filepath.Base(file))
		}
	}

	for _, path := range expanded {
		exists, err := s.fs.Exists(path)
		if err != nil || !exists {
			s.logger.Warn("File not found, skipping: %s", path)
			result.Skipped++
			continue
		}
		if !isMP4(path) {
			s.logger.Warn("Not an MP4 file, skipping: %s", path)
			result.Skipped++
			continue
		}
		result.Paths = append(result.Paths, path)
	}

	if len(result.Paths) == 0 {
		return result, ErrNoValidInputs
	}

	return result, nil
}

// expand turns glob patterns into concrete paths. Non-pattern inputs
// pass through untouched; validation happens later.
func (s *Stage) expand(patterns []string) []string {
	var expanded []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?") {
			expanded = append(expanded, pattern)
			continue
		}
		matches, err := s.fs.Glob(pattern)
		if err != nil || len(matches) == 0 {
			s.logger.Warn("No files match pattern '%s'", pattern)
			continue
		}
		expanded = append(expanded, matches...)
	}
	return expanded
}

func isMP4(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".mp4")
}

func anyMP4(paths []string) bool {
	for _, p := range paths {
		if isMP4(p) {
			return true
		}
	}
	return false
}
