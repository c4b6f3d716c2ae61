// Package ffmpegdecoder decodes video files into RGBA frames using an
// ffmpeg external process streaming rawvideo over a pipe.
package ffmpegdecoder

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/micahamd/gif-tools/pkg/ports"
)

// Decoder implements ports.FrameStreamer on top of an ffmpeg child
// process. A zero path uses the discovery chain of FindFFmpeg.
type Decoder struct {
	ffmpegPath string
}

// Compile-time check that Decoder implements ports.FrameStreamer.
var _ ports.FrameStreamer = (*Decoder)(nil)

// New creates a Decoder that discovers ffmpeg automatically.
func New() *Decoder {
	return &Decoder{}
}

// NewWithPath creates a Decoder bound to an explicit ffmpeg binary.
func NewWithPath(path string) *Decoder {
	return &Decoder{ffmpegPath: path}
}

// IsAvailable checks if ffmpeg is available on the system.
func IsAvailable() bool {
	_, err := FindFFmpeg()
	return err == nil
}

// FindFFmpeg searches for ffmpeg in PATH and common locations.
// Priority: 1) FFMPEG_PATH env, 2) PATH, 3) common install locations.
func FindFFmpeg() (string, error) {
	// Check FFMPEG_PATH environment variable
	if envPath := os.Getenv("FFMPEG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: FFMPEG_PATH %s not found", ErrFFmpegNotFound, envPath)
	}

	// Check PATH
	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}

	path, err := exec.LookPath(execName)
	if err == nil {
		return path, nil
	}

	// Check common locations
	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files (x86)\ffmpeg\bin\ffmpeg.exe`,
		}
	} else if runtime.GOOS == "darwin" {
		commonPaths = []string{
			"/opt/homebrew/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/usr/bin/ffmpeg",
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}

	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// Version reports the first line of `ffmpeg -version`.
func Version() (string, error) {
	path, err := FindFFmpeg()
	if err != nil {
		return "", err
	}

	out, err := exec.Command(path, "-version").Output()
	if err != nil {
		return "", fmt.Errorf("ffmpeg -version: %w", err)
	}

	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}

// findBinary resolves the binary for this Decoder. An explicit path
// that does not exist is an error, not a fallback.
func (d *Decoder) findBinary() (string, error) {
	if d.ffmpegPath != "" {
		if _, err := os.Stat(d.ffmpegPath); err == nil {
			return d.ffmpegPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, d.ffmpegPath)
	}
	return FindFFmpeg()
}

// OpenStream starts an ffmpeg process decoding the clip into raw RGBA
// frames. Zero values in opts fall back to the clip's native rate and
// geometry. The returned stream must be closed on every path.
func (d *Decoder) OpenStream(ctx context.Context, info ports.ClipInfo, opts ports.DecodeOptions) (ports.FrameStream, error) {
	ffmpegPath, err := d.findBinary()
	if err != nil {
		return nil, err
	}

	width, height := opts.Width, opts.Height
	if width == 0 {
		width = info.Width
	}
	if height == 0 {
		height = info.Height
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	args := buildArgs(info.Path, width, height, opts.FPS)

	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}

	finish := func() error {
		if err := cmd.Wait(); err != nil {
			return fmt.Errorf("ffmpeg decode failed: %w\nstderr: %s", err, stderr.String())
		}
		return nil
	}
	abort := func() {
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		cmd.Wait()
	}

	return newFrameStream(stdout, width, height, finish, abort), nil
}

// buildArgs assembles the ffmpeg invocation for rawvideo streaming.
// The scale filter is always explicit so the frame byte count on the
// pipe matches width*height*4 even for anamorphic sources.
func buildArgs(path string, width, height, fps int) []string {
	args := []string{
		"-v", "error", // Errors only on stderr
		"-i", path,
		"-f", "rawvideo", // Output format
		"-pix_fmt", "rgba", // Output pixel format
	}

	var filters []string
	if fps > 0 {
		filters = append(filters, fmt.Sprintf("fps=%d", fps))
	}
	filters = append(filters, fmt.Sprintf("scale=%d:%d", width, height))

	args = append(args, "-vf", strings.Join(filters, ","))
	args = append(args, "pipe:1")
	return args
}
