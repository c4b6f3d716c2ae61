// Package main provides the CLI entry point for gifcreator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/micahamd/gif-tools/pkg/adapters/ffmpegdecoder"
	"github.com/micahamd/gif-tools/pkg/adapters/filesink"
	"github.com/micahamd/gif-tools/pkg/adapters/gifenc"
	"github.com/micahamd/gif-tools/pkg/adapters/imageops"
	"github.com/micahamd/gif-tools/pkg/adapters/logger"
	"github.com/micahamd/gif-tools/pkg/adapters/mp4probe"
	"github.com/micahamd/gif-tools/pkg/adapters/nullsink"
	"github.com/micahamd/gif-tools/pkg/adapters/osfilesystem"
	"github.com/micahamd/gif-tools/pkg/adapters/termprogress"
	"github.com/micahamd/gif-tools/pkg/config"
	"github.com/micahamd/gif-tools/pkg/giftools"
	"github.com/micahamd/gif-tools/pkg/orchestrator"
	"github.com/micahamd/gif-tools/pkg/ports"
	"github.com/micahamd/gif-tools/pkg/stages/concat"
	"github.com/micahamd/gif-tools/pkg/stages/encode"
	"github.com/micahamd/gif-tools/pkg/stages/extract"
	"github.com/micahamd/gif-tools/pkg/stages/plan"
	"github.com/micahamd/gif-tools/pkg/stages/probe"
	"github.com/micahamd/gif-tools/pkg/stages/resolve"
	"github.com/micahamd/gif-tools/pkg/stages/transform"
	"github.com/micahamd/gif-tools/pkg/summarizer"
)

// tipSizeBytes is the output size above which the CLI suggests
// smaller-file options.
const tipSizeBytes = 10 * 1024 * 1024

var version = "2.0.0"

// CLI defines the command-line interface.
type CLI struct {
	// Required arguments
	Inputs []string `arg:"" required:"" help:"Input MP4 file(s); glob patterns like 'clips/*.mp4' are expanded."`

	// Output
	Output string `short:"o" help:"Output GIF path (default: first input with .gif extension)."`

	// Conversion options
	FPS     int    `default:"10" help:"Output frame rate (10 defers to the quality preset)."`
	Width   int    `help:"Output width in pixels; height keeps the aspect ratio."`
	Quality string `short:"q" default:"medium" enum:"low,medium,high" help:"Quality preset (low, medium, high)."`

	// Decoder options
	FFmpeg string `name:"ffmpeg" help:"Path to the ffmpeg binary (default: search PATH)."`

	// Reporting
	Summary string `help:"Output conversion summary to file (Markdown format)."`

	// Configuration
	Config string `help:"Path to a YAML configuration file."`

	// Progress options
	NoProgress bool `help:"Disable progress bars."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`

	// Version
	Version kong.VersionFlag `help:"Show version information."`
}

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("gifcreator"),
		kong.Description("Convert MP4 videos into a continuously looping GIF."),
		kong.UsageOnError(),
		kong.Vars{"version": "gifcreator " + version},
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the conversion.
func (cmd *CLI) Run() error {
	// Load optional config file; its values become flag defaults
	fileCfg := config.Defaults()
	if cmd.Config != "" {
		var err error
		fileCfg, err = config.LoadFromFile(cmd.Config)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	cmd.applyConfigDefaults(fileCfg)

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	ops := imageops.New()
	prober := mp4probe.New()

	var decoder *ffmpegdecoder.Decoder
	if cmd.FFmpeg != "" {
		decoder = ffmpegdecoder.NewWithPath(cmd.FFmpeg)
	} else {
		decoder = ffmpegdecoder.New()
	}
	if v, err := ffmpegdecoder.Version(); err == nil {
		log.Debug("Using %s", v)
	}

	var progress ports.Progress
	if cmd.NoProgress || cmd.Quiet {
		progress = termprogress.NewDisabled()
	} else {
		progress = termprogress.New()
	}

	// Create debug sink
	var sink ports.DebugSink
	if cmd.Debug {
		if err := fs.MkdirAll(cmd.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cmd.DebugDir, fs, ops)
	} else {
		sink = nullsink.New()
	}

	// Create the pipeline
	orch := orchestrator.New(
		resolve.NewStage(fs, log),
		probe.NewStage(prober, sink, log),
		plan.NewStage(log),
		extract.NewStage(decoder, sink, progress, log),
		transform.NewStage(ops, sink, log),
		concat.NewStage(log),
		encode.NewStage(gifenc.New(), progress, log),
		fs,
		log,
	)

	orchCfg := cmd.buildConfig(fileCfg).ToOrchestratorConfig(cmd.Inputs, cmd.Output)

	result, err := orch.Run(ctx, orchCfg)
	if err != nil {
		log.Error(l10n.T("Make sure ffmpeg is installed and on your PATH:"))
		log.Error("  https://ffmpeg.org/download.html")
		return err
	}

	absPath, pathErr := filepath.Abs(result.OutputPath)
	if pathErr != nil {
		absPath = result.OutputPath
	}
	log.Info(l10n.T("Done! Your looping GIF is ready:"))
	log.Info("  " + absPath)

	cmd.printSizeTip(log, result)

	if cmd.Summary != "" {
		if err := cmd.writeSummary(result); err != nil {
			log.Warn(l10n.F("Failed to write summary: %s", err))
		} else {
			log.Info(l10n.F("Summary saved to %s", cmd.Summary))
		}
	}

	return nil
}

// applyConfigDefaults folds file-level settings into flags the user
// left at their built-in defaults.
func (cmd *CLI) applyConfigDefaults(fileCfg config.Config) {
	if cmd.FFmpeg == "" {
		cmd.FFmpeg = fileCfg.FFmpegPath
	}
	if cmd.Quality == string(giftools.QualityMedium) && fileCfg.Quality != "" {
		cmd.Quality = fileCfg.Quality
	}
	if cmd.FPS == giftools.DefaultFPS && fileCfg.FPS > 0 {
		cmd.FPS = fileCfg.FPS
	}
	if cmd.Width == 0 && fileCfg.Width > 0 {
		cmd.Width = fileCfg.Width
	}
	if cmd.LogLevel == "info" && fileCfg.LogLevel != "" {
		cmd.LogLevel = fileCfg.LogLevel
	}
	if cmd.DebugDir == "./debug" && fileCfg.DebugDir != "" {
		cmd.DebugDir = fileCfg.DebugDir
	}
	cmd.Quiet = cmd.Quiet || fileCfg.Quiet
	cmd.NoProgress = cmd.NoProgress || fileCfg.NoProgress
	cmd.Debug = cmd.Debug || fileCfg.Debug
}

// buildConfig creates a giftools.Config from the preset and CLI
// overrides.
func (cmd *CLI) buildConfig(fileCfg config.Config) giftools.Config {
	preset := giftools.QualityPreset(cmd.Quality)
	builder := giftools.NewConfigBuilder().
		WithQualityPreset(preset).
		WithFPS(cmd.FPS).
		WithWidth(cmd.Width).
		WithFFmpegPath(cmd.FFmpeg)

	// File-level preset overrides replace the built-in parameters
	if override, ok := fileCfg.PresetOverride(cmd.Quality); ok {
		settings := giftools.GetQualitySettings(preset)
		if override.FPS > 0 {
			settings.FPS = override.FPS
		}
		if override.ScaleFactor > 0 {
			settings.ScaleFactor = override.ScaleFactor
		}
		builder.WithQualitySettings(settings)
	}

	return builder.Build()
}

// printSizeTip suggests smaller-file reruns for outputs above the tip
// threshold.
func (cmd *CLI) printSizeTip(log ports.Logger, result orchestrator.RunResult) {
	if result.FileSizeBytes <= tipSizeBytes {
		return
	}

	sizeMB := float64(result.FileSizeBytes) / 1024 / 1024
	quoted := make([]string, len(result.InputPaths))
	for i, p := range result.InputPaths {
		quoted[i] = fmt.Sprintf("\"%s\"", p)
	}
	args := strings.Join(quoted, " ")

	log.Info(l10n.F("Tip: File is %.1fMB. For smaller files, try:", sizeMB))
	log.Info(fmt.Sprintf("  gifcreator %s --quality low", args))
	log.Info(fmt.Sprintf("  gifcreator %s --width 400", args))
}

// writeSummary writes a markdown conversion summary.
func (cmd *CLI) writeSummary(result orchestrator.RunResult) error {
	summary := summarizer.NewBuilder().
		WithInputs(result.InputPaths, result.SkippedInputs, result.TotalDurationSec).
		WithSettings(summarizer.Settings{
			Quality: cmd.Quality,
			FPS:     result.FPS,
			Width:   result.Width,
			Height:  result.Height,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:       result.OutputPath,
			FrameCount: result.FrameCount,
			DurationMs: result.DurationMs,
			FileSize:   result.FileSizeBytes,
		}).
		Build()

	return summarizer.NewWriter().Write(cmd.Summary, summary, summarizer.NewMarkdownFormatter())
}
