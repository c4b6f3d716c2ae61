// Package main provides the CLI entry point for giflooper.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/micahamd/gif-tools/pkg/adapters/gifenc"
	"github.com/micahamd/gif-tools/pkg/adapters/imageseq"
	"github.com/micahamd/gif-tools/pkg/adapters/logger"
	"github.com/micahamd/gif-tools/pkg/adapters/osfilesystem"
	"github.com/micahamd/gif-tools/pkg/adapters/termprogress"
	"github.com/micahamd/gif-tools/pkg/config"
	"github.com/micahamd/gif-tools/pkg/ports"
	"github.com/micahamd/gif-tools/pkg/reloop"
)

var version = "1.0.0"

// CLI defines the command-line interface.
type CLI struct {
	// Required arguments
	Input  string `arg:"" required:"" help:"Input animated image (GIF, APNG, or a still image)."`
	Output string `arg:"" optional:"" help:"Output GIF path (default: <input>_looped.gif)."`

	// Configuration
	Config string `help:"Path to a YAML configuration file."`

	// Progress options
	NoProgress bool `help:"Disable progress bars."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`

	// Version
	Version kong.VersionFlag `help:"Show version information."`
}

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("giflooper"),
		kong.Description("Rewrite an animated image so it loops forever."),
		kong.UsageOnError(),
		kong.Vars{"version": "giflooper " + version},
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the rewrite.
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

	var progress ports.Progress
	if cmd.NoProgress || cmd.Quiet {
		progress = termprogress.NewDisabled()
	} else {
		progress = termprogress.New()
	}

	stage := reloop.New(
		imageseq.New(),
		gifenc.New(),
		osfilesystem.New(),
		progress,
		log,
	)

	result, err := stage.Execute(ctx, reloop.Input{
		InputPath:  cmd.Input,
		OutputPath: cmd.Output,
	})
	if err != nil {
		return err
	}

	absPath, pathErr := filepath.Abs(result.OutputPath)
	if pathErr != nil {
		absPath = result.OutputPath
	}
	log.Info(l10n.T("Done! Your looping GIF is ready:"))
	log.Info("  " + absPath)

	return nil
}

// applyConfigDefaults folds file-level settings into flags the user
// left at their built-in defaults.
func (cmd *CLI) applyConfigDefaults(fileCfg config.Config) {
	if cmd.LogLevel == "info" && fileCfg.LogLevel != "" {
		cmd.LogLevel = fileCfg.LogLevel
	}
	cmd.Quiet = cmd.Quiet || fileCfg.Quiet
	cmd.NoProgress = cmd.NoProgress || fileCfg.NoProgress
}
