// Command mediacompress is the CLI entrypoint for the batch media compressor.
//
// It parses flags, validates configuration and paths, and either runs
// system diagnostics (--check) or the compression run (single file or
// one folder level).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/browser"

	"github.com/danielnachumdev/media-compressor/internal/check"
	"github.com/danielnachumdev/media-compressor/internal/compress"
	"github.com/danielnachumdev/media-compressor/internal/config"
	"github.com/danielnachumdev/media-compressor/internal/display"
	"github.com/danielnachumdev/media-compressor/internal/logging"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "mediacompress: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "mediacompress: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mediacompress: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		check.RunCheck(log)
		return 0
	}

	log.Info("=== mediacompress v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.Source)
	log.Info("Out: %s", cfg.Dest)
	log.Info("Preset: %s | CPU: %g | Overwrite: %v", cfg.Preset, cfg.CPUFraction, cfg.Overwrite)
	log.Info("")

	// Fail fast if ffmpeg/ffprobe are unavailable.
	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// run can stop without leaving partial output behind unnoticed.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	// Phase 4: Run (dispatch → probe → supervise, sequentially per file).
	runner := compress.NewRunner(&cfg, log)
	stats, err := runner.Run(ctx)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	// OS-shell convenience only: open the destination after a clean run.
	if cfg.ShowFolder && stats.Failed == 0 {
		openDestination(log, &cfg)
	}

	if stats.Failed > 0 {
		return 1
	}
	return 0
}

// openDestination opens the destination folder in the OS file explorer.
// For a file destination the containing folder is opened.
func openDestination(log *logging.Logger, cfg *config.Config) {
	target := cfg.Dest
	if !config.IsFolderPath(target) {
		target = filepath.Dir(target)
	}
	if err := browser.OpenFile(target); err != nil {
		log.Warn("Could not open file explorer: %v", err)
	}
}
