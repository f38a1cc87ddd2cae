package compress

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielnachumdev/media-compressor/internal/config"
	"github.com/danielnachumdev/media-compressor/internal/display"
	"github.com/danielnachumdev/media-compressor/internal/encoder"
	"github.com/danielnachumdev/media-compressor/internal/logging"
)

// compressedSuffix marks outputs written into a destination folder.
const compressedSuffix = " - COMPRESSED"

// Runner is the top-level orchestrator: it decides file vs folder mode from
// the configured paths and processes each file strictly sequentially, one
// encoder subprocess at a time.
type Runner struct {
	Config *config.Config
	Log    *logging.Logger

	// Dispatch selects a compressor for a path. Swappable in tests.
	Dispatch func(path string) (Compressor, error)
}

// NewRunner wires a Runner to the real extension dispatcher.
func NewRunner(cfg *config.Config, log *logging.Logger) *Runner {
	d := NewDispatcher(log, cfg.Verbose)
	return &Runner{Config: cfg, Log: log, Dispatch: d.ForPath}
}

// Run executes the configured compression. The returned error is a fatal
// configuration problem (missing source, unsupported single-file extension,
// empty folder scan); per-file encoder failures are counted in Stats and the
// batch continues.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	src, err := filepath.Abs(r.Config.Source)
	if err != nil {
		return stats, fmt.Errorf("resolve source: %w", err)
	}
	dst, err := filepath.Abs(r.Config.Dest)
	if err != nil {
		return stats, fmt.Errorf("resolve destination: %w", err)
	}

	if config.IsFolderPath(r.Config.Source) {
		err = r.runFolder(ctx, src, dst, &stats)
	} else {
		err = r.runFile(ctx, src, dst, &stats)
	}
	if err != nil {
		return stats, err
	}

	r.logSummary(&stats)
	return stats, nil
}

// runFile processes a single source→destination job.
func (r *Runner) runFile(ctx context.Context, src, dst string, stats *Stats) error {
	stats.Total = 1
	stats.Current = 1

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("source not found: %s", src)
	}

	comp, err := r.Dispatch(src)
	if err != nil {
		return err
	}

	if _, err := os.Stat(dst); err == nil {
		if !r.Config.Overwrite {
			r.Log.Warn("'%s' already exists, skipping (use --force to overwrite)", dst)
			stats.Skipped++
			return nil
		}
		if err := os.Remove(dst); err != nil {
			return fmt.Errorf("remove existing output: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	r.compressOne(ctx, comp, src, dst, fi.Size(), stats)
	return nil
}

// runFolder scans one directory level of src, filters by the approved
// extension set, and compresses each match into dst.
func (r *Runner) runFolder(ctx context.Context, src, dst string, stats *Stats) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("read source folder: %w", err)
	}

	// Top level only, approved extensions only. Everything else is
	// filtered silently.
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && approved(e.Name()) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no applicable files found in %s (supported extensions: %s)",
			src, strings.Join(ApprovedExtensions(), ", "))
	}

	if r.Config.Overwrite {
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("clear destination folder: %w", err)
		}
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("create destination folder: %w", err)
	}

	stats.Total = len(names)

	for i, name := range names {
		stats.Current = i + 1

		if ctx.Err() != nil {
			r.Log.Warn("Interrupted")
			break
		}

		r.Log.Info("[%d/%d] %s", stats.Current, stats.Total, name)

		inPath := filepath.Join(src, name)
		outPath := filepath.Join(dst, OutputName(name))

		if _, err := os.Stat(outPath); err == nil && !r.Config.Overwrite {
			r.Log.Debug(r.Config.Verbose, "Skip (exists): %s", filepath.Base(outPath))
			stats.Skipped++
			continue
		}

		comp, err := r.Dispatch(name)
		if err != nil {
			// Cannot happen for filtered names, but stay per-file safe.
			r.Log.Error("%v", err)
			stats.Failed++
			continue
		}

		var inSize int64
		if fi, err := os.Stat(inPath); err == nil {
			inSize = fi.Size()
		}

		r.compressOne(ctx, comp, inPath, outPath, inSize, stats)
	}

	return nil
}

// compressOne builds the job, runs the compressor, and updates counters.
// Failures are per-file: the supervisor has already printed the command for
// manual retry, so only bookkeeping remains here.
func (r *Runner) compressOne(ctx context.Context, comp Compressor, src, dst string, inSize int64, stats *Stats) {
	job := Job{
		Source:       src,
		Dest:         dst,
		Preset:       r.Config.Preset,
		ImageQuality: r.Config.ImageQuality,
		Threads:      encoder.ThreadCount(r.Config.CPUFraction),
	}

	if err := comp.Compress(ctx, job); err != nil {
		os.Remove(dst)
		stats.Failed++
		return
	}

	stats.Compressed++
	stats.TotalInputBytes += inSize
	if fi, err := os.Stat(dst); err == nil {
		stats.TotalOutputBytes += fi.Size()
		if inSize > 0 {
			ratio := fi.Size() * 100 / inSize
			r.Log.Debug(r.Config.Verbose, "  %s output is %d%% of original", comp.Kind(), ratio)
		}
	}
}

// OutputName returns the folder-mode output name for a source file name:
// "<name> - COMPRESSED<ext>".
func OutputName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + compressedSuffix + ext
}

func (r *Runner) logSummary(stats *Stats) {
	r.Log.Info("==============================")
	r.Log.Info("Done: %d compressed, %d skipped, %d failed",
		stats.Compressed, stats.Skipped, stats.Failed)

	saved := stats.SpaceSaved()
	if stats.Compressed == 0 {
		return
	}
	if saved >= 0 {
		r.Log.Success("Total space saved: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		r.Log.Warn("Total space saved: -%s (overall output is larger)",
			display.FormatBytes(-saved))
	}
}
