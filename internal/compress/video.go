package compress

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/danielnachumdev/media-compressor/internal/display"
	"github.com/danielnachumdev/media-compressor/internal/encoder"
	"github.com/danielnachumdev/media-compressor/internal/logging"
	"github.com/danielnachumdev/media-compressor/internal/probe"
)

// VideoCompressor compresses video files via libx264. The source is probed
// first so the progress bar can be sized to the media's total duration.
type VideoCompressor struct {
	Sup *encoder.Supervisor
	Log *logging.Logger
}

func (v *VideoCompressor) Kind() string { return "video" }

// Compress probes the source for its duration, builds the encoder command,
// and hands it to the supervisor. A probe failure is a per-file error; the
// caller reports it and the batch continues.
func (v *VideoCompressor) Compress(ctx context.Context, job Job) error {
	pr, err := probe.Probe(ctx, job.Source)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}

	name := filepath.Base(pr.Filename)
	if name == "" || name == "." {
		name = filepath.Base(job.Source)
	}
	v.Log.Debug(v.Sup.Verbose, "Duration: %s", display.FormatDuration(pr.Duration))

	args := encoder.BuildVideoArgs(job.Source, job.Dest, job.Preset, job.Threads)
	if err := v.Sup.Run(ctx, args, pr.Duration, "Compressing "+name); err != nil {
		return err
	}

	v.Log.Info("Saved to: %s", job.Dest)
	return nil
}
