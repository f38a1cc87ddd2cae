package compress

import (
	"context"
	"path/filepath"

	"github.com/danielnachumdev/media-compressor/internal/encoder"
	"github.com/danielnachumdev/media-compressor/internal/logging"
)

// ImageCompressor compresses still images through the same encoder binary
// using a quantizer scale. Images have no duration, so the supervisor shows
// an indeterminate spinner instead of a bounded bar.
type ImageCompressor struct {
	Sup *encoder.Supervisor
	Log *logging.Logger
}

func (i *ImageCompressor) Kind() string { return "image" }

func (i *ImageCompressor) Compress(ctx context.Context, job Job) error {
	name := filepath.Base(job.Source)
	args := encoder.BuildImageArgs(job.Source, job.Dest, job.ImageQuality, job.Threads)
	if err := i.Sup.Run(ctx, args, 0, "Compressing "+name); err != nil {
		return err
	}

	i.Log.Info("Saved to: %s", job.Dest)
	return nil
}
