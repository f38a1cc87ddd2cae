package compress

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/danielnachumdev/media-compressor/internal/config"
	"github.com/danielnachumdev/media-compressor/internal/encoder"
	"github.com/danielnachumdev/media-compressor/internal/logging"
)

// Job is one source→destination compression request with resolved preset and
// options. Built per file at dispatch time, immutable once built, discarded
// after the subprocess completes.
type Job struct {
	Source       string
	Dest         string
	Preset       config.Preset
	ImageQuality int
	Threads      int
}

// Compressor compresses one file. Implementations build the encoder command
// line and delegate execution (and progress display) to the supervisor.
type Compressor interface {
	// Kind names the media kind ("video" or "image") for logging.
	Kind() string
	Compress(ctx context.Context, job Job) error
}

// Extension allow-lists (lowercase, with leading dot). Only these are
// processed; anything else is filtered out of folder scans silently and
// rejected explicitly for single files.
var videoExtensions = map[string]bool{
	".mp4": true,
	".avi": true,
	".mov": true,
	".mkv": true,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
	".cr2":  true,
}

// ApprovedExtensions returns the full allow-list sorted for diagnostics.
func ApprovedExtensions() []string {
	exts := make([]string, 0, len(videoExtensions)+len(imageExtensions))
	for e := range videoExtensions {
		exts = append(exts, e)
	}
	for e := range imageExtensions {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return exts
}

// Dispatcher selects a Compressor by normalized file extension.
type Dispatcher struct {
	video Compressor
	image Compressor
}

// NewDispatcher wires the two concrete compressors to a shared supervisor.
func NewDispatcher(log *logging.Logger, verbose bool) *Dispatcher {
	sup := &encoder.Supervisor{Log: log, Verbose: verbose}
	return &Dispatcher{
		video: &VideoCompressor{Sup: sup, Log: log},
		image: &ImageCompressor{Sup: sup, Log: log},
	}
}

// ForExtension returns the compressor for ext (case-insensitive, with or
// without leading dot). Unsupported extensions return an explicit error
// listing the supported set.
func (d *Dispatcher) ForExtension(ext string) (Compressor, error) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	switch {
	case videoExtensions[ext]:
		return d.video, nil
	case imageExtensions[ext]:
		return d.image, nil
	default:
		return nil, fmt.Errorf("unsupported extension %q (supported: %s)",
			ext, strings.Join(ApprovedExtensions(), ", "))
	}
}

// ForPath is a convenience wrapper dispatching on the path's extension.
func (d *Dispatcher) ForPath(path string) (Compressor, error) {
	return d.ForExtension(filepath.Ext(path))
}

// approved reports whether a file name carries an allow-listed extension.
func approved(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return videoExtensions[ext] || imageExtensions[ext]
}
