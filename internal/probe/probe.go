// Package probe provides ffprobe-based media inspection. One JSON call per
// file returns the total duration (which sizes the progress bar) and the
// canonical filename.
package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Result holds the metadata the compressors need before launching an encode.
type Result struct {
	Filename string  // Canonical filename as reported by the probe.
	Duration float64 // Total duration in seconds; 0 when the container reports none.
}

// Probe runs a single ffprobe JSON call against path and returns the
// parsed result. Probe failure is a per-file error: the caller reports it
// and moves on to the next file.
func Probe(ctx context.Context, path string) (*Result, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a Result.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*Result, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return &Result{
		Filename: raw.Format.Filename,
		Duration: parseFloat(raw.Format.Duration),
	}, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format ffprobeFormat `json:"format"`
}

type ffprobeFormat struct {
	Filename string `json:"filename"`
	Duration string `json:"duration"`
}

// parseFloat tolerates the string-typed numbers ffprobe emits.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
