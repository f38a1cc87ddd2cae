// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. All defaults match the behavior of the original compress tool.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// Preset is a named ffmpeg speed/quality tradeoff token. The set is closed:
// anything outside it is a fatal configuration error, not a runtime fault.
type Preset string

const (
	PresetUltrafast Preset = "ultrafast"
	PresetSuperfast Preset = "superfast"
	PresetVeryfast  Preset = "veryfast"
	PresetFaster    Preset = "faster"
	PresetFast      Preset = "fast"
	PresetMedium    Preset = "medium" // Default.
	PresetSlow      Preset = "slow"
	PresetSlower    Preset = "slower"
	PresetVeryslow  Preset = "veryslow"
	PresetPlacebo   Preset = "placebo"
)

// Presets lists every valid preset token in speed order (fastest first).
var Presets = []Preset{
	PresetUltrafast, PresetSuperfast, PresetVeryfast, PresetFaster,
	PresetFast, PresetMedium, PresetSlow, PresetSlower,
	PresetVeryslow, PresetPlacebo,
}

// ParsePreset resolves a preset token by exact string match. The returned
// Preset round-trips to the same token.
func ParsePreset(s string) (Preset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid preset %q (use one of: %s)", s, PresetList())
}

// PresetList returns all valid preset tokens joined for diagnostics.
func PresetList() string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// CPU fraction bounds: the resource-utilization hint passed to the encoder
// as a thread count must stay within these limits.
const (
	CPUFractionMin = 0.1
	CPUFractionMax = 1.0
)

// Image quality bounds (ffmpeg -q:v scale; lower is better quality).
const (
	ImageQualityMin = 1
	ImageQualityMax = 31
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths (set from positional args).
	Source string
	Dest   string

	// Compression settings.
	Preset       Preset  // Default: "medium".
	CPUFraction  float64 // Default: 1.0. Range 0.1-1.0; scales the encoder thread hint.
	ImageQuality int     // Default: 4. ffmpeg -q:v for image outputs (1-31).

	// Behavior flags.
	Overwrite bool // Default: false. Set by --force.

	// Display and logging.
	Verbose    bool
	ShowFolder bool      // Open the destination in the OS file explorer when done.
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	CheckOnly  bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Preset:       PresetMedium,
		CPUFraction:  1.0,
		ImageQuality: 4,
		Overwrite:    false,
		Verbose:      false,
		ShowFolder:   false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// IsFolderPath reports whether a path is treated as a directory. The rule is
// purely lexical: any path whose final segment lacks a dot-extension is a
// folder, so "out" is a folder and "out.mp4" is a file regardless of what
// exists on disk.
func IsFolderPath(path string) bool {
	return filepath.Ext(path) == ""
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and range fields, and that source and destination are
// the same kind (both files or both folders). When not in CheckOnly mode, it
// also requires that both paths are non-empty.
func (c *Config) Validate() error {
	if _, err := ParsePreset(string(c.Preset)); err != nil {
		return err
	}

	if c.CPUFraction < CPUFractionMin || c.CPUFraction > CPUFractionMax {
		return fmt.Errorf("cpu fraction must be between %.1f and %.1f (got %g)",
			CPUFractionMin, CPUFractionMax, c.CPUFraction)
	}

	if c.ImageQuality < ImageQualityMin || c.ImageQuality > ImageQualityMax {
		return fmt.Errorf("image quality must be between %d and %d (got %d)",
			ImageQualityMin, ImageQualityMax, c.ImageQuality)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.Source == "" || c.Dest == "" {
		return errors.New("need exactly source and destination")
	}

	srcIsFolder := IsFolderPath(c.Source)
	dstIsFolder := IsFolderPath(c.Dest)
	if !srcIsFolder && dstIsFolder {
		return errors.New("source is a file while destination is a folder")
	}
	if srcIsFolder && !dstIsFolder {
		return errors.New("source is a folder while destination is a file")
	}
	return nil
}
