package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into compression, output behavior, display, and utility.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (e.g. unknown flag, invalid preset,
// missing positional args).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("mediacompress", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var showHelp, showVersion, forceColor, noColor bool

	fs.Var(&presetValue{&cfg.Preset}, "preset", "Encoder speed/quality preset")
	fs.Var(&presetValue{&cfg.Preset}, "p", "Same as --preset")
	fs.Float64Var(&cfg.CPUFraction, "cpu", cfg.CPUFraction, "Fraction of CPU cores to use (0.1-1.0)")
	fs.IntVar(&cfg.ImageQuality, "image-quality", cfg.ImageQuality, "Image quality scale, lower is better (1-31)")

	fs.BoolVar(&cfg.Overwrite, "force", false, "Overwrite existing outputs")
	fs.BoolVar(&cfg.Overwrite, "f", false, "Same as --force")
	fs.BoolVar(&cfg.ShowFolder, "show", false, "Open destination in the file explorer when done")

	fs.BoolVar(&forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")

	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&showVersion, "V", false, "Same as --version")
	fs.BoolVar(&showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&showHelp, "h", false, "Same as --help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}

	if showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "mediacompress v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// parsePositionalArgs sets Source and Dest from the two positional args when
// not in CheckOnly mode. Folder arguments keep their trailing-slash-free form
// so the lexical kind heuristic stays stable.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("need exactly source and destination")
	}
	cfg.Source = NormalizeDirArg(args[0])
	cfg.Dest = NormalizeDirArg(args[1])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "mediacompress v" + version + " - batch video/image compressor over ffmpeg"},
		{"", ""},
		{"  mediacompress [OPTIONS] <source> <destination>", ""},
		{"", ""},
		{"  Source and destination must be the same kind: file -> file or", ""},
		{"  folder -> folder. A path without a dot-extension counts as a folder.", ""},
		{"", ""},
		{"Compression", ""},
		{"  -p, --preset <name>", "Encoder preset (default: medium)"},
		{"  --cpu <0.1-1.0>", "Fraction of CPU cores for the encoder (default: 1.0)"},
		{"  --image-quality <1-31>", "Image quality scale, lower is better (default: 4)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -f, --force", "Overwrite existing outputs"},
		{"  --show", "Open destination in the file explorer when done"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe, encoders)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Presets", ""},
		{"  " + PresetList(), ""},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so the Preset enum can be used with flag.Var and fail
// at parse time on unknown tokens.

type presetValue struct{ p *Preset }

func (v *presetValue) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}

func (v *presetValue) Set(s string) error {
	p, err := ParsePreset(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}
