package config

import (
	"testing"
)

func TestParsePreset_RoundTrip(t *testing.T) {
	for _, p := range Presets {
		t.Run(string(p), func(t *testing.T) {
			got, err := ParsePreset(string(p))
			if err != nil {
				t.Fatalf("ParsePreset(%q): %v", p, err)
			}
			if got != p {
				t.Errorf("ParsePreset(%q) = %q, want %q", p, got, p)
			}
		})
	}
}

func TestParsePreset_Invalid(t *testing.T) {
	tests := []string{"", "turbo", "MEDIUM", "medium ", "slowest", "placebo2"}
	for _, in := range tests {
		t.Run("invalid "+in, func(t *testing.T) {
			if _, err := ParsePreset(in); err == nil {
				t.Errorf("ParsePreset(%q) should fail", in)
			}
		})
	}
}

func TestIsFolderPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain file", "video.mp4", false},
		{"file in dir", "/media/video.mkv", false},
		{"plain folder", "output", true},
		{"nested folder", "/media/output", true},
		{"dotted dir segment ok", "/media.library/output", true},
		{"uppercase extension", "PHOTO.JPG", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFolderPath(tt.in); got != tt.want {
				t.Errorf("IsFolderPath(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/library", "/media/library"},
		{"single trailing slash", "/media/library/", "/media/library"},
		{"multiple trailing slashes", "/media/library///", "/media/library"},
		{"root path", "/", "/"},
		{"relative path", "output", "output"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_CPUFraction(t *testing.T) {
	tests := []struct {
		name    string
		frac    float64
		wantErr bool
	}{
		{"minimum is valid", 0.1, false},
		{"maximum is valid", 1.0, false},
		{"middle is valid", 0.5, false},
		{"zero is invalid", 0, true},
		{"below minimum", 0.05, true},
		{"above maximum", 1.5, true},
		{"negative", -0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip path requirement
			cfg.CPUFraction = tt.frac
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ImageQuality(t *testing.T) {
	tests := []struct {
		name    string
		q       int
		wantErr bool
	}{
		{"default is valid", 4, false},
		{"minimum is valid", 1, false},
		{"maximum is valid", 31, false},
		{"zero is invalid", 0, true},
		{"too high", 32, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.ImageQuality = tt.q
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_PathKinds(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		dst     string
		wantErr bool
	}{
		{"file to file", "in.mp4", "out.mp4", false},
		{"folder to folder", "in", "out", false},
		{"file to folder", "in.mp4", "out", true},
		{"folder to file", "in", "out.mp4", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Source = tt.src
			cfg.Dest = tt.dst
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source = ""
	cfg.Dest = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when paths are empty and CheckOnly is false")
	}

	cfg.Source = "/in.mp4"
	cfg.Dest = "/out.mp4"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_CheckOnlySkipsPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	cfg.Source = ""
	cfg.Dest = ""

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should pass with empty paths when CheckOnly is true, got: %v", err)
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Preset != PresetMedium {
		t.Errorf("default Preset = %q, want %q", cfg.Preset, PresetMedium)
	}
	if cfg.CPUFraction != 1.0 {
		t.Errorf("default CPUFraction = %g, want 1.0", cfg.CPUFraction)
	}
	if cfg.ImageQuality != 4 {
		t.Errorf("default ImageQuality = %d, want 4", cfg.ImageQuality)
	}
	if cfg.Overwrite {
		t.Error("default Overwrite should be false")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
}
