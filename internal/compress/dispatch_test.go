package compress

import (
	"strings"
	"testing"

	"github.com/danielnachumdev/media-compressor/internal/config"
	"github.com/danielnachumdev/media-compressor/internal/logging"
)

func testLogger(t *testing.T) *logging.Logger {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { log.Close() })
	return log
}

func TestDispatcher_ForExtension(t *testing.T) {
	d := NewDispatcher(testLogger(t), false)

	tests := []struct {
		name     string
		ext      string
		wantKind string
		wantErr  bool
	}{
		{"mp4 is video", ".mp4", "video", false},
		{"mkv is video", ".mkv", "video", false},
		{"avi is video", ".avi", "video", false},
		{"mov is video", ".mov", "video", false},
		{"jpg is image", ".jpg", "image", false},
		{"jpeg is image", ".jpeg", "image", false},
		{"png is image", ".png", "image", false},
		{"tiff is image", ".tiff", "image", false},
		{"cr2 is image", ".cr2", "image", false},
		{"uppercase normalized", ".JPG", "image", false},
		{"missing dot normalized", "mp4", "video", false},
		{"txt unsupported", ".txt", "", true},
		{"mp3 unsupported", ".mp3", "", true},
		{"empty unsupported", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := d.ForExtension(tt.ext)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ForExtension(%q) error = %v, wantErr %v", tt.ext, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if c.Kind() != tt.wantKind {
				t.Errorf("ForExtension(%q).Kind() = %q, want %q", tt.ext, c.Kind(), tt.wantKind)
			}
		})
	}
}

func TestDispatcher_UnsupportedListsExtensions(t *testing.T) {
	d := NewDispatcher(testLogger(t), false)
	_, err := d.ForExtension(".txt")
	if err == nil {
		t.Fatal("expected error for .txt")
	}
	for _, ext := range []string{".mp4", ".mkv", ".jpg", ".cr2"} {
		if !strings.Contains(err.Error(), ext) {
			t.Errorf("error should list %s, got: %v", ext, err)
		}
	}
}

func TestDispatcher_ForPath(t *testing.T) {
	d := NewDispatcher(testLogger(t), false)
	c, err := d.ForPath("/some/dir/Holiday Video.MOV")
	if err != nil {
		t.Fatalf("ForPath: %v", err)
	}
	if c.Kind() != "video" {
		t.Errorf("Kind() = %q, want video", c.Kind())
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a.jpg", "a - COMPRESSED.jpg"},
		{"movie.mp4", "movie - COMPRESSED.mp4"},
		{"two.dots.mkv", "two.dots - COMPRESSED.mkv"},
		{"spaces in name.png", "spaces in name - COMPRESSED.png"},
	}
	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApprovedExtensions_Sorted(t *testing.T) {
	exts := ApprovedExtensions()
	if len(exts) != 9 {
		t.Fatalf("got %d extensions, want 9: %v", len(exts), exts)
	}
	for i := 1; i < len(exts); i++ {
		if exts[i] < exts[i-1] {
			t.Errorf("not sorted: %q before %q", exts[i-1], exts[i])
		}
	}
}
