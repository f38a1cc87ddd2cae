// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation for the ffmpeg and ffprobe collaborators.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of ffmpeg
// and ffprobe and runs short test encodes for the codecs the compressors
// use. Informational only; it does not stop on failure.
func RunCheck(log Logger) {
	log.Info("=== System Check ===")

	checkTool(log, "ffmpeg")
	checkTool(log, "ffprobe")
	checkX264(log)
	checkAAC(log)
	checkMJPEG(log)
}

// checkTool verifies a binary is on PATH and logs its version string.
func checkTool(log Logger, name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return
	}
	cmd := exec.Command(name, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
}

// checkX264 runs a minimal libx264 encode to verify video compression works.
func checkX264(log Logger) {
	log.Info("Testing libx264...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", "libx264",
		"-f", "null", "-",
	) {
		log.Success("libx264 works")
	} else {
		log.Error("libx264 test encode failed")
	}
}

// checkAAC runs a minimal AAC encode to verify the audio encoder works.
func checkAAC(log Logger) {
	log.Info("Testing AAC encoder...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", "aac", "-f", "null", "-",
	) {
		log.Success("AAC encoder works")
	} else {
		log.Error("AAC encoder test failed")
	}
}

// checkMJPEG verifies the image quantizer path used for still images.
func checkMJPEG(log Logger) {
	log.Info("Testing image encode...")
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=64x64:d=0.1",
		"-frames:v", "1", "-q:v", "4",
		"-f", "image2", "-c:v", "mjpeg", "-",
	) {
		log.Success("Image encode works")
	} else {
		log.Error("Image test encode failed")
	}
}

// CheckDeps is the pre-run validation: ffmpeg and ffprobe must be on PATH.
// Returns a sentinel error on failure.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
