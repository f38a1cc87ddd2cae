package encoder

import (
	"context"
	"os/exec"
	"testing"

	"github.com/danielnachumdev/media-compressor/internal/config"
	"github.com/danielnachumdev/media-compressor/internal/logging"
)

func testSupervisor(t *testing.T) *Supervisor {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { log.Close() })
	return &Supervisor{Log: log}
}

func TestSupervisorRun_Success(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	s := testSupervisor(t)

	// A stand-in for the encoder: emits two progress markers on stderr
	// (carriage-return separated, like ffmpeg) and exits 0.
	args := []string{"sh", "-c",
		`printf 'time=00:00:01.00\rtime=00:00:02.00\r' >&2; exit 0`}

	if err := s.Run(context.Background(), args, 3, "test job"); err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestSupervisorRun_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	s := testSupervisor(t)

	args := []string{"sh", "-c", `echo 'codec error' >&2; exit 3`}
	if err := s.Run(context.Background(), args, 3, "failing job"); err == nil {
		t.Error("Run should return an error on non-zero exit")
	}
}

func TestSupervisorRun_LaunchFailure(t *testing.T) {
	s := testSupervisor(t)

	args := []string{"definitely-not-a-real-encoder-binary", "-i", "x"}
	if err := s.Run(context.Background(), args, 3, "unlaunchable"); err == nil {
		t.Error("Run should return an error when the process cannot start")
	}
}
