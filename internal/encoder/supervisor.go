package encoder

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/danielnachumdev/media-compressor/internal/logging"
)

// stderrTail is how many trailing diagnostic lines are kept for the error
// report when the encoder fails.
const stderrTail = 20

// Supervisor runs the external encoder for one job and surfaces live
// progress without blocking on final output.
type Supervisor struct {
	Log     *logging.Logger
	Verbose bool
}

// Run launches the encoder command, drains its diagnostic stream while the
// process executes, and renders a bounded progress bar sized by
// totalSeconds (0 means unknown: an indeterminate spinner is shown).
//
// Exit code 0 forces progress to 100% and emits a success line. Any failure
// is reported with the exact command line for manual retry and returned to
// the caller; a batch treats it as a per-file error and continues.
func (s *Supervisor) Run(ctx context.Context, args []string, totalSeconds float64, desc string) error {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("attach diagnostic pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		s.reportFailure(args, nil, err)
		return fmt.Errorf("start %s: %w", args[0], err)
	}

	state := NewProgressState(totalSeconds)
	bar := s.newBar(state, desc)

	// Drain the diagnostic stream while the child runs. This loop blocks on
	// the pipe, not on process exit, so ffmpeg never stalls on back-pressure.
	var tail []string
	sc := newDiagnosticScanner(stderr)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}

		if sec, ok := parseTimeMark(line); ok {
			state.Update(sec)
			if state.Total > 0 {
				_ = bar.Set(int(state.Current))
			} else {
				_ = bar.Add(1)
			}
			continue
		}

		// Non-matching lines never affect progress; keep a short tail for
		// the failure report.
		tail = append(tail, line)
		if len(tail) > stderrTail {
			tail = tail[len(tail)-stderrTail:]
		}
	}

	waitErr := cmd.Wait()
	if waitErr != nil {
		_ = bar.Exit()
		fmt.Fprintln(os.Stderr)
		s.reportFailure(args, tail, waitErr)
		return fmt.Errorf("%s exited: %w", args[0], waitErr)
	}

	state.Finish()
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)
	s.Log.Success("Compressed: %s", desc)
	return nil
}

// reportFailure prints the per-job error including the literal command so
// the operator can re-invoke it by hand. No retries happen here.
func (s *Supervisor) reportFailure(args, tail []string, err error) {
	s.Log.Error("Failed: %v. Try running manually:", err)
	s.Log.Error("  %s", strings.Join(args, " "))
	for _, line := range tail {
		s.Log.Debug(s.Verbose, "  %s", line)
	}
}

// newBar builds the per-job progress bar. A known total renders a bounded
// bar in whole seconds of media time; an unknown total renders a spinner.
func (s *Supervisor) newBar(state *ProgressState, desc string) *progressbar.ProgressBar {
	limit := -1 // -1 renders an indeterminate spinner
	if state.Total > 0 {
		limit = int(math.Ceil(state.Total))
	}

	theme := progressbar.Theme{
		Saucer: "=", SaucerHead: ">", SaucerPadding: " ", BarStart: "[", BarEnd: "]",
	}
	if s.Log.ColorEnabled() {
		theme.Saucer = "[green]=[reset]"
		theme.SaucerHead = "[green]>[reset]"
	}

	return progressbar.NewOptions(limit,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(s.Log.ColorEnabled()),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetTheme(theme),
	)
}
