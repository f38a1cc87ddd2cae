package encoder

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
)

// timePattern matches the elapsed-time marker ffmpeg prints on its stats
// lines, e.g. "frame= 120 fps= 24 ... time=00:00:05.04 bitrate= ...".
var timePattern = regexp.MustCompile(`time=(\d+):(\d+):(\d+(?:\.\d+)?)`)

// parseTimeMark extracts the elapsed seconds from one diagnostic line.
// Lines without a time= marker report ok=false and are ignored by the
// caller; progress scraping is best-effort and never fails a job.
func parseTimeMark(line string) (seconds float64, ok bool) {
	m := timePattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	h, err1 := strconv.ParseFloat(m[1], 64)
	mins, err2 := strconv.ParseFloat(m[2], 64)
	secs, err3 := strconv.ParseFloat(m[3], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, false
	}
	return h*3600 + mins*60 + secs, true
}

// ProgressState tracks the bounded, monotonic position of one running job.
// It is owned exclusively by the supervisor for the job's lifetime and
// discarded when the job ends.
type ProgressState struct {
	Total   float64 // Expected duration in seconds; 0 when unknown.
	Current float64 // Elapsed seconds; never decreases, never exceeds Total.
	Done    bool
}

// NewProgressState returns a ProgressState sized to the probed duration.
func NewProgressState(total float64) *ProgressState {
	if total < 0 {
		total = 0
	}
	return &ProgressState{Total: total}
}

// Update advances Current to seconds, clamped so it never regresses and,
// when the total is known, never exceeds it.
func (s *ProgressState) Update(seconds float64) {
	if s.Done || seconds < s.Current {
		return
	}
	if s.Total > 0 && seconds > s.Total {
		seconds = s.Total
	}
	s.Current = seconds
}

// Finish forces the state to 100%: on encoder exit 0 the final position is
// exactly the total, whatever the last scraped marker said.
func (s *ProgressState) Finish() {
	if s.Total > 0 {
		s.Current = s.Total
	}
	s.Done = true
}

// Percent reports completion in [0,100]; 0 when the total is unknown.
func (s *ProgressState) Percent() float64 {
	if s.Total <= 0 {
		return 0
	}
	return s.Current / s.Total * 100
}

// scanDiagnosticLines is a bufio.SplitFunc that treats both \r and \n as
// line terminators. ffmpeg rewrites its stats line in place with bare
// carriage returns, so a newline-only scanner would see one giant token.
func scanDiagnosticLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i, b := range data {
		if b == '\n' || b == '\r' {
			return i + 1, data[:i], nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// newDiagnosticScanner wraps r with the \r/\n splitter and a buffer large
// enough for ffmpeg's occasional long metadata dumps.
func newDiagnosticScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(scanDiagnosticLines)
	return sc
}
