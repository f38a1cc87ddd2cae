package encoder

import (
	"math"
	"runtime"
	"strconv"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/danielnachumdev/media-compressor/internal/config"
)

// Fixed codec parameters. Quality is constant; the preset token is the only
// speed/size knob exposed for video.
const (
	videoCodec   = "libx264"
	videoCRF     = "18"
	audioCodec   = "aac"
	audioBitrate = "128k"
)

// BuildVideoArgs constructs the complete ffmpeg argument slice for a video
// job. Loglevel stays at info with -stats so the stderr stream carries the
// time= progress markers the supervisor scrapes.
func BuildVideoArgs(src, dest string, preset config.Preset, threads int) []string {
	args := make([]string, 0, 24)

	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")
	args = append(args, "-loglevel", "info", "-stats", "-stats_period", "1")
	args = append(args, "-i", src)
	args = append(args,
		"-c:v", videoCodec,
		"-crf", videoCRF,
		"-preset", string(preset),
		"-c:a", audioCodec,
		"-b:a", audioBitrate,
		"-threads", strconv.Itoa(threads),
	)
	args = append(args, dest)

	return args
}

// BuildImageArgs constructs the ffmpeg argument slice for an image job.
// Images compress through the same encoder binary with a quantizer scale
// (-q:v, 1-31, lower is better quality).
func BuildImageArgs(src, dest string, quality, threads int) []string {
	args := make([]string, 0, 16)

	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")
	args = append(args, "-loglevel", "info", "-stats")
	args = append(args, "-i", src)
	args = append(args,
		"-q:v", strconv.Itoa(quality),
		"-threads", strconv.Itoa(threads),
	)
	args = append(args, dest)

	return args
}

// ThreadCount converts the resource-utilization fraction (0.1-1.0) into an
// encoder thread hint: fraction times the logical CPU count, rounded, never
// below one. The count comes from gopsutil; runtime.NumCPU is the fallback
// when the host probe fails.
func ThreadCount(fraction float64) int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		n = runtime.NumCPU()
	}
	threads := int(math.Round(fraction * float64(n)))
	if threads < 1 {
		threads = 1
	}
	return threads
}
