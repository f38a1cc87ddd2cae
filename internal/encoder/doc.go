// Package encoder builds ffmpeg argument lists and supervises the encoder
// subprocess for one job at a time.
//
// The supervisor owns the only concurrency in the program: it drains the
// child's stderr with a blocking line-read loop while the child runs, so the
// diagnostic pipe never fills and stalls ffmpeg. Progress is scraped from
// the stream's "time=HH:MM:SS.frac" markers and mapped onto a bounded,
// monotonic ProgressState sized by a prior metadata probe.
package encoder
