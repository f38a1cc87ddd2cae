// Package compress maps files to a compressor by extension and orchestrates
// single-file and folder batch runs.
//
// Two compressors exist, one per media kind (video, image); both build an
// encoder invocation and delegate execution to the subprocess supervisor.
// A folder run scans one directory level only, filters by the approved
// extension set, and processes files strictly sequentially with one encoder
// subprocess alive at a time. Per-file failures are reported and the batch
// continues; configuration errors abort the whole run.
package compress
