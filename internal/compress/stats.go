package compress

// Stats tracks aggregate counters and byte totals across a run.
type Stats struct {
	Total            int
	Current          int
	Compressed       int
	Skipped          int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// SpaceSaved returns the aggregate byte difference between inputs and outputs.
// Positive means outputs are smaller; negative means they grew.
func (s *Stats) SpaceSaved() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}
