package benchplot

// BenchRow is one measurement of the matrix benchmark: the matrix
// dimension, the sequential and parallel wall times in seconds, and the
// speedup the benchmark recorded. Speedup is taken verbatim from the
// input, never recomputed from the two times.
type BenchRow struct {
	Size    int     `json:"size"`
	SeqTime float64 `json:"seq_time"`
	ParTime float64 `json:"par_time"`
	Speedup float64 `json:"speedup"`
}

// BenchTable holds the rows in input order.
type BenchTable []BenchRow

// Best returns the row with the highest recorded speedup.
func (t BenchTable) Best() (BenchRow, bool) {
	if len(t) == 0 {
		return BenchRow{}, false
	}
	best := t[0]
	for _, r := range t[1:] {
		if r.Speedup > best.Speedup {
			best = r
		}
	}
	return best, true
}
