package trace

// TraceSummary aggregates statistics from a RunTrace.
type TraceSummary struct {
	Steps           int // real movement frames (start and sentinel excluded)
	TotalSeek       int
	DistinctServed  int
	AvgSeekPerTrack float64
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *TraceSummary {
	summary := &TraceSummary{}
	if rt == nil || len(rt.Records) == 0 {
		return summary
	}

	last := rt.Records[len(rt.Records)-1]
	summary.TotalSeek = last.Cumulative
	summary.DistinctServed = len(rt.ServedOrder)

	for _, rec := range rt.Records {
		if rec.Index == 0 || rec.Sentinel {
			continue
		}
		summary.Steps++
	}

	if summary.DistinctServed > 0 {
		summary.AvgSeekPerTrack = float64(summary.TotalSeek) / float64(summary.DistinctServed)
	}
	return summary
}
