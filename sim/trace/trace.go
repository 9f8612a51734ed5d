package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/PrithviSinghNathawat/DiscMotion/sim"
)

// RunTrace is the flattened record sequence for one simulation run.
type RunTrace struct {
	Algorithm   sim.Algorithm
	Direction   sim.Direction
	StartHead   int
	DiskMax     int
	Records     []StepRecord
	ServedOrder []int
}

// FromRun flattens a completed SimulationRun into a RunTrace.
func FromRun(run *sim.SimulationRun) *RunTrace {
	rt := &RunTrace{
		Algorithm:   run.Algorithm,
		Direction:   run.Direction,
		StartHead:   run.StartHead,
		DiskMax:     run.DiskMax,
		Records:     make([]StepRecord, 0, len(run.Steps)),
		ServedOrder: run.ServedOrder(),
	}
	for i, s := range run.Steps {
		rt.Records = append(rt.Records, StepRecord{
			Index:       i,
			Head:        s.Head,
			SeekDelta:   s.CumulativeSeek - cumulativeAt(run, i-1),
			Cumulative:  s.CumulativeSeek,
			ServedCount: s.ServedCount(),
			Sentinel:    i == len(run.Steps)-1,
		})
	}
	return rt
}

// cumulativeAt returns the cumulative seek at step i, or 0 before the run.
func cumulativeAt(run *sim.SimulationRun, i int) int {
	if i < 0 {
		return 0
	}
	return run.Steps[i].CumulativeSeek
}

// WriteText renders the trace as a line-per-step textual export.
func WriteText(w io.Writer, rt *RunTrace) error {
	header := fmt.Sprintf("algorithm=%s head=%d disk=[0,%d]", rt.Algorithm, rt.StartHead, rt.DiskMax)
	if rt.Algorithm != sim.FCFS && rt.Algorithm != sim.SSTF {
		header += fmt.Sprintf(" direction=%s", rt.Direction)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, rec := range rt.Records {
		label := "step"
		switch {
		case rec.Index == 0:
			label = "start"
		case rec.Sentinel:
			label = "done"
		}
		if _, err := fmt.Fprintf(w, "%-5s head=%-4d seek=%-4d total=%-5d served=%d\n",
			label, rec.Head, rec.SeekDelta, rec.Cumulative, rec.ServedCount); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "order: %s\n", joinInts(rt.ServedOrder))
	return err
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
