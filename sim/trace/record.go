// Package trace turns SimulationRun values into flat per-step records, a
// summary, and a textual export. It consumes the engine's output and owns no
// scheduling logic of its own.
package trace

// StepRecord captures a single frame of a run as plain data.
type StepRecord struct {
	Index       int // position in the run, 0 = the synthetic start frame
	Head        int
	SeekDelta   int // head distance travelled by this frame alone
	Cumulative  int
	ServedCount int
	Sentinel    bool // true only for the terminal duplicate frame
}
