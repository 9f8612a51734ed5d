// Package sim provides the core disk-head scheduling engine for DiscMotion.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - algorithm.go: Algorithm and Direction vocabulary, input validation
//   - run.go: Step and SimulationRun (the step-by-step trace of one run)
//   - generate.go: the history generator entry point and the FCFS/SSTF walks
//
// # Architecture
//
// The engine is pure: every exported function is deterministic in its inputs
// and holds no state across calls. Two independent computations exist for
// every algorithm:
//   - Generate builds a full SimulationRun, one immutable Step per head
//     movement, suitable for driving an animation or a textual trace.
//   - TotalSeek recomputes only the scalar total seek distance from plain
//     sorted slices and running sums, without constructing Steps.
//
// The two must agree on the final total for identical inputs; that
// equivalence is the engine's principal correctness property and is covered
// by the cross-check tests in stats_test.go.
//
// The four sweep algorithms (SCAN, C-SCAN, LOOK, C-LOOK) share one
// parameterized walk in sweep.go, selected by a boundary policy: whether the
// head travels to the physical disk edge or stops at the last pending
// request, and whether the return leg is served incrementally or charged as
// a single wrap-around jump.
//
// Downstream consumers live in sub-packages:
//   - sim/trace/: per-step records, summaries, and the textual trace export
//   - sim/workload/: YAML scenario loading and seeded random request sets
package sim
