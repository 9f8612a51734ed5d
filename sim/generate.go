package sim

// Generate runs one scheduling algorithm over a static request set and
// returns the full step-by-step trace. The run starts with a zero-cost Step
// at startHead and ends with the sentinel Step; seek cost of every transition
// is the absolute head distance.
//
// Direction is only consulted by the sweep algorithms (SCAN, C-SCAN, LOOK,
// C-LOOK). Malformed input (empty requests, out-of-range values, unknown
// algorithm or direction) is rejected with an error before any Step is built.
func Generate(alg Algorithm, requests []int, startHead int, dir Direction, diskMax int) (*SimulationRun, error) {
	if err := validateInput(alg, requests, startHead, dir, diskMax); err != nil {
		return nil, err
	}

	set := Normalize(requests, alg)
	run := newRun(alg, dir, startHead, diskMax)

	switch alg {
	case FCFS:
		walkFCFS(run, set)
	case SSTF:
		walkSSTF(run, set, startHead)
	default:
		walkSweep(run, set, startHead, dir, diskMax, sweepPolicyFor(alg))
	}

	run.seal()
	return run, nil
}

// walkFCFS visits every raw request in arrival order, duplicates included.
// Every visit is charged seek cost; the served order records each distinct
// track only once (move skips tracks already served).
func walkFCFS(run *SimulationRun, set RequestSet) {
	for _, track := range set.Visits {
		run.move(track, track)
	}
}

// walkSSTF repeatedly serves the unserved request nearest to the head.
// Equidistant candidates resolve to the lower track: Visits is sorted
// ascending and the strict < comparison keeps the first (lowest) candidate.
func walkSSTF(run *SimulationRun, set RequestSet, startHead int) {
	pending := make([]int, len(set.Visits))
	copy(pending, set.Visits)

	// A request already under the head is served before the greedy loop.
	if set.Contains(startHead) {
		run.move(startHead, startHead)
		pending = remove(pending, startHead)
	}

	head := startHead
	for len(pending) > 0 {
		nearest := pending[0]
		for _, track := range pending[1:] {
			if abs(track-head) < abs(nearest-head) {
				nearest = track
			}
		}
		run.move(nearest, nearest)
		head = nearest
		pending = remove(pending, nearest)
	}
}

// remove returns pending without track. Pending holds distinct values.
func remove(pending []int, track int) []int {
	out := make([]int, 0, len(pending))
	for _, t := range pending {
		if t == track {
			continue
		}
		out = append(out, t)
	}
	return out
}
