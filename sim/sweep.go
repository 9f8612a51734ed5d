package sim

import "fmt"

// sweepPolicy selects between the four directional algorithms. All four share
// one walk: serve the near side in sweep direction, then handle the far side.
type sweepPolicy struct {
	// toEdge: the head travels all the way to the physical disk boundary
	// (SCAN, C-SCAN) instead of stopping at the last pending request
	// (LOOK, C-LOOK).
	toEdge bool
	// wrap: the return leg is a single circular jump and the far side is
	// served in the original sweep direction (C-SCAN, C-LOOK) instead of
	// being served incrementally on the way back (SCAN, LOOK).
	wrap bool
}

func sweepPolicyFor(alg Algorithm) sweepPolicy {
	switch alg {
	case SCAN:
		return sweepPolicy{toEdge: true}
	case CSCAN:
		return sweepPolicy{toEdge: true, wrap: true}
	case LOOK:
		return sweepPolicy{}
	case CLOOK:
		return sweepPolicy{wrap: true}
	default:
		panic(fmt.Sprintf("algorithm %q is not a sweep algorithm", alg))
	}
}

// partition splits the sorted distinct requests around the start head.
// below holds tracks strictly under startHead in descending order, above
// holds tracks strictly over startHead in ascending order. A track exactly at
// startHead belongs to neither: the caller serves it once up front.
func partition(sorted []int, startHead int) (below, above []int) {
	for _, t := range sorted {
		if t > startHead {
			above = append(above, t)
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] < startHead {
			below = append(below, sorted[i])
		}
	}
	return below, above
}

// walkSweep runs the shared directional walk. set.Visits must be the sorted
// distinct request list (Normalize guarantees this for non-FCFS algorithms).
func walkSweep(run *SimulationRun, set RequestSet, startHead int, dir Direction, diskMax int, pol sweepPolicy) {
	// A request under the head is served before any directional branch and
	// excluded from both partitions, so the wrap leg can never re-serve it.
	if set.Contains(startHead) {
		run.move(startHead, startHead)
	}

	below, above := partition(set.Visits, startHead)

	var near, far []int
	var nearEdge, farEdge int
	if dir == Right {
		near, far = above, below // above ascending, below descending
		nearEdge, farEdge = diskMax, 0
	} else {
		near, far = below, above // below descending, above ascending
		nearEdge, farEdge = 0, diskMax
	}

	for _, t := range near {
		run.move(t, t)
	}

	// The boundary is recorded as a Step even when no request sits there,
	// unless the last served request already put the head on it.
	if pol.toEdge && run.last().Head != nearEdge {
		run.move(nearEdge)
	}

	if len(far) == 0 {
		return
	}

	if pol.wrap {
		// Circular return: C-SCAN jumps edge-to-edge at full length, C-LOOK
		// jumps straight to the first far-side request. Either way the far
		// side is then served in the original sweep direction.
		if pol.toEdge {
			run.move(farEdge)
		}
		for i := len(far) - 1; i >= 0; i-- {
			run.move(far[i], far[i])
		}
		return
	}

	// Incremental return: the far side is served in reverse order on the way
	// back toward the opposite edge.
	for _, t := range far {
		run.move(t, t)
	}
}
