package sim

// TotalSeek recomputes only the scalar cumulative seek distance for one
// algorithm, using the same partitioning and branching rules as Generate but
// without building Steps. It exists so all six policies can be ranked against
// one input without constructing six full histories, and it must always equal
// the final CumulativeSeek of the Generate run for identical inputs.
func TotalSeek(alg Algorithm, requests []int, startHead int, dir Direction, diskMax int) (int, error) {
	if err := validateInput(alg, requests, startHead, dir, diskMax); err != nil {
		return 0, err
	}

	set := Normalize(requests, alg)
	switch alg {
	case FCFS:
		return totalFCFS(set.Visits, startHead), nil
	case SSTF:
		return totalSSTF(set.Visits, startHead), nil
	case SCAN:
		return totalSCAN(set.Visits, startHead, dir, diskMax), nil
	case CSCAN:
		return totalCSCAN(set.Visits, startHead, dir, diskMax), nil
	case LOOK:
		return totalLOOK(set.Visits, startHead, dir), nil
	default:
		return totalCLOOK(set.Visits, startHead, dir), nil
	}
}

func totalFCFS(visits []int, startHead int) int {
	total, head := 0, startHead
	for _, t := range visits {
		total += abs(t - head)
		head = t
	}
	return total
}

func totalSSTF(sorted []int, startHead int) int {
	pending := make([]int, len(sorted))
	copy(pending, sorted)

	total, head := 0, startHead
	for len(pending) > 0 {
		best := 0
		for i := 1; i < len(pending); i++ {
			if abs(pending[i]-head) < abs(pending[best]-head) {
				best = i
			}
		}
		total += abs(pending[best] - head)
		head = pending[best]
		pending = append(pending[:best], pending[best+1:]...)
	}
	return total
}

// bounds extracts the extremes of each partition. ok flags report whether the
// partition is non-empty; a track exactly at startHead costs nothing and is
// excluded, mirroring the generator's zero-cost coincident serve.
func bounds(sorted []int, startHead int) (minBelow, maxBelow, minAbove, maxAbove int, hasBelow, hasAbove bool) {
	for _, t := range sorted {
		switch {
		case t < startHead:
			if !hasBelow {
				minBelow = t
			}
			maxBelow = t
			hasBelow = true
		case t > startHead:
			if !hasAbove {
				minAbove = t
			}
			maxAbove = t
			hasAbove = true
		}
	}
	return
}

func totalSCAN(sorted []int, startHead int, dir Direction, diskMax int) int {
	minBelow, _, _, maxAbove, hasBelow, hasAbove := bounds(sorted, startHead)
	if dir == Right {
		// Unconditional sweep to the top edge, then back down to the lowest
		// pending track.
		total := diskMax - startHead
		if hasBelow {
			total += diskMax - minBelow
		}
		return total
	}
	total := startHead
	if hasAbove {
		total += maxAbove
	}
	return total
}

func totalCSCAN(sorted []int, startHead int, dir Direction, diskMax int) int {
	_, maxBelow, minAbove, _, hasBelow, hasAbove := bounds(sorted, startHead)
	if dir == Right {
		total := diskMax - startHead
		if hasBelow {
			// Full-length jump to address 0, then sweep up to the highest
			// remaining track.
			total += diskMax + maxBelow
		}
		return total
	}
	total := startHead
	if hasAbove {
		total += diskMax + (diskMax - minAbove)
	}
	return total
}

func totalLOOK(sorted []int, startHead int, dir Direction) int {
	minBelow, _, _, maxAbove, hasBelow, hasAbove := bounds(sorted, startHead)
	total, head := 0, startHead
	if dir == Right {
		if hasAbove {
			total += maxAbove - head
			head = maxAbove
		}
		if hasBelow {
			total += head - minBelow
		}
		return total
	}
	if hasBelow {
		total += head - minBelow
		head = minBelow
	}
	if hasAbove {
		total += maxAbove - head
	}
	return total
}

func totalCLOOK(sorted []int, startHead int, dir Direction) int {
	minBelow, maxBelow, minAbove, maxAbove, hasBelow, hasAbove := bounds(sorted, startHead)
	total, head := 0, startHead
	if dir == Right {
		if hasAbove {
			total += maxAbove - head
			head = maxAbove
		}
		if hasBelow {
			// Jump straight to the lowest pending track, resume rightward.
			total += abs(head-minBelow) + (maxBelow - minBelow)
		}
		return total
	}
	if hasBelow {
		total += head - minBelow
		head = minBelow
	}
	if hasAbove {
		total += abs(maxAbove-head) + (maxAbove - minAbove)
	}
	return total
}
