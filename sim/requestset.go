package sim

import "sort"

// RequestSet is the canonical unit of work for one run, established once by
// Normalize and immutable afterwards.
//
// For FCFS, Visits preserves the raw input (order and duplicates included)
// and Distinct holds the deduplicated values for membership checks. For every
// other algorithm, Visits is the deduplicated ascending-sorted list and
// Distinct mirrors it.
type RequestSet struct {
	Visits   []int
	Distinct map[int]bool
}

// Size returns the number of distinct requests to serve.
func (rs RequestSet) Size() int {
	return len(rs.Distinct)
}

// Contains reports whether track is part of the original ask.
func (rs RequestSet) Contains(track int) bool {
	return rs.Distinct[track]
}

// Normalize establishes the RequestSet for one run. It assumes raw values are
// already range-checked; validation is the caller's concern.
func Normalize(raw []int, alg Algorithm) RequestSet {
	distinct := make(map[int]bool, len(raw))
	for _, r := range raw {
		distinct[r] = true
	}

	if alg == FCFS {
		visits := make([]int, len(raw))
		copy(visits, raw)
		return RequestSet{Visits: visits, Distinct: distinct}
	}

	visits := make([]int, 0, len(distinct))
	for r := range distinct {
		visits = append(visits, r)
	}
	sort.Ints(visits)
	return RequestSet{Visits: visits, Distinct: distinct}
}
