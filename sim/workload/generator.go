package workload

import (
	"fmt"
	"math/rand"
)

// RandomRequests generates count request addresses uniformly in [0, diskMax],
// deterministically from the seed: the same (count, seed, diskMax) always
// yields the same list. Duplicates are possible, matching real request
// streams; the engine's normalization decides how to treat them per
// algorithm.
func RandomRequests(count int, seed int64, diskMax int) ([]int, error) {
	if count <= 0 {
		return nil, fmt.Errorf("request count must be positive, got %d", count)
	}
	if diskMax <= 0 {
		return nil, fmt.Errorf("disk max must be positive, got %d", diskMax)
	}

	rng := rand.New(rand.NewSource(seed))
	requests := make([]int, count)
	for i := range requests {
		requests[i] = rng.Intn(diskMax + 1)
	}
	return requests, nil
}
