package sim

import "sort"

// AlgorithmResult pairs an algorithm with its total seek distance for one
// input. Results are ephemeral: they exist to populate a comparison ranking.
type AlgorithmResult struct {
	Algorithm Algorithm
	TotalSeek int
}

// CompareAll runs the stats calculator for every algorithm against one
// identical input and returns the results sorted ascending by total seek.
// Ties keep the Algorithms() declaration order (stable sort), so the ranking
// is deterministic.
func CompareAll(requests []int, startHead int, dir Direction, diskMax int) ([]AlgorithmResult, error) {
	results := make([]AlgorithmResult, 0, len(Algorithms()))
	for _, alg := range Algorithms() {
		total, err := TotalSeek(alg, requests, startHead, dir, diskMax)
		if err != nil {
			return nil, err
		}
		results = append(results, AlgorithmResult{Algorithm: alg, TotalSeek: total})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalSeek < results[j].TotalSeek
	})
	return results, nil
}
