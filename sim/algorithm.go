package sim

import "fmt"

// DefaultDiskMax is the reference maximum disk address. The engine itself
// treats the maximum as a parameter; this constant only seeds CLI and
// scenario defaults.
const DefaultDiskMax = 199

// Algorithm names a disk-head scheduling policy.
type Algorithm string

const (
	// FCFS serves requests strictly in arrival order.
	FCFS Algorithm = "fcfs"
	// SSTF greedily serves the pending request closest to the head.
	SSTF Algorithm = "sstf"
	// SCAN sweeps to the disk edge, then serves the other side on the way back.
	SCAN Algorithm = "scan"
	// CSCAN sweeps to the disk edge, then jumps to the opposite edge and
	// resumes in the same direction.
	CSCAN Algorithm = "c-scan"
	// LOOK sweeps only as far as the last pending request, then reverses.
	LOOK Algorithm = "look"
	// CLOOK sweeps to the last pending request, then jumps to the farthest
	// pending request on the other side and resumes in the same direction.
	CLOOK Algorithm = "c-look"
)

// Algorithms returns all supported algorithms in declaration order.
// The order is stable and doubles as the tie-break order when ranking
// algorithms with equal totals.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SSTF, SCAN, CSCAN, LOOK, CLOOK}
}

// ParseAlgorithm maps a user-supplied name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case FCFS, SSTF, SCAN, CSCAN, LOOK, CLOOK:
		return Algorithm(name), nil
	}
	return "", fmt.Errorf("unknown algorithm %q (valid: fcfs, sstf, scan, c-scan, look, c-look)", name)
}

// Direction is the initial sweep direction for the directional algorithms.
// FCFS and SSTF ignore it.
type Direction string

const (
	// Left moves the head toward address 0.
	Left Direction = "left"
	// Right moves the head toward the maximum address.
	Right Direction = "right"
)

// ParseDirection maps a user-supplied name to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch Direction(name) {
	case Left, Right:
		return Direction(name), nil
	}
	return "", fmt.Errorf("unknown direction %q (valid: left, right)", name)
}

// validateInput rejects malformed inputs before any walk starts. The engine
// is a total function over well-formed inputs; rather than produce a
// degenerate run it fails fast here.
func validateInput(alg Algorithm, requests []int, startHead int, dir Direction, diskMax int) error {
	if _, err := ParseAlgorithm(string(alg)); err != nil {
		return err
	}
	if diskMax <= 0 {
		return fmt.Errorf("disk max must be positive, got %d", diskMax)
	}
	if len(requests) == 0 {
		return fmt.Errorf("request set is empty")
	}
	if startHead < 0 || startHead > diskMax {
		return fmt.Errorf("start head %d outside [0, %d]", startHead, diskMax)
	}
	for _, r := range requests {
		if r < 0 || r > diskMax {
			return fmt.Errorf("request %d outside [0, %d]", r, diskMax)
		}
	}
	if alg != FCFS && alg != SSTF {
		if _, err := ParseDirection(string(dir)); err != nil {
			return err
		}
	}
	return nil
}
