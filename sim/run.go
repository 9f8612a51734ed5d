package sim

// Step is one frame of a simulation run: the head position after a movement,
// the seek distance accumulated so far, and the requests served so far. Steps
// are immutable once appended; each Step owns its own copy of the served
// state so earlier frames never change as the run grows.
type Step struct {
	Head           int
	CumulativeSeek int
	Served         map[int]bool
	ServedOrder    []int
}

// ServedCount returns the number of distinct requests served by this Step.
func (s Step) ServedCount() int {
	return len(s.ServedOrder)
}

// HasServed reports whether track was served at or before this Step.
func (s Step) HasServed(track int) bool {
	return s.Served[track]
}

// SimulationRun is the ordered Step sequence for one (algorithm, requests,
// startHead, direction) invocation. It begins with a synthetic zero-cost Step
// at the start head and ends with a sentinel Step duplicating the final real
// Step, so consumers always have a stable terminal frame to render.
//
// A run is owned by whoever invoked Generate; the engine keeps no reference
// to it after returning.
type SimulationRun struct {
	Algorithm Algorithm
	Direction Direction
	StartHead int
	DiskMax   int
	Steps     []Step
}

// TotalSeek returns the cumulative seek distance of the completed run.
func (r *SimulationRun) TotalSeek() int {
	return r.Steps[len(r.Steps)-1].CumulativeSeek
}

// ServedOrder returns the distinct requests in the order they were served.
func (r *SimulationRun) ServedOrder() []int {
	return r.Steps[len(r.Steps)-1].ServedOrder
}

// HeadPath returns the head position of every Step, sentinel included.
func (r *SimulationRun) HeadPath() []int {
	path := make([]int, len(r.Steps))
	for i, s := range r.Steps {
		path[i] = s.Head
	}
	return path
}

// newRun starts a SimulationRun with the synthetic zero-cost Step at the
// start head.
func newRun(alg Algorithm, dir Direction, startHead, diskMax int) *SimulationRun {
	r := &SimulationRun{
		Algorithm: alg,
		Direction: dir,
		StartHead: startHead,
		DiskMax:   diskMax,
	}
	r.Steps = append(r.Steps, Step{
		Head:        startHead,
		Served:      map[int]bool{},
		ServedOrder: []int{},
	})
	return r
}

// last returns the most recently appended Step.
func (r *SimulationRun) last() Step {
	return r.Steps[len(r.Steps)-1]
}

// move appends a Step for a head movement to newHead, charging abs distance
// from the current head. served lists the tracks serviced by this movement;
// a track already served is not recorded again (the movement cost still
// counts, which is what makes duplicate FCFS visits charge seek but appear
// once in the served order).
func (r *SimulationRun) move(newHead int, served ...int) {
	prev := r.last()

	next := Step{
		Head:           newHead,
		CumulativeSeek: prev.CumulativeSeek + abs(newHead-prev.Head),
		Served:         make(map[int]bool, len(prev.Served)+len(served)),
		ServedOrder:    make([]int, len(prev.ServedOrder), len(prev.ServedOrder)+len(served)),
	}
	for t := range prev.Served {
		next.Served[t] = true
	}
	copy(next.ServedOrder, prev.ServedOrder)

	for _, t := range served {
		if next.Served[t] {
			continue
		}
		next.Served[t] = true
		next.ServedOrder = append(next.ServedOrder, t)
	}
	r.Steps = append(r.Steps, next)
}

// seal appends the sentinel Step: a duplicate of the final real Step with no
// additional seek cost, marking the run complete.
func (r *SimulationRun) seal() {
	r.move(r.last().Head)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
