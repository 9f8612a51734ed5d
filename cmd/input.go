package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	sim "github.com/PrithviSinghNathawat/DiscMotion/sim"
	"github.com/PrithviSinghNathawat/DiscMotion/sim/workload"
)

// simInput is the resolved engine input for one invocation.
type simInput struct {
	Requests  []int
	StartHead int
	Direction sim.Direction
	DiskMax   int
}

// resolveInput turns flags into engine input. Precedence: a scenario file
// wins over individual flags; --random replaces --requests.
func resolveInput() (*simInput, error) {
	if scenarioPath != "" {
		s, err := workload.LoadScenario(scenarioPath)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Loaded scenario %s: %d requests, head=%d", scenarioPath, len(s.Requests), s.StartHead)
		dir := sim.Direction(s.Direction)
		if s.Direction == "" {
			dir = sim.Right
		}
		return &simInput{
			Requests:  s.Requests,
			StartHead: s.StartHead,
			Direction: dir,
			DiskMax:   s.DiskMax,
		}, nil
	}

	dir, err := sim.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	requests := requestsFlag
	if randomCount > 0 {
		requests, err = workload.RandomRequests(randomCount, seed, diskMax)
		if err != nil {
			return nil, err
		}
		logrus.Infof("Generated %d random requests with seed %d", randomCount, seed)
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("no requests given: use --requests, --random, or --scenario")
	}

	return &simInput{
		Requests:  requests,
		StartHead: startHead,
		Direction: dir,
		DiskMax:   diskMax,
	}, nil
}
