// Package workload supplies request sets to the engine: fixed scenarios
// loaded from YAML files and seeded random sets for quick experiments.
// Range and shape validation happens here, so the engine can assume
// well-formed input.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/PrithviSinghNathawat/DiscMotion/sim"
)

// Scenario is one simulation input, loaded from YAML.
type Scenario struct {
	Requests  []int  `yaml:"requests"`
	StartHead int    `yaml:"start_head"`
	Direction string `yaml:"direction,omitempty"` // "left" or "right"; sweep algorithms only
	DiskMax   int    `yaml:"disk_max,omitempty"`  // 0 defaults to sim.DefaultDiskMax
}

// Validate checks the scenario against the engine's preconditions.
func (s *Scenario) Validate() error {
	if s.DiskMax <= 0 {
		return fmt.Errorf("disk_max must be positive, got %d", s.DiskMax)
	}
	if len(s.Requests) == 0 {
		return fmt.Errorf("scenario has no requests")
	}
	if s.StartHead < 0 || s.StartHead > s.DiskMax {
		return fmt.Errorf("start_head %d outside [0, %d]", s.StartHead, s.DiskMax)
	}
	for _, r := range s.Requests {
		if r < 0 || r > s.DiskMax {
			return fmt.Errorf("request %d outside [0, %d]", r, s.DiskMax)
		}
	}
	if s.Direction != "" {
		if _, err := sim.ParseDirection(s.Direction); err != nil {
			return err
		}
	}
	return nil
}

// LoadScenario reads and validates a scenario YAML file. Omitted disk_max
// defaults to sim.DefaultDiskMax before validation runs.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if s.DiskMax == 0 {
		s.DiskMax = sim.DefaultDiskMax
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &s, nil
}
