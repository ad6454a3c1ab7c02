// Package demo builds and runs sched scenarios described in YAML, for
// use by cmd/kernelsim. None of it is part of the scheduler core: it
// exists only to give the core something to run on a development host.
package demo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a set of tasks to create and how long to run them.
type Scenario struct {
	Name      string     `yaml:"name"`
	Yields    int        `yaml:"yields"`    // how many times main calls Yield
	Watermark bool       `yaml:"watermark"` // report stack watermarks at the end (requires the watermark build tag)
	Tasks     []TaskSpec `yaml:"tasks"`
}

// TaskSpec describes one task to create before the run starts.
type TaskSpec struct {
	Name      string `yaml:"name"`
	StackSize int    `yaml:"stack_size"`
	Kind      string `yaml:"kind"` // "counter", "pingpong", or "oneshot"
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("demo: reading scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("demo: parsing scenario: %w", err)
	}
	if len(s.Tasks) == 0 {
		return nil, fmt.Errorf("demo: scenario %q defines no tasks", s.Name)
	}
	for i, t := range s.Tasks {
		if t.Name == "" {
			return nil, fmt.Errorf("demo: task %d has no name", i)
		}
		if t.StackSize <= 0 {
			return nil, fmt.Errorf("demo: task %q has non-positive stack_size", t.Name)
		}
		switch t.Kind {
		case "counter", "pingpong", "oneshot":
		default:
			return nil, fmt.Errorf("demo: task %q has unknown kind %q", t.Name, t.Kind)
		}
	}
	if s.Yields <= 0 {
		s.Yields = 100
	}
	return &s, nil
}
