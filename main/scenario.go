package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario fixes the sizes the demo sequence uses.
type Scenario struct {
	ParamSize  int     `yaml:"param_size"`
	Magnitude  float64 `yaml:"magnitude"`
	CopySize   int     `yaml:"copy_size"`
	AssignSize int     `yaml:"assign_size"`
}

// DefaultScenario matches the original fixed sequence: size 123,
// magnitude 1.23.
func DefaultScenario() Scenario {
	return Scenario{
		ParamSize:  123,
		Magnitude:  1.23,
		CopySize:   123,
		AssignSize: 123,
	}
}

// LoadScenario reads a YAML scenario file. An empty path returns the
// defaults; fields absent from the file keep their default values.
func LoadScenario(path string) (Scenario, error) {
	s := DefaultScenario()
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parse scenario: %w", err)
	}
	return s, nil
}
