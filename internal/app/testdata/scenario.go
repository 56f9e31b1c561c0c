// Package testdata loads YAML-encoded end-to-end scenarios used by the
// database test suite, so the larger fixture-style
// cases live as data rather than as hand-assembled Go literals repeated
// per test.
//
// Shaped after Chahine-tech-sqlens's pkg/schema.SchemaLoader.LoadFromYAML:
// a single exported struct tree carrying yaml tags, unmarshaled wholesale
// with gopkg.in/yaml.v3.
package testdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is one end-to-end case: a sequence of statements run in order
// against a fresh database, with the final statement's expected printed
// table (Expect) or expected error substring (ExpectError) — never both.
type Scenario struct {
	Name        string   `yaml:"name"`
	Statements  []string `yaml:"statements"`
	Expect      string   `yaml:"expect"`
	ExpectError string   `yaml:"expect_error"`
}

// File is the top-level shape of a scenario fixture file: a named list of
// scenarios.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Parse unmarshals raw YAML bytes into a scenario list, validating that
// each scenario names at least one statement and does not set both Expect
// and ExpectError. A scenario that sets neither expects the final statement
// to succeed and print nothing.
func Parse(data []byte) ([]Scenario, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("testdata: parse scenarios: %w", err)
	}
	for i, s := range f.Scenarios {
		if len(s.Statements) == 0 {
			return nil, fmt.Errorf("testdata: scenario %q (index %d) has no statements", s.Name, i)
		}
		if s.Expect != "" && s.ExpectError != "" {
			return nil, fmt.Errorf("testdata: scenario %q sets both expect and expect_error", s.Name)
		}
	}
	return f.Scenarios, nil
}

// LoadFile reads and parses a scenario fixture file from disk, mirroring
// SchemaLoader.LoadFromFile's read-then-unmarshal shape.
func LoadFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testdata: read %s: %w", path, err)
	}
	return Parse(data)
}
