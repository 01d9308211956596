// Package testutil provides shared test helpers for Yolk tests.
package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is one conformance fixture: source fragments plus the
// expected outcome of running them through the driver.
type Scenario struct {
	Name      string   `yaml:"name"`
	Fragments []string `yaml:"fragments"`
	Expect    Expected `yaml:"expect"`
}

// Expected describes the outcome of a scenario. Either Error is set
// (a substring of the boundary error string) or Value holds the
// display form of the final value; Output lists the lines the print
// sink must receive, in order.
type Expected struct {
	Value  string   `yaml:"value,omitempty"`
	Output []string `yaml:"output,omitempty"`
	Error  string   `yaml:"error,omitempty"`
}

// LoadScenario reads one YAML fixture. Unknown fields are an error so
// typos in fixtures fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var s Scenario
	if err := decoder.Decode(&s); err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), ".yaml")
	}
	return &s, nil
}

// ListScenarios returns all .yaml fixture paths under root, sorted for
// deterministic test order.
func ListScenarios(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		paths = append(paths, filepath.Join(root, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
