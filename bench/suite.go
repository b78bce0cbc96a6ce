package bench

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Suite is a declarative benchmark description, normally loaded from YAML:
//
//	start: A
//	end: E
//	timeout: 5s
//	algorithms:
//	  - dijkstra
//	  - astar
//
// An empty algorithms list means the full catalogue.
type Suite struct {
	Start      string   `yaml:"start"`
	End        string   `yaml:"end"`
	Timeout    string   `yaml:"timeout,omitempty"`
	Algorithms []string `yaml:"algorithms,omitempty"`
}

// LoadSuite parses and validates a suite from r.
//
// Errors: ErrBadSuite (wrapped with detail) on malformed YAML, missing
// endpoints, an unparsable timeout, or an unknown algorithm name.
func LoadSuite(r io.Reader) (*Suite, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrBadSuite, err)
	}

	var s Suite
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: parse: %v", ErrBadSuite, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadSuiteFile reads a suite from the named YAML file.
func LoadSuiteFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrBadSuite, path, err)
	}
	defer f.Close()

	return LoadSuite(f)
}

// TimeoutDuration returns the parsed per-run timeout, zero when unset.
func (s *Suite) TimeoutDuration() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrBadSuite, s.Timeout, err)
	}

	return d, nil
}

func (s *Suite) validate() error {
	if s.Start == "" || s.End == "" {
		return fmt.Errorf("%w: start and end are required", ErrBadSuite)
	}
	if _, err := s.TimeoutDuration(); err != nil {
		return err
	}
	if _, err := Select(s.Algorithms); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSuite, err)
	}

	return nil
}
