package audit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Record ties an activity to the class it happened to.
type Record struct {
	Class    string `yaml:"class"`
	Activity `yaml:",inline"`
}

// Log is an ordered sequence of records across classes.
type Log struct {
	Records []Record `yaml:"records"`
}

// ForClass returns the trail for class, preserving record order. The
// returned trail does not alias the log.
func (l *Log) ForClass(class string) Trail {
	var trail Trail

	for _, r := range l.Records {
		if r.Class == class {
			a := r.Activity
			a.Context = append([]string(nil), r.Context...)
			trail = append(trail, a)
		}
	}

	return trail
}

// LoadFile loads and parses a YAML audit log from the given path.
func LoadFile(path string) (*Log, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Log.
func Parse(data []byte) (*Log, error) {
	var l Log

	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse audit log YAML: %w", err)
	}

	for i, r := range l.Records {
		if r.Class == "" {
			return nil, fmt.Errorf("audit record %d has no class", i)
		}
	}

	return &l, nil
}
