// Package inputs persists user-entered custom field values, keyed by
// template id. The store is a flat string-to-string mapping per
// template with last-write-wins semantics; the file medium is YAML.
package inputs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store holds custom input values for every template.
type Store struct {
	path   string
	values map[string]map[string]string
}

// Open reads a store file. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading inputs file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("parsing inputs file: %w", err)
	}
	if s.values == nil {
		s.values = make(map[string]map[string]string)
	}
	return s, nil
}

// Get returns a copy of the values for a template.
func (s *Store) Get(templateID string) map[string]string {
	out := make(map[string]string, len(s.values[templateID]))
	for k, v := range s.values[templateID] {
		out[k] = v
	}
	return out
}

// Set records a value for a template's input key.
func (s *Store) Set(templateID, key, value string) {
	if s.values[templateID] == nil {
		s.values[templateID] = make(map[string]string)
	}
	s.values[templateID][key] = value
}

// Save writes the store back to its file.
func (s *Store) Save() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("marshaling inputs: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing inputs file: %w", err)
	}
	return nil
}
