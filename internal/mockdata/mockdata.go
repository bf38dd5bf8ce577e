// Package mockdata decodes the fixed dashboard dataset embedded in the binary.
package mockdata

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/smarttransit/transitdash/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixtures []byte

// Store serves a decoded dataset. It never changes after construction.
type Store struct {
	data *model.Dataset
}

// Default decodes the embedded fixtures.
func Default() (*Store, error) {
	return Decode(fixtures)
}

// MustDefault is Default for program start-up; the embedded fixtures are
// covered by tests so a failure here is a build defect.
func MustDefault() *Store {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// LoadFile decodes a fixtures file from disk, replacing the embedded set.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	return Decode(raw)
}

// Decode parses YAML fixtures and validates that every section has content.
func Decode(raw []byte) (*Store, error) {
	var ds model.Dataset
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decoding fixtures: %w", err)
	}
	if err := validate(&ds); err != nil {
		return nil, err
	}
	return &Store{data: &ds}, nil
}

// Dataset returns the decoded dataset. Callers must treat it as read-only.
func (s *Store) Dataset() *model.Dataset {
	return s.data
}

// SectionCounts reports item counts per section.
func (s *Store) SectionCounts() map[string]int {
	return s.data.SectionCounts()
}

func validate(ds *model.Dataset) error {
	var errs []error
	for section, n := range ds.SectionCounts() {
		if n == 0 {
			errs = append(errs, fmt.Errorf("fixtures: section %q is empty", section))
		}
	}
	if ds.Title == "" {
		errs = append(errs, errors.New("fixtures: title is empty"))
	}
	trip := ds.Passenger.Trip
	if trip.CurrentStop < 0 || trip.CurrentStop >= len(trip.Stops) {
		errs = append(errs, fmt.Errorf("fixtures: trip current_stop %d out of range", trip.CurrentStop))
	}
	for _, svc := range ds.Overview.Services {
		switch svc.Status {
		case model.ServiceOnline, model.ServiceWarning, model.ServiceError, model.ServiceOffline:
		default:
			errs = append(errs, fmt.Errorf("fixtures: service %q has unknown status %q", svc.Name, svc.Status))
		}
	}
	return errors.Join(errs...)
}
