package dataset

import (
	"sort"
	"strings"
	"sync"

	"github.com/kilianp07/fleethealth/core/model"
)

// Filter selects a subset of the fleet. Zero-valued fields match everything.
type Filter struct {
	Depot       string
	Status      model.HealthStatus
	ThermalRisk model.ThermalRisk
	// Search matches a case-insensitive substring of the vehicle id or name.
	Search string
	// MinSoH and MaxSoH bound the state of health; MaxSoH of 0 means no
	// upper bound.
	MinSoH float64
	MaxSoH float64
}

func (f Filter) matches(v model.Vehicle) bool {
	if f.Depot != "" && v.Depot != f.Depot {
		return false
	}
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	if f.ThermalRisk != "" && v.ThermalRisk != f.ThermalRisk {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(v.ID), q) &&
			!strings.Contains(strings.ToLower(v.Name), q) {
			return false
		}
	}
	if v.SoH < f.MinSoH {
		return false
	}
	if f.MaxSoH > 0 && v.SoH > f.MaxSoH {
		return false
	}
	return true
}

// Store provides concurrent read access to the current dataset snapshot and
// an atomic swap point for rebuilds.
type Store interface {
	List(Filter) []model.Vehicle
	Get(id string) (model.Vehicle, bool)
	Snapshot() *Dataset
	Swap(*Dataset)
}

// MemoryStore is the in-memory Store implementation. Filtering returns
// derived copies; the underlying dataset is never mutated.
type MemoryStore struct {
	mu sync.RWMutex
	ds *Dataset
}

// NewMemoryStore creates a store holding the given snapshot.
func NewMemoryStore(ds *Dataset) *MemoryStore {
	return &MemoryStore{ds: ds}
}

// List returns the vehicles matching the filter, ordered by id.
func (s *MemoryStore) List(f Filter) []model.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]model.Vehicle, 0, len(s.ds.Fleet))
	for _, v := range s.ds.Fleet {
		if f.matches(v) {
			res = append(res, v)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

// Get returns the vehicle with the given id.
func (s *MemoryStore) Get(id string) (model.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.Vehicle(id)
}

// Snapshot returns the current dataset.
func (s *MemoryStore) Snapshot() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

// Swap atomically replaces the current dataset. Readers holding the previous
// snapshot keep a consistent view.
func (s *MemoryStore) Swap(ds *Dataset) {
	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()
}
