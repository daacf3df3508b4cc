package db

import (
	"sync"

	"district-sim/config"
)

/*
Store holds the per-category vectors of every district.

It is populated by an Aggregator during the build phase and only read
afterwards. Districts are enumerated in the order they were first inserted.
*/
type Store struct {
	districts map[string]VectorSet
	order     []string
	mu        sync.RWMutex
}

/*
NewStore creates an empty store
*/
func NewStore() *Store {
	return &Store{
		districts: make(map[string]VectorSet),
	}
}

/*
Set replaces the vector stored for the district and category.

The slice is copied; a later Set for the same pair overwrites the previous
vector instead of appending to it. An empty vector is ignored, so a category
key exists only when it holds at least one value.
*/
func (s *Store) Set(geoname string, category config.Category, vector []float64) {
	if len(vector) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, exists := s.districts[geoname]
	if !exists {
		set = make(VectorSet)
		s.districts[geoname] = set
		s.order = append(s.order, geoname)
	}

	set[category] = append([]float64(nil), vector...)
}

/*
Get returns the vector set of a district and whether it exists.

The returned set is a copy and may be modified by the caller.
*/
func (s *Store) Get(geoname string) (VectorSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, exists := s.districts[geoname]
	if !exists {
		return nil, false
	}

	out := make(VectorSet, len(set))
	for cat, vec := range set {
		out[cat] = append([]float64(nil), vec...)
	}
	return out, true
}

// Len returns the number of districts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

/*
IDs returns the district identifiers in first-insertion order
*/
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// each calls fn for every district in first-insertion order without copying.
func (s *Store) each(fn func(geoname string, set VectorSet)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		fn(id, s.districts[id])
	}
}

func (s *Store) lookup(geoname string) (VectorSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, exists := s.districts[geoname]
	return set, exists
}
