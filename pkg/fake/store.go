/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fake

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Record is a stored resource member, it is serialized as is.
type Record map[string]any

// collection is an ordered set of records keyed by id.
type collection struct {
	records map[int]Record
	nextID  int
}

func newCollection(seed []Record) *collection {
	c := &collection{
		records: map[int]Record{},
	}

	for _, r := range seed {
		id, _ := r["id"].(int)

		c.records[id] = r
		c.nextID = max(c.nextID, id)
	}

	return c
}

// Store is a thread safe in-memory database of resources.
type Store struct {
	lock        sync.RWMutex
	collections map[string]*collection
}

// NewStore returns a store seeded with the reqres users and colours.
func NewStore() *Store {
	return &Store{
		collections: map[string]*collection{
			"users":   newCollection(seedUsers()),
			"unknown": newCollection(seedColours()),
		},
	}
}

// Has reports whether resource exists.
func (s *Store) Has(resource string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	_, ok := s.collections[resource]

	return ok
}

// List returns a page of records ordered by id and the total count.
func (s *Store) List(resource string, page, perPage int) ([]Record, int) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	c, ok := s.collections[resource]
	if !ok {
		return nil, 0
	}

	ids := slices.Sorted(maps.Keys(c.records))

	total := len(ids)
	perPage = max(perPage, 1)

	// Bound the page before multiplying so huge pages cannot overflow.
	start := total
	if page > 0 && page-1 <= total/perPage {
		start = min((page-1)*perPage, total)
	}

	end := start + min(perPage, total-start)

	out := make([]Record, 0, end-start)

	for _, id := range ids[start:end] {
		out = append(out, maps.Clone(c.records[id]))
	}

	return out, total
}

// Get returns a copy of a record.
func (s *Store) Get(resource string, id int) (Record, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	c, ok := s.collections[resource]
	if !ok {
		return nil, false
	}

	r, ok := c.records[id]
	if !ok {
		return nil, false
	}

	return maps.Clone(r), true
}

// Create stores fields under a new id and returns the stored record.
func (s *Store) Create(resource string, fields Record) (Record, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	c, ok := s.collections[resource]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}

	c.nextID++

	r := maps.Clone(fields)
	r["id"] = c.nextID

	c.records[c.nextID] = r

	return maps.Clone(r), nil
}

// Update merges fields into a record, or replaces everything but the id
// when replace is set.
func (s *Store) Update(resource string, id int, fields Record, replace bool) (Record, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	c, ok := s.collections[resource]
	if !ok {
		return nil, false
	}

	r, ok := c.records[id]
	if !ok {
		return nil, false
	}

	if replace {
		r = Record{}
	}

	maps.Copy(r, fields)
	r["id"] = id

	c.records[id] = r

	return maps.Clone(r), true
}

// Delete removes a record.
func (s *Store) Delete(resource string, id int) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	c, ok := s.collections[resource]
	if !ok {
		return false
	}

	if _, ok := c.records[id]; !ok {
		return false
	}

	delete(c.records, id)

	return true
}
