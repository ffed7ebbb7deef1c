// Package graph implements the in-memory knowledge graph: a directed
// labeled relationship store plus the read-only query operations served
// over it.
//
// The store keeps adjacency maps as the source of truth and mirrors the
// graph into gonum structures for path and centrality computations. Every
// operation is atomic under a single RWMutex, so concurrent requests
// cannot observe a half-applied mutation.
package graph

import (
	"strings"
	"sync"
)

// Store is a directed labeled-edge relationship store. Each ordered
// (source, target) pair carries exactly one relationship label; adding a
// second relationship for the same pair overwrites the label. Entities are
// created implicitly when first referenced by an edge.
type Store struct {
	mu sync.RWMutex

	// out maps source -> target -> relationship label. Every entity has
	// an entry, possibly empty, so the key set doubles as the node set.
	out map[string]map[string]string
	// in maps target -> source -> relationship label.
	in map[string]map[string]string

	edges int
}

// New creates an empty store.
func New() *Store {
	s := &Store{}
	s.clearLocked()
	return s
}

// NewSeeded creates a store pre-loaded with the sample university network.
func NewSeeded() *Store {
	s := New()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked()
	return s
}

// AddRelationship inserts or overwrites the directed edge
// source --[relationship]--> target, creating both entities if needed.
// All three values are whitespace-trimmed first; ErrEmptyField is returned
// if any of them is empty afterwards.
func (s *Store) AddRelationship(source, relationship, target string) error {
	source = strings.TrimSpace(source)
	relationship = strings.TrimSpace(relationship)
	target = strings.TrimSpace(target)
	if source == "" || relationship == "" || target == "" {
		return ErrEmptyField
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(source, relationship, target)
	return nil
}

// Reset discards all entities and relationships and reloads the sample
// set. It returns the node and edge counts removed.
func (s *Store) Reset() (removedNodes, removedEdges int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removedNodes = len(s.out)
	removedEdges = s.edges
	s.clearLocked()
	s.seedLocked()
	return removedNodes, removedEdges
}

// HasEntity reports whether the named entity exists in the graph.
func (s *Store) HasEntity(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.out[name]
	return ok
}

// NodeCount returns the number of entities.
func (s *Store) NodeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.out)
}

// EdgeCount returns the number of relationships.
func (s *Store) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edges
}

func (s *Store) clearLocked() {
	s.out = make(map[string]map[string]string)
	s.in = make(map[string]map[string]string)
	s.edges = 0
}

func (s *Store) addLocked(source, relationship, target string) {
	s.ensureEntityLocked(source)
	s.ensureEntityLocked(target)

	if _, exists := s.out[source][target]; !exists {
		s.edges++
	}
	s.out[source][target] = relationship
	s.in[target][source] = relationship
}

func (s *Store) ensureEntityLocked(name string) {
	if _, ok := s.out[name]; ok {
		return
	}
	s.out[name] = make(map[string]string)
	s.in[name] = make(map[string]string)
}
