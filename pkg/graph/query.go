package graph

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// Query kinds accepted by Query.
const (
	QueryNeighbors    = "neighbors"
	QueryShortestPath = "shortest_path"
	QueryCentrality   = "centrality"
	QueryAll          = "all"
)

// Relation is one end of a labeled edge as seen from a queried entity.
type Relation struct {
	Entity       string `json:"entity"`
	Relationship string `json:"relationship"`
}

// Neighbors lists the direct relationships of an entity in both directions.
type Neighbors struct {
	Incoming []Relation `json:"incoming"`
	Outgoing []Relation `json:"outgoing"`
}

// Centrality carries the two centrality measures computed per entity.
type Centrality struct {
	Degree      float64 `json:"degree"`
	Betweenness float64 `json:"betweenness"`
}

// Results aggregates the sub-query outputs of Query. Only the fields for
// sub-queries that ran are populated.
type Results struct {
	Neighbors     *Neighbors          `json:"neighbors,omitempty"`
	ShortestPaths map[string][]string `json:"shortest_paths,omitempty"`
	Centrality    *Centrality         `json:"centrality,omitempty"`
}

// Neighbors returns the incoming and outgoing relationships of entity,
// sorted by neighbor name. ErrNotFound is returned for unknown entities.
func (s *Store) Neighbors(entity string) (Neighbors, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.out[entity]; !ok {
		return Neighbors{}, ErrNotFound
	}

	nb := Neighbors{
		Incoming: make([]Relation, 0, len(s.in[entity])),
		Outgoing: make([]Relation, 0, len(s.out[entity])),
	}
	for source, relationship := range s.in[entity] {
		nb.Incoming = append(nb.Incoming, Relation{Entity: source, Relationship: relationship})
	}
	for target, relationship := range s.out[entity] {
		nb.Outgoing = append(nb.Outgoing, Relation{Entity: target, Relationship: relationship})
	}
	sort.Slice(nb.Incoming, func(i, j int) bool { return nb.Incoming[i].Entity < nb.Incoming[j].Entity })
	sort.Slice(nb.Outgoing, func(i, j int) bool { return nb.Outgoing[i].Entity < nb.Outgoing[j].Entity })
	return nb, nil
}

// ShortestPaths returns, for every other entity reachable from entity via
// directed edges, one shortest path as the ordered list of entity names.
// Unreachable entities are omitted; the queried entity is never a key.
func (s *Store) ShortestPaths(entity string) (map[string][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.out[entity]; !ok {
		return nil, ErrNotFound
	}

	paths := make(map[string][]string)
	if len(s.out) <= 1 {
		return paths, nil
	}

	g, ids, names := s.directedMirrorLocked()
	sp := path.DijkstraFrom(g.Node(ids[entity]), g)
	for target, tid := range ids {
		if target == entity {
			continue
		}
		hops, weight := sp.To(tid)
		if len(hops) == 0 || math.IsInf(weight, 1) {
			continue
		}
		p := make([]string, len(hops))
		for i, n := range hops {
			p[i] = names[n.ID()]
		}
		paths[target] = p
	}
	return paths, nil
}

// Centrality computes degree centrality (in+out degree over n-1) and
// betweenness centrality (Brandes counts normalized by (n-1)(n-2)) for
// entity over the whole graph.
func (s *Store) Centrality(entity string) (Centrality, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.out[entity]; !ok {
		return Centrality{}, ErrNotFound
	}

	var c Centrality
	n := len(s.out)
	if n > 1 {
		c.Degree = float64(len(s.out[entity])+len(s.in[entity])) / float64(n-1)
	}
	if n > 2 {
		g, ids, _ := s.directedMirrorLocked()
		raw := network.Betweenness(g)[ids[entity]]
		c.Betweenness = raw / float64((n-1)*(n-2))
	}
	return c, nil
}

// Query dispatches to the sub-queries selected by queryType ("neighbors",
// "shortest_path", "centrality", or "all"). An unrecognized queryType runs
// nothing and yields empty Results. ErrNotFound is returned if entity is
// not in the graph.
func (s *Store) Query(entity, queryType string) (Results, error) {
	var res Results

	if !s.HasEntity(entity) {
		return res, ErrNotFound
	}

	if queryType == QueryNeighbors || queryType == QueryAll {
		nb, err := s.Neighbors(entity)
		if err != nil {
			return res, err
		}
		res.Neighbors = &nb
	}
	if queryType == QueryShortestPath || queryType == QueryAll {
		paths, err := s.ShortestPaths(entity)
		if err != nil {
			return res, err
		}
		res.ShortestPaths = paths
	}
	if queryType == QueryCentrality || queryType == QueryAll {
		c, err := s.Centrality(entity)
		if err != nil {
			return res, err
		}
		res.Centrality = &c
	}
	return res, nil
}

// directedMirrorLocked builds a gonum directed graph over the current
// adjacency. Self-loops are skipped: gonum's simple graphs reject them and
// they can never lie on a shortest path between distinct entities.
// Callers must hold at least the read lock.
func (s *Store) directedMirrorLocked() (*simple.DirectedGraph, map[string]int64, []string) {
	ids, names := s.nodeIndexLocked()
	g := simple.NewDirectedGraph()
	for _, id := range ids {
		g.AddNode(simple.Node(id))
	}
	for source, targets := range s.out {
		for target := range targets {
			if source == target {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(ids[source]), T: simple.Node(ids[target])})
		}
	}
	return g, ids, names
}

// undirectedMirrorLocked is the direction-blind counterpart used for weak
// connectivity.
func (s *Store) undirectedMirrorLocked() (*simple.UndirectedGraph, map[string]int64) {
	ids, _ := s.nodeIndexLocked()
	g := simple.NewUndirectedGraph()
	for _, id := range ids {
		g.AddNode(simple.Node(id))
	}
	for source, targets := range s.out {
		for target := range targets {
			if source == target {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(ids[source]), T: simple.Node(ids[target])})
		}
	}
	return g, ids
}

func (s *Store) nodeIndexLocked() (map[string]int64, []string) {
	ids := make(map[string]int64, len(s.out))
	names := make([]string, 0, len(s.out))
	for name := range s.out {
		ids[name] = int64(len(names))
		names = append(names, name)
	}
	return ids, names
}
