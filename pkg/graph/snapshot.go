package graph

import (
	"fmt"

	"gonum.org/v1/gonum/graph/topo"
)

// Node is an entity shaped for the vis-network frontend.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
}

// Edge is a relationship shaped for the vis-network frontend.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Label  string `json:"label"`
	Arrows string `json:"arrows"`
	Title  string `json:"title"`
}

// CountStats carries the node/edge totals embedded in every snapshot.
type CountStats struct {
	TotalNodes int `json:"total_nodes"`
	TotalEdges int `json:"total_edges"`
}

// Data is the full visualization payload.
type Data struct {
	Nodes []Node     `json:"nodes"`
	Edges []Edge     `json:"edges"`
	Stats CountStats `json:"stats"`
}

// Stats summarizes the structure of the whole graph.
type Stats struct {
	TotalNodes    int     `json:"total_nodes"`
	TotalEdges    int     `json:"total_edges"`
	IsConnected   bool    `json:"is_connected"`
	Density       float64 `json:"density"`
	AverageDegree float64 `json:"average_degree"`
}

// Snapshot returns the complete node and edge lists plus totals. Ordering
// follows the store's internal iteration order and is not guaranteed.
func (s *Store) Snapshot() Data {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]Node, 0, len(s.out))
	for name := range s.out {
		nodes = append(nodes, Node{
			ID:    name,
			Label: name,
			Title: fmt.Sprintf("Entity: %s", name),
		})
	}

	edges := make([]Edge, 0, s.edges)
	for source, targets := range s.out {
		for target, relationship := range targets {
			edges = append(edges, Edge{
				From:   source,
				To:     target,
				Label:  relationship,
				Arrows: "to",
				Title:  fmt.Sprintf("%s --[%s]--> %s", source, relationship, target),
			})
		}
	}

	return Data{
		Nodes: nodes,
		Edges: edges,
		Stats: CountStats{
			TotalNodes: len(s.out),
			TotalEdges: s.edges,
		},
	}
}

// Statistics computes whole-graph metrics: counts, weak connectivity,
// density, and average degree.
func (s *Store) Statistics() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.out)
	m := s.edges

	stats := Stats{
		TotalNodes: n,
		TotalEdges: m,
	}
	if n == 0 {
		return stats
	}

	// Average degree counts each edge at both endpoints, matching the
	// in-degree + out-degree convention for directed graphs.
	stats.AverageDegree = float64(2*m) / float64(n)
	if n > 1 {
		stats.Density = float64(m) / float64(n*(n-1))
	}

	ug, _ := s.undirectedMirrorLocked()
	stats.IsConnected = len(topo.ConnectedComponents(ug)) == 1

	return stats
}
