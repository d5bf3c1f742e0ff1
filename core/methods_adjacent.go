// File: methods_adjacent.go
// Role: Neighborhood API (Neighbors) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by edge creation order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "fmt"

// Neighbors returns the edges leaving id.
//
// Neighborhood policy:
//   - Directed edges: included only when e.From == id.
//   - Undirected edges: included from either endpoint; use e.Other(id) for the far end.
//
// The returned slice is freshly allocated and ordered by edge creation; the
// *Edge values are live catalog entries and must not be mutated.
//
// Errors: ErrVertexNotFound if id does not exist.
// Complexity: O(d log d) where d is the number of incident edges.
func (g *Graph) Neighbors(id NodeID) ([]*Edge, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			e := g.edges[eid]
			if e.IsNil() {
				continue
			}
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// ensureAdjacency makes sure adjacencyList[from][to] is allocated.
func ensureAdjacency(g *Graph, from, to NodeID) {
	if _, ok := g.adjacencyList[from]; !ok {
		g.adjacencyList[from] = make(map[NodeID]map[string]struct{})
	}
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
