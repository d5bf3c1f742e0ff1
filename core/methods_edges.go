// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix yields stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge of the given kind between two existing vertices.
//
// Steps:
//  1. Validate weight and loops.
//  2. If opts present without allowMixed ⇒ ErrMixedEdgesNotAllowed.
//  3. Both endpoints must exist (ErrVertexNotFound).
//  4. Lock muEdgeAdj, generate eid, build Edge with the graph default direction, apply opts.
//  5. Store in g.edges and link adjacency; undirected edges are mirrored.
//
// Parallel edges are permitted; the transit builder never creates them.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to NodeID, weight float64, kind EdgeKind, opts ...EdgeOption) (string, error) {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}
	if !g.HasVertex(from) {
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, to)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Kind: kind, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	if !e.Directed {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to NodeID) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edge returns the edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) Edge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEdgeNotFound, edgeID)
	}

	return e, nil
}

// Edges returns all edges sorted by Edge.ID asc.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()
	sortEdges(out)

	return out
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next textual edge identifier.
// Caller must hold muEdgeAdj for writing so the catalog and counter advance together.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 8)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// sortEdges orders edges by ID length, then lexically, which equals numeric
// order for IDs that share a prefix ("e2" before "e10").
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		if len(es[i].ID) != len(es[j].ID) {
			return len(es[i].ID) < len(es[j].ID)
		}

		return es[i].ID < es[j].ID
	})
}
