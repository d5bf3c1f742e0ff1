// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so textual edge IDs stay monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Pos: v.Pos}
		clone.adjacencyList[id] = make(map[NodeID]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. No *Edge or *Vertex is shared with the source, so edges added to
// the clone are invisible to g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}
		if !e.Directed {
			ensureAdjacency(clone, e.To, e.From)
			clone.adjacencyList[e.To][e.From][eid] = struct{}{}
		}
	}

	return clone
}
