// Package core provides the thread-safe in-memory Graph that stores a transit
// network as line nodes joined by weighted, kind-tagged edges.
//
// A vertex is identified by a NodeID: the pair (Station, Line) for rail nodes,
// or a virtual endpoint role anchored at a station for request-local origin and
// destination nodes. Every vertex carries a position for walking estimates.
//
// Key properties:
//
//   - Directed vs. undirected edges (WithDirected), with per-edge overrides in
//     "mixed" graphs (WithMixedEdges + WithEdgeDirected).
//   - Weights are minutes: finite and non-negative, checked at insertion.
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//   - Deterministic iteration: Vertices(), Edges() and Neighbors() are sorted.
//
// Isolation:
//
//	Clone()         deep copy; mutate freely without touching the source.
//	NewOverlay(g)   request-local layer of extra vertices and directed edges;
//	                reads fall through to g, writes never reach it.
//
// Both *Graph and *Overlay satisfy Neighborhood, the read surface consumed by
// the bfs and dijkstra packages.
//
// Example:
//
//	g := core.NewMixedGraph()
//	_ = g.AddVertex(core.Rail("A", "L1"), geo.Point{0, 0})
//	_ = g.AddVertex(core.Rail("B", "L1"), geo.Point{10, 0})
//	_, _ = g.AddEdge(core.Rail("A", "L1"), core.Rail("B", "L1"), 2, core.KindInLine)
package core
