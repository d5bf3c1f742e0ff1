// Package bfs provides breadth-first search over a core.Neighborhood,
// returning hop distances and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult with Order and Depth.
//   - An OnVisit hook, which may abort with an error.
//   - Edge filtering via WithFilterEdge; RailOnly keeps in-line and transfer edges.
//   - Components labels rail-connected components of a whole graph.
//
// Determinism
//
//	core.Neighbors returns edges in creation order and BFS enqueues neighbors
//	in that order, so the visit sequence is reproducible. Components walks
//	start vertices in NodeID order.
//
// Mixed-Edges Support
//
//	Directed edges are followed only from their tail, undirected edges both ways.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
