// Package dijkstra provides shortest-path search on weighted graphs with
// non-negative edge weights, in three flavours selected by options:
//
//   - Dijkstra:        one source, zero heuristic.
//   - Multi-source:    several sources at distance 0; the result gives, for every
//     vertex, the distance to the nearest source. Used to precompute the
//     remaining-cost table towards all line nodes of a destination station.
//   - A*:              WithHeuristic supplies a consistent lower bound on the
//     remaining cost; a zero heuristic makes A* identical to Dijkstra.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithReturnPath records the predecessor edge of every reached vertex, so
//     Result.PathTo returns both the vertices and the edges (with kinds and weights).
//   - WithEdgeFilter restricts traversal, e.g. RailOnly for the rail-only pass.
//   - Target stops the search once the goal is settled.
//   - Works on *core.Graph, *core.Overlay, or any core.Neighborhood.
//
// Determinism:
//
//	Neighbors are relaxed in edge creation order and heap ties are broken by
//	push order, so two searches on the same input return the same path.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Example:
//
//	res, err := dijkstra.Search(g,
//	    dijkstra.Sources(core.Origin("A")),
//	    dijkstra.Target(core.Destination("E")),
//	    dijkstra.WithHeuristic(table.Estimate),
//	    dijkstra.WithReturnPath(),
//	)
//	if err != nil {
//	    return err
//	}
//	path, err := res.PathTo(core.Destination("E"))
package dijkstra
