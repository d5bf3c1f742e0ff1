package bfs

import "github.com/katalvlaran/metroroute/core"

// Components labels the connected components of g reachable through edges
// accepted by filter (nil follows every edge). Labels are dense integers
// assigned in NodeID order, so the labelling is deterministic.
//
// Edges are treated as traversable in their stored direction only, so on a
// graph with directed edges the result is reachability-based, not strongly
// connected. The transit rail graph is undirected, where both coincide.
func Components(g *core.Graph, filter func(core.NodeID, *core.Edge) bool) (map[core.NodeID]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	labels := make(map[core.NodeID]int, g.VertexCount())
	count := 0
	for _, id := range g.Vertices() {
		if _, done := labels[id]; done {
			continue
		}
		label := count
		_, err := BFS(g, id,
			WithFilterEdge(filter),
			WithOnVisit(func(v core.NodeID, _ int) error {
				labels[v] = label
				return nil
			}),
		)
		if err != nil {
			return nil, 0, err
		}
		count++
	}

	return labels, count, nil
}
