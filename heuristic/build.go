package heuristic

import (
	"fmt"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dijkstra"
	"github.com/katalvlaran/metroroute/transit"
)

// Build computes the Table for destination station dest over net.
//
// Complexity: O((V + E) log V) for the sweep plus O(V) for the walking term.
func Build(net *transit.Network, dest string, opts ...Option) (*Table, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	seeds := net.NodesAt(dest)
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDestination, dest)
	}
	destPos, _ := net.Position(dest)
	if o.destPos != nil {
		destPos = *o.destPos
	}

	res, err := dijkstra.Search(net.Graph(),
		dijkstra.Sources(seeds...),
		dijkstra.WithEdgeFilter(dijkstra.RailOnly),
	)
	if err != nil {
		return nil, fmt.Errorf("heuristic: rail sweep from %q: %w", dest, err)
	}

	p := net.Params()
	t := &Table{
		Destination: dest,
		DestPos:     destPos,
		remaining:   res.Dist,
		egress:      make(map[int]float64),
		components:  make(map[core.NodeID]int),
		exit:        p.ExitMinutes,
	}
	for _, v := range net.Nodes() {
		c, ok := net.Component(v.ID)
		if !ok {
			continue
		}
		t.components[v.ID] = c
		if v.ID.Station == dest {
			continue
		}
		w := p.Walker.WalkTime(v.Pos, destPos)
		if p.MaxWalkMinutes > 0 && w > p.MaxWalkMinutes {
			continue
		}
		if cur, ok := t.egress[c]; !ok || w < cur {
			t.egress[c] = w
		}
	}

	return t, nil
}
