package transit

import (
	"fmt"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/geo"
)

// Inject augments the network with a virtual origin and a virtual destination
// for one request and returns the request-local graph.
//
// Origin: one board edge from the virtual origin to every line node of the
// origin station, weighted by the walk from the rider's position to the node.
//
// Destination: one edge from every line node to the virtual destination. Nodes
// of the destination station arrive for free; any other node may exit the
// network and walk, costing ExitMinutes plus the walk. With a positive
// MaxWalkMinutes, walks longer than the cap are left out.
//
// The shared graph is never written: StrategyOverlay keeps the extra vertices
// and edges in a core.Overlay, StrategyCopy adds them to a deep copy.
//
// Errors: ErrUnknownStation (wrapped with the name) for either endpoint;
// geo.ErrNonFinite for a non-finite explicit position.
func (n *Network) Inject(ep Endpoints, opts ...InjectOption) (*Augmented, error) {
	o := injectOptions{strategy: StrategyOverlay}
	for _, opt := range opts {
		opt(&o)
	}

	orig, ok := n.stations[ep.Origin]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStation, ep.Origin)
	}
	dest, ok := n.stations[ep.Destination]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStation, ep.Destination)
	}
	originPos, err := resolvePos(ep.OriginPos, orig.pos)
	if err != nil {
		return nil, err
	}
	destPos, err := resolvePos(ep.DestinationPos, dest.pos)
	if err != nil {
		return nil, err
	}

	aug := &Augmented{
		Origin:         core.Origin(ep.Origin),
		Destination:    core.Destination(ep.Destination),
		OriginPos:      originPos,
		DestinationPos: destPos,
		Strategy:       o.strategy,
	}

	var (
		addVertex func(core.NodeID, geo.Point) error
		addEdge   func(from, to core.NodeID, w float64, kind core.EdgeKind) error
	)
	switch o.strategy {
	case StrategyCopy:
		c := n.graph.Clone()
		addVertex = c.AddVertex
		addEdge = func(from, to core.NodeID, w float64, kind core.EdgeKind) error {
			_, err := c.AddEdge(from, to, w, kind, core.WithEdgeDirected(true))
			return err
		}
		aug.Graph = c
	default:
		ov := core.NewOverlay(n.graph)
		addVertex = ov.AddVertex
		addEdge = func(from, to core.NodeID, w float64, kind core.EdgeKind) error {
			_, err := ov.AddEdge(from, to, w, kind)
			return err
		}
		aug.Graph = ov
	}

	if err := addVertex(aug.Origin, originPos); err != nil {
		return nil, err
	}
	if err := addVertex(aug.Destination, destPos); err != nil {
		return nil, err
	}

	walker := n.params.Walker
	for _, id := range orig.nodes {
		v, err := n.graph.Vertex(id)
		if err != nil {
			return nil, err
		}
		if err := addEdge(aug.Origin, id, walker.WalkTime(originPos, v.Pos), core.KindBoard); err != nil {
			return nil, err
		}
		aug.BoardEdges++
	}

	for _, v := range n.nodes {
		if v.ID.Station == ep.Destination {
			if err := addEdge(v.ID, aug.Destination, 0, core.KindArrive); err != nil {
				return nil, err
			}
			aug.ArriveEdges++
			continue
		}
		walk := walker.WalkTime(v.Pos, destPos)
		if n.params.MaxWalkMinutes > 0 && walk > n.params.MaxWalkMinutes {
			continue
		}
		if err := addEdge(v.ID, aug.Destination, n.params.ExitMinutes+walk, core.KindWalk); err != nil {
			return nil, err
		}
		aug.WalkEdges++
	}

	return aug, nil
}

func resolvePos(explicit *geo.Point, fallback geo.Point) (geo.Point, error) {
	if explicit == nil {
		return fallback, nil
	}
	if err := geo.ValidatePoint(*explicit); err != nil {
		return geo.Point{}, err
	}

	return *explicit, nil
}
