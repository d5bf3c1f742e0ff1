package transit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metroroute/bfs"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/geo"
)

// Build constructs the persistent Network from ds.
//
// Steps:
//  1. Validate params (ErrBadParams).
//  2. For each line in order, add one line node per stop and join consecutive
//     stops with an undirected in-line edge of InterStationMinutes.
//  3. For every station served by k>1 lines, add the k·(k−1)/2 undirected
//     transfer edges of TransferMinutes between its line nodes.
//  4. Label rail-connected components.
//
// Any structural problem (no lines, empty or duplicate line name, line without
// stops, empty station name, non-finite coordinate, repeated (station, line)
// pair) fails with ErrMalformedDataset.
//
// Complexity: O(S + Σ k_i²) where S is the total number of stops.
func Build(ds Dataset, p Params) (*Network, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(ds.Lines) == 0 {
		return nil, fmt.Errorf("%w: no lines", ErrMalformedDataset)
	}

	n := &Network{
		graph:      core.NewMixedGraph(),
		params:     p,
		lineIndex:  make(map[string]int, len(ds.Lines)),
		stations:   make(map[string]*stationEntry),
		components: nil,
	}

	for _, ls := range ds.Lines {
		if err := n.addLine(ls); err != nil {
			return nil, err
		}
	}
	if err := n.addTransfers(); err != nil {
		return nil, err
	}

	labels, count, err := bfs.Components(n.graph, bfs.RailOnly)
	if err != nil {
		return nil, fmt.Errorf("transit: labelling components: %w", err)
	}
	n.components = labels
	n.componentCount = count

	n.stats.Stations = len(n.stationOrder)
	n.stats.Lines = len(n.lines)
	n.stats.Nodes = len(n.nodes)
	n.stats.Components = count

	return n, nil
}

func (n *Network) addLine(ls LineSpec) error {
	if ls.Name == "" {
		return fmt.Errorf("%w: line with empty name", ErrMalformedDataset)
	}
	if _, dup := n.lineIndex[ls.Name]; dup {
		return fmt.Errorf("%w: line %q listed twice", ErrMalformedDataset, ls.Name)
	}
	if len(ls.Stops) == 0 {
		return fmt.Errorf("%w: line %q has no stations", ErrMalformedDataset, ls.Name)
	}

	line := Line{Name: ls.Name, Color: ls.Color, Stations: make([]string, 0, len(ls.Stops))}
	var prev core.NodeID
	for i, stop := range ls.Stops {
		if stop.Station == "" {
			return fmt.Errorf("%w: line %q stop %d has empty station name", ErrMalformedDataset, ls.Name, i)
		}
		if err := geo.ValidatePoint(stop.Pos); err != nil {
			return fmt.Errorf("%w: line %q station %q: %v", ErrMalformedDataset, ls.Name, stop.Station, err)
		}

		id := core.Rail(stop.Station, ls.Name)
		if err := n.graph.AddVertex(id, stop.Pos); err != nil {
			if errors.Is(err, core.ErrVertexExists) {
				return fmt.Errorf("%w: station %q appears twice on line %q", ErrMalformedDataset, stop.Station, ls.Name)
			}
			return err
		}
		n.nodes = append(n.nodes, core.Vertex{ID: id, Pos: stop.Pos})
		n.indexStation(stop, ls.Name, id)
		line.Stations = append(line.Stations, stop.Station)

		if i > 0 {
			if _, err := n.graph.AddEdge(prev, id, n.params.InterStationMinutes, core.KindInLine); err != nil {
				return fmt.Errorf("transit: in-line edge %s→%s: %w", prev, id, err)
			}
			n.stats.InLineEdges++
		}
		prev = id
	}

	n.lineIndex[ls.Name] = len(n.lines)
	n.lines = append(n.lines, line)

	return nil
}

func (n *Network) indexStation(stop StopSpec, line string, id core.NodeID) {
	st, ok := n.stations[stop.Station]
	if !ok {
		st = &stationEntry{name: stop.Station}
		n.stations[stop.Station] = st
		n.stationOrder = append(n.stationOrder, stop.Station)
	}
	st.pos = stop.Pos
	st.nodes = append(st.nodes, id)
	st.lines = append(st.lines, line)
}

// addTransfers completes the transfer subgraph of every multi-line station.
func (n *Network) addTransfers() error {
	for _, name := range n.stationOrder {
		nodes := n.stations[name].nodes
		if len(nodes) < 2 {
			continue
		}
		n.stats.TransferStations++
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				if _, err := n.graph.AddEdge(nodes[i], nodes[j], n.params.TransferMinutes, core.KindTransfer); err != nil {
					return fmt.Errorf("transit: transfer edge %s→%s: %w", nodes[i], nodes[j], err)
				}
				n.stats.TransferEdges++
			}
		}
	}

	return nil
}
