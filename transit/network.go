package transit

import (
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/geo"
)

// stationEntry indexes the line nodes of one station.
type stationEntry struct {
	name  string
	pos   geo.Point
	nodes []core.NodeID
	lines []string
}

// Network is the persistent transit graph plus its station and line indexes.
// It is immutable after Build and safe for concurrent use.
type Network struct {
	graph  *core.Graph
	params Params

	lines     []Line
	lineIndex map[string]int

	stations     map[string]*stationEntry
	stationOrder []string
	nodes        []core.Vertex

	components     map[core.NodeID]int
	componentCount int

	stats Stats
}

// Graph returns the shared rail graph. Callers must not mutate it.
func (n *Network) Graph() *core.Graph { return n.graph }

// Params returns the routing constants the network was built with.
func (n *Network) Params() Params { return n.params }

// HasStation reports whether name has at least one line node.
func (n *Network) HasStation(name string) bool {
	_, ok := n.stations[name]
	return ok
}

// Position returns the station's position. When the dataset lists a station on
// several lines with different coordinates, the last listing wins.
func (n *Network) Position(name string) (geo.Point, bool) {
	st, ok := n.stations[name]
	if !ok {
		return geo.Point{}, false
	}

	return st.pos, true
}

// NodesAt returns the line nodes of station name in line order.
func (n *Network) NodesAt(name string) []core.NodeID {
	st, ok := n.stations[name]
	if !ok {
		return nil
	}

	return append([]core.NodeID(nil), st.nodes...)
}

// Nodes returns every line node with its position, in build order.
func (n *Network) Nodes() []core.Vertex {
	return append([]core.Vertex(nil), n.nodes...)
}

// Station returns the description of one station.
func (n *Network) Station(name string) (Station, bool) {
	st, ok := n.stations[name]
	if !ok {
		return Station{}, false
	}

	return Station{Name: st.name, Pos: st.pos, Lines: append([]string(nil), st.lines...)}, true
}

// Stations returns every station in first-seen dataset order.
func (n *Network) Stations() []Station {
	out := make([]Station, 0, len(n.stationOrder))
	for _, name := range n.stationOrder {
		st, _ := n.Station(name)
		out = append(out, st)
	}

	return out
}

// Lines returns every line in dataset order.
func (n *Network) Lines() []Line {
	out := make([]Line, len(n.lines))
	for i, l := range n.lines {
		out[i] = Line{Name: l.Name, Color: l.Color, Stations: append([]string(nil), l.Stations...)}
	}

	return out
}

// Line returns one line by name.
func (n *Network) Line(name string) (Line, bool) {
	i, ok := n.lineIndex[name]
	if !ok {
		return Line{}, false
	}
	l := n.lines[i]

	return Line{Name: l.Name, Color: l.Color, Stations: append([]string(nil), l.Stations...)}, true
}

// Component returns the rail-connected component label of a line node.
func (n *Network) Component(id core.NodeID) (int, bool) {
	c, ok := n.components[id]
	return c, ok
}

// ComponentCount returns the number of rail-connected components.
func (n *Network) ComponentCount() int { return n.componentCount }

// Stats returns construction counters.
func (n *Network) Stats() Stats { return n.stats }
