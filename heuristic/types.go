// Package heuristic precomputes, per destination station, a lower bound on
// the remaining cost from every line node, for use as the A* heuristic.
//
// The table is one multi-source Dijkstra sweep over the pure rail graph seeded
// with every line node of the destination station. Estimate combines it with
// the cheapest way out of the node's rail component on foot:
//
//	h(virtual) = 0
//	h(n)       = min(remaining[n], exit + minWalk(component(n)))
//
// where remaining[n] is absent for nodes with no rail route to the destination
// and minWalk(c) is the shortest walk from any line node of component c to the
// destination position. Both terms are lower bounds of the true remaining cost,
// and each is consistent across rail edges, so their minimum is a consistent
// heuristic and A* returns optimal paths.
package heuristic

import (
	"errors"
	"math"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/geo"
)

// ErrUnknownDestination indicates Build was asked for a station the network does not serve.
var ErrUnknownDestination = errors.New("heuristic: unknown destination station")

// Table is the immutable heuristic for one destination.
type Table struct {
	Destination string
	DestPos     geo.Point

	remaining  map[core.NodeID]float64
	egress     map[int]float64
	components map[core.NodeID]int
	exit       float64
}

// Lookup returns the shortest rail-only time from id to any line node of the
// destination station, and whether such a route exists.
func (t *Table) Lookup(id core.NodeID) (float64, bool) {
	d, ok := t.remaining[id]
	return d, ok
}

// Len returns the number of line nodes with a rail route to the destination.
func (t *Table) Len() int { return len(t.remaining) }

// Estimate returns the heuristic value for id. Virtual endpoints estimate 0;
// a node that can reach the destination neither by rail nor by walking out of
// its component estimates +Inf.
func (t *Table) Estimate(id core.NodeID) float64 {
	if id.IsVirtual() {
		return 0
	}
	h := math.Inf(1)
	if d, ok := t.remaining[id]; ok {
		h = d
	}
	if c, ok := t.components[id]; ok {
		if w, ok := t.egress[c]; ok {
			h = math.Min(h, t.exit+w)
		}
	}

	return h
}

// Option configures Build.
type Option func(*options)

type options struct {
	destPos *geo.Point
}

// WithDestinationPos overrides the destination station's position for the
// walking term, matching an injected user position.
func WithDestinationPos(p geo.Point) Option {
	return func(o *options) { o.destPos = &p }
}
