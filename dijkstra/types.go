// Package dijkstra defines core types and configuration options for
// shortest-path search over a core.Neighborhood.
//
// The search is Dijkstra's algorithm generalised in three ways the transit
// planner needs:
//
//   - Multi-source: every vertex passed to Sources starts at distance 0.
//   - Goal-directed: WithHeuristic turns the search into A*; a nil or zero
//     heuristic degrades it to plain Dijkstra.
//   - Filtered: WithEdgeFilter hides edges (e.g. everything but rail edges).
//
// Complexity:
//
//	– Time:  O((V + E) log V)   with lazy decrease-key.
//	– Space: O(V + E)           distance/predecessor maps plus heap entries.
//
// Options:
//
//	– Sources:        one or more start vertices (required, all must exist).
//	– Target:         stop once this vertex is settled.
//	– WithHeuristic:  admissible, consistent lower bound on remaining cost.
//	– WithEdgeFilter: predicate deciding which edges are traversable.
//	– WithReturnPath: record predecessor edges for Result.PathTo.
//
// Errors (sentinel):
//
//	– ErrNoSource        if no source vertex was given.
//	– ErrNilGraph        if the graph is nil.
//	– ErrVertexNotFound  if a source or the target does not exist.
//	– ErrNegativeWeight  if a negative edge weight is met during relaxation.
//	– ErrNoPath          from Result.PathTo when the target was not reached.
//	– ErrPathNotRecorded from Result.PathTo without WithReturnPath.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/metroroute/core"
)

// Sentinel errors returned by the search.
var (
	// ErrNoSource indicates that no source vertex was provided.
	ErrNoSource = errors.New("dijkstra: no source vertex")

	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a source or target vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates the requested target is unreachable from every source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrPathNotRecorded indicates PathTo was called on a search run without WithReturnPath.
	ErrPathNotRecorded = errors.New("dijkstra: predecessors not recorded")
)

// Heuristic estimates the remaining cost from a vertex to the goal.
type Heuristic func(core.NodeID) float64

// EdgeFilter reports whether an edge may be traversed.
type EdgeFilter func(*core.Edge) bool

// Options configures the search.
type Options struct {
	Sources    []core.NodeID
	Target     core.NodeID
	HasTarget  bool
	Heuristic  Heuristic
	EdgeFilter EdgeFilter
	ReturnPath bool
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// Sources appends start vertices. Each starts at distance 0.
func Sources(ids ...core.NodeID) Option {
	return func(o *Options) {
		o.Sources = append(o.Sources, ids...)
	}
}

// Target makes the search stop as soon as id is settled.
func Target(id core.NodeID) Option {
	return func(o *Options) {
		o.Target = id
		o.HasTarget = true
	}
}

// WithHeuristic enables A*. h must never overestimate the remaining cost and
// must satisfy h(u) ≤ w(u,v) + h(v) for every edge, otherwise results may be
// suboptimal. A nil h keeps plain Dijkstra.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithEdgeFilter hides every edge for which keep returns false.
func WithEdgeFilter(keep EdgeFilter) Option {
	return func(o *Options) {
		o.EdgeFilter = keep
	}
}

// WithReturnPath records predecessor edges so Result.PathTo can rebuild paths.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// RailOnly keeps in-line and transfer edges.
func RailOnly(e *core.Edge) bool { return e.Kind.IsRail() }

// DefaultOptions returns Options with no sources, no target, no heuristic,
// every edge traversable and no predecessor map.
func DefaultOptions() Options {
	return Options{}
}

// Path is a reconstructed shortest path.
type Path struct {
	Nodes []core.NodeID // source … target
	Edges []*core.Edge  // Edges[i] joins Nodes[i] and Nodes[i+1]
	Cost  float64
}

// Result holds the outcome of a search.
//
// Dist contains every vertex that received a finite tentative distance;
// entries for settled vertices are final. Prev is nil unless ReturnPath was set.
type Result struct {
	Dist    map[core.NodeID]float64
	Prev    map[core.NodeID]*core.Edge
	Settled int

	sources map[core.NodeID]struct{}
	settled map[core.NodeID]bool
}
