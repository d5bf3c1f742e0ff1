// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Neighborhood.
package bfs

import (
	"errors"

	"github.com/katalvlaran/metroroute/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds the callbacks that customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id core.NodeID, depth int) error

	// FilterEdge can skip edges by returning false.
	// Called for each edge leaving curr.
	FilterEdge func(curr core.NodeID, e *core.Edge) bool
}

// DefaultOptions returns a BFSOptions that follows every edge and visits
// with a no-op hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:    func(core.NodeID, int) error { return nil },
		FilterEdge: func(core.NodeID, *core.Edge) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id core.NodeID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(curr core.NodeID, e *core.Edge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// RailOnly is an edge filter that keeps in-line and transfer edges.
func RailOnly(_ core.NodeID, e *core.Edge) bool { return e.Kind.IsRail() }

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex ID to its distance (in edges) from the start.
type BFSResult struct {
	Order []core.NodeID
	Depth map[core.NodeID]int
}
