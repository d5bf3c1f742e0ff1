// Package bfs provides breadth-first search over a core.Neighborhood,
// returning hop distances and visit order.
//
// BFS explores vertices in increasing hop count from a start vertex,
// with an optional visit hook and edge filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   core.Neighborhood
	opts    BFSOptions
	queue   []queueItem
	visited map[core.NodeID]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrNeighbors for graph failures, or any OnVisit error.
func BFS(g core.Neighborhood, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph:   g,
		opts:    o,
		visited: make(map[core.NodeID]bool),
		res:     &BFSResult{Depth: make(map[core.NodeID]int)},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

func (w *walker) enqueue(id core.NodeID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %s: %v", ErrNeighbors, item.id, err)
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(item.id, e) {
			continue
		}
		if nbr := e.Other(item.id); !w.visited[nbr] {
			w.enqueue(nbr, item.depth+1)
		}
	}

	return nil
}
