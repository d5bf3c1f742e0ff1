// File: overlay.go
// Role: Request-local, non-mutating extension of a Graph (extra vertices and directed edges).
// Determinism:
//   - Neighbors() lists base edges in creation order, then overlay edges in insertion order.
//   - Overlay edge IDs are "v1", "v2", ... and cannot collide with base IDs ("e…").
// Concurrency:
//   - The base Graph is only read (under its own read locks).
//   - An Overlay itself is owned by one goroutine and is not safe for concurrent mutation.

package core

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/metroroute/geo"
)

const overlayEdgeIDPrefix = 'v'

// Overlay layers request-local vertices and directed edges on top of a shared
// base Graph. Lookups consult the overlay first and fall through to the base;
// the base is never written.
type Overlay struct {
	base     *Graph
	vertices map[NodeID]*Vertex
	out      map[NodeID][]*Edge
	edges    int
	nextID   uint64
}

// NewOverlay returns an empty Overlay over base.
func NewOverlay(base *Graph) *Overlay {
	return &Overlay{
		base:     base,
		vertices: make(map[NodeID]*Vertex),
		out:      make(map[NodeID][]*Edge),
	}
}

// Base returns the read-only graph under the overlay.
func (o *Overlay) Base() *Graph { return o.base }

// AddVertex adds a request-local vertex. It fails with ErrVertexExists when
// id is present in either layer.
func (o *Overlay) AddVertex(id NodeID, pos geo.Point) error {
	if id.Station == "" {
		return ErrEmptyVertexID
	}
	if o.HasVertex(id) {
		return fmt.Errorf("%w: %s", ErrVertexExists, id)
	}
	o.vertices[id] = &Vertex{ID: id, Pos: pos}

	return nil
}

// AddEdge adds a directed request-local edge. Endpoints may live in either layer.
func (o *Overlay) AddEdge(from, to NodeID, weight float64, kind EdgeKind) (string, error) {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if !o.HasVertex(from) {
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, from)
	}
	if !o.HasVertex(to) {
		return "", fmt.Errorf("%w: %s", ErrVertexNotFound, to)
	}

	o.nextID++
	buf := make([]byte, 0, 8)
	buf = append(buf, overlayEdgeIDPrefix)
	buf = strconv.AppendUint(buf, o.nextID, 10)
	e := &Edge{ID: string(buf), From: from, To: to, Weight: weight, Kind: kind, Directed: true}
	o.out[from] = append(o.out[from], e)
	o.edges++

	return e.ID, nil
}

// HasVertex reports whether id exists in the overlay or the base.
func (o *Overlay) HasVertex(id NodeID) bool {
	if _, ok := o.vertices[id]; ok {
		return true
	}

	return o.base.HasVertex(id)
}

// Vertex returns the vertex for id from the overlay or the base.
func (o *Overlay) Vertex(id NodeID) (*Vertex, error) {
	if v, ok := o.vertices[id]; ok {
		return v, nil
	}

	return o.base.Vertex(id)
}

// Neighbors returns the base edges leaving id followed by the overlay edges leaving id.
func (o *Overlay) Neighbors(id NodeID) ([]*Edge, error) {
	extra := o.out[id]
	if _, local := o.vertices[id]; local {
		return append([]*Edge(nil), extra...), nil
	}
	base, err := o.base.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return append(base, extra...), nil
}

// EdgeCount returns the number of overlay edges (base edges excluded).
func (o *Overlay) EdgeCount() int { return o.edges }
