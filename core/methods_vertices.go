// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs sorted by NodeID.Less.
// Concurrency:
//   - Mutations under muVert write lock; queries under muVert read lock.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/metroroute/geo"
)

// AddVertex inserts a vertex at pos.
//
// Errors:
//   - ErrEmptyVertexID if id.Station is empty.
//   - ErrVertexExists if id is already present.
//
// Complexity: O(1).
func (g *Graph) AddVertex(id NodeID, pos geo.Point) error {
	if id.Station == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return fmt.Errorf("%w: %s", ErrVertexExists, id)
	}
	g.vertices[id] = &Vertex{ID: id, Pos: pos}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[NodeID]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether id exists. O(1).
func (g *Graph) HasVertex(id NodeID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex for id or ErrVertexNotFound.
// The returned *Vertex must be treated as read-only.
func (g *Graph) Vertex(id NodeID) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVertexNotFound, id)
	}

	return v, nil
}

// Vertices returns all vertex IDs sorted by NodeID.Less.
// Complexity: O(V log V).
func (g *Graph) Vertices() []NodeID {
	g.muVert.RLock()
	out := make([]NodeID, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.muVert.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
