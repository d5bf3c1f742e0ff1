// Package core defines the transit Graph, its Vertex and Edge types,
// and thread-safe primitives for building, querying, cloning and overlaying it.
//
// All Graph APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a fully built Graph can be read from
// any number of goroutines while request-local Overlays extend it.
//
// This file declares NodeID, Role, EdgeKind, Vertex, Edge, Graph, GraphOption,
// EdgeOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID has an empty station name.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrVertexExists         - vertex ID already present.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrBadWeight            - negative, NaN or infinite edge weight.
//	ErrLoopNotAllowed       - self-loop.
//	ErrMixedEdgesNotAllowed - per-edge direction override without WithMixedEdges.
package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/metroroute/geo"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided NodeID has an empty station.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates AddVertex was called twice with the same NodeID.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override when mixed edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Role tags a NodeID as a real line node or one of the two request-local endpoints.
type Role uint8

const (
	// RoleRail marks a (station, line) node of the persistent graph.
	RoleRail Role = iota

	// RoleOrigin marks the virtual origin injected for one request.
	RoleOrigin

	// RoleDestination marks the virtual destination injected for one request.
	RoleDestination
)

// String returns "rail", "origin" or "destination".
func (r Role) String() string {
	switch r {
	case RoleRail:
		return "rail"
	case RoleOrigin:
		return "origin"
	case RoleDestination:
		return "destination"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// NodeID identifies a vertex. A rail node is the pair (Station, Line); virtual
// endpoints carry a non-rail Role so they never alias a rail node even when
// Station and Line coincide.
type NodeID struct {
	Station string
	Line    string
	Role    Role
}

// Rail returns the NodeID of the line node for station on line.
func Rail(station, line string) NodeID {
	return NodeID{Station: station, Line: line, Role: RoleRail}
}

// Origin returns the virtual origin NodeID anchored at station.
func Origin(station string) NodeID {
	return NodeID{Station: station, Role: RoleOrigin}
}

// Destination returns the virtual destination NodeID anchored at station.
func Destination(station string) NodeID {
	return NodeID{Station: station, Role: RoleDestination}
}

// IsVirtual reports whether id is a request-local endpoint.
func (id NodeID) IsVirtual() bool { return id.Role != RoleRail }

// String renders rail nodes as "Station@Line" and endpoints as "<role:Station>".
func (id NodeID) String() string {
	if id.Role == RoleRail {
		return id.Station + "@" + id.Line
	}

	return "<" + id.Role.String() + ":" + id.Station + ">"
}

// Less orders NodeIDs by Role, then Station, then Line.
func (id NodeID) Less(o NodeID) bool {
	if id.Role != o.Role {
		return id.Role < o.Role
	}
	if id.Station != o.Station {
		return id.Station < o.Station
	}

	return id.Line < o.Line
}

// EdgeKind classifies an edge by the leg of a journey it models.
type EdgeKind uint8

const (
	// KindInLine joins consecutive stops of one line.
	KindInLine EdgeKind = iota

	// KindTransfer joins two line nodes of the same station.
	KindTransfer

	// KindBoard leaves the virtual origin for a line node of the origin station.
	KindBoard

	// KindWalk exits the network at a line node and walks to the destination.
	KindWalk

	// KindArrive reaches the virtual destination from a line node of the destination station.
	KindArrive
)

var edgeKindNames = [...]string{
	KindInLine:   "in-line",
	KindTransfer: "transfer",
	KindBoard:    "board",
	KindWalk:     "walk",
	KindArrive:   "arrive",
}

// String returns the kebab-case name of k.
func (k EdgeKind) String() string {
	if int(k) < len(edgeKindNames) {
		return edgeKindNames[k]
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsRail reports whether k is one of the two kinds that make up the persistent graph.
func (k EdgeKind) IsRail() bool { return k == KindInLine || k == KindTransfer }

// Vertex is a node with a position used for walking estimates.
type Vertex struct {
	ID  NodeID
	Pos geo.Point
}

// Edge represents a weighted connection between two vertices.
//
// Weight is in minutes. Directed overrides the Graph's default directedness
// when the Graph was constructed with mixed edge support.
type Edge struct {
	ID       string
	From     NodeID
	To       NodeID
	Weight   float64
	Kind     EdgeKind
	Directed bool
}

// Other returns the endpoint of e opposite to id.
func (e *Edge) Other(id NodeID) NodeID {
	if e.From == id {
		return e.To
	}

	return e.From
}

// IsNil reports whether e is a nil pointer.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the in-memory weighted graph of line nodes.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	allowMixed bool

	nextEdgeID uint64
	vertices   map[NodeID]*Vertex
	edges      map[string]*Edge

	// adjacencyList[from][to][edgeID] = struct{}{}
	adjacencyList map[NodeID]map[NodeID]map[string]struct{}
}

// NewGraph creates an empty Graph. By default edges are undirected.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[NodeID]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[NodeID]map[NodeID]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewMixedGraph creates an undirected-by-default Graph that accepts per-edge
// direction overrides.
func NewMixedGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithMixedEdges()}, opts...)...)
}

// Directed reports the default directedness of new edges.
func (g *Graph) Directed() bool { return g.directed }

// MixedEdges reports whether per-edge direction overrides are permitted.
func (g *Graph) MixedEdges() bool { return g.allowMixed }

// Neighborhood is the read-only surface search algorithms traverse.
// Both *Graph and *Overlay implement it.
type Neighborhood interface {
	HasVertex(id NodeID) bool
	Vertex(id NodeID) (*Vertex, error)
	Neighbors(id NodeID) ([]*Edge, error)
}
