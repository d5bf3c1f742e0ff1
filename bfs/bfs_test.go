package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/metroroute/bfs"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/geo"
)

func node(s string) core.NodeID { return core.Rail(s, "L") }

// chain builds an undirected path over the given station names.
func chain(t *testing.T, g *core.Graph, names ...string) {
	t.Helper()
	for _, n := range names {
		if !g.HasVertex(node(n)) {
			if err := g.AddVertex(node(n), geo.Point{}); err != nil {
				t.Fatal(err)
			}
		}
	}
	for i := 1; i < len(names); i++ {
		if _, err := g.AddEdge(node(names[i-1]), node(names[i]), 2, core.KindInLine); err != nil {
			t.Fatal(err)
		}
	}
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, node("A")); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, node("missing")); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths and visit order.
func TestCycleAndDepths(t *testing.T) {
	g := core.NewGraph()
	chain(t, g, "A", "B", "C", "D", "A")

	res, err := bfs.BFS(g, node("A"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Order[0] != node("A") {
		t.Errorf("first vertex = %s; want A", res.Order[0])
	}
	if d := res.Depth[node("C")]; d != 2 {
		t.Errorf("Depth[C] = %d; want 2", d)
	}
	if d := res.Depth[node("D")]; d != 1 {
		t.Errorf("Depth[D] = %d; want 1 through the closing edge", d)
	}
	want := []core.NodeID{node("A"), node("B"), node("D"), node("C")}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestFilterEdge limits exploration by edge kind.
func TestFilterEdge(t *testing.T) {
	g := core.NewGraph()
	chain(t, g, "A", "B", "C", "D")
	if err := g.AddVertex(node("W"), geo.Point{}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge(node("A"), node("W"), 3, core.KindWalk); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, node("A"), bfs.WithFilterEdge(bfs.RailOnly))
	if err != nil {
		t.Fatal(err)
	}
	if _, seen := res.Depth[node("W")]; seen {
		t.Error("walk edge followed despite RailOnly filter")
	}
	if len(res.Order) != 4 {
		t.Errorf("Order = %v; want the 4 rail vertices", res.Order)
	}
}

// TestOnVisitAbort checks that a hook error stops the walk.
func TestOnVisitAbort(t *testing.T) {
	g := core.NewGraph()
	chain(t, g, "A", "B", "C")
	stop := errors.New("stop")
	_, err := bfs.BFS(g, node("A"), bfs.WithOnVisit(func(id core.NodeID, _ int) error {
		if id == node("B") {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped stop error, got %v", err)
	}
}

// TestComponents labels two islands and a singleton.
func TestComponents(t *testing.T) {
	g := core.NewGraph()
	chain(t, g, "A", "B", "C")
	chain(t, g, "X", "Y")
	chain(t, g, "Solo")

	labels, n, err := bfs.Components(g, bfs.RailOnly)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("components = %d; want 3", n)
	}
	if labels[node("A")] != labels[node("C")] {
		t.Error("A and C should share a component")
	}
	if labels[node("A")] == labels[node("X")] || labels[node("X")] == labels[node("Solo")] {
		t.Errorf("islands merged: %v", labels)
	}
	if labels[node("A")] != 0 {
		t.Errorf("first label in NodeID order should be 0, got %d", labels[node("A")])
	}
}
