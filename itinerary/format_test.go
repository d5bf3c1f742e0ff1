package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dijkstra"
	"github.com/katalvlaran/metroroute/itinerary"
)

// path assembles a dijkstra.Path from nodes and per-hop (weight, kind) pairs.
func path(nodes []core.NodeID, hops ...interface{}) *dijkstra.Path {
	p := &dijkstra.Path{Nodes: nodes}
	for i := 0; i < len(hops); i += 2 {
		w := hops[i].(float64)
		k := hops[i+1].(core.EdgeKind)
		n := i / 2
		p.Edges = append(p.Edges, &core.Edge{From: nodes[n], To: nodes[n+1], Weight: w, Kind: k})
		p.Cost += w
	}

	return p
}

func TestFormatEndToEndExample(t *testing.T) {
	p := path(
		[]core.NodeID{
			core.Origin("A"), core.Rail("A", "L1"), core.Rail("B", "L1"),
			core.Rail("B", "L2"), core.Rail("E", "L2"), core.Destination("E"),
		},
		0.0, core.KindBoard,
		2.0, core.KindInLine,
		5.0, core.KindTransfer,
		2.0, core.KindInLine,
		0.0, core.KindArrive,
	)
	it, err := itinerary.Format(p, "A", "E")
	require.NoError(t, err)

	require.Equal(t, itinerary.ModeTransit, it.Mode)
	require.Equal(t, 9.0, it.TotalMinutes)
	require.Equal(t, []itinerary.Step{
		{From: "A", To: "B", Line: "L1", Minutes: 2, Kind: itinerary.KindInLine},
		{From: "B", To: "B", Line: "L2", Minutes: 5, Kind: itinerary.KindTransfer},
		{From: "B", To: "E", Line: "L2", Minutes: 2, Kind: itinerary.KindInLine},
	}, it.Steps)
	require.Equal(t, []string{"board at A (line L1)", "transfer at B to line L2", "alight at E"}, it.Instructions)

	var sum float64
	for _, s := range it.Steps {
		sum += s.Minutes
	}
	require.Equal(t, it.TotalMinutes, sum)
}

func TestFormatWalkLegs(t *testing.T) {
	// walk 3.456 min to A, ride to B, exit and walk to X
	p := path(
		[]core.NodeID{core.Origin("A"), core.Rail("A", "L1"), core.Rail("B", "L1"), core.Destination("X")},
		3.456, core.KindBoard,
		2.0, core.KindInLine,
		6.5, core.KindWalk,
	)
	it, err := itinerary.Format(p, "A", "X")
	require.NoError(t, err)
	require.Equal(t, []itinerary.Step{
		{From: "A", To: "A", Minutes: 3.46, Kind: itinerary.KindWalk},
		{From: "A", To: "B", Line: "L1", Minutes: 2, Kind: itinerary.KindInLine},
		{From: "B", To: "X", Minutes: 6.5, Kind: itinerary.KindWalk},
	}, it.Steps)
	require.Equal(t, 11.96, it.TotalMinutes)
	require.Equal(t, []string{"board at A (line L1)", "alight at B"}, it.Instructions)
}

func TestFormatTraversesUndirectedEdgeBackwards(t *testing.T) {
	// the stored edge runs B→C while the rider travels C→B
	c, b := core.Rail("C", "L1"), core.Rail("B", "L1")
	p := &dijkstra.Path{
		Nodes: []core.NodeID{core.Origin("C"), c, b, core.Destination("B")},
		Edges: []*core.Edge{
			{From: core.Origin("C"), To: c, Kind: core.KindBoard},
			{From: b, To: c, Weight: 2, Kind: core.KindInLine},
			{From: b, To: core.Destination("B"), Kind: core.KindArrive},
		},
		Cost: 2,
	}
	it, err := itinerary.Format(p, "C", "B")
	require.NoError(t, err)
	require.Equal(t, "C", it.Steps[0].From)
	require.Equal(t, "B", it.Steps[0].To)
}

func TestFormatRejectsEmptyPath(t *testing.T) {
	_, err := itinerary.Format(nil, "A", "B")
	require.ErrorIs(t, err, itinerary.ErrEmptyPath)

	p := path([]core.NodeID{core.Origin("A"), core.Destination("B")}, 1.0, core.KindWalk)
	_, err = itinerary.Format(p, "A", "B")
	require.ErrorIs(t, err, itinerary.ErrEmptyPath)
}

func TestInstructionsMultipleTransfers(t *testing.T) {
	got := itinerary.Instructions([]core.NodeID{
		core.Rail("A", "L1"), core.Rail("B", "L1"), core.Rail("B", "L2"),
		core.Rail("C", "L2"), core.Rail("C", "L3"), core.Rail("D", "L3"),
	})
	require.Equal(t, []string{
		"board at A (line L1)",
		"transfer at B to line L2",
		"transfer at C to line L3",
		"alight at D",
	}, got)
	require.Nil(t, itinerary.Instructions(nil))
}

func TestWalkOnlyAndStay(t *testing.T) {
	it := itinerary.WalkOnly("A", "B", 4.004)
	require.Equal(t, itinerary.ModeWalk, it.Mode)
	require.Len(t, it.Steps, 1)
	require.Equal(t, itinerary.Step{From: "A", To: "B", Minutes: 4, Kind: itinerary.KindWalk}, it.Steps[0])
	require.Equal(t, 4.0, it.TotalMinutes)
	require.Equal(t, []string{"walk from A to B"}, it.Instructions)

	s := itinerary.Stay("A")
	require.Equal(t, itinerary.ModeStay, s.Mode)
	require.Empty(t, s.Steps)
	require.Zero(t, s.TotalMinutes)
}
