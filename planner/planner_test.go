package planner_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/geo"
	"github.com/katalvlaran/metroroute/heuristic"
	"github.com/katalvlaran/metroroute/itinerary"
	"github.com/katalvlaran/metroroute/planner"
	"github.com/katalvlaran/metroroute/transit"
)

func sample() transit.Dataset {
	return transit.Dataset{Lines: []transit.LineSpec{
		{Name: "L1", Stops: []transit.StopSpec{
			{Station: "A", Pos: geo.Point{0, 0}},
			{Station: "B", Pos: geo.Point{100, 0}},
			{Station: "C", Pos: geo.Point{200, 0}},
		}},
		{Name: "L2", Stops: []transit.StopSpec{
			{Station: "D", Pos: geo.Point{100, -100}},
			{Station: "B", Pos: geo.Point{100, 0}},
			{Station: "E", Pos: geo.Point{100, 100}},
		}},
	}}
}

func newPlanner(t *testing.T, ds transit.Dataset, opts ...planner.Option) *planner.Planner {
	t.Helper()
	net, err := transit.Build(ds, transit.DefaultParams())
	require.NoError(t, err)
	p, err := planner.New(net, opts...)
	require.NoError(t, err)

	return p
}

func TestPlanTransfer(t *testing.T) {
	p := newPlanner(t, sample())

	it, err := p.Plan(context.Background(), planner.Query{Origin: "A", Destination: "E"})
	require.NoError(t, err)

	assert.Equal(t, itinerary.ModeTransit, it.Mode)
	assert.Equal(t, 9.0, it.TotalMinutes)
	assert.Equal(t, []itinerary.Step{
		{From: "A", To: "B", Line: "L1", Minutes: 2, Kind: itinerary.KindInLine},
		{From: "B", To: "B", Line: "L2", Minutes: 5, Kind: itinerary.KindTransfer},
		{From: "B", To: "E", Line: "L2", Minutes: 2, Kind: itinerary.KindInLine},
	}, it.Steps)
	assert.Equal(t, []string{
		"board at A (line L1)",
		"transfer at B to line L2",
		"alight at E",
	}, it.Instructions)
	require.NotNil(t, it.RailOnlyMinutes)
	assert.Equal(t, 9.0, *it.RailOnlyMinutes)
	assert.InDelta(t, math.Hypot(100, 100)/transit.DefaultWalkSpeed, it.WalkingMinutes, 0.01)
}

func TestPlanSingleLine(t *testing.T) {
	p := newPlanner(t, sample())

	it, err := p.Plan(context.Background(), planner.Query{Origin: "A", Destination: "C"})
	require.NoError(t, err)
	assert.Equal(t, 4.0, it.TotalMinutes)
	assert.Len(t, it.Steps, 2)
	assert.Equal(t, []string{"board at A (line L1)", "alight at C"}, it.Instructions)
}

func TestPlanStepMinutesSumToTotal(t *testing.T) {
	p := newPlanner(t, sample())
	for _, q := range []planner.Query{
		{Origin: "A", Destination: "E"},
		{Origin: "D", Destination: "C"},
		{Origin: "E", Destination: "A"},
	} {
		it, err := p.Plan(context.Background(), q)
		require.NoError(t, err, q)
		var sum float64
		for _, s := range it.Steps {
			sum += s.Minutes
		}
		assert.InDelta(t, it.TotalMinutes, sum, 0.05, q)
	}
}

func TestPlanSameStation(t *testing.T) {
	p := newPlanner(t, sample())

	it, err := p.Plan(context.Background(), planner.Query{Origin: "B", Destination: "B"})
	require.NoError(t, err)
	assert.Equal(t, itinerary.ModeStay, it.Mode)
	assert.Zero(t, it.TotalMinutes)
	assert.Empty(t, it.Steps)
}

func TestPlanUnknownStation(t *testing.T) {
	p := newPlanner(t, sample())

	for _, q := range []planner.Query{
		{Origin: "Z", Destination: "A"},
		{Origin: "A", Destination: "Z"},
		{Origin: "", Destination: "A"},
	} {
		_, err := p.Plan(context.Background(), q)
		require.ErrorIs(t, err, planner.ErrUnknownStation, q)
		require.ErrorIs(t, err, transit.ErrUnknownStation, q)
	}
}

func withIsland() transit.Dataset {
	ds := sample()
	ds.Lines = append(ds.Lines, transit.LineSpec{Name: "L3", Stops: []transit.StopSpec{
		{Station: "X", Pos: geo.Point{5000, 0}},
	}})

	return ds
}

func newCappedPlanner(t *testing.T, ds transit.Dataset, maxWalk float64, opts ...planner.Option) *planner.Planner {
	t.Helper()
	params := transit.DefaultParams()
	params.MaxWalkMinutes = maxWalk
	net, err := transit.Build(ds, params)
	require.NoError(t, err)
	p, err := planner.New(net, opts...)
	require.NoError(t, err)

	return p
}

func TestPlanIslandReachedByExitAndWalk(t *testing.T) {
	p := newPlanner(t, withIsland())

	it, err := p.Plan(context.Background(), planner.Query{Origin: "A", Destination: "X"})
	require.NoError(t, err)
	assert.Equal(t, itinerary.ModeTransit, it.Mode)
	// ride A→C, then exit 2 + 4800 px on foot
	assert.Equal(t, 966.0, it.TotalMinutes)
	assert.Equal(t, 1000.0, it.WalkingMinutes)
	assert.Nil(t, it.RailOnlyMinutes)

	rail, ok, err := p.RailOnly("A", "X")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, rail)
}

// TestPlanExitAndWalkOnlyRoute covers a destination whose own line cannot be
// reached: the trip rides one line and walks the rest.
func TestPlanExitAndWalkOnlyRoute(t *testing.T) {
	ds := transit.Dataset{Lines: []transit.LineSpec{
		{Name: "X", Stops: []transit.StopSpec{
			{Station: "P", Pos: geo.Point{0, 0}},
			{Station: "Q", Pos: geo.Point{0, 1000}},
		}},
		{Name: "Y", Stops: []transit.StopSpec{
			{Station: "R", Pos: geo.Point{5000, 0}},
			{Station: "S", Pos: geo.Point{0, 1150}},
		}},
	}}
	q := planner.Query{Origin: "P", Destination: "S"}

	for _, s := range []transit.Strategy{transit.StrategyOverlay, transit.StrategyCopy} {
		p := newPlanner(t, ds, planner.WithStrategy(s))
		it, err := p.Plan(context.Background(), q)
		require.NoError(t, err, s.String())
		assert.Equal(t, itinerary.ModeTransit, it.Mode)
		assert.Equal(t, 34.0, it.TotalMinutes)
		assert.Equal(t, 230.0, it.WalkingMinutes)
		assert.Equal(t, []itinerary.Step{
			{From: "P", To: "Q", Line: "X", Minutes: 2, Kind: itinerary.KindInLine},
			{From: "Q", To: "S", Minutes: 32, Kind: itinerary.KindWalk},
		}, it.Steps)
		assert.Equal(t, []string{"board at P (line X)", "alight at Q"}, it.Instructions)
	}

	// a 20 minute cap drops the 30 minute walk from Q; the rider walks instead
	capped := newCappedPlanner(t, ds, 20)
	it, err := capped.Plan(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, itinerary.ModeWalk, it.Mode)
	assert.Equal(t, 230.0, it.TotalMinutes)
}

func TestPlanCappedNoPathFallsBackToWalk(t *testing.T) {
	p := newCappedPlanner(t, withIsland(), 20)

	it, err := p.Plan(context.Background(), planner.Query{Origin: "A", Destination: "X"})
	require.NoError(t, err)
	assert.Equal(t, itinerary.ModeWalk, it.Mode)
	assert.Equal(t, 1000.0, it.TotalMinutes)
	assert.Equal(t, []itinerary.Step{
		{From: "A", To: "X", Minutes: 1000, Kind: itinerary.KindWalk},
	}, it.Steps)
	assert.Nil(t, it.RailOnlyMinutes)
}

func TestPlanWalkBeatsTransit(t *testing.T) {
	ds := transit.Dataset{Lines: []transit.LineSpec{
		{Name: "L1", Stops: []transit.StopSpec{
			{Station: "P", Pos: geo.Point{0, 0}},
			{Station: "Q", Pos: geo.Point{1000, 0}},
			{Station: "R", Pos: geo.Point{5, 0}},
		}},
	}}
	p := newPlanner(t, ds)

	it, err := p.Plan(context.Background(), planner.Query{Origin: "P", Destination: "R"})
	require.NoError(t, err)
	assert.Equal(t, itinerary.ModeWalk, it.Mode)
	assert.Equal(t, 1.0, it.TotalMinutes)
	assert.Equal(t, 1.0, it.WalkingMinutes)
	require.Len(t, it.Steps, 1)
	assert.Equal(t, itinerary.KindWalk, it.Steps[0].Kind)
	require.NotNil(t, it.RailOnlyMinutes)
	assert.Equal(t, 4.0, *it.RailOnlyMinutes)
}

func TestPlanRiderPositions(t *testing.T) {
	p := newPlanner(t, sample())

	it, err := p.Plan(context.Background(), planner.Query{
		Origin:      "A",
		Destination: "C",
		OriginPos:   &geo.Point{0, 10},
	})
	require.NoError(t, err)
	require.NotEmpty(t, it.Steps)
	first := it.Steps[0]
	assert.Equal(t, itinerary.KindWalk, first.Kind)
	assert.Equal(t, 2.0, first.Minutes)
	assert.Equal(t, 6.0, it.TotalMinutes)
}

func TestPlanStrategiesAgree(t *testing.T) {
	overlay := newPlanner(t, sample(), planner.WithStrategy(transit.StrategyOverlay))
	copied := newPlanner(t, sample(), planner.WithStrategy(transit.StrategyCopy))

	for _, q := range []planner.Query{
		{Origin: "A", Destination: "E"},
		{Origin: "C", Destination: "D"},
	} {
		a, err := overlay.Plan(context.Background(), q)
		require.NoError(t, err)
		b, err := copied.Plan(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestPlanIdempotentAndIsolated(t *testing.T) {
	p := newPlanner(t, sample())
	g := p.Network().Graph()
	vertices, edges := g.VertexCount(), g.EdgeCount()

	q := planner.Query{Origin: "A", Destination: "E"}
	first, err := p.Plan(context.Background(), q)
	require.NoError(t, err)
	second, err := p.Plan(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, vertices, g.VertexCount())
	assert.Equal(t, edges, g.EdgeCount())
}

func TestPlanConcurrent(t *testing.T) {
	net, err := transit.Build(sample(), transit.DefaultParams())
	require.NoError(t, err)
	cache := heuristic.NewCache(net, 4, 0)
	p, err := planner.New(net, planner.WithCache(cache))
	require.NoError(t, err)

	queries := []planner.Query{
		{Origin: "A", Destination: "E"},
		{Origin: "E", Destination: "A"},
		{Origin: "D", Destination: "C"},
		{Origin: "C", Destination: "D"},
	}
	want := make([]float64, len(queries))
	for i, q := range queries {
		it, err := p.Plan(context.Background(), q)
		require.NoError(t, err)
		want[i] = it.TotalMinutes
	}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			i := w % len(queries)
			it, err := p.Plan(context.Background(), queries[i])
			if err != nil {
				errs <- err
				return
			}
			if it.TotalMinutes != want[i] {
				errs <- assert.AnError
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	assert.LessOrEqual(t, cache.Len(), len(queries))
}

func TestPlanCacheReuse(t *testing.T) {
	net, err := transit.Build(sample(), transit.DefaultParams())
	require.NoError(t, err)
	cache := heuristic.NewCache(net, 8, 0)
	p, err := planner.New(net, planner.WithCache(cache))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := p.Plan(context.Background(), planner.Query{Origin: "A", Destination: "E"})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), cache.Builds())

	_, err = p.Plan(context.Background(), planner.Query{Origin: "A", Destination: "E", DestinationPos: &geo.Point{100, 110}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), cache.Builds())
}

func TestPlanCanceled(t *testing.T) {
	p := newPlanner(t, sample())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Plan(ctx, planner.Query{Origin: "A", Destination: "E"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRailOnly(t *testing.T) {
	p := newPlanner(t, sample())

	d, ok, err := p.RailOnly("D", "C")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 9.0, d)

	_, _, err = p.RailOnly("A", "nowhere")
	require.ErrorIs(t, err, planner.ErrUnknownStation)
}

func TestNewNilNetwork(t *testing.T) {
	_, err := planner.New(nil)
	require.ErrorIs(t, err, planner.ErrNilNetwork)
}
