// Package planner answers door-to-door trip queries over a transit.Network.
//
// A query runs in two phases:
//
//  1. Rail-only: multi-source Dijkstra from the origin station's line nodes to
//     any line node of the destination station, rail edges only. The result is
//     informational (Itinerary.RailOnlyMinutes).
//  2. Door-to-door: virtual endpoints are injected into a request-local view of
//     the network and A* runs from the virtual origin to the virtual
//     destination, guided by the destination's heuristic table. This result
//     is authoritative.
//
// When walking straight from origin to destination is strictly faster than
// the door-to-door result, the walk-only itinerary is returned instead.
package planner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/metroroute/dijkstra"
	"github.com/katalvlaran/metroroute/geo"
	"github.com/katalvlaran/metroroute/heuristic"
	"github.com/katalvlaran/metroroute/itinerary"
	"github.com/katalvlaran/metroroute/transit"
)

// Errors returned by Plan. They are the sentinels of the packages that detect
// them, so errors.Is works with either name.
var (
	ErrUnknownStation   = transit.ErrUnknownStation
	ErrNoPath           = dijkstra.ErrNoPath
	ErrMalformedDataset = transit.ErrMalformedDataset

	// ErrNilNetwork indicates New was called without a network.
	ErrNilNetwork = errors.New("planner: network is nil")
)

// Query names the two stations of a trip, optionally refined by the rider's
// exact start and end positions.
type Query struct {
	Origin         string     `json:"origin"`
	Destination    string     `json:"destination"`
	OriginPos      *geo.Point `json:"originPos,omitempty"`
	DestinationPos *geo.Point `json:"destinationPos,omitempty"`
}

// Planner is safe for concurrent use; each Plan call works on its own
// request-local graph and never writes to the shared network.
type Planner struct {
	net      *transit.Network
	cache    *heuristic.Cache
	strategy transit.Strategy
	logger   *slog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithCache reuses heuristic tables across requests for the same destination.
func WithCache(c *heuristic.Cache) Option {
	return func(p *Planner) { p.cache = c }
}

// WithStrategy selects how virtual endpoints are isolated from the shared graph.
func WithStrategy(s transit.Strategy) Option {
	return func(p *Planner) { p.strategy = s }
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a Planner over net.
func New(net *transit.Network, opts ...Option) (*Planner, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	p := &Planner{
		net:      net,
		strategy: transit.StrategyOverlay,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Network returns the network the planner routes over.
func (p *Planner) Network() *transit.Network { return p.net }

// Plan returns the fastest itinerary for q.
//
// When a walking cap leaves the destination unreachable by rail, the direct
// walk is returned instead.
//
// Errors: ErrUnknownStation when either name is not served, ErrNoPath when no
// route connects them, or ctx.Err() when the request was abandoned between phases.
func (p *Planner) Plan(ctx context.Context, q Query) (*itinerary.Itinerary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, name := range []string{q.Origin, q.Destination} {
		if !p.net.HasStation(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStation, name)
		}
	}
	if q.Origin == q.Destination {
		return itinerary.Stay(q.Origin), nil
	}

	originPos, _ := p.net.Position(q.Origin)
	if q.OriginPos != nil {
		originPos = *q.OriginPos
	}
	destPos, _ := p.net.Position(q.Destination)
	if q.DestinationPos != nil {
		destPos = *q.DestinationPos
	}
	walk := p.net.Params().Walker.WalkTime(originPos, destPos)

	railOnly, railOK, err := p.RailOnly(q.Origin, q.Destination)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var railPtr *float64
	if railOK {
		railPtr = &railOnly
	}

	path, err := p.search(q)
	if errors.Is(err, ErrNoPath) && p.net.Params().MaxWalkMinutes > 0 {
		it := itinerary.WalkOnly(q.Origin, q.Destination, walk)
		it.Annotate(walk, railPtr)
		p.logger.Debug("walking cap left no route, walking instead",
			"origin", q.Origin, "destination", q.Destination,
			"walk_minutes", walk, "max_walk_minutes", p.net.Params().MaxWalkMinutes)

		return it, nil
	}
	if err != nil {
		return nil, err
	}

	if walk < path.Cost {
		it := itinerary.WalkOnly(q.Origin, q.Destination, walk)
		it.Annotate(walk, railPtr)
		p.logger.Debug("walk beats transit",
			"origin", q.Origin, "destination", q.Destination,
			"walk_minutes", walk, "transit_minutes", path.Cost)

		return it, nil
	}

	it, err := itinerary.Format(path, q.Origin, q.Destination)
	if err != nil {
		return nil, err
	}
	it.Annotate(walk, railPtr)
	p.logger.Debug("planned trip",
		"origin", q.Origin, "destination", q.Destination,
		"total_minutes", path.Cost, "rail_only_minutes", railOnly, "steps", len(it.Steps))

	return it, nil
}

// RailOnly returns the best all-rail time between two stations and whether
// one exists. Virtual endpoints and walking are not considered.
func (p *Planner) RailOnly(origin, destination string) (float64, bool, error) {
	sources := p.net.NodesAt(origin)
	if len(sources) == 0 {
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownStation, origin)
	}
	targets := p.net.NodesAt(destination)
	if len(targets) == 0 {
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownStation, destination)
	}

	res, err := dijkstra.Search(p.net.Graph(),
		dijkstra.Sources(sources...),
		dijkstra.WithEdgeFilter(dijkstra.RailOnly),
	)
	if err != nil {
		return 0, false, err
	}
	best := math.Inf(1)
	for _, t := range targets {
		best = math.Min(best, res.Distance(t))
	}
	if math.IsInf(best, 1) {
		return 0, false, nil
	}

	return best, true, nil
}

// search runs the authoritative door-to-door A*.
func (p *Planner) search(q Query) (*dijkstra.Path, error) {
	aug, err := p.net.Inject(transit.Endpoints{
		Origin:         q.Origin,
		Destination:    q.Destination,
		OriginPos:      q.OriginPos,
		DestinationPos: q.DestinationPos,
	}, transit.WithStrategy(p.strategy))
	if err != nil {
		return nil, err
	}

	table, err := p.table(q)
	if err != nil {
		return nil, err
	}

	res, err := dijkstra.Search(aug.Graph,
		dijkstra.Sources(aug.Origin),
		dijkstra.Target(aug.Destination),
		dijkstra.WithHeuristic(table.Estimate),
		dijkstra.WithReturnPath(),
	)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(aug.Destination)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) {
			return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, q.Origin, q.Destination)
		}
		return nil, err
	}
	p.logger.Debug("door-to-door search",
		"origin", q.Origin, "destination", q.Destination,
		"strategy", aug.Strategy.String(), "settled", res.Settled, "cost", path.Cost)

	return path, nil
}

// table returns the heuristic for q, from the cache when the destination is
// the station itself.
func (p *Planner) table(q Query) (*heuristic.Table, error) {
	if q.DestinationPos != nil {
		return heuristic.Build(p.net, q.Destination, heuristic.WithDestinationPos(*q.DestinationPos))
	}
	if p.cache != nil {
		before := p.cache.Builds()
		t, err := p.cache.Get(q.Destination)
		if err != nil {
			return nil, err
		}
		p.logger.Debug("heuristic table", "destination", q.Destination,
			"cache_hit", p.cache.Builds() == before, "entries", t.Len())

		return t, nil
	}

	return heuristic.Build(p.net, q.Destination)
}
