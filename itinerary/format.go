package itinerary

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dijkstra"
)

// Format builds a transit Itinerary from a path running from the virtual
// origin to the virtual destination.
//
// Leg rules:
//   - a board edge with positive weight becomes a walk origin → first station;
//   - in-line and transfer edges become steps of the same kind, tagged with the
//     line ridden (or boarded, for transfers);
//   - an exit-and-walk edge becomes a walk last station → destination;
//   - zero-weight board and arrive edges emit nothing.
//
// Instructions are derived from the rail nodes alone: one board, one transfer
// per consecutive pair sharing a station on different lines, one alight.
func Format(p *dijkstra.Path, origin, destination string) (*Itinerary, error) {
	if p == nil || len(p.Nodes) != len(p.Edges)+1 {
		return nil, ErrEmptyPath
	}
	rail := make([]core.NodeID, 0, len(p.Nodes))
	for _, id := range p.Nodes {
		if !id.IsVirtual() {
			rail = append(rail, id)
		}
	}
	if len(rail) == 0 {
		return nil, ErrEmptyPath
	}

	it := &Itinerary{
		Origin:       origin,
		Destination:  destination,
		Mode:         ModeTransit,
		Steps:        make([]Step, 0, len(p.Edges)),
		TotalMinutes: round2(p.Cost),
	}
	for i, e := range p.Edges {
		from, to := p.Nodes[i], p.Nodes[i+1]
		switch e.Kind {
		case core.KindBoard:
			if e.Weight > 0 {
				it.Steps = append(it.Steps, Step{From: origin, To: to.Station, Minutes: round2(e.Weight), Kind: KindWalk})
			}
		case core.KindInLine:
			it.Steps = append(it.Steps, Step{From: from.Station, To: to.Station, Line: to.Line, Minutes: round2(e.Weight), Kind: KindInLine})
		case core.KindTransfer:
			it.Steps = append(it.Steps, Step{From: to.Station, To: to.Station, Line: to.Line, Minutes: round2(e.Weight), Kind: KindTransfer})
		case core.KindWalk:
			it.Steps = append(it.Steps, Step{From: from.Station, To: destination, Minutes: round2(e.Weight), Kind: KindWalk})
		case core.KindArrive:
			if e.Weight > 0 {
				it.Steps = append(it.Steps, Step{From: from.Station, To: destination, Minutes: round2(e.Weight), Kind: KindWalk})
			}
		}
	}
	it.Instructions = Instructions(rail)

	return it, nil
}

// Instructions narrates a sequence of rail nodes.
func Instructions(rail []core.NodeID) []string {
	if len(rail) == 0 {
		return nil
	}
	out := []string{fmt.Sprintf("board at %s (line %s)", rail[0].Station, rail[0].Line)}
	for i := 1; i < len(rail); i++ {
		prev, cur := rail[i-1], rail[i]
		if prev.Station == cur.Station && prev.Line != cur.Line {
			out = append(out, fmt.Sprintf("transfer at %s to line %s", cur.Station, cur.Line))
		}
	}
	out = append(out, fmt.Sprintf("alight at %s", rail[len(rail)-1].Station))

	return out
}

// WalkOnly returns the single-leg itinerary for walking the whole way.
func WalkOnly(origin, destination string, minutes float64) *Itinerary {
	m := round2(minutes)
	return &Itinerary{
		Origin:         origin,
		Destination:    destination,
		Mode:           ModeWalk,
		Steps:          []Step{{From: origin, To: destination, Minutes: m, Kind: KindWalk}},
		TotalMinutes:   m,
		Instructions:   []string{fmt.Sprintf("walk from %s to %s", origin, destination)},
		WalkingMinutes: m,
	}
}

// Stay returns the empty itinerary for a trip that starts where it ends.
func Stay(station string) *Itinerary {
	return &Itinerary{
		Origin:      station,
		Destination: station,
		Mode:        ModeStay,
		Steps:       []Step{},
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Annotate records the comparison figures shown next to the chosen trip.
func (it *Itinerary) Annotate(walking float64, railOnly *float64) {
	it.WalkingMinutes = round2(walking)
	if railOnly != nil {
		r := round2(*railOnly)
		it.RailOnlyMinutes = &r
	}
}
