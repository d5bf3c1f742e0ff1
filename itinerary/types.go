// Package itinerary turns a shortest path over the augmented transit graph
// into rider-facing legs and instructions.
package itinerary

import "errors"

// ErrEmptyPath indicates Format received a path that never touches a line node.
var ErrEmptyPath = errors.New("itinerary: path has no rail nodes")

// Step kinds as they appear in the output.
const (
	KindInLine   = "in-line"
	KindTransfer = "transfer"
	KindWalk     = "walk"
)

// Mode tells how the trip is made.
type Mode string

const (
	ModeTransit Mode = "transit"
	ModeWalk    Mode = "walk"
	ModeStay    Mode = "stay"
)

// Step is one leg of a trip.
type Step struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Line    string  `json:"line,omitempty"`
	Minutes float64 `json:"minutes"`
	Kind    string  `json:"kind"`
}

// Itinerary is the complete plan returned to the rider.
//
// TotalMinutes is the path cost; Steps minutes are rounded to two decimals
// each, so their sum may differ from TotalMinutes by rounding only.
// WalkingMinutes is the direct walk between the two stations, reported for
// comparison. RailOnlyMinutes is the best all-rail time, nil when none exists.
type Itinerary struct {
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	Mode            Mode     `json:"mode"`
	Steps           []Step   `json:"steps"`
	TotalMinutes    float64  `json:"totalMinutes"`
	Instructions    []string `json:"instructions,omitempty"`
	WalkingMinutes  float64  `json:"walkingMinutes"`
	RailOnlyMinutes *float64 `json:"railOnlyMinutes,omitempty"`
}
