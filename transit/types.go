package transit

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/geo"
)

// Sentinel errors for network construction and endpoint injection.
var (
	// ErrMalformedDataset indicates structural problems in the line/station data.
	ErrMalformedDataset = errors.New("transit: malformed dataset")

	// ErrUnknownStation indicates a station name with no line node in the network.
	ErrUnknownStation = errors.New("transit: unknown station")

	// ErrBadParams indicates a non-positive, negative or non-finite routing constant.
	ErrBadParams = errors.New("transit: invalid routing parameters")

	// ErrUnknownStrategy indicates ParseStrategy received an unknown name.
	ErrUnknownStrategy = errors.New("transit: unknown isolation strategy")
)

// StopSpec is one stop of a line as found in the dataset.
type StopSpec struct {
	Station string
	Pos     geo.Point
}

// LineSpec is one line of the dataset with its stops in travel order.
type LineSpec struct {
	Name  string
	Color string
	Stops []StopSpec
}

// Dataset is the ordered list of lines a Network is built from.
type Dataset struct {
	Lines []LineSpec
}

// Params holds the routing constants. All values are minutes except Walker.
type Params struct {
	InterStationMinutes float64
	TransferMinutes     float64
	// ExitMinutes is charged when leaving the network before the destination
	// station to walk the rest of the way.
	ExitMinutes float64
	// MaxWalkMinutes optionally caps the walking part of an exit-and-walk
	// edge. 0, the default, connects every line node to the destination.
	MaxWalkMinutes float64
	Walker         geo.Walker
}

// Default routing constants.
const (
	DefaultInterStationMinutes = 2
	DefaultTransferMinutes     = 5
	DefaultExitMinutes         = 2
	DefaultMaxWalkMinutes      = 0 // uncapped
	DefaultWalkSpeed           = 5 // map pixels per minute
)

// DefaultParams returns the constants for a pixel-coordinate map walked at
// DefaultWalkSpeed.
func DefaultParams() Params {
	return Params{
		InterStationMinutes: DefaultInterStationMinutes,
		TransferMinutes:     DefaultTransferMinutes,
		ExitMinutes:         DefaultExitMinutes,
		MaxWalkMinutes:      DefaultMaxWalkMinutes,
		Walker:              geo.Walker{Metric: geo.Planar{}, Speed: DefaultWalkSpeed},
	}
}

// Validate reports ErrBadParams when a constant is negative or non-finite,
// or when the walker has no metric or a non-positive speed.
func (p Params) Validate() error {
	check := func(name string, v float64) error {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrBadParams, name, v)
		}
		return nil
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"inter_station_minutes", p.InterStationMinutes},
		{"transfer_minutes", p.TransferMinutes},
		{"exit_minutes", p.ExitMinutes},
		{"max_walk_minutes", p.MaxWalkMinutes},
	} {
		if err := check(c.name, c.v); err != nil {
			return err
		}
	}
	if p.Walker.Metric == nil {
		return fmt.Errorf("%w: walker has no distance metric", ErrBadParams)
	}
	if _, err := geo.NewWalker(p.Walker.Metric, p.Walker.Speed); err != nil {
		return fmt.Errorf("%w: %v", ErrBadParams, err)
	}

	return nil
}

// Strategy selects how request-local endpoints are kept apart from the shared graph.
type Strategy int

const (
	// StrategyOverlay layers virtual nodes and edges over the shared graph.
	StrategyOverlay Strategy = iota

	// StrategyCopy deep-copies the shared graph and mutates the copy.
	StrategyCopy
)

// String returns "overlay" or "copy".
func (s Strategy) String() string {
	if s == StrategyCopy {
		return "copy"
	}

	return "overlay"
}

// ParseStrategy maps "overlay" (or "") and "copy" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "overlay":
		return StrategyOverlay, nil
	case "copy":
		return StrategyCopy, nil
	default:
		return StrategyOverlay, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Endpoints names the two stations of a query. The optional positions refine
// where the rider actually starts or ends; nil means the station's own position.
type Endpoints struct {
	Origin         string
	Destination    string
	OriginPos      *geo.Point
	DestinationPos *geo.Point
}

// Augmented is the request-local graph produced by Inject.
type Augmented struct {
	Graph          core.Neighborhood
	Origin         core.NodeID
	Destination    core.NodeID
	OriginPos      geo.Point
	DestinationPos geo.Point
	Strategy       Strategy
	BoardEdges     int
	ArriveEdges    int
	WalkEdges      int
}

// InjectOption configures Inject.
type InjectOption func(*injectOptions)

type injectOptions struct {
	strategy Strategy
}

// WithStrategy selects the isolation strategy. The default is StrategyOverlay.
func WithStrategy(s Strategy) InjectOption {
	return func(o *injectOptions) { o.strategy = s }
}

// Station describes one station of a built Network.
type Station struct {
	Name  string    `json:"name"`
	Pos   geo.Point `json:"position"`
	Lines []string  `json:"lines"`
}

// Line describes one line of a built Network.
type Line struct {
	Name     string   `json:"name"`
	Color    string   `json:"color,omitempty"`
	Stations []string `json:"stations"`
}

// Stats summarises a built Network.
type Stats struct {
	Stations         int `json:"stations"`
	Lines            int `json:"lines"`
	Nodes            int `json:"nodes"`
	InLineEdges      int `json:"inLineEdges"`
	TransferEdges    int `json:"transferEdges"`
	TransferStations int `json:"transferStations"`
	Components       int `json:"components"`
}
