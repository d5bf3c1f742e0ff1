package geo

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for metric configuration and coordinate validation.
var (
	// ErrUnknownMetric indicates ParseMetric received a name it does not know.
	ErrUnknownMetric = errors.New("geo: unknown distance metric")

	// ErrBadSpeed indicates a zero, negative or non-finite walking speed.
	ErrBadSpeed = errors.New("geo: walking speed must be positive and finite")

	// ErrBadRadius indicates a zero, negative or non-finite sphere radius.
	ErrBadRadius = errors.New("geo: radius must be positive and finite")

	// ErrNonFinite indicates a coordinate component is NaN or ±Inf.
	ErrNonFinite = errors.New("geo: coordinate is not finite")
)

// EarthRadius is the mean Earth radius in metres used by Haversine
// when no explicit radius is configured.
const EarthRadius = 6_371_000.0

// Metric names accepted by ParseMetric.
const (
	MetricPlanar    = "planar"
	MetricHaversine = "haversine"
)

// Point is a two-dimensional position.
type Point = orb.Point

// Distance is a symmetric, non-negative distance function between two points.
type Distance interface {
	Distance(a, b Point) float64
}
