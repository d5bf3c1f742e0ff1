package geo

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb/planar"
)

// Planar measures Euclidean distance in the coordinate units of the dataset.
type Planar struct{}

// Distance returns the straight-line distance between a and b.
func (Planar) Distance(a, b Point) float64 {
	return planar.Distance(a, b)
}

// Haversine measures great-circle distance on a sphere of the given Radius.
// X is longitude and Y is latitude, both in degrees.
type Haversine struct {
	Radius float64
}

// Distance returns the great-circle distance between a and b in the units
// of Radius (metres for EarthRadius). Identical points yield exactly 0.
func (h Haversine) Distance(a, b Point) float64 {
	if a == b {
		return 0
	}
	r := h.Radius
	if r == 0 {
		r = EarthRadius
	}
	lat1 := a.Y() * math.Pi / 180
	lat2 := b.Y() * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.X() - a.X()) * math.Pi / 180

	s1 := math.Sin(dLat / 2)
	s2 := math.Sin(dLon / 2)
	x := s1*s1 + math.Cos(lat1)*math.Cos(lat2)*s2*s2

	// rounding can push x slightly outside [0,1] near zero or antipodal inputs
	x = math.Min(1, math.Max(0, x))

	return 2 * r * math.Asin(math.Sqrt(x))
}

// ParseMetric returns the Distance implementation named by name.
// radius is used by the haversine metric only; zero selects EarthRadius.
func ParseMetric(name string, radius float64) (Distance, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MetricPlanar:
		return Planar{}, nil
	case MetricHaversine:
		if radius == 0 {
			radius = EarthRadius
		}
		if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
			return nil, fmt.Errorf("%w: %v", ErrBadRadius, radius)
		}

		return Haversine{Radius: radius}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// ValidatePoint reports ErrNonFinite when either component of p is NaN or infinite.
func ValidatePoint(p Point) error {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: (%v, %v)", ErrNonFinite, p[0], p[1])
		}
	}

	return nil
}
