package geo

import (
	"fmt"
	"math"
)

// Walker converts distances into walking minutes.
//
// Speed is expressed in the metric's distance unit per minute: map pixels per
// minute for Planar, metres per minute for Haversine.
type Walker struct {
	Metric Distance
	Speed  float64
}

// NewWalker validates speed and returns a Walker over metric.
// A nil metric falls back to Planar.
func NewWalker(metric Distance, speed float64) (Walker, error) {
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return Walker{}, fmt.Errorf("%w: %v", ErrBadSpeed, speed)
	}
	if metric == nil {
		metric = Planar{}
	}

	return Walker{Metric: metric, Speed: speed}, nil
}

// WalkTime returns the walking time in minutes between a and b.
// The result is symmetric in its arguments and never negative.
func (w Walker) WalkTime(a, b Point) float64 {
	if a == b {
		return 0
	}

	return w.Metric.Distance(a, b) / w.Speed
}
