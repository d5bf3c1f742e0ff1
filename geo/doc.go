// Package geo measures straight-line distance between two positions and turns
// it into walking minutes.
//
// Two metrics are provided and chosen once at configuration time:
//
//   - Planar    – Euclidean distance in the dataset's own units (map pixels).
//   - Haversine – great-circle distance in metres for longitude/latitude data.
//
// A Walker divides the metric's distance by a walking speed expressed in
// "distance units per minute", so the result of WalkTime is always minutes.
//
// Positions are orb.Point values: X() is the horizontal component (pixel x or
// longitude), Y() the vertical one (pixel y or latitude).
//
// Both metrics are symmetric and never return NaN for finite inputs:
//
//	w, _ := geo.NewWalker(geo.Planar{}, 5)
//	w.WalkTime(geo.Point{0, 0}, geo.Point{3, 4}) // 1 minute
package geo
