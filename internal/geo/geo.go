// Package geo wraps planar-free geodesic math used by coverage lookups.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DistanceKm returns the great-circle distance in kilometers between two
// latitude/longitude pairs.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	a := orb.Point{lng1, lat1}
	b := orb.Point{lng2, lat2}

	return orbgeo.Distance(a, b) / 1000
}

// WithinDiameter reports whether the distance between the two points stays
// inside a circular working area of the given diameter in kilometers, centered
// on the first point.
func WithinDiameter(lat1, lng1, lat2, lng2, diameterKm float64) bool {
	if diameterKm <= 0 {
		return false
	}

	return DistanceKm(lat1, lng1, lat2, lng2) <= diameterKm/2
}
