package geometry

import (
	"math"

	"siteplan/internal/types"
)

const earthRadiusFeet = 20902231.0

// DistanceFeet returns the great-circle distance in feet between two
// points specified in decimal degrees. Used by the measurement overlay.
func DistanceFeet(p1, p2 types.Point) float64 {
	dLat := degreesToRadians(p2.Lat - p1.Lat)
	dLng := degreesToRadians(p2.Lng - p1.Lng)

	rLat1 := degreesToRadians(p1.Lat)
	rLat2 := degreesToRadians(p2.Lat)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusFeet * c
}
