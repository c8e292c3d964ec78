// Package geometry — pure geometric computation for footprints and rings.
package geometry

import (
	"math"

	"siteplan/internal/types"
)

// Feet per degree of latitude / longitude. These are fixed constants, not
// a function of local latitude: a planar approximation that holds while
// footprints stay small relative to the site extent. Not geodetically
// exact, and increasingly wrong at high latitudes.
const (
	feetPerDegreeLat = 364000.0
	feetPerDegreeLng = 288200.0
)

// FootprintOf builds the plan-view rectangle for an asset centred at
// position, widthFt across (east-west at rotation 0) and lengthFt deep
// (north-south at rotation 0), rotated rotationDeg clockwise from north.
//
// Corner order is fixed — back-left, back-right, front-right, front-left —
// so consumers can rely on edge adjacency. The ring is open: the first
// corner is not repeated. Rotation input is never clamped; trigonometry
// makes r and r+360 produce the same footprint.
func FootprintOf(position types.Point, widthFt, lengthFt, rotationDeg float64) types.Ring {
	sin, cos := math.Sincos(degreesToRadians(rotationDeg))
	halfW := widthFt / 2
	halfL := lengthFt / 2

	// Local offsets in feet, x east and y north, "back" to the north.
	corners := [4][2]float64{
		{-halfW, halfL},  // back-left
		{halfW, halfL},   // back-right
		{halfW, -halfL},  // front-right
		{-halfW, -halfL}, // front-left
	}

	ring := make(types.Ring, 0, len(corners))
	for _, c := range corners {
		x, y := c[0], c[1]
		// Clockwise rotation, applied in feet before the per-axis
		// degree conversion so the rectangle is not sheared.
		rx := x*cos + y*sin
		ry := y*cos - x*sin
		ring = append(ring, types.Point{
			Lat: position.Lat + ry/feetPerDegreeLat,
			Lng: position.Lng + rx/feetPerDegreeLng,
		})
	}
	return ring
}

// NormalizeDegrees maps any rotation into [0, 360) for comparison.
// Stored rotations keep their caller-supplied value.
func NormalizeDegrees(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
