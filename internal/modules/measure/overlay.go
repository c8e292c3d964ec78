// Package measure implements the click-to-measure overlay. It shares the
// map surface with the editor but no other state.
package measure

import (
	"siteplan/internal/modules/geometry"
	"siteplan/internal/types"
)

// Segment is one measured leg with its own length and the running total.
type Segment struct {
	From           types.Point `json:"from"`
	To             types.Point `json:"to"`
	DistanceFeet   float64     `json:"distanceFeet"`
	CumulativeFeet float64     `json:"cumulativeFeet"`
}

// Overlay collects clicked points while active. Toggling off clears the
// session; toggling on starts a fresh one.
type Overlay struct {
	active bool
	points []types.Point
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Active() bool { return o.active }

// Toggle flips measuring on or off. Either direction resets the point
// list — there is no resuming a previous session.
func (o *Overlay) Toggle() {
	o.active = !o.active
	o.points = nil
}

// Click consumes a map click while measuring and reports whether it did.
// While the overlay is active the map-click callback must stay silent;
// callers use the return value to suppress it.
func (o *Overlay) Click(p types.Point) bool {
	if !o.active {
		return false
	}
	o.points = append(o.points, p)
	return true
}

// Clear drops measured points but keeps the overlay active.
func (o *Overlay) Clear() {
	o.points = nil
}

// Points returns the clicked points in order.
func (o *Overlay) Points() []types.Point {
	return o.points
}

// Segments returns the connecting legs between consecutive points with
// per-segment and cumulative distances.
func (o *Overlay) Segments() []Segment {
	if len(o.points) < 2 {
		return nil
	}
	segments := make([]Segment, 0, len(o.points)-1)
	total := 0.0
	for i := 1; i < len(o.points); i++ {
		d := geometry.DistanceFeet(o.points[i-1], o.points[i])
		total += d
		segments = append(segments, Segment{
			From:           o.points[i-1],
			To:             o.points[i],
			DistanceFeet:   d,
			CumulativeFeet: total,
		})
	}
	return segments
}

// TotalFeet is the cumulative length of all segments.
func (o *Overlay) TotalFeet() float64 {
	segments := o.Segments()
	if len(segments) == 0 {
		return 0
	}
	return segments[len(segments)-1].CumulativeFeet
}
