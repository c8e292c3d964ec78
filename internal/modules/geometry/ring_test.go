package geometry

import (
	"testing"

	"siteplan/internal/types"
)

var unitSquare = types.Ring{
	{Lat: 0, Lng: 0},
	{Lat: 0, Lng: 1},
	{Lat: 1, Lng: 1},
	{Lat: 1, Lng: 0},
}

func TestPointInRingCentroid(t *testing.T) {
	rings := map[string]types.Ring{
		"triangle": {
			{Lat: 0, Lng: 0}, {Lat: 0, Lng: 4}, {Lat: 3, Lng: 2},
		},
		"square":   unitSquare,
		"pentagon": {
			{Lat: 0, Lng: 1}, {Lat: 0, Lng: 3}, {Lat: 2, Lng: 4}, {Lat: 4, Lng: 2}, {Lat: 2, Lng: 0},
		},
		"closed square": CloseRing(unitSquare),
	}
	for name, ring := range rings {
		if !PointInRing(Centroid(ring), ring) {
			t.Errorf("%s: centroid not inside ring", name)
		}
	}
}

func TestPointInRingOutside(t *testing.T) {
	tests := []struct {
		name string
		p    types.Point
	}{
		{"west", types.Point{Lat: 0.5, Lng: -0.5}},
		{"east", types.Point{Lat: 0.5, Lng: 1.5}},
		{"north", types.Point{Lat: 2, Lng: 0.5}},
		{"south", types.Point{Lat: -1, Lng: 0.5}},
		{"far", types.Point{Lat: 100, Lng: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if PointInRing(tt.p, unitSquare) {
				t.Errorf("%v reported inside the unit square", tt.p)
			}
		})
	}
}

func TestPointInRingDegenerate(t *testing.T) {
	p := types.Point{Lat: 0.5, Lng: 0.5}
	if PointInRing(p, nil) {
		t.Error("empty ring should contain nothing")
	}
	if PointInRing(p, types.Ring{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}}) {
		t.Error("two-vertex ring should contain nothing")
	}
}

func TestRingsIntersect(t *testing.T) {
	shifted := func(dLat, dLng float64) types.Ring {
		out := make(types.Ring, len(unitSquare))
		for i, p := range unitSquare {
			out[i] = types.Point{Lat: p.Lat + dLat, Lng: p.Lng + dLng}
		}
		return out
	}

	tests := []struct {
		name string
		a, b types.Ring
		want bool
	}{
		{"identical", unitSquare, shifted(0, 0), true},
		{"overlapping", unitSquare, shifted(0.5, 0.5), true},
		{"contained", unitSquare, types.Ring{
			{Lat: 0.25, Lng: 0.25}, {Lat: 0.25, Lng: 0.75}, {Lat: 0.75, Lng: 0.75}, {Lat: 0.75, Lng: 0.25},
		}, true},
		{"disjoint", unitSquare, shifted(5, 5), false},
		{"touching corner regions", unitSquare, shifted(2, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RingsIntersect(tt.a, tt.b); got != tt.want {
				t.Errorf("RingsIntersect = %v, want %v", got, tt.want)
			}
			// symmetry holds for every pair
			if RingsIntersect(tt.a, tt.b) != RingsIntersect(tt.b, tt.a) {
				t.Error("RingsIntersect is not symmetric")
			}
		})
	}
}

func TestCloseRing(t *testing.T) {
	closed := CloseRing(unitSquare)
	if len(closed) != len(unitSquare)+1 {
		t.Fatalf("expected %d vertices, got %d", len(unitSquare)+1, len(closed))
	}
	if closed[0] != closed[len(closed)-1] {
		t.Error("ring not closed")
	}
	// closing an already-closed ring must not double the terminator
	again := CloseRing(closed)
	if len(again) != len(closed) {
		t.Errorf("re-closing changed length: %d vs %d", len(again), len(closed))
	}
}

func TestOpenRing(t *testing.T) {
	if got := OpenRing(CloseRing(unitSquare)); len(got) != len(unitSquare) {
		t.Errorf("expected %d vertices, got %d", len(unitSquare), len(got))
	}
	if got := OpenRing(unitSquare); len(got) != len(unitSquare) {
		t.Errorf("open input changed: %d vs %d", len(got), len(unitSquare))
	}
}
