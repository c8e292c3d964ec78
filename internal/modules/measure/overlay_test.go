package measure

import (
	"math"
	"testing"

	"siteplan/internal/types"
)

func TestClickIgnoredWhileInactive(t *testing.T) {
	o := NewOverlay()
	if o.Click(types.Point{Lat: 1, Lng: 1}) {
		t.Error("inactive overlay consumed a click")
	}
	if len(o.Points()) != 0 {
		t.Error("inactive overlay recorded a point")
	}
}

func TestSegmentsAndCumulativeDistance(t *testing.T) {
	o := NewOverlay()
	o.Toggle()

	pts := []types.Point{
		{Lat: 30.0, Lng: -95.0},
		{Lat: 30.001, Lng: -95.0},
		{Lat: 30.002, Lng: -95.0},
	}
	for _, p := range pts {
		if !o.Click(p) {
			t.Fatal("active overlay refused a click")
		}
	}

	segments := o.Segments()
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}

	// each leg spans 0.001° of latitude, ~365 ft
	for i, s := range segments {
		if math.Abs(s.DistanceFeet-365) > 5 {
			t.Errorf("segment %d distance = %f ft, want ~365 ft", i, s.DistanceFeet)
		}
	}
	if math.Abs(segments[1].CumulativeFeet-segments[0].DistanceFeet-segments[1].DistanceFeet) > 0.001 {
		t.Errorf("cumulative = %f, want sum of segments", segments[1].CumulativeFeet)
	}
	if math.Abs(o.TotalFeet()-segments[1].CumulativeFeet) > 0.001 {
		t.Errorf("TotalFeet = %f, want %f", o.TotalFeet(), segments[1].CumulativeFeet)
	}
}

func TestFewerThanTwoPointsNoSegments(t *testing.T) {
	o := NewOverlay()
	o.Toggle()
	if got := o.Segments(); got != nil {
		t.Errorf("expected no segments with zero points, got %v", got)
	}
	o.Click(types.Point{Lat: 1, Lng: 1})
	if got := o.Segments(); got != nil {
		t.Errorf("expected no segments with one point, got %v", got)
	}
	if o.TotalFeet() != 0 {
		t.Errorf("TotalFeet = %f, want 0", o.TotalFeet())
	}
}

func TestToggleResetsSession(t *testing.T) {
	o := NewOverlay()
	o.Toggle()
	o.Click(types.Point{Lat: 1, Lng: 1})
	o.Click(types.Point{Lat: 2, Lng: 2})

	o.Toggle() // off: session cleared
	if o.Active() || len(o.Points()) != 0 {
		t.Error("toggling off did not clear the session")
	}

	o.Toggle() // on again: fresh session
	if !o.Active() || len(o.Points()) != 0 {
		t.Error("toggling on did not start fresh")
	}
}

func TestClearKeepsOverlayActive(t *testing.T) {
	o := NewOverlay()
	o.Toggle()
	o.Click(types.Point{Lat: 1, Lng: 1})
	o.Clear()
	if !o.Active() {
		t.Error("Clear deactivated the overlay")
	}
	if len(o.Points()) != 0 {
		t.Error("Clear left points behind")
	}
}
