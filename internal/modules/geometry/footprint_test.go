package geometry

import (
	"math"
	"testing"

	"siteplan/internal/types"
)

// feetBetween converts a corner pair back to feet using the same scale
// factors the engine uses, so expectations are exact in the local frame.
func feetBetween(a, b types.Point) float64 {
	dy := (b.Lat - a.Lat) * feetPerDegreeLat
	dx := (b.Lng - a.Lng) * feetPerDegreeLng
	return math.Hypot(dx, dy)
}

func TestFootprintOfAxisAligned(t *testing.T) {
	center := types.Point{Lat: 35.0, Lng: -100.0}
	fp := FootprintOf(center, 40, 60, 0)

	if len(fp) != 4 {
		t.Fatalf("expected 4 corners, got %d", len(fp))
	}

	// back-left and back-right share a latitude; so do the front corners
	if math.Abs(fp[0].Lat-fp[1].Lat) > 1e-12 {
		t.Errorf("back corners not level: %v vs %v", fp[0].Lat, fp[1].Lat)
	}
	if math.Abs(fp[3].Lat-fp[2].Lat) > 1e-12 {
		t.Errorf("front corners not level: %v vs %v", fp[3].Lat, fp[2].Lat)
	}
	// left corners share a longitude; so do the right corners
	if math.Abs(fp[0].Lng-fp[3].Lng) > 1e-12 {
		t.Errorf("left corners not aligned: %v vs %v", fp[0].Lng, fp[3].Lng)
	}
	if math.Abs(fp[1].Lng-fp[2].Lng) > 1e-12 {
		t.Errorf("right corners not aligned: %v vs %v", fp[1].Lng, fp[2].Lng)
	}

	// back edge is north of the front edge
	if fp[0].Lat <= fp[3].Lat {
		t.Errorf("back edge not north of front edge: %v vs %v", fp[0].Lat, fp[3].Lat)
	}
}

func TestFootprintOfDiagonal(t *testing.T) {
	tests := []struct {
		name     string
		width    float64
		length   float64
		rotation float64
	}{
		{"square", 50, 50, 0},
		{"wide", 120, 40, 0},
		{"deep", 30, 90, 0},
		{"rotated", 80, 45, 37.5},
	}
	center := types.Point{Lat: 29.76, Lng: -95.37}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := FootprintOf(center, tt.width, tt.length, tt.rotation)
			want := math.Sqrt(tt.width*tt.width + tt.length*tt.length)

			for _, pair := range [][2]int{{0, 2}, {1, 3}} {
				got := feetBetween(fp[pair[0]], fp[pair[1]])
				if math.Abs(got-want) > 1e-6 {
					t.Errorf("diagonal %v = %f ft, want %f ft", pair, got, want)
				}
			}
		})
	}
}

func TestFootprintOfRotationWraps(t *testing.T) {
	center := types.Point{Lat: 40.0, Lng: -80.0}
	for _, r := range []float64{0, 15, 90, 181.25, 359, -45, 720.5} {
		a := FootprintOf(center, 33, 71, r)
		b := FootprintOf(center, 33, 71, r+360)
		for i := range a {
			if math.Abs(a[i].Lat-b[i].Lat) > 1e-12 || math.Abs(a[i].Lng-b[i].Lng) > 1e-12 {
				t.Errorf("rotation %v: corner %d differs from rotation %v: %v vs %v", r, i, r+360, a[i], b[i])
			}
		}
	}
}

func TestFootprintOfCenteredOnPosition(t *testing.T) {
	center := types.Point{Lat: 47.6, Lng: -122.3}
	fp := FootprintOf(center, 64, 28, 123)
	got := Centroid(fp)
	if math.Abs(got.Lat-center.Lat) > 1e-12 || math.Abs(got.Lng-center.Lng) > 1e-12 {
		t.Errorf("footprint centroid %v, want %v", got, center)
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
