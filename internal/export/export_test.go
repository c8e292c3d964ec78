package export

import (
	"encoding/json"
	"strings"
	"testing"

	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

func exportProject() *layout.Project {
	p := &layout.Project{
		ID:   "p1",
		Name: "riverside yard",
		Boundary: types.Ring{
			{Lat: 29.9, Lng: -95.1},
			{Lat: 29.9, Lng: -94.9},
			{Lat: 30.1, Lng: -94.9},
			{Lat: 30.1, Lng: -95.1},
		},
		Assets: []layout.PlacedAsset{
			{ID: "a1", Type: layout.AssetBuilding, Pose: layout.Pose{
				Position: types.Point{Lat: 30.0, Lng: -95.0}, WidthFt: 100, LengthFt: 200,
			}},
		},
		Zones: []layout.ConstraintZone{
			{ID: "z1", Type: layout.ZoneWetland, Severity: layout.SeverityHigh, Ring: types.Ring{
				{Lat: 29.92, Lng: -95.08}, {Lat: 29.92, Lng: -95.06}, {Lat: 29.94, Lng: -95.06},
			}},
		},
		Roads: []layout.RoadSegment{
			{ID: "r1", Start: types.Point{Lat: 29.95, Lng: -95.0}, End: types.Point{Lat: 30.0, Lng: -95.0}, WidthFt: 24, Surface: "gravel"},
		},
	}
	p.Assets[0].RecomputeFootprint()
	return p
}

func TestGeoJSONStructure(t *testing.T) {
	buf, err := GeoJSON(exportProject())
	if err != nil {
		t.Fatalf("geojson: %v", err)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(buf, &fc); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if fc.Type != "FeatureCollection" {
		t.Errorf("type = %s, want FeatureCollection", fc.Type)
	}
	// boundary + zone + road + asset
	if len(fc.Features) != 4 {
		t.Fatalf("got %d features, want 4", len(fc.Features))
	}
	if fc.Features[0].Properties["kind"] != "boundary" {
		t.Errorf("first feature kind = %v, want boundary", fc.Features[0].Properties["kind"])
	}
	if fc.Features[2].Geometry.Type != "LineString" {
		t.Errorf("road geometry = %s, want LineString", fc.Features[2].Geometry.Type)
	}
}

func TestGeoJSONClosesRings(t *testing.T) {
	buf, err := GeoJSON(exportProject())
	if err != nil {
		t.Fatalf("geojson: %v", err)
	}
	var fc FeatureCollection
	if err := json.Unmarshal(buf, &fc); err != nil {
		t.Fatalf("decode: %v", err)
	}

	var coords [][][]float64
	raw, _ := json.Marshal(fc.Features[0].Geometry.Coordinates)
	if err := json.Unmarshal(raw, &coords); err != nil {
		t.Fatalf("decode polygon coordinates: %v", err)
	}
	ring := coords[0]
	// 4 vertices + repeated first
	if len(ring) != 5 {
		t.Fatalf("boundary ring has %d coordinates, want 5", len(ring))
	}
	if ring[0][0] != ring[4][0] || ring[0][1] != ring[4][1] {
		t.Error("polygon ring is not closed")
	}
}

func TestGeoJSONSkipsDegeneratePolygons(t *testing.T) {
	degenerate := map[string]types.Ring{
		"open two vertices": {{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}},
		// closed ring back to its start still has only two distinct vertices
		"closed two vertices": {{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 1, Lng: 1}},
	}
	for name, ring := range degenerate {
		t.Run(name, func(t *testing.T) {
			p := exportProject()
			p.Zones[0].Ring = ring

			buf, err := GeoJSON(p)
			if err != nil {
				t.Fatalf("geojson: %v", err)
			}
			var fc FeatureCollection
			if err := json.Unmarshal(buf, &fc); err != nil {
				t.Fatalf("decode: %v", err)
			}
			for _, f := range fc.Features {
				if f.Properties["kind"] == "zone" {
					t.Error("degenerate zone was exported")
				}
			}
		})
	}
}

func TestKMLSkipsDegenerateRings(t *testing.T) {
	p := exportProject()
	p.Zones[0].Ring = types.Ring{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 1, Lng: 1}}

	buf, err := KML(p)
	if err != nil {
		t.Fatalf("kml: %v", err)
	}
	if strings.Contains(string(buf), "Zone z1") {
		t.Error("degenerate zone was exported")
	}
}

func TestKMLWellFormed(t *testing.T) {
	buf, err := KML(exportProject())
	if err != nil {
		t.Fatalf("kml: %v", err)
	}
	out := string(buf)

	if !strings.HasPrefix(out, "<?xml") {
		t.Error("missing xml header")
	}
	for _, want := range []string{
		"http://www.opengis.net/kml/2.2",
		"<name>riverside yard</name>",
		"<name>Site Boundary</name>",
		"<LinearRing>",
		"<LineString>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("kml output missing %q", want)
		}
	}
}

func TestDXFEntities(t *testing.T) {
	out := string(DXF(exportProject()))

	if !strings.HasPrefix(out, "0\nSECTION\n2\nENTITIES\n") {
		t.Error("missing ENTITIES section header")
	}
	if !strings.HasSuffix(out, "0\nENDSEC\n0\nEOF\n") {
		t.Error("missing trailer")
	}
	for _, layer := range []string{dxfLayerBoundary, dxfLayerZones, dxfLayerRoads, dxfLayerAssets} {
		if !strings.Contains(out, "8\n"+layer+"\n") {
			t.Errorf("no entity on layer %s", layer)
		}
	}
	// boundary + zone + road + asset
	if got := strings.Count(out, "0\nPOLYLINE\n"); got != 4 {
		t.Errorf("got %d polylines, want 4", got)
	}
	if got := strings.Count(out, "0\nSEQEND\n"); got != 4 {
		t.Errorf("got %d SEQEND markers, want 4", got)
	}
}

func TestDXFSkipsDegenerateRings(t *testing.T) {
	tests := map[string]types.Ring{
		"single vertex":       {{Lat: 1, Lng: 1}},
		"closed two vertices": {{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 1, Lng: 1}},
	}
	for name, ring := range tests {
		t.Run(name, func(t *testing.T) {
			p := exportProject()
			p.Boundary = ring
			out := string(DXF(p))
			if strings.Contains(out, "8\n"+dxfLayerBoundary+"\n") {
				t.Error("degenerate boundary was exported")
			}
		})
	}
}
