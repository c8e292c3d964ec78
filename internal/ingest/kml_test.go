package ingest

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

const sampleKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Site Boundary</name>
      <Polygon>
        <outerBoundaryIs>
          <LinearRing>
            <coordinates>
              -95.1,29.9,0 -94.9,29.9,0 -94.9,30.1,0 -95.1,30.1,0 -95.1,29.9,0
            </coordinates>
          </LinearRing>
        </outerBoundaryIs>
      </Polygon>
    </Placemark>
  </Document>
</kml>`

func TestBoundaryFromKML(t *testing.T) {
	ring, bounds, err := Boundary([]byte(sampleKML))
	if err != nil {
		t.Fatalf("boundary: %v", err)
	}

	// closing vertex dropped: 4 open-form vertices
	if len(ring) != 4 {
		t.Fatalf("got %d vertices, want 4", len(ring))
	}
	if ring[0].Lat != 29.9 || ring[0].Lng != -95.1 {
		t.Errorf("first vertex = %v, want (29.9, -95.1)", ring[0])
	}
	if bounds.SouthWest.Lat != 29.9 || bounds.SouthWest.Lng != -95.1 {
		t.Errorf("southwest = %v, want (29.9, -95.1)", bounds.SouthWest)
	}
	if bounds.NorthEast.Lat != 30.1 || bounds.NorthEast.Lng != -94.9 {
		t.Errorf("northeast = %v, want (30.1, -94.9)", bounds.NorthEast)
	}
}

func TestBoundaryFromKMZ(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("doc.kml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(sampleKML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	ring, _, err := Boundary(buf.Bytes())
	if err != nil {
		t.Fatalf("boundary from kmz: %v", err)
	}
	if len(ring) != 4 {
		t.Errorf("got %d vertices, want 4", len(ring))
	}
}

func TestBoundaryNoPolygon(t *testing.T) {
	doc := `<?xml version="1.0"?><kml><Document><Placemark><name>pin</name></Placemark></Document></kml>`
	if _, _, err := Boundary([]byte(doc)); !errors.Is(err, ErrNoBoundary) {
		t.Fatalf("expected ErrNoBoundary, got %v", err)
	}
}

func TestBoundaryBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not xml", "hello world"},
		{"bad coordinate", `<kml><Document><Placemark><Polygon><outerBoundaryIs><LinearRing><coordinates>notanumber,29.9</coordinates></LinearRing></outerBoundaryIs></Polygon></Placemark></Document></kml>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Boundary([]byte(tt.data)); !errors.Is(err, ErrBadFormat) {
				t.Errorf("expected ErrBadFormat, got %v", err)
			}
		})
	}
}

func TestBoundaryKMZWithoutKMLEntry(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("readme.txt")
	w.Write([]byte("nothing here"))
	zw.Close()

	if _, _, err := Boundary(buf.Bytes()); !errors.Is(err, ErrBadFormat) {
		t.Fatalf("expected ErrBadFormat, got %v", err)
	}
}
