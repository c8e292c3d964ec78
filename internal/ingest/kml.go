// README: KML/KMZ ingest — extracts a site boundary from uploaded files.
package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"siteplan/internal/modules/geometry"
	"siteplan/internal/types"
)

var (
	ErrNoBoundary = errors.New("no polygon found in document")
	ErrBadFormat  = errors.New("unrecognized file format")
)

// kmzDocLimit caps decompressed KML size read out of an archive.
const kmzDocLimit = 16 << 20

type kmlFile struct {
	Placemarks []placemark `xml:"Document>Placemark"`
	// some exporters skip the Document wrapper
	TopLevel []placemark `xml:"Placemark"`
	Folders  []folder    `xml:"Document>Folder"`
}

type folder struct {
	Placemarks []placemark `xml:"Placemark"`
}

type placemark struct {
	Name     string    `xml:"name"`
	Polygons []polygon `xml:"Polygon"`
	Multi    []polygon `xml:"MultiGeometry>Polygon"`
}

type polygon struct {
	Outer string `xml:"outerBoundaryIs>LinearRing>coordinates"`
}

// Boundary parses a KML or KMZ payload and returns the first polygon ring
// as the site boundary, open form, along with its bounding box. Altitude
// components and the closing vertex are dropped.
func Boundary(data []byte) (types.Ring, types.Bounds, error) {
	if isZip(data) {
		doc, err := kmlFromKMZ(data)
		if err != nil {
			return nil, types.Bounds{}, err
		}
		data = doc
	}

	var doc kmlFile
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, types.Bounds{}, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	placemarks := doc.Placemarks
	placemarks = append(placemarks, doc.TopLevel...)
	for _, f := range doc.Folders {
		placemarks = append(placemarks, f.Placemarks...)
	}

	for _, pm := range placemarks {
		polys := append(pm.Polygons, pm.Multi...)
		for _, poly := range polys {
			ring, err := parseCoordinates(poly.Outer)
			if err != nil {
				return nil, types.Bounds{}, err
			}
			if len(ring) < 3 {
				continue
			}
			return ring, boundsOf(ring), nil
		}
	}
	return nil, types.Bounds{}, ErrNoBoundary
}

func isZip(data []byte) bool {
	return len(data) >= 4 && bytes.HasPrefix(data, []byte("PK\x03\x04"))
}

// kmlFromKMZ pulls the main document out of a KMZ archive. Per convention
// the root doc is doc.kml, but any .kml entry is accepted.
func kmlFromKMZ(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	var fallback *zip.File
	for _, f := range zr.File {
		if f.Name == "doc.kml" {
			return readZipEntry(f)
		}
		if fallback == nil && strings.HasSuffix(strings.ToLower(f.Name), ".kml") {
			fallback = f
		}
	}
	if fallback != nil {
		return readZipEntry(fallback)
	}
	return nil, fmt.Errorf("%w: no kml entry in archive", ErrBadFormat)
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(io.LimitReader(rc, kmzDocLimit))
}

// parseCoordinates decodes a KML coordinate string: whitespace-separated
// lng,lat[,alt] tuples.
func parseCoordinates(raw string) (types.Ring, error) {
	var ring types.Ring
	for _, token := range strings.Fields(raw) {
		parts := strings.Split(token, ",")
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: bad coordinate %q", ErrBadFormat, token)
		}
		lng, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad longitude %q", ErrBadFormat, parts[0])
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad latitude %q", ErrBadFormat, parts[1])
		}
		ring = append(ring, types.Point{Lat: lat, Lng: lng})
	}
	return geometry.OpenRing(ring), nil
}

func boundsOf(ring types.Ring) types.Bounds {
	b := types.Bounds{SouthWest: ring[0], NorthEast: ring[0]}
	for _, p := range ring[1:] {
		if p.Lat < b.SouthWest.Lat {
			b.SouthWest.Lat = p.Lat
		}
		if p.Lng < b.SouthWest.Lng {
			b.SouthWest.Lng = p.Lng
		}
		if p.Lat > b.NorthEast.Lat {
			b.NorthEast.Lat = p.Lat
		}
		if p.Lng > b.NorthEast.Lng {
			b.NorthEast.Lng = p.Lng
		}
	}
	return b
}
