// README: KML export for viewing a project in Google Earth.
package export

import (
	"encoding/xml"
	"fmt"
	"strings"

	"siteplan/internal/modules/geometry"
	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

type kml struct {
	XMLName  xml.Name    `xml:"kml"`
	Xmlns    string      `xml:"xmlns,attr"`
	Document kmlDocument `xml:"Document"`
}

type kmlDocument struct {
	Name       string         `xml:"name"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name       string         `xml:"name"`
	Desc       string         `xml:"description,omitempty"`
	Polygon    *kmlPolygon    `xml:"Polygon,omitempty"`
	LineString *kmlLineString `xml:"LineString,omitempty"`
}

type kmlPolygon struct {
	OuterBoundary kmlOuterBoundary `xml:"outerBoundaryIs"`
}

type kmlOuterBoundary struct {
	LinearRing kmlLinearRing `xml:"LinearRing"`
}

type kmlLinearRing struct {
	Coordinates string `xml:"coordinates"`
}

type kmlLineString struct {
	Coordinates string `xml:"coordinates"`
}

// KML serializes the project for external viewers. Same feature set and
// ordering as the GeoJSON export.
func KML(p *layout.Project) ([]byte, error) {
	doc := kmlDocument{Name: p.Name}

	if boundary, ok := usableRing(p.Boundary, "boundary"); ok {
		doc.Placemarks = append(doc.Placemarks, kmlPlacemark{
			Name:    "Site Boundary",
			Polygon: polygonKML(boundary),
		})
	}
	for _, z := range p.Zones {
		ring, ok := usableRing(z.Ring, "zone")
		if !ok {
			continue
		}
		doc.Placemarks = append(doc.Placemarks, kmlPlacemark{
			Name:    fmt.Sprintf("Zone %s", z.ID),
			Desc:    fmt.Sprintf("%s (%s)", z.Type, z.Severity),
			Polygon: polygonKML(ring),
		})
	}
	for _, r := range p.Roads {
		doc.Placemarks = append(doc.Placemarks, kmlPlacemark{
			Name: fmt.Sprintf("Road %s", r.ID),
			Desc: fmt.Sprintf("%.0f ft wide %s", r.WidthFt, r.Surface),
			LineString: &kmlLineString{
				Coordinates: fmt.Sprintf("%f,%f,0 %f,%f,0", r.Start.Lng, r.Start.Lat, r.End.Lng, r.End.Lat),
			},
		})
	}
	for _, a := range p.Assets {
		fp, ok := usableRing(a.Footprint, "asset")
		if !ok {
			continue
		}
		doc.Placemarks = append(doc.Placemarks, kmlPlacemark{
			Name:    fmt.Sprintf("%s %s", a.Type, a.ID),
			Polygon: polygonKML(fp),
		})
	}

	out, err := xml.MarshalIndent(kml{
		Xmlns:    "http://www.opengis.net/kml/2.2",
		Document: doc,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func polygonKML(ring types.Ring) *kmlPolygon {
	closed := geometry.CloseRing(ring)
	var b strings.Builder
	for i, pt := range closed {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%f,%f,0", pt.Lng, pt.Lat)
	}
	return &kmlPolygon{
		OuterBoundary: kmlOuterBoundary{LinearRing: kmlLinearRing{Coordinates: b.String()}},
	}
}
