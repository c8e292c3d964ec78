// README: Minimal DXF (R12 polyline entities) export for CAD handoff.
package export

import (
	"fmt"
	"strings"

	"siteplan/internal/modules/geometry"
	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

// DXF layer names for each feature class.
const (
	dxfLayerBoundary = "BOUNDARY"
	dxfLayerZones    = "ZONES"
	dxfLayerRoads    = "ROADS"
	dxfLayerAssets   = "ASSETS"
)

// DXF writes the project as R12 POLYLINE entities, one layer per feature
// class. Coordinates are raw lng/lat; consumers georeference on import.
func DXF(p *layout.Project) []byte {
	var b strings.Builder
	b.WriteString("0\nSECTION\n2\nENTITIES\n")

	writeRing(&b, dxfLayerBoundary, p.Boundary)
	for _, z := range p.Zones {
		writeRing(&b, dxfLayerZones, z.Ring)
	}
	for _, r := range p.Roads {
		writePolyline(&b, dxfLayerRoads, []types.Point{r.Start, r.End}, false)
	}
	for _, a := range p.Assets {
		writeRing(&b, dxfLayerAssets, a.Footprint)
	}

	b.WriteString("0\nENDSEC\n0\nEOF\n")
	return []byte(b.String())
}

func writeRing(b *strings.Builder, layer string, ring types.Ring) {
	open, ok := usableRing(ring, strings.ToLower(layer))
	if !ok {
		return
	}
	writePolyline(b, layer, geometry.CloseRing(open), true)
}

func writePolyline(b *strings.Builder, layer string, pts []types.Point, closed bool) {
	flags := 0
	if closed {
		flags = 1
	}
	fmt.Fprintf(b, "0\nPOLYLINE\n8\n%s\n66\n1\n70\n%d\n", layer, flags)
	for _, pt := range pts {
		fmt.Fprintf(b, "0\nVERTEX\n8\n%s\n10\n%f\n20\n%f\n", layer, pt.Lng, pt.Lat)
	}
	b.WriteString("0\nSEQEND\n")
}
