// README: GeoJSON export of a project's boundary, zones, roads and assets.
package export

import (
	"encoding/json"

	"siteplan/internal/modules/geometry"
	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

// FeatureCollection follows the standard GeoJSON structure. Coordinates
// are [lng, lat]; polygon rings are closed on the way out.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   Geometry               `json:"geometry"`
}

type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// GeoJSON serializes the project as a FeatureCollection: boundary first,
// then zones, roads and assets, matching on-screen layer order.
func GeoJSON(p *layout.Project) ([]byte, error) {
	fc := FeatureCollection{Type: "FeatureCollection"}

	if f, ok := polygonFeature(p.Boundary, map[string]interface{}{"kind": "boundary"}); ok {
		fc.Features = append(fc.Features, f)
	}
	for _, z := range p.Zones {
		f, ok := polygonFeature(z.Ring, map[string]interface{}{
			"kind":     "zone",
			"id":       string(z.ID),
			"zoneType": string(z.Type),
			"severity": string(z.Severity),
		})
		if ok {
			fc.Features = append(fc.Features, f)
		}
	}
	for _, r := range p.Roads {
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"kind":    "road",
				"id":      string(r.ID),
				"widthFt": r.WidthFt,
				"surface": r.Surface,
			},
			Geometry: Geometry{
				Type: "LineString",
				Coordinates: [][]float64{
					{r.Start.Lng, r.Start.Lat},
					{r.End.Lng, r.End.Lat},
				},
			},
		})
	}
	for _, a := range p.Assets {
		f, ok := polygonFeature(a.Footprint, map[string]interface{}{
			"kind":        "asset",
			"id":          string(a.ID),
			"assetType":   string(a.Type),
			"widthFt":     a.Pose.WidthFt,
			"lengthFt":    a.Pose.LengthFt,
			"rotationDeg": a.Pose.RotationDeg,
		})
		if ok {
			fc.Features = append(fc.Features, f)
		}
	}

	return json.MarshalIndent(fc, "", "  ")
}

func polygonFeature(ring types.Ring, props map[string]interface{}) (Feature, bool) {
	kind, _ := props["kind"].(string)
	open, ok := usableRing(ring, kind)
	if !ok {
		return Feature{}, false
	}
	closed := geometry.CloseRing(open)
	coords := make([][]float64, len(closed))
	for i, pt := range closed {
		coords[i] = []float64{pt.Lng, pt.Lat}
	}
	return Feature{
		Type:       "Feature",
		Properties: props,
		Geometry:   Geometry{Type: "Polygon", Coordinates: [][][]float64{coords}},
	}, true
}
