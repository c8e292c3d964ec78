// README: Flood hazard domain model.
package hazard

import (
	"time"

	"siteplan/internal/modules/geometry"
	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

// FloodZone is the regulatory flood designation at a point.
type FloodZone string

const (
	ZoneMinimal  FloodZone = "minimal"   // outside mapped flood areas
	ZoneModerate FloodZone = "moderate"  // 0.2% annual chance
	ZoneHighRisk FloodZone = "high_risk" // 1% annual chance (special flood hazard area)
	ZoneFloodway FloodZone = "floodway"
	ZoneUnknown  FloodZone = "unknown"
)

// Report is the hazard designation for a queried location.
type Report struct {
	Location      types.Point `json:"location"`
	Zone          FloodZone   `json:"zone"`
	BaseElevFt    float64     `json:"baseFloodElevationFt,omitempty"`
	EffectiveDate time.Time   `json:"effectiveDate,omitempty"`
	Source        string      `json:"source,omitempty"`
}

// AsConstraintZone converts a hazardous report into an editable zone: a
// square of 2*halfWidthFt a side centered on the lookup point. Minimal and
// unknown designations produce no zone.
func (r *Report) AsConstraintZone(id types.ID, halfWidthFt float64) (layout.ConstraintZone, bool) {
	var zoneType layout.ZoneType
	var severity layout.ZoneSeverity
	switch r.Zone {
	case ZoneFloodway:
		zoneType, severity = layout.ZoneExclusion, layout.SeverityHigh
	case ZoneHighRisk:
		zoneType, severity = layout.ZoneWetland, layout.SeverityHigh
	case ZoneModerate:
		zoneType, severity = layout.ZoneWetland, layout.SeverityMedium
	default:
		return layout.ConstraintZone{}, false
	}
	return layout.ConstraintZone{
		ID:       id,
		Type:     zoneType,
		Severity: severity,
		Ring:     geometry.FootprintOf(r.Location, 2*halfWidthFt, 2*halfWidthFt, 0),
	}, true
}
