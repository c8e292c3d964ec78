// README: Site layout domain model — placed assets, constraint zones, roads.
package layout

import (
	"time"

	"siteplan/internal/modules/geometry"
	"siteplan/internal/types"
)

// AssetType classifies a placed footprint.
type AssetType string

const (
	AssetBuilding AssetType = "building"
	AssetParking  AssetType = "parking"
	AssetYard     AssetType = "yard"
)

// ZoneType is the regulatory category of a constraint zone. PropertyLine
// doubles as the constraint type reported for boundary violations.
type ZoneType string

const (
	ZoneSetback      ZoneType = "setback"
	ZoneWetland      ZoneType = "wetland"
	ZoneSlope        ZoneType = "slope"
	ZoneEasement     ZoneType = "easement"
	ZoneExclusion    ZoneType = "exclusion"
	ZonePropertyLine ZoneType = "property_line"
)

// ZoneSeverity grades how hard a zone constraint is.
type ZoneSeverity string

const (
	SeverityLow    ZoneSeverity = "low"
	SeverityMedium ZoneSeverity = "medium"
	SeverityHigh   ZoneSeverity = "high"
)

// Pose is the authoritative placement of an asset: center position,
// plan dimensions in feet, and clockwise rotation from north in degrees.
// Rotation range is unconstrained; callers may pass values outside
// [0, 360) and they are stored as given.
type Pose struct {
	Position    types.Point `json:"position"`
	WidthFt     float64     `json:"widthFt"`
	LengthFt    float64     `json:"lengthFt"`
	HeightFt    float64     `json:"heightFt,omitempty"`
	RotationDeg float64     `json:"rotationDeg"`
}

// PlacedAsset is one positioned footprint. Footprint is derived from the
// pose and must always equal geometry.FootprintOf of it; it is never
// mutated independently.
type PlacedAsset struct {
	ID         types.ID          `json:"id"`
	Type       AssetType         `json:"type"`
	Pose       Pose              `json:"pose"`
	Footprint  types.Ring        `json:"footprint"`
	Properties map[string]string `json:"properties,omitempty"`
}

// RecomputeFootprint rederives the footprint from the pose. Call after
// any pose mutation.
func (a *PlacedAsset) RecomputeFootprint() {
	a.Footprint = geometry.FootprintOf(a.Pose.Position, a.Pose.WidthFt, a.Pose.LengthFt, a.Pose.RotationDeg)
}

// ConstraintZone is a regulated area assets must not intersect.
type ConstraintZone struct {
	ID       types.ID     `json:"id"`
	Type     ZoneType     `json:"type"`
	Ring     types.Ring   `json:"ring"`
	Severity ZoneSeverity `json:"severity"`
}

// RoadSegment is one drawn road edge. Endpoints may visually snap to a
// nearby asset at render time; that linkage is never persisted.
type RoadSegment struct {
	ID      types.ID    `json:"id"`
	Start   types.Point `json:"start"`
	End     types.Point `json:"end"`
	WidthFt float64     `json:"widthFt"`
	Surface string      `json:"surface,omitempty"`
}

// Project is the owning aggregate handed to the editing core by value on
// every render cycle.
type Project struct {
	ID             types.ID         `json:"id"`
	Name           string           `json:"name"`
	Bounds         types.Bounds     `json:"bounds"`
	Boundary       types.Ring       `json:"boundary"`
	Assets         []PlacedAsset    `json:"assets"`
	Zones          []ConstraintZone `json:"zones"`
	Roads          []RoadSegment    `json:"roads"`
	BuildableAreas []types.Ring     `json:"buildableAreas,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// AssetByID returns a pointer into Assets, or nil.
func (p *Project) AssetByID(id types.ID) *PlacedAsset {
	for i := range p.Assets {
		if p.Assets[i].ID == id {
			return &p.Assets[i]
		}
	}
	return nil
}
