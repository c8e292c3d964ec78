// Package scene keeps the rendered map layers equal to a declarative
// snapshot of the site, reconciling data changes into layer state instead
// of redrawing the world from scratch.
package scene

import (
	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

// Visibility flags, one per toggleable layer group.
type Visibility struct {
	Boundary       bool `json:"boundary"`
	BuildableAreas bool `json:"buildableAreas"`
	Zones          bool `json:"zones"`
	Roads          bool `json:"roads"`
	Assets         bool `json:"assets"`
}

// ShowAll is the default visibility for a freshly opened project.
func ShowAll() Visibility {
	return Visibility{Boundary: true, BuildableAreas: true, Zones: true, Roads: true, Assets: true}
}

// Snapshot is the full declarative input to the renderer, passed by value
// on every render cycle. The renderer never mutates it.
type Snapshot struct {
	Bounds            types.Bounds
	Boundary          types.Ring
	BuildableAreas    []types.Ring
	Zones             []layout.ConstraintZone
	Roads             []layout.RoadSegment
	Assets            []layout.PlacedAsset
	Visible           Visibility
	SelectedAssetID   types.ID
	ViolatingAssetIDs map[types.ID]bool
	Editable          bool
}

// Callbacks are how the core reports interaction outward. They are
// invoked synchronously, never polled.
type Callbacks struct {
	// AssetClicked fires when a click resolves to the topmost asset.
	AssetClicked func(asset layout.PlacedAsset)
	// MapClicked fires for clicks that hit no asset. Suppressed while
	// the measurement overlay is active.
	MapClicked func(p types.Point)
}

// Cursor is the pointer affordance over the map surface.
type Cursor string

const (
	CursorDefault Cursor = "default"
	CursorPointer Cursor = "pointer"
	CursorMove    Cursor = "move"
)
