package scene

import (
	"siteplan/internal/modules/geometry"
	"siteplan/internal/modules/layout"
	"siteplan/internal/types"
)

// Road endpoints within this distance of an asset's position render as if
// attached to it. Presentation-only: nothing is persisted, and the match
// is recomputed every render.
const snapToleranceDeg = 0.0001

// Marker is the interactive handle bound to one asset. Markers survive
// data updates so pointer listeners attached to them are never lost
// mid-gesture.
type Marker struct {
	AssetID  types.ID
	Position types.Point
}

// liveOverride carries drag feedback for a single asset without touching
// the authoritative snapshot.
type liveOverride struct {
	assetID   types.ID
	position  types.Point
	footprint types.Ring
}

type staticLayer struct {
	generation int
	features   int
	visible    bool
}

// assetLayer is persistent: Apply swaps its data in place rather than
// recreating the layer, avoiding flicker and handler loss while assets
// churn during a drag.
type assetLayer struct {
	generation int
	assets     []layout.PlacedAsset
}

// Renderer owns all map-scoped mutable state — layers, markers, the drag
// overlay — with an explicit construct/destroy lifecycle tied 1:1 to a
// mounted view. No state lives outside this struct.
type Renderer struct {
	snap      Snapshot
	callbacks Callbacks

	static      map[string]*staticLayer
	assets      *assetLayer
	generations map[string]int

	markers map[types.ID]*Marker
	live    *liveOverride

	cursor     Cursor
	panEnabled bool
	destroyed  bool
}

const (
	layerBoundary  = "boundary"
	layerBuildable = "buildable"
	layerZones     = "zones"
	layerRoads     = "roads"
)

func NewRenderer(callbacks Callbacks) *Renderer {
	return &Renderer{
		callbacks:   callbacks,
		static:      map[string]*staticLayer{},
		generations: map[string]int{},
		markers:     map[types.ID]*Marker{},
		cursor:      CursorDefault,
		panEnabled:  true,
	}
}

// Apply reconciles the renderer to a new snapshot. Toggled static layers
// are destroyed and recreated; the asset layer only swaps its data.
func (r *Renderer) Apply(snap Snapshot) {
	if r.destroyed {
		return
	}
	r.snap = snap

	r.reconcileStatic(layerBoundary, snap.Visible.Boundary, ringFeatureCount(snap.Boundary))
	r.reconcileStatic(layerBuildable, snap.Visible.BuildableAreas, len(snap.BuildableAreas))
	r.reconcileStatic(layerZones, snap.Visible.Zones, len(snap.Zones))
	r.reconcileStatic(layerRoads, snap.Visible.Roads, len(snap.Roads))

	if snap.Visible.Assets {
		if r.assets == nil {
			r.generations["assets"]++
			r.assets = &assetLayer{generation: r.generations["assets"]}
		}
		r.assets.assets = snap.Assets
	} else {
		r.assets = nil
	}

	r.reconcileMarkers(snap.Assets)
}

func (r *Renderer) reconcileStatic(name string, visible bool, features int) {
	current := r.static[name]
	if !visible {
		delete(r.static, name)
		return
	}
	if current != nil && current.features == features {
		return
	}
	// new, re-toggled, or data changed: recreate rather than patch —
	// these layers churn rarely enough that recreation stays cheap
	r.generations[name]++
	r.static[name] = &staticLayer{generation: r.generations[name], features: features, visible: true}
}

// reconcileMarkers keeps one marker per asset, preserving existing marker
// objects so in-flight gestures keep their handle.
func (r *Renderer) reconcileMarkers(assets []layout.PlacedAsset) {
	seen := make(map[types.ID]bool, len(assets))
	for _, a := range assets {
		seen[a.ID] = true
		if m, ok := r.markers[a.ID]; ok {
			if r.live == nil || r.live.assetID != a.ID {
				m.Position = a.Pose.Position
			}
			continue
		}
		r.markers[a.ID] = &Marker{AssetID: a.ID, Position: a.Pose.Position}
	}
	for id := range r.markers {
		if !seen[id] {
			delete(r.markers, id)
		}
	}
}

// SetLiveAsset moves the drag feedback for one asset: its marker and a
// freshly recomputed footprint, leaving the authoritative snapshot alone.
// Unknown ids are ignored so a failed recompute can never abort a gesture.
func (r *Renderer) SetLiveAsset(id types.ID, position types.Point) {
	a := r.assetByID(id)
	if a == nil {
		return
	}
	fp := geometry.FootprintOf(position, a.Pose.WidthFt, a.Pose.LengthFt, a.Pose.RotationDeg)
	r.live = &liveOverride{assetID: id, position: position, footprint: fp}
	if m, ok := r.markers[id]; ok {
		m.Position = position
	}
}

// ClearLive drops drag feedback; the next Apply re-establishes marker
// positions from authoritative data.
func (r *Renderer) ClearLive() {
	r.live = nil
}

// AssetAt resolves the topmost asset at p, honouring the live drag
// footprint when one is active.
func (r *Renderer) AssetAt(p types.Point) (layout.PlacedAsset, bool) {
	if r.assets == nil {
		return layout.PlacedAsset{}, false
	}
	for i := len(r.assets.assets) - 1; i >= 0; i-- {
		a := r.assets.assets[i]
		fp := a.Footprint
		if r.live != nil && r.live.assetID == a.ID {
			fp = r.live.footprint
		}
		if geometry.PointInRing(p, fp) {
			return a, true
		}
	}
	return layout.PlacedAsset{}, false
}

// Click resolves p and reports it outward: the topmost asset if any,
// otherwise the bare map coordinate.
func (r *Renderer) Click(p types.Point) {
	if r.destroyed {
		return
	}
	if a, ok := r.AssetAt(p); ok {
		if r.callbacks.AssetClicked != nil {
			r.callbacks.AssetClicked(a)
		}
		return
	}
	if r.callbacks.MapClicked != nil {
		r.callbacks.MapClicked(p)
	}
}

// Hover updates the cursor affordance for the pointer position.
func (r *Renderer) Hover(p types.Point) {
	if _, ok := r.AssetAt(p); ok {
		r.cursor = CursorPointer
		return
	}
	r.cursor = CursorDefault
}

func (r *Renderer) Cursor() Cursor { return r.cursor }

// DisablePan locks the background map for the duration of a gesture.
func (r *Renderer) DisablePan() { r.panEnabled = false }

// EnablePan restores panning after a gesture commits.
func (r *Renderer) EnablePan() { r.panEnabled = true }

func (r *Renderer) PanEnabled() bool { return r.panEnabled }

// MarkerFor returns the marker handle for an asset, or nil.
func (r *Renderer) MarkerFor(id types.ID) *Marker {
	return r.markers[id]
}

// ResolveRoadEndpoint substitutes the current position of a matching
// asset — live drag position included — for a road endpoint within the
// snap tolerance.
func (r *Renderer) ResolveRoadEndpoint(p types.Point) types.Point {
	if r.assets == nil {
		return p
	}
	for _, a := range r.assets.assets {
		if !withinTolerance(p, a.Pose.Position) {
			continue
		}
		if r.live != nil && r.live.assetID == a.ID {
			return r.live.position
		}
		return a.Pose.Position
	}
	return p
}

func withinTolerance(a, b types.Point) bool {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	if dLat < 0 {
		dLat = -dLat
	}
	if dLng < 0 {
		dLng = -dLng
	}
	return dLat <= snapToleranceDeg && dLng <= snapToleranceDeg
}

// LayerGeneration reports how many times a static layer has been
// (re)created; zero means the layer does not currently exist.
func (r *Renderer) LayerGeneration(name string) int {
	if l, ok := r.static[name]; ok {
		return l.generation
	}
	return 0
}

// AssetLayerGeneration stays constant across data updates — the in-place
// update policy made observable.
func (r *Renderer) AssetLayerGeneration() int {
	if r.assets == nil {
		return 0
	}
	return r.assets.generation
}

// Destroy releases every layer, marker, and callback deterministically.
// The renderer is inert afterwards.
func (r *Renderer) Destroy() {
	r.destroyed = true
	r.static = map[string]*staticLayer{}
	r.generations = map[string]int{}
	r.assets = nil
	r.markers = map[types.ID]*Marker{}
	r.live = nil
	r.callbacks = Callbacks{}
	r.panEnabled = true
	r.cursor = CursorDefault
}

func (r *Renderer) assetByID(id types.ID) *layout.PlacedAsset {
	if r.assets == nil {
		return nil
	}
	for i := range r.assets.assets {
		if r.assets.assets[i].ID == id {
			return &r.assets.assets[i]
		}
	}
	return nil
}

func ringFeatureCount(ring types.Ring) int {
	if len(ring) == 0 {
		return 0
	}
	return 1
}
