// README: Editor session — the authoritative reducer behind one mounted map view.
package editor

import (
	"siteplan/internal/metrics"
	"siteplan/internal/modules/interact"
	"siteplan/internal/modules/layout"
	"siteplan/internal/modules/measure"
	"siteplan/internal/modules/scene"
	"siteplan/internal/modules/validate"
	"siteplan/internal/types"
)

// Callbacks are the session's outward interface to the owning
// application. Invoked synchronously, never polled.
type Callbacks struct {
	// AssetMoved fires exactly once per committed drag gesture.
	AssetMoved func(assetID types.ID, p types.Point)
	// AssetClicked fires when a click resolves to an asset.
	AssetClicked func(asset layout.PlacedAsset)
	// MapClicked fires for background clicks, suppressed while measuring.
	MapClicked func(p types.Point)
}

// Session owns all mutable editor state for one mounted view: the working
// project copy, the render layers, the gesture machine, and the
// measurement overlay. Pointer and keyboard events arrive as method
// calls; everything downstream is recomputed here, so no handler ever
// closes over stale data.
type Session struct {
	project    layout.Project
	callbacks  Callbacks
	renderer   *scene.Renderer
	controller *interact.Controller
	overlay    *measure.Overlay

	visible    scene.Visibility
	selectedID types.ID
	editable   bool
	violations []validate.Violation
	destroyed  bool
}

func NewSession(project layout.Project, callbacks Callbacks) *Session {
	s := &Session{
		project:   project,
		callbacks: callbacks,
		overlay:   measure.NewOverlay(),
		visible:   scene.ShowAll(),
		editable:  true,
	}
	s.renderer = scene.NewRenderer(scene.Callbacks{
		AssetClicked: s.handleAssetClicked,
		MapClicked:   s.handleMapClicked,
	})
	s.controller = interact.NewController(s.renderer, s.commitMove)
	s.refresh()
	return s
}

// SetProject replaces the working copy, e.g. after the upstream optimizer
// reruns. Violations and layers are rebuilt wholesale.
func (s *Session) SetProject(project layout.Project) {
	if s.destroyed {
		return
	}
	s.project = project
	s.refresh()
}

func (s *Session) Project() layout.Project { return s.project }

// Violations returns the current evaluation — always a fresh wholesale
// computation from the last refresh, never a patched list.
func (s *Session) Violations() []validate.Violation { return s.violations }

func (s *Session) SetVisibility(v scene.Visibility) {
	if s.destroyed {
		return
	}
	s.visible = v
	s.refresh()
}

func (s *Session) Select(id types.ID) {
	if s.destroyed {
		return
	}
	s.selectedID = id
	s.refresh()
}

func (s *Session) SetEditable(editable bool) {
	if s.destroyed {
		return
	}
	s.editable = editable
	s.controller.SetEditable(editable)
	s.refresh()
}

// Renderer exposes the layer state for rasterization and inspection.
func (s *Session) Renderer() *scene.Renderer { return s.renderer }

// PointerDown forwards to the gesture machine.
func (s *Session) PointerDown(assetID types.ID, p types.Point, modifier bool) {
	s.controller.PointerDown(assetID, p, modifier)
}

// PointerMove drives live drag feedback. Constant-time per event: one
// footprint recompute and marker update, nothing else.
func (s *Session) PointerMove(p types.Point) {
	s.controller.PointerMove(p)
}

// PointerUp commits an in-flight gesture.
func (s *Session) PointerUp() {
	s.controller.PointerUp()
}

// Hover updates the cursor affordance.
func (s *Session) Hover(p types.Point) {
	s.renderer.Hover(p)
}

// Click routes a map click: the measurement overlay consumes it while
// active, otherwise the renderer resolves it to an asset or background.
func (s *Session) Click(p types.Point) {
	if s.destroyed {
		return
	}
	if s.overlay.Click(p) {
		return
	}
	s.renderer.Click(p)
}

// ToggleMeasure flips the measurement overlay.
func (s *Session) ToggleMeasure() {
	s.overlay.Toggle()
}

func (s *Session) Measuring() bool { return s.overlay.Active() }

// MeasureSegments returns the current measured legs.
func (s *Session) MeasureSegments() []measure.Segment {
	return s.overlay.Segments()
}

// Destroy tears the session down deterministically: gesture listeners
// first, then layers and callbacks.
func (s *Session) Destroy() {
	if s.destroyed {
		return
	}
	s.controller.Destroy()
	s.renderer.Destroy()
	s.callbacks = Callbacks{}
	s.destroyed = true
}

// commitMove is the single point where a gesture becomes authoritative:
// the pose moves, the footprint is rederived, constraints are re-run
// wholesale, and the owning application hears about it exactly once.
func (s *Session) commitMove(assetID types.ID, p types.Point) {
	a := s.project.AssetByID(assetID)
	if a != nil {
		a.Pose.Position = p
		a.RecomputeFootprint()
	}
	metrics.DragCommitsTotal.Inc()
	s.refresh()
	if s.callbacks.AssetMoved != nil {
		s.callbacks.AssetMoved(assetID, p)
	}
}

func (s *Session) handleAssetClicked(a layout.PlacedAsset) {
	s.selectedID = a.ID
	s.refresh()
	if s.callbacks.AssetClicked != nil {
		s.callbacks.AssetClicked(a)
	}
}

func (s *Session) handleMapClicked(p types.Point) {
	if s.callbacks.MapClicked != nil {
		s.callbacks.MapClicked(p)
	}
}

// refresh recomputes violations and hands the renderer a fresh snapshot
// atomically. Render data is treated as immutable: a new snapshot every
// time, no in-place buffer mutation.
func (s *Session) refresh() {
	s.violations = validate.Validate(s.project.Assets, s.project.Zones, s.project.Boundary)
	metrics.ValidationsTotal.Inc()
	metrics.ViolationsEmitted.Add(float64(len(s.violations)))

	s.renderer.Apply(scene.Snapshot{
		Bounds:            s.project.Bounds,
		Boundary:          s.project.Boundary,
		BuildableAreas:    s.project.BuildableAreas,
		Zones:             s.project.Zones,
		Roads:             s.project.Roads,
		Assets:            s.project.Assets,
		Visible:           s.visible,
		SelectedAssetID:   s.selectedID,
		ViolatingAssetIDs: validate.ViolatingAssetIDs(s.violations),
		Editable:          s.editable,
	})
}
