// Package interact arms, runs, and commits the drag gesture that
// repositions a single asset on the map.
package interact

import "siteplan/internal/types"

// State of the gesture machine: Idle → Armed → Dragging → Idle.
type State string

const (
	StateIdle     State = "idle"
	StateArmed    State = "armed"
	StateDragging State = "dragging"
)

// LiveView is the slice of the renderer the controller drives for live
// feedback. Pan control rides along so the background map cannot move
// while an asset is being repositioned.
type LiveView interface {
	SetLiveAsset(id types.ID, p types.Point)
	ClearLive()
	DisablePan()
	EnablePan()
}

// MoveFunc reports a committed gesture — exactly once per gesture, with
// the final tracked pointer coordinate.
type MoveFunc func(assetID types.ID, final types.Point)

// dragSession is the transient gesture state. It exists only between
// gesture start and gesture end and has no persisted identity.
type dragSession struct {
	assetID types.ID
	last    types.Point
}

// Controller is a small state machine over pointer events. It never
// touches the authoritative asset collection: live moves go through the
// view, and the owning application reacts to the single commit callback.
type Controller struct {
	view     LiveView
	onMove   MoveFunc
	editable bool

	state     State
	session   *dragSession
	destroyed bool
}

func NewController(view LiveView, onMove MoveFunc) *Controller {
	return &Controller{view: view, onMove: onMove, state: StateIdle, editable: true}
}

// SetEditable gates the arming of new gestures. A gesture already in
// flight keeps its no-cancel semantics and still commits on pointer-up.
func (c *Controller) SetEditable(editable bool) {
	c.editable = editable
}

func (c *Controller) State() State { return c.state }

// PointerDown arms a gesture when the pointer lands on an asset's marker
// with the modifier key held and editing enabled. Anything else is left
// for normal click handling.
func (c *Controller) PointerDown(assetID types.ID, p types.Point, modifier bool) {
	if c.destroyed || c.state != StateIdle {
		return
	}
	if !c.editable || !modifier || assetID == "" {
		return
	}
	c.session = &dragSession{assetID: assetID, last: p}
	c.state = StateArmed
	c.view.DisablePan()
}

// PointerMove updates the marker and live footprint through the view.
// The authoritative collection is never touched here.
func (c *Controller) PointerMove(p types.Point) {
	if c.destroyed || c.session == nil {
		return
	}
	c.state = StateDragging
	c.session.last = p
	c.view.SetLiveAsset(c.session.assetID, p)
}

// PointerUp commits the gesture at the last tracked coordinate and fires
// the move callback exactly once. There is no cancel path: releasing the
// modifier or leaving the map mid-gesture changes nothing, and the next
// pointer-up still commits.
func (c *Controller) PointerUp() {
	if c.destroyed || c.session == nil {
		return
	}
	session := c.session
	c.session = nil
	c.state = StateIdle

	c.view.ClearLive()
	c.view.EnablePan()

	if c.onMove != nil {
		c.onMove(session.assetID, session.last)
	}
}

// Destroy releases the controller's hold on the view and its callback
// without committing an in-flight gesture. Safe to call twice.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	if c.session != nil {
		c.view.ClearLive()
		c.view.EnablePan()
		c.session = nil
	}
	c.state = StateIdle
	c.onMove = nil
	c.destroyed = true
}
