// Package editor is the interaction core of the box editor: picking, drawing,
// moving and resizing boxes on a snapped grid from a stream of pointer events.
//
// The Editor is single-threaded. Pointer and key events must be delivered from
// one goroutine in the order they happened.
package editor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/grid"
	"github.com/philipparndt/gobox/pkg/scene"
)

// PointerEvent is a primary-button pointer sample
type PointerEvent struct {
	Screen   geometry.Vector2 // Pixels, used for the drag threshold
	NDC      geometry.Vector2 // Normalized device coordinates, used for ray casting
	Additive bool            // Modifier held (Ctrl-click toggles selection)
}

// Editor owns the editor state and turns input events into scene edits
type Editor struct {
	provider  GeometryProvider
	log       *slog.Logger
	state     *State
	listeners []func(SelectionChanged)
}

// Option configures an Editor
type Option func(*Editor)

// WithGridUnit sets the initial grid unit
func WithGridUnit(unit float64) Option {
	return func(e *Editor) { e.state.Grid.SetUnit(unit) }
}

// WithColor sets the color for new boxes
func WithColor(c colorful.Color) Option {
	return func(e *Editor) { e.state.Color = c }
}

// WithMode sets the initial edit mode
func WithMode(m Mode) Option {
	return func(e *Editor) { e.state.Mode = m }
}

// WithDragThreshold sets the click-vs-drag distance in pixels
func WithDragThreshold(pixels float64) Option {
	return func(e *Editor) { e.SetDragThreshold(pixels) }
}

// WithLogger sets the logger for interaction events
func WithLogger(log *slog.Logger) Option {
	return func(e *Editor) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an editor with an empty scene
func New(provider GeometryProvider, opts ...Option) *Editor {
	e := &Editor{
		provider: provider,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:    newState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State exposes the editor state for renderers. Callers must treat it as read-only.
func (e *Editor) State() *State {
	return e.state
}

// Scene returns the placed boxes
func (e *Editor) Scene() *scene.Scene {
	return e.state.Scene
}

// Selection returns the current selection
func (e *Editor) Selection() *Selection {
	return e.state.Selection
}

// Mode returns the current edit mode
func (e *Editor) Mode() Mode {
	return e.state.Mode
}

// Grid returns the snap grid
func (e *Editor) Grid() *grid.Grid {
	return e.state.Grid
}

// Color returns the color used for new boxes
func (e *Editor) Color() colorful.Color {
	return e.state.Color
}

// Draw returns a snapshot of the draw session
func (e *Editor) Draw() DrawSession {
	return e.state.Draw
}

// CameraEnabled reports whether camera navigation may use the pointer
func (e *Editor) CameraEnabled() bool {
	return e.state.CameraEnabled
}

// Gizmo describes the move gizmo for the current frame
func (e *Editor) Gizmo() GizmoView {
	st := e.state
	if st.Selection.Len() == 0 || st.Mode != ModeMove {
		return GizmoView{}
	}
	center := st.Selection.Centroid()
	view := GizmoView{
		Visible: true,
		Center:  center,
		Scale:   gizmoScale(e.provider.CameraPosition(), center),
		Hover:   st.Hover,
	}
	if st.Gizmo != nil {
		view.Active = st.Gizmo.Target
	}
	return view
}

// HoveredHandle returns the handle under the pointer in scale mode
func (e *Editor) HoveredHandle() (HandleTarget, bool) {
	h, ok := e.state.Hover.(HandleTarget)
	return h, ok
}

// PointerDown handles a primary-button press
func (e *Editor) PointerDown(ev PointerEvent) {
	st := e.state
	st.Pointer = PointerState{
		Down:     true,
		DownPos:  ev.Screen,
		Additive: ev.Additive,
	}

	// A press during the height phase only confirms the extrusion on release
	if st.Draw.Phase == DrawingHeight {
		st.Pointer.Confirm = true
		return
	}

	e.resolvePress(e.provider.Ray(ev.NDC))
}

// PointerMove handles pointer motion, with or without the button held
func (e *Editor) PointerMove(ev PointerEvent) {
	st := e.state
	ray := e.provider.Ray(ev.NDC)

	if st.Pointer.Pending != nil && !st.Draw.Active() {
		if ev.Screen.Distance(st.Pointer.DownPos) > st.DragThreshold {
			hit := *st.Pointer.Pending
			st.Pointer.Pending = nil
			e.beginDraw(hit)
		}
	}

	switch {
	case st.Gizmo != nil:
		st.Gizmo.update(st, e.provider, ray)
	case st.Scale != nil:
		st.Scale.update(st, e.provider, ray)
	case st.Draw.Phase == DrawingBase:
		st.Draw.moveBase(st, e.provider, ray)
	case st.Draw.Phase == DrawingHeight:
		st.Draw.moveHeight(st, e.provider, ray)
	default:
		e.updateHover(ray)
	}
}

// PointerUp handles a primary-button release. It commits or cancels whatever
// the press started and clears all transient drag state.
func (e *Editor) PointerUp(ev PointerEvent) {
	st := e.state

	if pending := st.Pointer.Pending; pending != nil && !st.Draw.Active() {
		e.click(*pending, st.Pointer.Additive)
	}

	switch st.Draw.Phase {
	case DrawingBase:
		if st.Draw.releaseBase(st) {
			e.log.Debug("draw base accepted", "anchor", st.Draw.Anchor.String())
		} else {
			e.log.Debug("draw cancelled: base smaller than one grid unit")
		}
	case DrawingHeight:
		if st.Pointer.Confirm {
			e.commitDraw()
		}
	}

	st.endDrags()
	st.CameraEnabled = !st.busy()
}

// Cancel aborts any drag or draw and resets every transient field
func (e *Editor) Cancel() {
	st := e.state
	if st.Scale != nil {
		st.Scale.Box.EdgesVisible = st.Scale.Box.Selected
	}
	st.endDrags()
	st.Draw.reset()
	st.Hover = nil
	st.CameraEnabled = true
}

// SetMode switches between scale and move mode. A mode change ends any
// running scale or gizmo drag.
func (e *Editor) SetMode(m Mode) {
	if e.state.Mode != m {
		e.endDrag()
	}
	e.state.Mode = m
	e.refreshVisibility()
}

// ToggleMode flips between scale and move mode
func (e *Editor) ToggleMode() {
	if e.state.Mode == ModeScale {
		e.SetMode(ModeMove)
		return
	}
	e.SetMode(ModeScale)
}

// SetGridUnit changes the snap unit. Placed boxes keep their geometry.
func (e *Editor) SetGridUnit(unit float64) {
	e.state.Grid.SetUnit(unit)
}

// SetDragThreshold changes the click-vs-drag distance. Negative values are ignored.
func (e *Editor) SetDragThreshold(pixels float64) {
	if pixels >= 0 {
		e.state.DragThreshold = pixels
	}
}

// DragThreshold returns the click-vs-drag distance in pixels
func (e *Editor) DragThreshold() float64 {
	return e.state.DragThreshold
}

// SetColor sets the color for new boxes and recolors every selected box
func (e *Editor) SetColor(c colorful.Color) {
	e.state.Color = c
	for _, b := range e.state.Selection.Boxes() {
		b.Color = c
	}
}

// SetDefaultColor sets the color for new boxes without touching the selection
func (e *Editor) SetDefaultColor(c colorful.Color) {
	e.state.Color = c
}

// SetColorHex parses a "#rrggbb" color and applies it like SetColor
func (e *Editor) SetColorHex(hex string) error {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", hex, err)
	}
	e.SetColor(c)
	return nil
}

// Select applies a selection click to box; a nil box with additive false deselects all
func (e *Editor) Select(box *scene.Box, additive bool) {
	e.selectBox(box, additive)
}

// DeleteSelected removes every selected box. An empty selection is a no-op.
func (e *Editor) DeleteSelected() {
	st := e.state
	if st.Selection.Len() == 0 {
		return
	}

	count := st.Selection.Len()
	for _, b := range st.Selection.Boxes() {
		st.Scene.Remove(b)
	}
	e.endDrag()
	e.selectBox(nil, false)
	e.log.Debug("boxes deleted", "count", count)
}

// DuplicateSelected clones every selected box in place and selects the clones
func (e *Editor) DuplicateSelected() {
	st := e.state
	if st.Selection.Len() == 0 {
		return
	}

	e.endDrag()
	clones := make([]*scene.Box, 0, st.Selection.Len())
	for _, b := range st.Selection.Boxes() {
		c := b.Clone()
		st.Scene.Add(c)
		clones = append(clones, c)
	}

	e.selectBox(nil, false)
	for _, c := range clones {
		e.selectBox(c, true)
	}
	e.log.Debug("boxes duplicated", "count", len(clones))
}

// endDrag stops a scale or gizmo drag. Boxes keep the geometry the drag gave them.
func (e *Editor) endDrag() {
	st := e.state
	if !st.dragging() {
		return
	}
	st.Scale = nil
	st.Gizmo = nil
	st.CameraEnabled = !st.busy()
	e.log.Debug("drag ended by edit")
}

// click interprets a press-release that stayed under the drag threshold
func (e *Editor) click(hit Hit, additive bool) {
	switch t := hit.Target.(type) {
	case BoxFaceTarget:
		if box, ok := e.state.Scene.Get(t.Box); ok {
			e.selectBox(box, additive)
		}
	case GroundTarget:
		if !additive {
			e.selectBox(nil, false)
		}
	}
}

// beginDraw promotes a pending hit into a draw session
func (e *Editor) beginDraw(hit Hit) {
	e.selectBox(nil, false)
	e.state.Draw.begin(e.state, hit)
	e.state.CameraEnabled = false
	e.log.Debug("draw started",
		"anchor", e.state.Draw.Anchor.String(),
		"extrude", e.state.Draw.ExtrudeAxis.String(),
		"sign", e.state.Draw.ExtrudeSign)
}

// commitDraw turns the preview into a box when it is large enough
func (e *Editor) commitDraw() {
	box := e.state.Draw.commit(e.state)
	if box == nil {
		e.log.Debug("draw discarded: extrusion smaller than one grid unit")
		return
	}
	e.state.Scene.Add(box)
	e.selectBox(box, false)
	e.log.Debug("box created", "id", box.ID, "position", box.Position.String(), "size", box.Size.String())
}

// selectBox toggles the selection and re-evaluates handle and gizmo visibility
func (e *Editor) selectBox(box *scene.Box, additive bool) {
	if e.state.Selection.Toggle(box, additive) {
		e.refreshVisibility()
		e.notifySelection()
		return
	}
	e.refreshVisibility()
}

// refreshVisibility shows handles only for a single selection in scale mode
func (e *Editor) refreshVisibility() {
	st := e.state
	show := st.Selection.Len() == 1 && st.Mode == ModeScale
	for _, b := range st.Selection.Boxes() {
		b.SetHandlesVisible(show)
	}
	st.Hover = nil
}
