package editor

import (
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/scene"
	"github.com/samber/lo"
)

// groundExtent is the half-size of the pickable ground square at y=0
const groundExtent = 50.0

// groundPickable is the flat pick volume of the ground plane
var groundPickable = Pickable{
	Target: GroundTarget{},
	Bounds: geometry.BoundingBox{
		Min: geometry.NewVector3(-groundExtent, 0, -groundExtent),
		Max: geometry.NewVector3(groundExtent, 0, groundExtent),
	},
}

// scenePickables returns the ground followed by every placed box
func scenePickables(st *State) []Pickable {
	out := []Pickable{groundPickable}
	return append(out, lo.Map(st.Scene.Boxes(), func(b *scene.Box, _ int) Pickable {
		return Pickable{Target: BoxFaceTarget{Box: b.ID}, Bounds: b.Bounds()}
	})...)
}

// handlesPickable reports whether the handles of the single selected box take part in picking
func handlesPickable(st *State) bool {
	return st.Selection.Len() == 1 && st.Mode == ModeScale && !st.Draw.Active()
}

// gizmoPickable reports whether the move gizmo takes part in picking
func gizmoPickable(st *State) bool {
	return st.Selection.Len() > 0 && st.Mode == ModeMove && !st.Draw.Active()
}

// resolvePress classifies a pointer press. In priority order it may start a
// scale drag on a handle, start a gizmo drag, or record a pending hit on the
// ground or a box. A miss at one level falls through to the next.
func (e *Editor) resolvePress(ray geometry.Ray) {
	st := e.state

	if handlesPickable(st) {
		box := st.Selection.Primary()
		if hit, ok := e.provider.Intersect(ray, handlePickables(box)); ok {
			if target, ok := hit.Target.(HandleTarget); ok {
				st.Scale = beginScaleDrag(box, target, e.provider.CameraPosition())
				st.CameraEnabled = false
				e.log.Debug("scale drag started", "axis", target.Axis.String(), "sign", target.Sign)
				return
			}
		}
	}

	if gizmoPickable(st) {
		center := st.Selection.Centroid()
		scale := gizmoScale(e.provider.CameraPosition(), center)
		if hit, ok := e.provider.Intersect(ray, gizmoPickables(center, scale)); ok {
			if drag := beginGizmoDrag(st, e.provider, ray, hit.Target); drag != nil {
				st.Gizmo = drag
				st.CameraEnabled = false
				e.log.Debug("gizmo drag started", "boxes", st.Selection.Len())
				return
			}
		}
	}

	if st.Draw.Active() {
		return
	}
	if hit, ok := e.provider.Intersect(ray, scenePickables(st)); ok {
		st.Pointer.Pending = &hit
		st.CameraEnabled = false
	}
}

// updateHover records which gizmo part or handle is under the pointer
func (e *Editor) updateHover(ray geometry.Ray) {
	st := e.state
	st.Hover = nil

	var targets []Pickable
	switch {
	case gizmoPickable(st):
		center := st.Selection.Centroid()
		targets = gizmoPickables(center, gizmoScale(e.provider.CameraPosition(), center))
	case handlesPickable(st):
		targets = handlePickables(st.Selection.Primary())
	default:
		return
	}

	if hit, ok := e.provider.Intersect(ray, targets); ok {
		st.Hover = hit.Target
	}
}
