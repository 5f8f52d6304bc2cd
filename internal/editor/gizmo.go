package editor

import (
	"github.com/philipparndt/gobox/pkg/geometry"
)

// Gizmo dimensions in gizmo-local units, multiplied by the screen-size scale
const (
	gizmoScalePerDistance = 0.08
	gizmoArrowLength      = 1.5
	gizmoArrowRadius      = 0.08
	gizmoConeRadius       = 0.12
	gizmoConeLength       = 0.3
	gizmoPlaneSize        = 0.3
	gizmoPlaneOffset      = 0.15
)

// GizmoView describes the move gizmo for renderers
type GizmoView struct {
	Visible bool
	Center  geometry.Vector3
	Scale   float64
	Hover   PickTarget // Hovered arrow or plane, nil if none
	Active  PickTarget // Arrow or plane being dragged, nil if none
}

// GizmoDrag is an active move of the whole selection along one or two axes
type GizmoDrag struct {
	Target PickTarget // GizmoArrowTarget or GizmoPlaneTarget
	axes   []geometry.Axis

	anchor         geometry.Vector3
	plane          geometry.Plane
	startPositions []geometry.Vector3
}

// gizmoScale keeps the gizmo roughly constant on screen
func gizmoScale(camera, center geometry.Vector3) float64 {
	return camera.Distance(center) * gizmoScalePerDistance
}

// gizmoPickables returns hit volumes for the three arrows and three plane quads
func gizmoPickables(center geometry.Vector3, scale float64) []Pickable {
	out := make([]Pickable, 0, 9)

	for _, axis := range geometry.Axes {
		dir := axis.Unit()
		shaft := geometry.Splat(2 * gizmoArrowRadius * scale).WithComponent(axis, gizmoArrowLength*scale)
		cone := geometry.Splat(2 * gizmoConeRadius * scale).WithComponent(axis, gizmoConeLength*scale)

		out = append(out,
			Pickable{
				Target: GizmoArrowTarget{Axis: axis},
				Bounds: geometry.BoxAt(center.Add(dir.Mul(gizmoArrowLength*scale/2)), shaft),
			},
			Pickable{
				Target: GizmoArrowTarget{Axis: axis},
				Bounds: geometry.BoxAt(center.Add(dir.Mul(gizmoArrowLength*scale)), cone),
			},
		)
	}

	for _, pair := range geometry.AxisPairs {
		axes := pair.Axes()
		offset := axes[0].Unit().Add(axes[1].Unit()).Mul(gizmoPlaneOffset * scale)
		size := geometry.Vector3{}.
			WithComponent(axes[0], gizmoPlaneSize*scale).
			WithComponent(axes[1], gizmoPlaneSize*scale)

		out = append(out, Pickable{
			Target: GizmoPlaneTarget{Plane: pair},
			Bounds: geometry.BoxAt(center.Add(offset), size),
		})
	}
	return out
}

// beginGizmoDrag snapshots every selected position and builds the drag plane.
// Arrows drag on a camera-facing plane through the centroid; plane quads drag
// on the true axis-aligned plane whose normal is the omitted axis.
func beginGizmoDrag(st *State, p GeometryProvider, ray geometry.Ray, target PickTarget) *GizmoDrag {
	center := st.Selection.Centroid()
	d := &GizmoDrag{
		Target:         target,
		startPositions: st.Selection.Positions(),
	}

	switch t := target.(type) {
	case GizmoArrowTarget:
		d.axes = []geometry.Axis{t.Axis}
		d.plane = geometry.FacingPlane(p.CameraPosition(), center)
	case GizmoPlaneTarget:
		axes := t.Plane.Axes()
		d.axes = axes[:]
		d.plane = geometry.PlaneFromNormalAndPoint(t.Plane.Normal().Unit(), center)
	default:
		return nil
	}

	d.anchor = center
	if pt, ok := p.IntersectPlane(ray, d.plane); ok {
		d.anchor = pt
	}

	for _, b := range st.Selection.Boxes() {
		b.EdgesVisible = true
	}
	return d
}

// update moves every selected box from its snapshot by the snapped delta
func (d *GizmoDrag) update(st *State, p GeometryProvider, ray geometry.Ray) {
	pt, ok := p.IntersectPlane(ray, d.plane)
	if !ok {
		return
	}

	delta := geometry.Vector3{}
	for _, axis := range d.axes {
		delta = delta.WithComponent(axis, st.Grid.Snap(pt.Component(axis)-d.anchor.Component(axis)))
	}
	d.apply(st, delta)
}

// apply offsets each box's pre-drag position by delta, so relative offsets
// between selected boxes never drift
func (d *GizmoDrag) apply(st *State, delta geometry.Vector3) {
	for i, b := range st.Selection.Boxes() {
		if i >= len(d.startPositions) {
			break
		}
		b.Position = d.startPositions[i].Add(delta)
	}
}
