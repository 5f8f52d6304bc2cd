package editor

import (
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/scene"
)

// handlePickRadius is the half-extent of a handle's hit volume
const handlePickRadius = 0.08

// ScaleDrag is an active resize of one box through one of its face handles
type ScaleDrag struct {
	Box    *scene.Box
	Handle int
	Axis   geometry.Axis
	Sign   int

	anchor    geometry.Vector3
	plane     geometry.Plane
	startSize geometry.Vector3
	startPos  geometry.Vector3
}

// handlePickables returns hit volumes for the six handles of box
func handlePickables(box *scene.Box) []Pickable {
	out := make([]Pickable, 0, len(box.Handles))
	for i, h := range box.Handles {
		out = append(out, Pickable{
			Target: HandleTarget{Box: box.ID, Axis: h.Axis, Sign: h.Sign},
			Bounds: geometry.BoxAt(box.HandlePosition(i), geometry.Splat(2*handlePickRadius)),
		})
	}
	return out
}

// beginScaleDrag snapshots the box and builds a camera-facing drag plane
// through the handle. The plane is not constrained to the handle's axis; only
// the axis component of the intersection is read back.
func beginScaleDrag(box *scene.Box, target HandleTarget, camera geometry.Vector3) *ScaleDrag {
	idx := scene.HandleIndex(target.Axis, target.Sign)
	anchor := box.HandlePosition(idx)

	box.EdgesVisible = true
	return &ScaleDrag{
		Box:       box,
		Handle:    idx,
		Axis:      target.Axis,
		Sign:      target.Sign,
		anchor:    anchor,
		plane:     geometry.FacingPlane(camera, anchor),
		startSize: box.Size,
		startPos:  box.Position,
	}
}

// update resizes the box from its pre-drag snapshot. The face opposite the
// handle stays where it was.
func (d *ScaleDrag) update(st *State, p GeometryProvider, ray geometry.Ray) {
	pt, ok := p.IntersectPlane(ray, d.plane)
	if !ok {
		return
	}
	delta := st.Grid.Snap(pt.Component(d.Axis) - d.anchor.Component(d.Axis))
	d.apply(st, delta)
}

// apply resizes by an already snapped delta
func (d *ScaleDrag) apply(st *State, delta float64) {
	startSize := d.startSize.Component(d.Axis)
	startPos := d.startPos.Component(d.Axis)

	var size, pos float64
	if d.Sign > 0 {
		size = st.Grid.Clamp(startSize + delta)
		pos = startPos + (size-startSize)/2
	} else {
		size = st.Grid.Clamp(startSize - delta)
		pos = startPos - (size-startSize)/2
	}
	d.Box.Resize(d.Axis, size, pos)
}
