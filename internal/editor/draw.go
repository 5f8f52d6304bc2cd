package editor

import (
	"math"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/scene"
)

// DrawPhase is the state of the create-by-drag workflow
type DrawPhase int

const (
	DrawIdle DrawPhase = iota
	DrawingBase
	DrawingHeight
)

// String returns the phase name
func (p DrawPhase) String() string {
	switch p {
	case DrawingBase:
		return "base"
	case DrawingHeight:
		return "height"
	}
	return "idle"
}

// GuideKind selects which base-drawing guide is shown
type GuideKind int

const (
	GuideNone GuideKind = iota
	GuideMarker
	GuideLine
	GuideRect
)

const (
	previewThickness = 0.05
	previewStartSize = 0.01
	guideOffset      = 0.02 // Lifts guides off the surface being drawn on
)

// Preview is the uncommitted box shown while drawing
type Preview struct {
	Visible  bool
	Position geometry.Vector3
	Size     geometry.Vector3
}

// DrawSession is the base-then-height box drawing state machine:
// Idle -> DrawingBase -> DrawingHeight -> Idle, or any -> Idle on cancel.
type DrawSession struct {
	Phase       DrawPhase
	Anchor      geometry.Vector3 // Snapped start point; base of the extrusion in DrawingHeight
	FaceNormal  geometry.Vector3 // Cardinal normal of the surface drawn on
	Axis1       geometry.Axis
	Axis2       geometry.Axis
	ExtrudeAxis geometry.Axis
	ExtrudeSign int

	Preview Preview

	// Guides for the base phase
	Guide  GuideKind
	Marker geometry.Vector3
	Line   [2]geometry.Vector3
	Rect   [4]geometry.Vector3
}

// Active reports whether a draw is in progress
func (d *DrawSession) Active() bool {
	return d.Phase != DrawIdle
}

// inPlaneAxes returns the two drawing axes for a surface facing along extrude
func inPlaneAxes(extrude geometry.Axis) (geometry.Axis, geometry.Axis) {
	switch extrude {
	case geometry.AxisY:
		return geometry.AxisX, geometry.AxisZ
	case geometry.AxisX:
		return geometry.AxisZ, geometry.AxisY
	default:
		return geometry.AxisX, geometry.AxisY
	}
}

// begin starts the base phase from a promoted pending hit
func (d *DrawSession) begin(st *State, hit Hit) {
	normal := geometry.NewVector3(0, 1, 0)
	if _, ok := hit.Target.(BoxFaceTarget); ok {
		normal = hit.Normal
	}
	axis, sign := normal.DominantAxis()
	axis1, axis2 := inPlaneAxes(axis)
	anchor := st.Grid.SnapVector(hit.Point)

	*d = DrawSession{
		Phase:       DrawingBase,
		Anchor:      anchor,
		FaceNormal:  axis.Unit().Mul(float64(sign)),
		Axis1:       axis1,
		Axis2:       axis2,
		ExtrudeAxis: axis,
		ExtrudeSign: sign,
		Preview: Preview{
			Position: anchor,
			Size:     geometry.Splat(previewStartSize),
		},
	}
}

// moveBase updates the base rectangle from the pointer ray
func (d *DrawSession) moveBase(st *State, p GeometryProvider, ray geometry.Ray) {
	plane := geometry.PlaneFromNormalAndPoint(d.FaceNormal, d.Anchor)
	pt, ok := p.IntersectPlane(ray, plane)
	if !ok {
		return
	}
	pt = st.Grid.SnapVector(pt)

	a1, a2, e := d.Axis1, d.Axis2, d.ExtrudeAxis
	min1 := math.Min(d.Anchor.Component(a1), pt.Component(a1))
	max1 := math.Max(d.Anchor.Component(a1), pt.Component(a1))
	min2 := math.Min(d.Anchor.Component(a2), pt.Component(a2))
	max2 := math.Max(d.Anchor.Component(a2), pt.Component(a2))
	size1 := max1 - min1
	size2 := max2 - min2

	offset := float64(d.ExtrudeSign) * guideOffset
	guide := d.Anchor.WithComponent(e, d.Anchor.Component(e)+offset)
	d.Marker = guide

	corner := func(v1, v2 float64) geometry.Vector3 {
		return guide.WithComponent(a1, v1).WithComponent(a2, v2)
	}

	has1 := st.Grid.Reaches(size1)
	has2 := st.Grid.Reaches(size2)

	switch {
	case has1 && has2:
		d.Guide = GuideRect
		d.Rect = [4]geometry.Vector3{
			corner(min1, min2),
			corner(max1, min2),
			corner(max1, max2),
			corner(min1, max2),
		}
		d.Preview.Visible = true
		d.Preview.Size = geometry.Splat(previewThickness).
			WithComponent(a1, size1).
			WithComponent(a2, size2)
		d.Preview.Position = geometry.Vector3{}.
			WithComponent(a1, min1+size1/2).
			WithComponent(a2, min2+size2/2).
			WithComponent(e, d.Anchor.Component(e)+float64(d.ExtrudeSign)*previewThickness/2)
	case has1 || has2:
		d.Guide = GuideLine
		d.Line = [2]geometry.Vector3{guide, corner(pt.Component(a1), pt.Component(a2))}
		d.Preview.Visible = false
	default:
		d.Guide = GuideMarker
		d.Preview.Visible = false
	}
}

// releaseBase ends the base phase. A valid rectangle moves on to the height
// phase anchored at the rectangle's base; anything else cancels.
func (d *DrawSession) releaseBase(st *State) bool {
	d.Guide = GuideNone

	size := d.Preview.Size
	if !d.Preview.Visible || !st.Grid.Reaches(size.Component(d.Axis1)) || !st.Grid.Reaches(size.Component(d.Axis2)) {
		d.reset()
		return false
	}

	e := d.ExtrudeAxis
	pos := d.Preview.Position
	d.Phase = DrawingHeight
	d.Anchor = pos.WithComponent(e, pos.Component(e)-float64(d.ExtrudeSign)*size.Component(e)/2)
	return true
}

// moveHeight extrudes the preview away from its base face
func (d *DrawSession) moveHeight(st *State, p GeometryProvider, ray geometry.Ray) {
	plane := geometry.FacingPlane(p.CameraPosition(), d.Preview.Position)
	pt, ok := p.IntersectPlane(ray, plane)
	if !ok {
		return
	}

	e := d.ExtrudeAxis
	sign := float64(d.ExtrudeSign)
	amount := st.Grid.Clamp(st.Grid.Snap(sign * (pt.Component(e) - d.Anchor.Component(e))))
	d.extrude(amount)
}

// extrude sets the preview height keeping the anchor face fixed
func (d *DrawSession) extrude(amount float64) {
	e := d.ExtrudeAxis
	d.Preview.Size = d.Preview.Size.WithComponent(e, amount)
	d.Preview.Position = d.Preview.Position.WithComponent(e, d.Anchor.Component(e)+float64(d.ExtrudeSign)*amount/2)
}

// commit ends the height phase. It returns the new box, or nil when the
// preview never reached one grid unit in every dimension.
func (d *DrawSession) commit(st *State) *scene.Box {
	defer d.reset()

	size := d.Preview.Size
	for _, axis := range geometry.Axes {
		if !st.Grid.Reaches(size.Component(axis)) {
			return nil
		}
	}
	return scene.NewBox(d.Preview.Position, size, st.Color)
}

// reset returns to Idle and drops the preview and guides
func (d *DrawSession) reset() {
	*d = DrawSession{}
}
