package editor

import (
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/scene"
)

// PickTarget is the closed set of things a pointer ray can hit:
// GroundTarget, BoxFaceTarget, HandleTarget, GizmoArrowTarget and GizmoPlaneTarget.
type PickTarget interface {
	pickTarget()
}

// GroundTarget is the ground plane at y=0
type GroundTarget struct{}

// BoxFaceTarget is any face of a placed box
type BoxFaceTarget struct {
	Box scene.BoxID
}

// HandleTarget is one of the scale handles of a box
type HandleTarget struct {
	Box  scene.BoxID
	Axis geometry.Axis
	Sign int
}

// GizmoArrowTarget is a single-axis move arrow
type GizmoArrowTarget struct {
	Axis geometry.Axis
}

// GizmoPlaneTarget is a two-axis move quad
type GizmoPlaneTarget struct {
	Plane geometry.AxisPair
}

func (GroundTarget) pickTarget()     {}
func (BoxFaceTarget) pickTarget()    {}
func (HandleTarget) pickTarget()     {}
func (GizmoArrowTarget) pickTarget() {}
func (GizmoPlaneTarget) pickTarget() {}
