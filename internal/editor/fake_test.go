package editor

import (
	"testing"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/scene"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns scripted hits and plane points instead of casting rays.
// A scripted hit is reported only when its target is among the pickables the
// editor offers, so pick priority still applies.
type fakeProvider struct {
	camera geometry.Vector3

	hit *Hit

	point   geometry.Vector3
	planeOK bool
	planes  []geometry.Plane
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{camera: geometry.NewVector3(10, 10, 10)}
}

func (f *fakeProvider) Ray(ndc geometry.Vector2) geometry.Ray {
	return geometry.NewRay(f.camera, geometry.NewVector3(ndc.X, ndc.Y, -1))
}

func (f *fakeProvider) Intersect(_ geometry.Ray, targets []Pickable) (Hit, bool) {
	if f.hit == nil {
		return Hit{}, false
	}
	for _, t := range targets {
		if t.Target == f.hit.Target {
			return *f.hit, true
		}
	}
	return Hit{}, false
}

func (f *fakeProvider) IntersectPlane(_ geometry.Ray, plane geometry.Plane) (geometry.Vector3, bool) {
	f.planes = append(f.planes, plane)
	return f.point, f.planeOK
}

func (f *fakeProvider) CameraPosition() geometry.Vector3 {
	return f.camera
}

func (f *fakeProvider) lastPlane() geometry.Plane {
	if len(f.planes) == 0 {
		return geometry.Plane{}
	}
	return f.planes[len(f.planes)-1]
}

// harness drives an editor with pointer gestures in pixel space
type harness struct {
	t *testing.T
	p *fakeProvider
	e *Editor
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	p := newFakeProvider()
	return &harness{t: t, p: p, e: New(p, opts...)}
}

// aim scripts the next Intersect result
func (h *harness) aim(target PickTarget, point, normal geometry.Vector3) {
	h.p.hit = &Hit{Target: target, Point: point, Normal: normal}
}

// aimNothing makes every Intersect miss
func (h *harness) aimNothing() {
	h.p.hit = nil
}

// plane scripts the next IntersectPlane result
func (h *harness) plane(pt geometry.Vector3) {
	h.p.point = pt
	h.p.planeOK = true
}

func (h *harness) down(x, y float64, additive bool) {
	h.e.PointerDown(PointerEvent{Screen: geometry.NewVector2(x, y), Additive: additive})
}

func (h *harness) move(x, y float64) {
	h.e.PointerMove(PointerEvent{Screen: geometry.NewVector2(x, y)})
}

func (h *harness) up(x, y float64) {
	h.e.PointerUp(PointerEvent{Screen: geometry.NewVector2(x, y)})
}

// click presses and releases on the current aim without moving
func (h *harness) click(additive bool) {
	h.down(100, 100, additive)
	h.up(100, 100)
}

// addBox places a box directly into the scene
func (h *harness) addBox(center, size geometry.Vector3) *scene.Box {
	b := scene.NewBox(center, size, scene.DefaultColor)
	h.e.Scene().Add(b)
	return b
}

// selectOnly clicks the given boxes, the first without modifier and the rest additively
func (h *harness) selectOnly(boxes ...*scene.Box) {
	h.t.Helper()
	for i, b := range boxes {
		h.aim(BoxFaceTarget{Box: b.ID}, b.Position, geometry.NewVector3(0, 1, 0))
		h.click(i > 0)
	}
	require.Equal(h.t, len(boxes), h.e.Selection().Len())
	h.aimNothing()
}

// drawBox runs a full ground draw from start to corner with the given height
func (h *harness) drawBox(start, corner geometry.Vector3, height float64) {
	h.aim(GroundTarget{}, start, geometry.NewVector3(0, 1, 0))
	h.down(100, 100, false)
	h.plane(corner)
	h.move(130, 130)
	h.move(140, 140)
	h.up(140, 140)

	h.plane(geometry.NewVector3(corner.X, height, corner.Z))
	h.move(140, 100)
	h.down(140, 100, false)
	h.up(140, 100)
}
