package editor

import (
	"github.com/philipparndt/gobox/pkg/geometry"
)

// GeometryProvider is the rendering side's ray-casting capability set. The
// editor never touches a rendering library directly.
type GeometryProvider interface {
	// Ray projects a pointer position in normalized device coordinates
	// (-1..1, +y up) into a world-space ray from the current camera.
	Ray(ndc geometry.Vector2) geometry.Ray
	// Intersect returns the nearest of the given pickables hit by the ray.
	Intersect(ray geometry.Ray, targets []Pickable) (Hit, bool)
	// IntersectPlane intersects the ray with an explicit plane.
	IntersectPlane(ray geometry.Ray, plane geometry.Plane) (geometry.Vector3, bool)
	// CameraPosition returns the camera's world position.
	CameraPosition() geometry.Vector3
}

// Pickable pairs a pick target with its world-space hit volume
type Pickable struct {
	Target PickTarget
	Bounds geometry.BoundingBox
}

// Hit is the nearest intersection reported by a GeometryProvider
type Hit struct {
	Target   PickTarget
	Point    geometry.Vector3
	Normal   geometry.Vector3 // World-space normal of the face that was hit
	Distance float64
}
