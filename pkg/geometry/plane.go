package geometry

import "math"

// planeEpsilon is the smallest |normal . direction| treated as non-parallel
const planeEpsilon = 1e-9

// Plane is the set of points p with Normal.Dot(p) + Constant == 0
type Plane struct {
	Normal   Vector3
	Constant float64
}

// PlaneFromNormalAndPoint builds a plane with the given normal passing
// through point. The normal is normalized.
func PlaneFromNormalAndPoint(normal, point Vector3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Constant: -n.Dot(point)}
}

// FacingPlane builds a plane through point whose normal points from point
// towards the viewer
func FacingPlane(viewer, point Vector3) Plane {
	return PlaneFromNormalAndPoint(viewer.Sub(point), point)
}

// DistanceToPoint returns the signed distance from the plane to p
func (pl Plane) DistanceToPoint(p Vector3) float64 {
	return pl.Normal.Dot(p) + pl.Constant
}

// IntersectRay returns where the ray crosses the plane. Rays parallel to the
// plane or pointing away from it miss, except a parallel ray lying in the plane
// which reports its origin.
func (pl Plane) IntersectRay(r Ray) (Vector3, bool) {
	if pl.Normal == (Vector3{}) {
		return Vector3{}, false
	}

	denom := pl.Normal.Dot(r.Direction)
	if math.Abs(denom) < planeEpsilon {
		if math.Abs(pl.DistanceToPoint(r.Origin)) < planeEpsilon {
			return r.Origin, true
		}
		return Vector3{}, false
	}

	t := -(r.Origin.Dot(pl.Normal) + pl.Constant) / denom
	if t < 0 {
		return Vector3{}, false
	}
	return r.At(t), true
}
