package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that any Extend will overwrite
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// BoxAt creates a bounding box from a center and full size
func BoxAt(center, size Vector3) BoundingBox {
	half := size.Mul(0.5)
	return BoundingBox{Min: center.Sub(half), Max: center.Add(half)}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// Contains reports whether the point lies inside or on the box
func (b BoundingBox) Contains(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectRay runs a slab test against the box. It returns the distance along
// the ray to the first surface hit and the outward normal of the face that was
// hit. A ray starting inside the box reports the exit face.
func (b BoundingBox) IntersectRay(r Ray) (float64, Vector3, bool) {
	if r.Direction == (Vector3{}) {
		return 0, Vector3{}, false
	}

	tNear := math.Inf(-1)
	tFar := math.Inf(1)
	var nearAxis, farAxis Axis
	nearSign, farSign := 1.0, 1.0

	for _, axis := range Axes {
		origin := r.Origin.Component(axis)
		dir := r.Direction.Component(axis)
		lo := b.Min.Component(axis)
		hi := b.Max.Component(axis)

		if math.Abs(dir) < 1e-12 {
			// Parallel to this slab: miss unless the origin is between the planes
			if origin < lo || origin > hi {
				return 0, Vector3{}, false
			}
			continue
		}

		// Moving towards +axis enters through the min plane, whose normal is -axis
		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		enterSign := -1.0
		if dir < 0 {
			t1, t2 = t2, t1
			enterSign = 1.0
		}
		if t1 > tNear {
			tNear = t1
			nearAxis = axis
			nearSign = enterSign
		}
		if t2 < tFar {
			tFar = t2
			farAxis = axis
			farSign = -enterSign
		}
		if tNear > tFar {
			return 0, Vector3{}, false
		}
	}

	if tFar < 0 {
		return 0, Vector3{}, false
	}
	if tNear >= 0 {
		return tNear, nearAxis.Unit().Mul(nearSign), true
	}
	return tFar, farAxis.Unit().Mul(farSign), true
}
