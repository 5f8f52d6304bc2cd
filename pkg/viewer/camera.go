// Package viewer provides the orbit camera used to view and pick in the scene.
package viewer

import (
	"math"

	"github.com/philipparndt/gobox/pkg/geometry"
)

// Camera is an orbit camera looking at Target from Distance along two angles
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Vertical field of view in radians
	Distance  float64
	RotationX float64 // Elevation above the ground plane
	RotationY float64 // Heading around the Y axis
}

const (
	minDistance = 0.5
	maxDistance = 500.0
)

// NewCamera creates a camera orbiting target at the given distance, looking
// down at the ground from a three-quarter angle
func NewCamera(target geometry.Vector3, distance float64) *Camera {
	c := &Camera{
		Target:    target,
		Up:        geometry.NewVector3(0, 1, 0),
		FOV:       math.Pi / 4, // 45 degrees
		Distance:  distance,
		RotationX: math.Pi / 6,
		RotationY: math.Pi / 4,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	// Calculate position based on spherical coordinates
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	c.Distance = math.Max(minDistance, math.Min(maxDistance, c.Distance))
	c.UpdatePosition()
}

// Pan moves the target in the camera's screen plane. Offsets are fractions of the distance.
func (c *Camera) Pan(dx, dy float64) {
	_, right, up := c.basis()
	offset := right.Mul(-dx * c.Distance).Add(up.Mul(dy * c.Distance))
	c.Target = c.Target.Add(offset)
	c.UpdatePosition()
}

// basis returns the camera's forward, right and up vectors
func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project projects a 3D point to 2D screen coordinates
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	// Perspective projection
	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// RayFromNDC builds a world ray through a point in normalized device
// coordinates (-1..1, +y up) for a viewport with the given aspect ratio
func (c *Camera) RayFromNDC(ndc geometry.Vector2, aspect float64) geometry.Ray {
	forward, right, up := c.basis()
	fovScale := math.Tan(c.FOV / 2)

	dir := forward.
		Add(right.Mul(ndc.X * fovScale * aspect)).
		Add(up.Mul(ndc.Y * fovScale))
	return geometry.NewRay(c.Position, dir)
}

// ToNDC converts screen pixels to normalized device coordinates
func ToNDC(screenX, screenY, width, height float64) geometry.Vector2 {
	return geometry.Vector2{
		X: (2.0 * screenX / width) - 1.0,
		Y: 1.0 - (2.0 * screenY / height),
	}
}

// Unproject converts 2D screen coordinates back to a 3D ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) geometry.Ray {
	return c.RayFromNDC(ToNDC(screenX, screenY, width, height), width/height)
}
