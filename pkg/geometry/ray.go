package geometry

// Ray is a half-line starting at Origin. Direction is expected to be normalized.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray and normalizes its direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// RayThrough creates a ray from origin aimed at target
func RayThrough(origin, target Vector3) Ray {
	return NewRay(origin, target.Sub(origin))
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
