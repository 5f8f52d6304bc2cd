package geometry

import "math"

// Vector2 is a 2D point, used for pointer positions in pixels or
// normalized device coordinates
type Vector2 struct {
	X, Y float64
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Distance returns the distance between two points
func (v Vector2) Distance(other Vector2) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}
