// Package grid quantizes coordinates to a configurable grid unit.
package grid

import (
	"math"

	"github.com/philipparndt/gobox/pkg/geometry"
)

// DefaultUnit is the grid unit used when none (or an invalid one) is configured
const DefaultUnit = 0.5

// Grid snaps scalar coordinates to multiples of Unit
type Grid struct {
	Unit float64
}

// New creates a grid with the given unit, falling back to DefaultUnit for
// non-positive or non-finite values
func New(unit float64) *Grid {
	g := &Grid{}
	g.SetUnit(unit)
	return g
}

// SetUnit changes the grid unit. Already placed geometry is not re-snapped.
func (g *Grid) SetUnit(unit float64) {
	if !Valid(unit) {
		unit = DefaultUnit
	}
	g.Unit = unit
}

// Valid reports whether unit can be used as a grid unit
func Valid(unit float64) bool {
	return unit > 0 && !math.IsInf(unit, 0) && !math.IsNaN(unit)
}

// Snap rounds value to the nearest multiple of the grid unit
func (g *Grid) Snap(value float64) float64 {
	return math.Round(value/g.Unit) * g.Unit
}

// SnapVector snaps each component independently
func (g *Grid) SnapVector(v geometry.Vector3) geometry.Vector3 {
	return geometry.Vector3{
		X: g.Snap(v.X),
		Y: g.Snap(v.Y),
		Z: g.Snap(v.Z),
	}
}

// Clamp returns value, raised to at least one grid unit
func (g *Grid) Clamp(value float64) float64 {
	return math.Max(g.Unit, value)
}

// reachEpsilon absorbs float error in differences of snapped coordinates
const reachEpsilon = 1e-9

// Reaches reports whether a length spans at least one grid unit
func (g *Grid) Reaches(length float64) bool {
	return length >= g.Unit*(1-reachEpsilon)
}
