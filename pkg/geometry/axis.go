package geometry

// Axis identifies one of the three cardinal world axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the cardinal axes in order
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// String returns the lowercase axis name
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Unit returns the unit vector along the axis
func (a Axis) Unit() Vector3 {
	return Vector3{}.WithComponent(a, 1)
}

// AxisPair names a two-axis plane. The plane's normal is the omitted axis.
type AxisPair int

const (
	PlaneXY AxisPair = iota
	PlaneXZ
	PlaneYZ
)

// AxisPairs lists the three planes in order
var AxisPairs = [3]AxisPair{PlaneXY, PlaneXZ, PlaneYZ}

// Axes returns the two in-plane axes
func (p AxisPair) Axes() [2]Axis {
	switch p {
	case PlaneXY:
		return [2]Axis{AxisX, AxisY}
	case PlaneXZ:
		return [2]Axis{AxisX, AxisZ}
	default:
		return [2]Axis{AxisY, AxisZ}
	}
}

// Normal returns the axis the pair omits
func (p AxisPair) Normal() Axis {
	switch p {
	case PlaneXY:
		return AxisZ
	case PlaneXZ:
		return AxisY
	default:
		return AxisX
	}
}

// String returns the pair name, e.g. "xz"
func (p AxisPair) String() string {
	axes := p.Axes()
	return axes[0].String() + axes[1].String()
}
