// Package scene holds the boxes placed in the editor.
package scene

import (
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gobox/pkg/geometry"
)

// BoxID identifies a placed box
type BoxID = uuid.UUID

const (
	// OpacityNormal is the render opacity of an unselected box
	OpacityNormal = 1.0
	// OpacitySelected is the reduced opacity of a selected box
	OpacitySelected = 0.5
)

// DefaultColor is the color of new boxes until the user picks another one
var DefaultColor = colorful.Color{R: 1, G: 1, B: 1}

// Handle is a per-face scale control
type Handle struct {
	Axis    geometry.Axis
	Sign    int // +1 or -1
	Visible bool
}

// handleLayout is the fixed face order: +x, -x, +y, -y, +z, -z
var handleLayout = [6]Handle{
	{Axis: geometry.AxisX, Sign: 1},
	{Axis: geometry.AxisX, Sign: -1},
	{Axis: geometry.AxisY, Sign: 1},
	{Axis: geometry.AxisY, Sign: -1},
	{Axis: geometry.AxisZ, Sign: 1},
	{Axis: geometry.AxisZ, Sign: -1},
}

// Box is an axis-aligned box placed in the scene
type Box struct {
	ID       BoxID
	Position geometry.Vector3 // Center
	Size     geometry.Vector3 // Full extents, each component > 0
	Color    colorful.Color

	// Render flags
	Selected     bool
	Opacity      float64
	EdgesVisible bool
	Handles      [6]Handle
}

// NewBox creates an unselected box centered at position
func NewBox(position, size geometry.Vector3, color colorful.Color) *Box {
	return &Box{
		ID:       uuid.New(),
		Position: position,
		Size:     size,
		Color:    color,
		Opacity:  OpacityNormal,
		Handles:  handleLayout,
	}
}

// Clone returns a new box with the same transform and color and fresh render flags
func (b *Box) Clone() *Box {
	return NewBox(b.Position, b.Size, b.Color)
}

// Bounds returns the world-space bounding box
func (b *Box) Bounds() geometry.BoundingBox {
	return geometry.BoxAt(b.Position, b.Size)
}

// HandleIndex returns the index of the handle for the given face
func HandleIndex(axis geometry.Axis, sign int) int {
	i := int(axis) * 2
	if sign < 0 {
		i++
	}
	return i
}

// HandlePosition returns the center of the face the handle sits on
func (b *Box) HandlePosition(i int) geometry.Vector3 {
	h := b.Handles[i]
	offset := float64(h.Sign) * b.Size.Component(h.Axis) / 2
	return b.Position.WithComponent(h.Axis, b.Position.Component(h.Axis)+offset)
}

// FacePosition returns the coordinate of the face on the given side along axis
func (b *Box) FacePosition(axis geometry.Axis, sign int) float64 {
	return b.Position.Component(axis) + float64(sign)*b.Size.Component(axis)/2
}

// Resize sets size and position along one axis together
func (b *Box) Resize(axis geometry.Axis, size, position float64) {
	b.Size = b.Size.WithComponent(axis, size)
	b.Position = b.Position.WithComponent(axis, position)
}

// SetHandlesVisible shows or hides all six handles
func (b *Box) SetHandlesVisible(visible bool) {
	for i := range b.Handles {
		b.Handles[i].Visible = visible
	}
}

// SetSelected updates the selection flag and the visuals that go with it
func (b *Box) SetSelected(selected bool) {
	b.Selected = selected
	b.EdgesVisible = selected
	if selected {
		b.Opacity = OpacitySelected
		return
	}
	b.Opacity = OpacityNormal
	b.SetHandlesVisible(false)
}
