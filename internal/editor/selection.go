package editor

import (
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/scene"
	"github.com/samber/lo"
)

// Selection is the ordered set of selected boxes. The last one added is primary.
type Selection struct {
	boxes []*scene.Box
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{boxes: make([]*scene.Box, 0)}
}

// Toggle applies a click to the selection.
// Without additive the selection is cleared first; a nil box then just deselects.
// An additive click on a member removes it, anything else appends and becomes primary.
// It reports whether membership changed.
func (s *Selection) Toggle(box *scene.Box, additive bool) bool {
	changed := false
	if !additive && len(s.boxes) > 0 {
		s.Clear()
		changed = true
	}
	if box == nil {
		return changed
	}

	if idx := lo.IndexOf(s.boxes, box); idx >= 0 {
		if additive {
			s.boxes = append(s.boxes[:idx], s.boxes[idx+1:]...)
			box.SetSelected(false)
			return true
		}
		return changed
	}

	s.boxes = append(s.boxes, box)
	box.SetSelected(true)
	return true
}

// Clear deselects everything
func (s *Selection) Clear() {
	for _, b := range s.boxes {
		b.SetSelected(false)
	}
	s.boxes = s.boxes[:0]
}

// Contains reports whether box is selected
func (s *Selection) Contains(box *scene.Box) bool {
	return lo.Contains(s.boxes, box)
}

// Len returns the number of selected boxes
func (s *Selection) Len() int {
	return len(s.boxes)
}

// Primary returns the most recently added box, or nil when empty
func (s *Selection) Primary() *scene.Box {
	if len(s.boxes) == 0 {
		return nil
	}
	return s.boxes[len(s.boxes)-1]
}

// Boxes returns the selected boxes in selection order. The slice must not be modified.
func (s *Selection) Boxes() []*scene.Box {
	return s.boxes
}

// Centroid returns the mean position of the selected boxes
func (s *Selection) Centroid() geometry.Vector3 {
	if len(s.boxes) == 0 {
		return geometry.Vector3{}
	}
	sum := lo.Reduce(s.boxes, func(acc geometry.Vector3, b *scene.Box, _ int) geometry.Vector3 {
		return acc.Add(b.Position)
	}, geometry.Vector3{})
	return sum.Mul(1 / float64(len(s.boxes)))
}

// Positions snapshots the position of every selected box, in order
func (s *Selection) Positions() []geometry.Vector3 {
	return lo.Map(s.boxes, func(b *scene.Box, _ int) geometry.Vector3 {
		return b.Position
	})
}
