package scene

import (
	"github.com/samber/lo"
)

// Scene is the ordered list of placed boxes. Contents live in memory only.
type Scene struct {
	boxes []*Box
	byID  map[BoxID]*Box
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		boxes: make([]*Box, 0),
		byID:  make(map[BoxID]*Box),
	}
}

// Add appends a box. Adding a box twice is a no-op.
func (s *Scene) Add(b *Box) {
	if _, exists := s.byID[b.ID]; exists {
		return
	}
	s.boxes = append(s.boxes, b)
	s.byID[b.ID] = b
}

// Remove deletes a box and reports whether it was present
func (s *Scene) Remove(b *Box) bool {
	if _, exists := s.byID[b.ID]; !exists {
		return false
	}
	delete(s.byID, b.ID)
	s.boxes = lo.Without(s.boxes, b)
	return true
}

// Get looks up a box by ID
func (s *Scene) Get(id BoxID) (*Box, bool) {
	b, ok := s.byID[id]
	return b, ok
}

// Boxes returns the boxes in insertion order. The slice must not be modified.
func (s *Scene) Boxes() []*Box {
	return s.boxes
}

// Len returns the number of boxes
func (s *Scene) Len() int {
	return len(s.boxes)
}
