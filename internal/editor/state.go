package editor

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/grid"
	"github.com/philipparndt/gobox/pkg/scene"
)

// Mode is the edit mode that decides whether handles or the move gizmo show
type Mode int

const (
	ModeScale Mode = iota
	ModeMove
)

// String returns the mode name
func (m Mode) String() string {
	if m == ModeMove {
		return "move"
	}
	return "scale"
}

// ParseMode parses "scale" or "move"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scale":
		return ModeScale, nil
	case "move":
		return ModeMove, nil
	}
	return ModeScale, fmt.Errorf("unknown mode %q (want scale or move)", s)
}

// DefaultDragThreshold is how far, in pixels, the pointer may travel before a
// click becomes a drag
const DefaultDragThreshold = 5.0

// State is the editor's single mutable state object. Every interaction
// component reads and writes it; nothing lives in package-level variables.
type State struct {
	Mode          Mode
	Color         colorful.Color // Color for new boxes
	Grid          *grid.Grid
	DragThreshold float64

	Scene     *scene.Scene
	Selection *Selection

	// CameraEnabled is false while any drag, draw or pending hit owns the pointer
	CameraEnabled bool

	Pointer PointerState
	Scale   *ScaleDrag
	Gizmo   *GizmoDrag
	Draw    DrawSession
	Hover   PickTarget
}

// PointerState tracks the current press for click-vs-drag detection
type PointerState struct {
	Down     bool
	DownPos  geometry.Vector2
	Additive bool
	Pending  *Hit // Recorded hit whose meaning is not decided yet
	Confirm  bool // Press that will commit the height of a draw on release
}

func newState() *State {
	return &State{
		Mode:          ModeScale,
		Color:         scene.DefaultColor,
		Grid:          grid.New(grid.DefaultUnit),
		DragThreshold: DefaultDragThreshold,
		Scene:         scene.New(),
		Selection:     NewSelection(),
		CameraEnabled: true,
	}
}

// dragging reports whether a scale or gizmo drag owns the pointer
func (s *State) dragging() bool {
	return s.Scale != nil || s.Gizmo != nil
}

// busy reports whether any session is active
func (s *State) busy() bool {
	return s.dragging() || s.Draw.Active()
}

// endDrags clears all transient drag state
func (s *State) endDrags() {
	s.Scale = nil
	s.Gizmo = nil
	s.Pointer = PointerState{}
}
