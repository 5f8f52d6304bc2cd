package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gobox/pkg/viewer"
	"github.com/philipparndt/gobox/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	orbit         *viewer.Camera // Source of truth for position and picking rays
	defaultDist   float64        // Default camera distance (for reset)
	defaultAngleX float64        // Default camera angle X (for reset)
	defaultAngleY float64        // Default camera angle Y (for reset)
}

// InteractionState holds mouse state that belongs to camera navigation
type InteractionState struct {
	orbiting     bool // Left drag that the editor did not claim
	panning      bool
	lastMousePos rl.Vector2
}

// ConfigWatchState holds config file hot reload state
type ConfigWatchState struct {
	path        string               // Config file, empty when running on defaults
	fileWatcher *watcher.FileWatcher // Watcher for hot reload
	changed     chan struct{}        // Signalled from the watcher goroutine
}

// UIState holds HUD state
type UIState struct {
	font       rl.Font
	swatch     colorful.Color // Color of the primary selection, or the new-box color
	hasPrimary bool
	status     string // Last status line, e.g. a config reload error
}
