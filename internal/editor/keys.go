package editor

// Key is a keyboard or extra mouse button the editor reacts to
type Key int

const (
	KeyUnknown Key = iota
	KeyDelete
	KeyBackspace
	KeyD
	KeyW
	KeyS
	KeyEscape
	KeyMouse4 // Side mouse button, toggles the edit mode
)

// Modifiers are the modifier keys held with a key press
type Modifiers struct {
	Ctrl bool
}

// HandleKey applies a keyboard shortcut and reports whether the key was used
func (e *Editor) HandleKey(key Key, mods Modifiers) bool {
	switch key {
	case KeyDelete, KeyBackspace:
		e.DeleteSelected()
	case KeyD:
		if !mods.Ctrl {
			return false
		}
		e.DuplicateSelected()
	case KeyW:
		e.SetMode(ModeMove)
	case KeyS:
		e.SetMode(ModeScale)
	case KeyEscape:
		e.Cancel()
		e.selectBox(nil, false)
	case KeyMouse4:
		e.ToggleMode()
	default:
		return false
	}
	return true
}
