package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gobox/internal/editor"
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/viewer"
)

// gridUnits are the grid units cycled with [ and ]
var gridUnits = []float64{0.1, 0.25, 0.5, 1, 2}

// palette is the color ring cycled with C; it recolors the selection and new boxes
var palette = []string{
	"#ffffff", "#e74c3c", "#e67e22", "#f1c40f", "#2ecc71", "#1abc9c", "#3498db", "#9b59b6", "#7f8c8d",
}

// editorKeys maps raylib keys to editor shortcuts
var editorKeys = map[int32]editor.Key{
	rl.KeyDelete:    editor.KeyDelete,
	rl.KeyBackspace: editor.KeyBackspace,
	rl.KeyD:         editor.KeyD,
	rl.KeyW:         editor.KeyW,
	rl.KeyS:         editor.KeyS,
	rl.KeyEscape:    editor.KeyEscape,
}

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	ev := app.pointerEvent(mouse)

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraFrontView()
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		app.setCameraRightView()
	}

	// Editor shortcuts
	mods := editor.Modifiers{Ctrl: ev.Additive}
	for key, editorKey := range editorKeys {
		if rl.IsKeyPressed(key) {
			app.editor.HandleKey(editorKey, mods)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonSide) {
		app.editor.HandleKey(editor.KeyMouse4, mods)
	}
	if rl.IsKeyPressed(rl.KeyLeftBracket) {
		app.stepGridUnit(-1)
	}
	if rl.IsKeyPressed(rl.KeyRightBracket) {
		app.stepGridUnit(1)
	}
	if rl.IsKeyPressed(rl.KeyC) && !ev.Additive {
		shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		if shift {
			app.cycleColor(-1)
		} else {
			app.cycleColor(1)
		}
	}

	// Primary button goes to the editor first; the camera only gets what it leaves
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.editor.PointerDown(ev)
		app.Interaction.orbiting = app.editor.CameraEnabled()
	}
	if mouse != app.Interaction.lastMousePos {
		app.editor.PointerMove(ev)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.editor.PointerUp(ev)
		app.Interaction.orbiting = false
	}

	// Camera rotation with left drag on empty space
	delta := rl.GetMouseDelta()
	if app.Interaction.orbiting && rl.IsMouseButtonDown(rl.MouseLeftButton) && app.editor.CameraEnabled() {
		if delta.X != 0 || delta.Y != 0 {
			app.doRotate(delta)
		}
	}

	// Camera panning with right or middle mouse button drag
	if rl.IsMouseButtonPressed(rl.MouseRightButton) || rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		app.Interaction.panning = app.editor.CameraEnabled()
	}
	if app.Interaction.panning && (rl.IsMouseButtonDown(rl.MouseRightButton) || rl.IsMouseButtonDown(rl.MouseMiddleButton)) {
		if delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	} else {
		app.Interaction.panning = false
	}

	// Zoom with mouse wheel
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && app.editor.CameraEnabled() {
		app.doZoom(wheel)
	}

	app.Interaction.lastMousePos = mouse
}

// pointerEvent converts the mouse position into an editor pointer event
func (app *App) pointerEvent(mouse rl.Vector2) editor.PointerEvent {
	width := float64(rl.GetScreenWidth())
	height := float64(rl.GetScreenHeight())
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)

	return editor.PointerEvent{
		Screen:   geometry.NewVector2(float64(mouse.X), float64(mouse.Y)),
		NDC:      viewer.ToNDC(float64(mouse.X), float64(mouse.Y), width, height),
		Additive: ctrlPressed,
	}
}

// stepGridUnit moves to the nearest preset grid unit above (step > 0) or
// below (step < 0) the current one
func (app *App) stepGridUnit(step int) {
	current := app.editor.Grid().Unit
	idx := -1
	if step > 0 {
		for i := len(gridUnits) - 1; i >= 0; i-- {
			if gridUnits[i] > current {
				idx = i
			}
		}
	} else {
		for i, u := range gridUnits {
			if u < current {
				idx = i
			}
		}
	}
	if idx < 0 {
		return
	}
	app.editor.SetGridUnit(gridUnits[idx])
	app.UI.status = fmt.Sprintf("Grid unit %.2f", gridUnits[idx])
}

// cycleColor applies the next (step > 0) or previous palette color to the
// selection and to new boxes
func (app *App) cycleColor(step int) {
	current := app.UI.swatch.Hex()
	idx := -1
	for i, hex := range palette {
		if hex == current {
			idx = i
		}
	}
	if idx < 0 && step < 0 {
		idx = 0
	}
	idx = ((idx+step)%len(palette) + len(palette)) % len(palette)

	if err := app.editor.SetColorHex(palette[idx]); err != nil {
		app.log.Warn("color change failed", "error", err)
		return
	}
	app.UI.swatch = app.editor.Color()
	app.UI.status = fmt.Sprintf("Color %s", palette[idx])
}
