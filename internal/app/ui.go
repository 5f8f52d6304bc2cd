package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gobox/internal/editor"
	"github.com/philipparndt/gobox/version"
)

var helpLines = []string{
	"Drag on ground or a box face: draw base, release, move for height, click to commit",
	"Click: select   Ctrl+Click: toggle   Esc: cancel + deselect",
	"W: move   S: scale   Mouse4: toggle mode   Ctrl+D: duplicate   Del: delete",
	"[ ]: grid unit   C/Shift+C: color   Right drag: pan   Wheel: zoom   Home/T/1/3: views",
}

// drawUI draws the HUD
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)

	text := func(s string, size float32, col rl.Color) {
		rl.DrawTextEx(app.UI.font, s, rl.Vector2{X: 10, Y: y}, size, 1, col)
		y += lineHeight
	}

	e := app.editor
	text(fmt.Sprintf("GoBox %s", version.GetVersion()), fontSize16, rl.Yellow)
	text(fmt.Sprintf("Mode: %s   Grid: %.2f   Boxes: %d", e.Mode(), e.Grid().Unit, e.Scene().Len()), fontSize14, rl.White)

	// Color swatch follows the primary selection
	rl.DrawRectangle(10, int32(y), 16, 16, boxColor(app.UI.swatch, 1))
	rl.DrawRectangleLines(10, int32(y), 16, 16, rl.White)
	rl.DrawTextEx(app.UI.font, app.UI.swatch.Hex(), rl.Vector2{X: 32, Y: y}, fontSize14, 1, rl.White)
	y += lineHeight

	sel := e.Selection()
	if primary := sel.Primary(); primary != nil {
		text(fmt.Sprintf("Selected: %d", sel.Len()), fontSize14, rl.White)
		text(fmt.Sprintf("  Size: %.2f x %.2f x %.2f", primary.Size.X, primary.Size.Y, primary.Size.Z), fontSize14, rl.White)
		text(fmt.Sprintf("  Position: %.2f, %.2f, %.2f", primary.Position.X, primary.Position.Y, primary.Position.Z), fontSize14, rl.White)
	}

	if d := e.Draw(); d.Active() {
		msg := "Drawing base"
		if d.Phase == editor.DrawingHeight {
			msg = fmt.Sprintf("Drawing height along %s: click to commit", d.ExtrudeAxis)
		}
		text(msg, fontSize14, rl.SkyBlue)
	}

	if app.UI.status != "" {
		text(app.UI.status, fontSize14, rl.Orange)
	}

	y = float32(rl.GetScreenHeight()) - lineHeight*float32(len(helpLines)) - 10
	for _, line := range helpLines {
		text(line, fontSize14, rl.Gray)
	}
}
