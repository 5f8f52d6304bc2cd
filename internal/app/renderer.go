package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gobox/internal/editor"
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/scene"
)

var (
	edgeColor      = rl.NewColor(255, 200, 0, 255)
	handleColor    = rl.NewColor(255, 255, 255, 255)
	hoverColor     = rl.NewColor(255, 255, 0, 255)
	guideColor     = rl.NewColor(0, 200, 255, 255)
	previewColor   = rl.NewColor(0, 200, 255, 90)
	gridLineColor  = rl.NewColor(60, 65, 75, 255)
	axisColors     = [3]rl.Color{rl.NewColor(230, 70, 70, 255), rl.NewColor(90, 200, 90, 255), rl.NewColor(80, 130, 240, 255)}
	handleDrawSize = float32(0.12)
)

// drawScene draws the ground grid, boxes, draw preview, handles and gizmo
func (app *App) drawScene() {
	app.drawGround()

	boxes := app.editor.Scene().Boxes()

	// Opaque boxes first so the selected, translucent ones blend over them
	for _, b := range boxes {
		if b.Opacity >= 1 {
			app.drawBox(b)
		}
	}
	for _, b := range boxes {
		if b.Opacity < 1 {
			app.drawBox(b)
		}
	}

	app.drawSession(app.editor.Draw())

	for _, b := range boxes {
		app.drawHandles(b)
	}
	app.drawGizmo(app.editor.Gizmo())
}

// drawGround draws grid lines at the current grid unit
func (app *App) drawGround() {
	unit := app.editor.Grid().Unit
	const extent = 50.0
	lines := int(extent / unit)
	if lines > 200 {
		lines = 200
	}
	half := float32(float64(lines) * unit)

	for i := -lines; i <= lines; i++ {
		p := float32(float64(i) * unit)
		col := gridLineColor
		if i == 0 {
			col = rl.Fade(rl.White, 0.4)
		}
		rl.DrawLine3D(rl.Vector3{X: p, Y: 0, Z: -half}, rl.Vector3{X: p, Y: 0, Z: half}, col)
		rl.DrawLine3D(rl.Vector3{X: -half, Y: 0, Z: p}, rl.Vector3{X: half, Y: 0, Z: p}, col)
	}
}

// drawBox draws one box with its opacity and optional edge highlight
func (app *App) drawBox(b *scene.Box) {
	pos := toRL(b.Position)
	size := toRL(b.Size)
	rl.DrawCubeV(pos, size, boxColor(b.Color, b.Opacity))

	if b.EdgesVisible {
		rl.DrawCubeWiresV(pos, size, edgeColor)
	} else {
		rl.DrawCubeWiresV(pos, size, rl.Fade(rl.Black, 0.35))
	}
}

// drawHandles draws the visible scale handles of a box
func (app *App) drawHandles(b *scene.Box) {
	hovered, hasHover := app.editor.HoveredHandle()
	for i, h := range b.Handles {
		if !h.Visible {
			continue
		}
		col := handleColor
		if hasHover && hovered.Box == b.ID && hovered.Axis == h.Axis && hovered.Sign == h.Sign {
			col = hoverColor
		}
		rl.DrawSphere(toRL(b.HandlePosition(i)), handleDrawSize/2, col)
	}
}

// drawSession draws the draw preview and base guides
func (app *App) drawSession(d editor.DrawSession) {
	if d.Preview.Visible {
		pos := toRL(d.Preview.Position)
		size := toRL(d.Preview.Size)
		rl.DrawCubeV(pos, size, previewColor)
		rl.DrawCubeWiresV(pos, size, guideColor)
	}

	switch d.Guide {
	case editor.GuideMarker:
		rl.DrawSphere(toRL(d.Marker), 0.05, guideColor)
	case editor.GuideLine:
		rl.DrawLine3D(toRL(d.Line[0]), toRL(d.Line[1]), guideColor)
		rl.DrawSphere(toRL(d.Line[0]), 0.05, guideColor)
	case editor.GuideRect:
		for i := range d.Rect {
			rl.DrawLine3D(toRL(d.Rect[i]), toRL(d.Rect[(i+1)%len(d.Rect)]), guideColor)
		}
	}
}

// drawGizmo draws the three move arrows and three plane quads
func (app *App) drawGizmo(g editor.GizmoView) {
	if !g.Visible {
		return
	}
	s := g.Scale
	center := g.Center

	for _, axis := range geometry.Axes {
		target := editor.GizmoArrowTarget{Axis: axis}
		col := gizmoColor(axisColors[axis], target, g)

		dir := axis.Unit()
		shaftEnd := center.Add(dir.Mul(1.2 * s))
		tip := center.Add(dir.Mul(1.5 * s))
		rl.DrawCylinderEx(toRL(center), toRL(shaftEnd), float32(0.03*s), float32(0.03*s), 8, col)
		rl.DrawCylinderEx(toRL(shaftEnd), toRL(tip), float32(0.12*s), 0, 12, col)
	}

	for _, pair := range geometry.AxisPairs {
		target := editor.GizmoPlaneTarget{Plane: pair}
		col := gizmoColor(axisColors[pair.Normal()], target, g)

		axes := pair.Axes()
		offset := axes[0].Unit().Add(axes[1].Unit()).Mul(0.15 * s)
		size := geometry.Splat(0.005*s).
			WithComponent(axes[0], 0.3*s).
			WithComponent(axes[1], 0.3*s)
		rl.DrawCubeV(toRL(center.Add(offset)), toRL(size), rl.Fade(col, 0.6))
	}
}

// gizmoColor highlights the hovered or dragged gizmo part
func gizmoColor(base rl.Color, target editor.PickTarget, g editor.GizmoView) rl.Color {
	if g.Active == target || (g.Active == nil && g.Hover == target) {
		return hoverColor
	}
	return base
}

// boxColor converts a box color and opacity to a raylib color
func boxColor(c colorful.Color, opacity float64) rl.Color {
	r, g, b := c.Clamped().RGB255()
	return rl.NewColor(r, g, b, uint8(opacity*255))
}
