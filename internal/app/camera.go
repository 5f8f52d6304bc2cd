package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gobox/pkg/geometry"
)

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	c := app.Camera.orbit
	c.Distance = app.Camera.defaultDist
	c.RotationX = app.Camera.defaultAngleX
	c.RotationY = app.Camera.defaultAngleY
	c.Target = geometry.Vector3{}
	c.UpdatePosition()
}

// setCameraTopView looks straight down at the ground
func (app *App) setCameraTopView() {
	app.setCameraAngles(math.Pi/2-0.1, 0)
}

// setCameraFrontView looks along -Z
func (app *App) setCameraFrontView() {
	app.setCameraAngles(0, 0)
}

// setCameraRightView looks along -X
func (app *App) setCameraRightView() {
	app.setCameraAngles(0, math.Pi/2)
}

func (app *App) setCameraAngles(angleX, angleY float64) {
	c := app.Camera.orbit
	c.RotationX = angleX
	c.RotationY = angleY
	c.UpdatePosition()
}

// updateCamera copies the orbit camera into the raylib camera
func (app *App) updateCamera() {
	c := app.Camera.orbit
	app.Camera.camera.Position = toRL(c.Position)
	app.Camera.camera.Target = toRL(c.Target)
	app.Camera.camera.Up = toRL(c.Up)
	app.Camera.camera.Fovy = float32(c.FOV * 180 / math.Pi)
}

// doRotate orbits the camera based on mouse delta
func (app *App) doRotate(delta rl.Vector2) {
	app.Camera.orbit.Rotate(-float64(delta.Y)*0.01, -float64(delta.X)*0.01)
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	// Pan speed based on distance from target
	const panSpeed = 0.001
	app.Camera.orbit.Pan(float64(delta.X)*panSpeed, float64(delta.Y)*panSpeed)
}

// doZoom zooms with the mouse wheel
func (app *App) doZoom(wheel float32) {
	app.Camera.orbit.Zoom(-float64(wheel) * 0.05)
}

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
