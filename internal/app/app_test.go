package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/philipparndt/gobox/internal/config"
	"github.com/philipparndt/gobox/internal/editor"
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return newApp(config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewAppWiresEditor(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, 0.5, app.editor.Grid().Unit)
	assert.Equal(t, editor.ModeScale, app.editor.Mode())
	assert.Equal(t, app.Camera.orbit.Position, app.provider.CameraPosition())
	assert.InDelta(t, 45, app.Camera.camera.Fovy, 1e-4)
	assert.InDelta(t, app.Camera.orbit.Position.X, float64(app.Camera.camera.Position.X), 1e-4)
}

func TestSwatchFollowsSelection(t *testing.T) {
	app := newTestApp(t)
	red := colorful.Color{R: 1}
	box := scene.NewBox(geometry.NewVector3(0, 0.5, 0), geometry.Splat(1), red)
	app.editor.Scene().Add(box)

	app.editor.Select(box, false)
	assert.True(t, app.UI.hasPrimary)
	assert.Equal(t, red, app.UI.swatch)

	app.editor.Select(nil, false)
	assert.False(t, app.UI.hasPrimary)
	assert.Equal(t, app.editor.Color(), app.UI.swatch)
}

func TestApplyConfigChanges(t *testing.T) {
	app := newTestApp(t)
	path := filepath.Join(t.TempDir(), "gobox.toml")
	app.ConfigWatch.path = path

	require.NoError(t, os.WriteFile(path, []byte("grid_unit = 1\nmode = \"move\"\ncolor = \"#00ff00\"\ndrag_threshold = 9\n"), 0o644))
	app.applyConfigChanges()
	assert.Equal(t, 0.5, app.editor.Grid().Unit, "nothing happens without a change signal")

	app.ConfigWatch.changed <- struct{}{}
	app.applyConfigChanges()
	assert.Equal(t, 1.0, app.editor.Grid().Unit)
	assert.Equal(t, editor.ModeMove, app.editor.Mode())
	assert.Equal(t, colorful.Color{G: 1}, app.UI.swatch)
	assert.Equal(t, 9.0, app.editor.DragThreshold())

	require.NoError(t, os.WriteFile(path, []byte("grid_unit = -3\n"), 0o644))
	app.ConfigWatch.changed <- struct{}{}
	app.applyConfigChanges()
	assert.Equal(t, 1.0, app.editor.Grid().Unit, "invalid config is ignored")
	assert.Contains(t, app.UI.status, "Config error")
}

func TestStepGridUnit(t *testing.T) {
	app := newTestApp(t)

	app.stepGridUnit(1)
	assert.Equal(t, 1.0, app.editor.Grid().Unit)
	app.stepGridUnit(1)
	app.stepGridUnit(1)
	assert.Equal(t, 2.0, app.editor.Grid().Unit, "stops at the largest preset")

	app.editor.SetGridUnit(0.3)
	app.stepGridUnit(-1)
	assert.Equal(t, 0.25, app.editor.Grid().Unit)

	app.editor.SetGridUnit(0.05)
	app.stepGridUnit(-1)
	assert.Equal(t, 0.05, app.editor.Grid().Unit, "nothing below the smallest preset")
	app.stepGridUnit(1)
	assert.Equal(t, 0.1, app.editor.Grid().Unit, "a unit below every preset steps to the smallest")
}

func TestCycleColorRecolorsSelection(t *testing.T) {
	app := newTestApp(t)
	a := scene.NewBox(geometry.NewVector3(0, 0.5, 0), geometry.Splat(1), scene.DefaultColor)
	b := scene.NewBox(geometry.NewVector3(3, 0.5, 0), geometry.Splat(1), scene.DefaultColor)
	c := scene.NewBox(geometry.NewVector3(6, 0.5, 0), geometry.Splat(1), scene.DefaultColor)
	for _, box := range []*scene.Box{a, b, c} {
		app.editor.Scene().Add(box)
	}
	app.editor.Select(a, false)
	app.editor.Select(b, true)

	app.cycleColor(1)
	red, err := colorful.Hex(palette[1])
	require.NoError(t, err)
	assert.Equal(t, red, a.Color)
	assert.Equal(t, red, b.Color)
	assert.Equal(t, scene.DefaultColor, c.Color, "unselected boxes keep their color")
	assert.Equal(t, red, app.editor.Color())
	assert.Equal(t, red, app.UI.swatch)

	app.editor.Select(c, false)
	assert.Equal(t, scene.DefaultColor, app.UI.swatch, "swatch follows the new primary")

	app.editor.Select(b, false)
	assert.Equal(t, red, app.UI.swatch)

	app.cycleColor(-1)
	assert.Equal(t, palette[0], b.Color.Hex())
	app.cycleColor(-1)
	assert.Equal(t, palette[len(palette)-1], b.Color.Hex(), "the palette wraps around")
	assert.Equal(t, palette[1], a.Color.Hex())
}
