// Package app runs the raylib window that hosts the box editor.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gobox/internal/config"
	"github.com/philipparndt/gobox/internal/editor"
	"github.com/philipparndt/gobox/internal/picking"
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/viewer"
	"github.com/philipparndt/gobox/pkg/watcher"
)

// App wires the editor core to a raylib window
type App struct {
	Camera      CameraState
	Interaction InteractionState
	ConfigWatch ConfigWatchState
	UI          UIState

	editor   *editor.Editor
	provider *picking.Provider
	log      *slog.Logger
}

// Options configure Run
type Options struct {
	Config     config.Config
	ConfigPath string // Watched for changes when set
	Logger     *slog.Logger
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	// Initialize window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(cfg.Window.Width, cfg.Window.Height, "GoBox")
	defer rl.CloseWindow()
	rl.SetTargetFPS(cfg.Window.FPS)
	rl.SetExitKey(0) // Escape cancels instead of quitting

	app := newApp(cfg, log)
	app.UI.font = rl.GetFontDefault()
	app.ConfigWatch.path = opts.ConfigPath

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up config hot reload
	if app.ConfigWatch.path != "" {
		if err := app.setupConfigWatcher(ctx); err != nil {
			log.Warn("config hot reload unavailable", "error", err)
		} else {
			defer app.ConfigWatch.fileWatcher.Close()
		}
	}

	fmt.Printf("Grid unit: %.2f, mode: %s\n", app.editor.Grid().Unit, app.editor.Mode())

	// Main loop
	for !rl.WindowShouldClose() {
		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		// Apply config changes (must be on main thread)
		app.applyConfigChanges()

		app.provider.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))

		// Update
		app.handleInput()
		app.updateCamera()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		app.drawScene()
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}

// newApp builds the editor, camera and picking provider without touching the window
func newApp(cfg config.Config, log *slog.Logger) *App {
	const (
		distance = 20.0
		angleX   = math.Pi / 6
		angleY   = math.Pi / 4
	)

	orbit := viewer.NewCamera(geometry.Vector3{}, distance)
	orbit.RotationX = angleX
	orbit.RotationY = angleY
	orbit.UpdatePosition()

	provider := picking.NewProvider(orbit, float64(cfg.Window.Width), float64(cfg.Window.Height))

	app := &App{
		Camera: CameraState{
			camera: rl.Camera3D{
				Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
				Fovy:       45.0,
				Projection: rl.CameraPerspective,
			},
			orbit:         orbit,
			defaultDist:   distance,
			defaultAngleX: angleX,
			defaultAngleY: angleY,
		},
		ConfigWatch: ConfigWatchState{
			changed: make(chan struct{}, 1),
		},
		provider: provider,
		log:      log,
	}

	opts := append(cfg.EditorOptions(), editor.WithLogger(log))
	app.editor = editor.New(provider, opts...)
	app.editor.OnSelectionChanged(app.onSelectionChanged)
	app.UI.swatch = app.editor.Color()
	app.updateCamera()
	return app
}

// onSelectionChanged keeps the color swatch in sync with the primary box
func (app *App) onSelectionChanged(ev editor.SelectionChanged) {
	app.UI.hasPrimary = ev.HasPrimary
	if ev.HasPrimary {
		app.UI.swatch = ev.Color
		return
	}
	app.UI.swatch = app.editor.Color()
}

// setupConfigWatcher reloads the config file whenever it changes
func (app *App) setupConfigWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(200*time.Millisecond, app.log)
	if err != nil {
		return err
	}

	err = fw.Watch([]string{app.ConfigWatch.path}, func(string) {
		select {
		case app.ConfigWatch.changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		fw.Close()
		return err
	}

	fw.Start(ctx)
	app.ConfigWatch.fileWatcher = fw
	fmt.Printf("Watching %s for changes\n", app.ConfigWatch.path)
	return nil
}

// applyConfigChanges reloads the config when the watcher signalled a change
func (app *App) applyConfigChanges() {
	select {
	case <-app.ConfigWatch.changed:
	default:
		return
	}

	cfg, err := config.Load(app.ConfigWatch.path)
	if err != nil {
		app.log.Warn("config reload failed", "error", err)
		app.UI.status = fmt.Sprintf("Config error: %v", err)
		return
	}

	cfg.Apply(app.editor)
	if !app.UI.hasPrimary {
		app.UI.swatch = app.editor.Color()
	}
	app.UI.status = "Config reloaded"
	app.log.Info("config reloaded", "grid_unit", cfg.GridUnit, "mode", cfg.Mode, "color", cfg.Color, "drag_threshold", cfg.DragThreshold)
}
