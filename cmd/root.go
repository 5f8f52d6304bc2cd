// Package cmd implements the gobox command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gobox/internal/app"
	"github.com/philipparndt/gobox/internal/config"
	"github.com/philipparndt/gobox/version"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gobox",
		Short: "Grid-snapped box scene editor",
		Long: `GoBox is an interactive editor for scenes made of axis-aligned boxes.
Boxes are drawn by dragging a base rectangle and extruding it, then moved with
a gizmo or resized with face handles. Every coordinate snaps to the grid.`,
		Version:       version.GetFullVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEditor,
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "settings file (TOML), reloaded on change")
	flags.Float64P("grid", "g", 0, "grid unit (default 0.5)")
	flags.String("color", "", "color for new boxes as #rrggbb")
	flags.StringP("mode", "m", "", "initial edit mode: scale or move")
	flags.BoolP("verbose", "v", false, "log interaction events")

	cmd.AddCommand(newVersionCmd(), newConfigCmd())
	return cmd
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runEditor(cmd *cobra.Command, _ []string) error {
	cfg, path, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Config:     cfg,
		ConfigPath: path,
		Logger:     newLogger(cmd),
	})
}

// resolveConfig loads the settings file and applies flag overrides
func resolveConfig(cmd *cobra.Command) (config.Config, string, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, path, err
	}

	if flags.Changed("grid") {
		cfg.GridUnit, _ = flags.GetFloat64("grid")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("mode") {
		cfg.Mode, _ = flags.GetString("mode")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, path, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, path, nil
}

// newLogger writes text logs to stderr, at debug level with --verbose
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
