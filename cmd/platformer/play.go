package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/storage"
)

var (
	flagLevel string
	flagWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing at the configured first level, or at --level.

Controls:
  A/D or Left/Right  - Move
  Space/W/Up         - Jump
  Left mouse         - Swing sword / shoot bow
  Right mouse or Q   - Swap weapon
  R                  - Restart level
  Esc                - Pause
  F1/F2              - Debug damage / heal

Examples:
  platformer play
  platformer play --level 3
  platformer play --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level to start at (default from config)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels and prefabs when they change on disk")
}

func runPlay(cmd *cobra.Command, args []string) error {
	reg, err := prefabs.LoadRegistryFrom(cfg.Levels.PrefabDir)
	if err != nil {
		return fmt.Errorf("load prefabs: %w", err)
	}

	g := game.New(cfg, reg, logger)
	g.Load = levels.NewLibrary(cfg.Levels.Dir).Load
	start := cfg.Levels.Start
	if flagLevel != "" {
		start = flagLevel
	}
	if err := g.Setup(start); err != nil {
		return err
	}

	// scores are optional: play on without them
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("scores disabled", "err", err)
	} else {
		defer store.Close()
		g.OnAdvance = func(level string, score int) {
			if _, err := store.SaveScore(level, score); err != nil {
				logger.Warn("save score", "level", level, "err", err)
			}
		}
	}

	app := render.NewApp(g, reg)
	app.Debug = flagDebug

	if flagWatch || cfg.Levels.Watch {
		hr, err := newHotReload(g, app, cfg.Levels.Dir, cfg.Levels.PrefabDir)
		if err != nil {
			return err
		}
		defer hr.Close()
		app.BeforeTick = hr.Drain
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetTPS(cfg.Screen.TickRate)

	// RunGame maps ebiten.Termination from the pause menu's Quit to nil.
	return ebiten.RunGame(app)
}
