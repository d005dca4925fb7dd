// platformer runs the side-scrolling platformer and its level tooling.
//
// Usage:
//
//	platformer play [--level N] [--watch]  - Play, starting at a level
//	platformer levels                      - List and validate every map
//	platformer scores <level>              - Show the best runs of a level
//
// Global flags:
//
//	--config <path>  - Config file (default search: ~/.platformer, ./configs, embedded)
//	--db <path>      - Scores database (default from config)
//	--seed <value>   - RNG seed for reproducible enemy flight
//	--debug          - Debug logging and HUD details
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/config"
)

var (
	flagConfig string
	flagDBPath string
	flagSeed   uint64
	flagDebug  bool

	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A side-scrolling platformer",
	Long: `platformer is a tile based side-scroller: run, jump, swing a sword,
shoot a bow, flip switches and reach the exit of each level.

Available commands:
  play     - Play the game
  levels   - List and validate the level maps
  scores   - View the best scores of a level

Examples:
  platformer play
  platformer play --level 2 --watch
  platformer levels
  platformer scores 1`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, else time based)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup loads the config and applies global flags before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	logger.Debug("config loaded", "levels", cfg.Levels.Dir, "prefabs", cfg.Levels.PrefabDir, "seed", cfg.Seed)
	return nil
}
