package main

import (
	"fmt"
	"os"

	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/render"
)

type reload int

const (
	reloadNone reload = iota
	reloadMap
	reloadPrefabs
)

// plan folds a batch of edits into the one reload a game on current needs.
// Edits to other maps are ignored until they are entered; a spec edit
// rebuilds the registry and the current map with it.
func plan(changes []prefabs.Change, current string) reload {
	need := reloadNone
	for _, c := range changes {
		switch c.Kind {
		case prefabs.SpecChange:
			need = reloadPrefabs
		case prefabs.MapChange:
			if levels.Name(c.Path) == current {
				need = max(need, reloadMap)
			}
		}
	}
	return need
}

// hotReload applies disk edits between ticks.
type hotReload struct {
	game      *game.Game
	app       *render.App
	prefabDir string
	watcher   *prefabs.Watcher
}

func newHotReload(g *game.Game, app *render.App, levelDir, prefabDir string) (*hotReload, error) {
	var watch []string
	for _, d := range []string{levelDir, prefabDir} {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			watch = append(watch, d)
		}
	}
	if len(watch) == 0 {
		return nil, fmt.Errorf("watch: neither %s nor %s exists", levelDir, prefabDir)
	}
	w, err := prefabs.NewWatcher(watch...)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	logger.Info("watching", "dirs", watch)
	return &hotReload{game: g, app: app, prefabDir: prefabDir, watcher: w}, nil
}

// Drain applies every edit seen since the last tick as at most one reload.
// A broken edit is logged and the running level kept, so the file can be
// fixed in place.
func (h *hotReload) Drain() error {
	changes, err := h.watcher.Pending()
	if err != nil {
		logger.Warn("watch error", "err", err)
	}
	if len(changes) == 0 {
		return nil
	}
	current := h.game.MapName()
	switch plan(changes, current) {
	case reloadPrefabs:
		reg, err := prefabs.LoadRegistryFrom(h.prefabDir)
		if err != nil {
			logger.Error("prefab reload failed", "changes", len(changes), "err", err)
			return nil
		}
		h.game.SetRegistry(reg)
		h.app.SetRegistry(reg)
	case reloadMap:
	default:
		return nil
	}
	if err := h.game.Setup(current); err != nil {
		logger.Error("hot reload failed", "map", current, "err", err)
		return nil
	}
	logger.Info("hot reloaded", "map", current, "changes", len(changes))
	return nil
}

func (h *hotReload) Close() error { return h.watcher.Close() }
