// Package game is the simulation core: it owns the live level, steps it
// one fixed tick at a time and turns input events into player intent.
package game

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/weapon"
	"github.com/milk9111/platformer/world"
)

var ErrUnknownMap = errors.New("game: unknown map")

// Loader resolves a map name to a parsed map.
type Loader func(name string) (*levels.Map, error)

// Game is single threaded: input methods and Tick must be called from the
// same goroutine.
type Game struct {
	// Load defaults to levels.Load.
	Load Loader
	// OnAdvance, when set, is called with the finished level and its score
	// once the next level is installed. A failed advance never calls it.
	OnAdvance func(level string, score int)

	cfg config.Config
	reg *prefabs.Registry
	log *log.Logger
	rng *rand.Rand

	state   State
	current *levels.Map
	level   *world.Level
	player  *obj.Player
	sword   *weapon.Sword
	bow     *weapon.Bow
	slot    Slot
	camera  *obj.Camera

	pointer cp.Vector
	score   int
	ticks   uint64
}

// New creates a game with no level; call Setup before Tick. A nil logger
// uses log.Default().
func New(cfg config.Config, reg *prefabs.Registry, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cam := obj.NewCamera(cfg.Screen.Width, cfg.Screen.Height, cfg.Camera.Zoom)
	cam.SetSmooth(cfg.Camera.Smooth)
	return &Game{
		Load:    levels.Load,
		cfg:     cfg,
		reg:     reg,
		log:     logger,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		state:   StateLoading,
		camera:  cam,
		pointer: cp.Vector{X: float64(cfg.Screen.Width) / 2, Y: float64(cfg.Screen.Height) / 2},
	}
}

// Setup loads and builds mapName and installs it whole. On error the
// previous level, if any, stays in place.
func (g *Game) Setup(mapName string) error {
	prev := g.state
	g.state = StateLoading
	m, err := g.Load(mapName)
	if err != nil {
		g.state = prev
		return fmt.Errorf("game: setup %s: %w", mapName, loadErr(err))
	}
	if err := g.install(m); err != nil {
		g.state = prev
		return fmt.Errorf("game: setup %s: %w", mapName, err)
	}
	return nil
}

// install builds m and swaps it in: fresh level, player and weapons.
func (g *Game) install(m *levels.Map) error {
	lvl, err := world.Build(m, g.reg, g.rng)
	if err != nil {
		return err
	}

	g.current = m
	g.level = lvl
	g.player = obj.NewPlayer(lvl.Start, g.reg.Player, g.cfg.Physics.Gravity)
	if g.cfg.Physics.MoveSpeed > 0 {
		g.player.MoveSpeed = g.cfg.Physics.MoveSpeed
	}
	if g.cfg.Physics.JumpSpeed > 0 {
		g.player.JumpSpeed = g.cfg.Physics.JumpSpeed
	}
	screenW := float64(g.cfg.Screen.Width)
	g.sword = weapon.NewSword(g.reg.Sword, screenW)
	g.bow = weapon.NewBow(g.reg.Bow, screenW)
	g.slot = SlotSword
	g.score = 0

	if g.cfg.Camera.Clamp {
		g.camera.SetWorldBounds(lvl.Size())
	} else {
		g.camera.SetWorldBounds(0, 0)
	}
	g.camera.SnapTo(lvl.Start)

	g.state = StatePlaying
	g.log.Info("level loaded", "map", lvl.Name, "enemies", len(lvl.Enemies),
		"coins", len(lvl.Coins), "switches", len(lvl.Switches), "gates", len(lvl.Gates))
	return nil
}

// Reload rebuilds the current map from its parsed form.
func (g *Game) Reload() error {
	if g.current == nil {
		return fmt.Errorf("game: reload: %w: no level loaded", ErrUnknownMap)
	}
	g.state = StateReloading
	g.log.Info("level reload", "map", g.current.Name)
	if err := g.install(g.current); err != nil {
		g.state = StatePlaying
		return fmt.Errorf("game: reload %s: %w", g.current.Name, err)
	}
	return nil
}

// Advance enters the next map: the header's next when set, otherwise the
// following map of the configured sequence, wrapping to the first.
func (g *Game) Advance() error {
	if g.current == nil {
		return fmt.Errorf("game: advance: %w: no level loaded", ErrUnknownMap)
	}
	next := g.NextMap()
	from, score := g.current.Name, g.score
	g.log.Info("level advance", "from", from, "to", next, "score", score)
	g.state = StateAdvancing
	m, err := g.Load(next)
	if err != nil {
		g.state = StatePlaying
		return fmt.Errorf("game: advance to %s: %w", next, loadErr(err))
	}
	if err := g.install(m); err != nil {
		g.state = StatePlaying
		return fmt.Errorf("game: advance to %s: %w", next, err)
	}
	if g.OnAdvance != nil {
		g.OnAdvance(from, score)
	}
	return nil
}

// loadErr marks a missing map with ErrUnknownMap. Parse errors pass through
// so callers can match the levels sentinels.
func loadErr(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrUnknownMap, err)
	}
	return err
}

// NextMap is the map Advance would enter.
func (g *Game) NextMap() string {
	if g.current == nil {
		return g.cfg.Levels.Start
	}
	if g.current.Next != "" {
		return g.current.Next
	}
	return g.cfg.NextLevel(g.current.Name)
}

func (g *Game) State() State { return g.state }

// MapName is the name of the installed map, or "" before Setup.
func (g *Game) MapName() string {
	if g.current == nil {
		return ""
	}
	return g.current.Name
}

func (g *Game) Level() *world.Level { return g.level }

func (g *Game) Player() *obj.Player { return g.player }

func (g *Game) Sword() *weapon.Sword { return g.sword }

func (g *Game) Bow() *weapon.Bow { return g.bow }

func (g *Game) Camera() *obj.Camera { return g.camera }

func (g *Game) Equipped() Slot { return g.slot }

// Score counts coins picked up since the level was last built.
func (g *Game) Score() int { return g.score }

func (g *Game) Ticks() uint64 { return g.ticks }

func (g *Game) Config() config.Config { return g.cfg }

func (g *Game) equipped() *weapon.Weapon {
	if g.slot == SlotBow {
		return &g.bow.Weapon
	}
	return &g.sword.Weapon
}
