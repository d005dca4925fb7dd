package world

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
	"github.com/milk9111/platformer/prefabs"
)

var (
	ErrNoPlayerStart        = errors.New("world: map has no player start")
	ErrMultiplePlayerStarts = errors.New("world: map has more than one player start")
	ErrUnknownGate          = errors.New("world: switch targets an unknown gate")
	ErrDuplicateID          = errors.New("world: duplicate gate or switch id")
	ErrOutsideGrid          = errors.New("world: placement outside the grid")
)

// PlatformSpeed is how far a moving platform travels per tick.
const PlatformSpeed = 1.0

// TileCenter is the world position of the middle of grid cell (col, row),
// row 0 being the bottom row.
func TileCenter(col, row int) cp.Vector {
	return cp.Vector{X: tileCoord(col), Y: tileCoord(row)}
}

func tileCoord(i int) float64 {
	return float64(i)*common.TileSize + common.TileSize/2
}

// Build turns a parsed map into a fresh level. Nothing is returned on
// error. Every enemy gets the new terrain set before Build returns; flyers
// draw their targets from rng.
func Build(m *levels.Map, reg *prefabs.Registry, rng *rand.Rand) (*Level, error) {
	if reg == nil {
		return nil, errors.New("world: build: nil registry")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 1))
	}

	grid := m.Grid()
	l := &Level{
		Name:    m.Name,
		Next:    m.Next,
		Cols:    m.Width,
		Rows:    len(grid),
		Terrain: collision.NewSet(),
	}

	claimed := make(map[cell]bool)
	for _, pt := range fusePlatforms(grid) {
		claimed[pt.cell] = true
		box := tileBox(reg, pt.glyph, pt.col, pt.row)
		p := NewPlatform(collision.NewBody(box), pt.glyph, pt.axis, float64(pt.dir),
			tileCoord(pt.lo), tileCoord(pt.hi), PlatformSpeed)
		l.Platforms = append(l.Platforms, p)
		if p.Solid() {
			l.Terrain.Add(p.Body)
		}
	}

	starts := 0
	for row, line := range grid {
		for col, g := range line {
			at := TileCenter(col, row)
			switch {
			case claimed[cell{col, row}]:
			case g == levels.GlyphStart:
				starts++
				l.Start = at
			case g == levels.GlyphPatroller:
				l.Enemies = append(l.Enemies, obj.NewGroundPatroller(at, reg.Patroller))
			case g == levels.GlyphFlyer:
				at.Y += reg.Flyer.SpawnOffsetY
				l.Enemies = append(l.Enemies, obj.NewFlyer(at, reg.Flyer, rng))
			case isTerrain(g):
				t := &Tile{Glyph: g, Body: collision.NewBody(tileBox(reg, g, col, row))}
				l.Tiles = append(l.Tiles, t)
				l.Terrain.Add(t.Body)
			case g == levels.GlyphCoin:
				l.Coins = append(l.Coins, &Marker{Glyph: g, Box: tileBox(reg, g, col, row)})
			case isHazard(g):
				l.Hazards = append(l.Hazards, &Marker{Glyph: g, Box: tileBox(reg, g, col, row)})
			case g == levels.GlyphExit:
				l.Exits = append(l.Exits, &Marker{Glyph: g, Box: tileBox(reg, g, col, row)})
			}
		}
	}
	switch {
	case starts == 0:
		return nil, fmt.Errorf("world: build %s: %w", m.Name, ErrNoPlayerStart)
	case starts > 1:
		return nil, fmt.Errorf("world: build %s: %d starts: %w", m.Name, starts, ErrMultiplePlayerStarts)
	}

	if err := l.linkGates(m, reg); err != nil {
		return nil, fmt.Errorf("world: build %s: %w", m.Name, err)
	}
	l.SyncGates()

	for _, e := range l.Enemies {
		e.SetEnvironment(l.Terrain)
	}
	return l, nil
}

func (l *Level) linkGates(m *levels.Map, reg *prefabs.Registry) error {
	gates := make(map[string]*Gate, len(m.Gates))
	for _, def := range m.Gates {
		if err := l.checkPlacement(def.X, def.Y); err != nil {
			return fmt.Errorf("gate %q: %w", def.ID, err)
		}
		if _, dup := gates[def.ID]; dup {
			return fmt.Errorf("gate %q: %w", def.ID, ErrDuplicateID)
		}
		g := NewGate(def.ID, tileBox(reg, prefabs.GateGlyph, def.X, def.Y), def.StartsClosed())
		gates[def.ID] = g
		l.Gates = append(l.Gates, g)
	}

	seen := make(map[string]bool, len(m.Switches))
	for _, def := range m.Switches {
		if err := l.checkPlacement(def.X, def.Y); err != nil {
			return fmt.Errorf("switch %q: %w", def.ID, err)
		}
		if seen[def.ID] {
			return fmt.Errorf("switch %q: %w", def.ID, ErrDuplicateID)
		}
		seen[def.ID] = true
		s := NewSwitch(def.ID, tileBox(reg, prefabs.SwitchGlyph, def.X, def.Y), def.On)
		for _, t := range def.Targets {
			g, ok := gates[t.Gate]
			if !ok {
				return fmt.Errorf("switch %q -> %q: %w", def.ID, t.Gate, ErrUnknownGate)
			}
			s.AddTarget(g, t.OpensWhenOn())
		}
		l.Switches = append(l.Switches, s)
	}
	return nil
}

func (l *Level) checkPlacement(col, row int) error {
	if col < 0 || col >= l.Cols || row < 0 || row >= l.Rows {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", col, row, l.Cols, l.Rows, ErrOutsideGrid)
	}
	return nil
}

// tileBox is the footprint of glyph's prefab centered on cell (col, row).
func tileBox(reg *prefabs.Registry, glyph rune, col, row int) cp.BB {
	w, h := reg.Tile(glyph).Sprite.Footprint()
	return collision.BoxAt(TileCenter(col, row), w/2, h/2)
}
