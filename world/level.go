// Package world is the live model of one level: terrain, moving platforms,
// gates and switches, pickups and markers, and the enemies living in it.
package world

import (
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/obj"
)

// Tile is a static terrain cell.
type Tile struct {
	Glyph rune
	Body  *collision.Body
}

func (t *Tile) Bounds() cp.BB { return t.Body.Box }

func (t *Tile) Sprite() component.Sprite {
	return component.Sprite{
		Kind:    component.SpriteTerrain,
		Variant: string(t.Glyph),
		Bounds:  t.Body.Box,
		Visible: true,
	}
}

// Marker is a non-solid cell the player can overlap: a coin, a hazard or
// an exit.
type Marker struct {
	Glyph rune
	Box   cp.BB
}

func (m *Marker) Bounds() cp.BB { return m.Box }

func (m *Marker) Sprite() component.Sprite {
	kind := component.SpriteCoin
	switch {
	case isHazard(m.Glyph):
		kind = component.SpriteHazard
	case m.Glyph == levels.GlyphExit:
		kind = component.SpriteExit
	}
	return component.Sprite{Kind: kind, Variant: string(m.Glyph), Bounds: m.Box, Visible: true}
}

// Level holds everything built from one map. The terrain set is the only
// thing physics and enemy look-ahead collide against.
type Level struct {
	Name string
	Next string
	// Cols and Rows are the grid size in tiles.
	Cols, Rows int
	Start      cp.Vector

	Terrain   *collision.Set
	Tiles     []*Tile
	Platforms []*Platform
	Gates     []*Gate
	Switches  []*Switch
	Coins     []*Marker
	Hazards   []*Marker
	Exits     []*Marker
	Enemies   []obj.Enemy
}

// Size is the level extent in world pixels.
func (l *Level) Size() (w, h float64) {
	return float64(l.Cols) * common.TileSize, float64(l.Rows) * common.TileSize
}

// SyncGates puts closed gates in the terrain set and takes open ones out.
// It returns how many memberships changed; a second call returns 0.
func (l *Level) SyncGates() int {
	changed := 0
	for _, g := range l.Gates {
		in := l.Terrain.Contains(g.Body)
		switch {
		case g.Closed() && !in:
			l.Terrain.Add(g.Body)
			changed++
		case g.Open() && in:
			l.Terrain.Remove(g.Body)
			changed++
		}
	}
	return changed
}

// GatesInSync reports whether every gate's membership matches its state.
func (l *Level) GatesInSync() bool {
	for _, g := range l.Gates {
		if l.Terrain.Contains(g.Body) != g.Closed() {
			return false
		}
	}
	return true
}

func (l *Level) RemoveEnemy(e obj.Enemy) bool {
	return remove(&l.Enemies, e)
}

func (l *Level) RemoveCoin(c *Marker) bool {
	return remove(&l.Coins, c)
}

func remove[T comparable](list *[]T, v T) bool {
	i := slices.Index(*list, v)
	if i < 0 {
		return false
	}
	*list = slices.Delete(*list, i, i+1)
	return true
}

// Sprites lists the level's drawables, back to front.
func (l *Level) Sprites() []component.Sprite {
	out := make([]component.Sprite, 0, len(l.Tiles)+len(l.Platforms)+len(l.Gates)+
		len(l.Switches)+len(l.Coins)+len(l.Hazards)+len(l.Exits)+len(l.Enemies))
	for _, g := range l.Gates {
		out = append(out, g.Sprite())
	}
	for _, s := range l.Switches {
		out = append(out, s.Sprite())
	}
	for _, t := range l.Tiles {
		out = append(out, t.Sprite())
	}
	for _, c := range l.Coins {
		out = append(out, c.Sprite())
	}
	for _, h := range l.Hazards {
		out = append(out, h.Sprite())
	}
	for _, e := range l.Enemies {
		out = append(out, e.Sprite())
	}
	for _, x := range l.Exits {
		out = append(out, x.Sprite())
	}
	for _, p := range l.Platforms {
		out = append(out, p.Sprite())
	}
	return out
}

func isTerrain(g rune) bool {
	return g == levels.GlyphGround || g == levels.GlyphHalf || g == levels.GlyphCrate
}

func isHazard(g rune) bool {
	return g == levels.GlyphLava || g == levels.GlyphSpikes
}
