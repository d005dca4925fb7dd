package component

import "github.com/jakecoffman/cp"

// SpriteKind names what a drawable is so the presentation layer can pick a
// texture or color for it.
type SpriteKind string

const (
	SpritePlayer    SpriteKind = "player"
	SpritePatroller SpriteKind = "patroller"
	SpriteFlyer     SpriteKind = "flyer"
	SpriteTerrain   SpriteKind = "terrain"
	SpritePlatform  SpriteKind = "platform"
	SpriteGate      SpriteKind = "gate"
	SpriteSwitch    SpriteKind = "switch"
	SpriteCoin      SpriteKind = "coin"
	SpriteHazard    SpriteKind = "hazard"
	SpriteExit      SpriteKind = "exit"
	SpriteSword     SpriteKind = "sword"
	SpriteBow       SpriteKind = "bow"
	SpriteArrow     SpriteKind = "arrow"
)

// Sprite is one entry of the per-frame render list.
type Sprite struct {
	Kind SpriteKind
	// Variant distinguishes looks within a kind, e.g. the terrain glyph or
	// a switch's on state.
	Variant string
	Bounds  cp.BB
	// Angle is clockwise degrees.
	Angle   float64
	Visible bool
	FlipX   bool
}
