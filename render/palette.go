package render

import (
	"image/color"

	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

// Palette picks a flat color for each drawable. There are no textures:
// every prefab carries a color next to its image name.
type Palette struct {
	kinds  map[component.SpriteKind]color.Color
	glyphs map[rune]color.Color
	sizes  map[component.SpriteKind][2]float64
}

var fallback = map[component.SpriteKind]color.Color{
	component.SpritePlayer:    colornames.Crimson,
	component.SpritePatroller: colornames.Limegreen,
	component.SpriteFlyer:     colornames.Blueviolet,
	component.SpriteTerrain:   colornames.Saddlebrown,
	component.SpritePlatform:  colornames.Sienna,
	component.SpriteGate:      colornames.Dimgray,
	component.SpriteSwitch:    colornames.Goldenrod,
	component.SpriteCoin:      colornames.Gold,
	component.SpriteHazard:    colornames.Orangered,
	component.SpriteExit:      colornames.Deepskyblue,
	component.SpriteSword:     colornames.Silver,
	component.SpriteBow:       colornames.Saddlebrown,
	component.SpriteArrow:     colornames.Wheat,
}

// glyphKinds carry their grid glyph as the variant.
var glyphKinds = map[component.SpriteKind]bool{
	component.SpriteTerrain:  true,
	component.SpritePlatform: true,
	component.SpriteCoin:     true,
	component.SpriteHazard:   true,
	component.SpriteExit:     true,
}

func NewPalette(reg *prefabs.Registry) *Palette {
	p := &Palette{
		kinds:  make(map[component.SpriteKind]color.Color, len(fallback)),
		glyphs: make(map[rune]color.Color),
		sizes:  make(map[component.SpriteKind][2]float64),
	}
	for k, c := range fallback {
		p.kinds[k] = c
	}
	if reg == nil {
		return p
	}

	p.setKind(component.SpritePlayer, reg.Player.Sprite)
	p.setKind(component.SpritePatroller, reg.Patroller.Sprite)
	p.setKind(component.SpriteFlyer, reg.Flyer.Sprite)
	p.setKind(component.SpriteSword, reg.Sword.Sprite)
	p.setKind(component.SpriteBow, reg.Bow.Sprite)
	p.setKind(component.SpriteArrow, reg.Bow.Arrow.Sprite)
	for glyph, spec := range reg.Tiles {
		if spec.Sprite.Color != nil {
			p.glyphs[glyph] = spec.Sprite.Color.Color
		}
	}
	if c, ok := p.glyphs[prefabs.GateGlyph]; ok {
		p.kinds[component.SpriteGate] = c
	}
	if c, ok := p.glyphs[prefabs.SwitchGlyph]; ok {
		p.kinds[component.SpriteSwitch] = c
	}
	return p
}

func (p *Palette) setKind(kind component.SpriteKind, s prefabs.SpriteSpec) {
	if s.Color != nil {
		p.kinds[kind] = s.Color.Color
	}
	w, h := s.Footprint()
	p.sizes[kind] = [2]float64{w, h}
}

// Color returns the fill for d. Tiles, platforms and markers are colored by
// their glyph; a switch that is on is drawn brighter.
func (p *Palette) Color(d game.Drawable) color.Color {
	if glyphKinds[d.Kind] {
		if r := []rune(d.Variant); len(r) == 1 {
			if c, ok := p.glyphs[r[0]]; ok {
				return c
			}
		}
	}
	c, ok := p.kinds[d.Kind]
	if !ok {
		c = colornames.Magenta
	}
	if d.Kind == component.SpriteSwitch && d.Variant == "on" {
		return lighten(c)
	}
	return c
}

// Size is the unrotated footprint of rotating kinds, whose bounds are the
// box around the rotated sprite.
func (p *Palette) Size(kind component.SpriteKind) (w, h float64, ok bool) {
	s, ok := p.sizes[kind]
	return s[0], s[1], ok
}

func lighten(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	up := func(v uint32) uint8 { return uint8((v>>8 + 255) / 2) }
	return color.NRGBA{R: up(r), G: up(g), B: up(b), A: uint8(a >> 8)}
}
