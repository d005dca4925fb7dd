package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/levels"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Platform is one tile of a moving block. It slides along Axis between Min
// and Max (its center, in world pixels) and turns around at either end.
type Platform struct {
	Body  *collision.Body
	Glyph rune
	Axis  Axis
	Dir   float64
	Min   float64
	Max   float64
	Speed float64

	pos float64
}

func NewPlatform(body *collision.Body, glyph rune, axis Axis, dir, lo, hi, speed float64) *Platform {
	if lo > hi {
		lo, hi = hi, lo
	}
	p := &Platform{Body: body, Glyph: glyph, Axis: axis, Dir: common.Sign(dir), Min: lo, Max: hi, Speed: speed}
	c := body.Center()
	p.pos = c.X
	if axis == AxisY {
		p.pos = c.Y
	}
	return p
}

// Position is the center coordinate along the platform's axis.
func (p *Platform) Position() float64 { return p.pos }

// Step advances one tick and returns how far the platform moved.
func (p *Platform) Step() cp.Vector {
	pos := p.pos
	next := pos + p.Dir*p.Speed
	switch {
	case next >= p.Max:
		next = p.Max
		p.Dir = -1
	case next <= p.Min:
		next = p.Min
		p.Dir = 1
	}

	var delta cp.Vector
	if p.Axis == AxisY {
		delta.Y = next - pos
	} else {
		delta.X = next - pos
	}
	p.pos = next
	p.Body.Move(delta)
	return delta
}

func (p *Platform) Bounds() cp.BB { return p.Body.Box }

// Solid platforms are part of the terrain set; hazard and exit platforms
// are not.
func (p *Platform) Solid() bool { return isTerrain(p.Glyph) }

func (p *Platform) Deadly() bool { return isHazard(p.Glyph) }

func (p *Platform) IsExit() bool { return p.Glyph == levels.GlyphExit }

func (p *Platform) Sprite() component.Sprite {
	return component.Sprite{
		Kind:    component.SpritePlatform,
		Variant: string(p.Glyph),
		Bounds:  p.Body.Box,
		Visible: true,
	}
}
