package game

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/component"
)

// Drawable is one entry of the per-frame render list.
type Drawable = component.Sprite

// HealthBar is drawn above a damaged actor. Fraction is rounded to tenths.
type HealthBar struct {
	Center   cp.Vector
	Fraction float64
	Player   bool
}

const healthBarLift = 5

// Drawables lists everything to draw this frame, back to front. Hidden
// weapons are included with Visible false.
func (g *Game) Drawables() []Drawable {
	if g.level == nil {
		return nil
	}
	out := g.level.Sprites()
	out = append(out, g.player.Sprite(), g.sword.Sprite(), g.bow.Sprite())
	for _, a := range g.bow.Arrows() {
		out = append(out, a.Sprite())
	}
	return out
}

// HealthBars lists a bar for the player and every enemy below full health.
func (g *Game) HealthBars() []HealthBar {
	if g.level == nil {
		return nil
	}
	var out []HealthBar
	if bar, ok := healthBar(g.player.Health(), g.player.Bounds()); ok {
		bar.Player = true
		out = append(out, bar)
	}
	for _, e := range g.level.Enemies {
		if bar, ok := healthBar(e.Health(), e.Bounds()); ok {
			out = append(out, bar)
		}
	}
	return out
}

func healthBar(h *component.Health, box cp.BB) (HealthBar, bool) {
	if h.Current >= h.Max {
		return HealthBar{}, false
	}
	return HealthBar{
		Center:   cp.Vector{X: box.Center().X, Y: box.T + healthBarLift},
		Fraction: math.Round(h.Fraction()*10) / 10,
	}, true
}

// Visible reports whether box is on screen.
func (g *Game) Visible(box cp.BB) bool {
	return collision.Intersects(g.camera.View(), box)
}
