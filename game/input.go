package game

import (
	"errors"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/weapon"
)

// KeyDown applies the press of a key bound to a.
func (g *Game) KeyDown(a Action) {
	if g.player == nil {
		return
	}
	switch a {
	case ActionMoveLeft:
		g.player.SetMoveLeft(true)
	case ActionMoveRight:
		g.player.SetMoveRight(true)
	case ActionJump:
		g.player.Jump()
	case ActionReset:
		if err := g.Reload(); err != nil {
			g.log.Error("reset failed", "err", err)
		}
	case ActionSwapWeapon:
		g.swap()
	case ActionDebugDamage:
		amount := g.cfg.Combat.DebugDamage
		g.player.Health().Damage(amount)
		for _, e := range g.level.Enemies {
			e.Health().Damage(amount)
		}
		g.log.Debug("debug damage", "amount", amount, "health", g.player.Health().Current)
	case ActionDebugHeal:
		amount := g.cfg.Combat.DebugHeal
		g.player.Heal(amount)
		// a kill waits for the next tick to be removed; it stays dead
		for _, e := range g.level.Enemies {
			if e.Health().IsAlive() {
				e.Health().Heal(amount)
			}
		}
		g.log.Debug("debug heal", "amount", amount, "health", g.player.Health().Current)
	}
}

// KeyUp applies the release of a key bound to a. Only movement keys are
// held; the rest act on press.
func (g *Game) KeyUp(a Action) {
	if g.player == nil {
		return
	}
	switch a {
	case ActionMoveLeft:
		g.player.SetMoveLeft(false)
	case ActionMoveRight:
		g.player.SetMoveRight(false)
	}
}

// PointerMove records the pointer in screen pixels (y down).
func (g *Game) PointerMove(sx, sy float64) {
	g.pointer = cp.Vector{X: sx, Y: sy}
}

// PointerDown handles a button press. The left button raises the equipped
// weapon, and with the bow raised also looses an arrow toward the pointer.
// The right button lowers the weapon and swaps to the other one.
func (g *Game) PointerDown(b Button) {
	if g.player == nil {
		return
	}
	switch b {
	case ButtonLeft:
		g.equipped().Visible = true
		if g.slot == SlotBow {
			g.fire()
		}
	case ButtonRight:
		g.swap()
	}
}

// PointerUp lowers the equipped weapon on left release. The sword is
// always lowered too so a swap mid swing cannot leave it raised.
func (g *Game) PointerUp(b Button) {
	if g.player == nil || b != ButtonLeft {
		return
	}
	g.equipped().Visible = false
	g.sword.Visible = false
}

func (g *Game) swap() {
	g.equipped().Visible = false
	if g.slot == SlotSword {
		g.slot = SlotBow
	} else {
		g.slot = SlotSword
	}
	g.log.Debug("weapon swapped", "equipped", g.slot)
}

func (g *Game) fire() {
	target := g.pointerWorld()
	g.bow.Update(g.player.Pos, g.pointer.X, target)
	a, err := g.bow.Fire(target)
	if err != nil {
		if !errors.Is(err, weapon.ErrNotReady) {
			g.log.Warn("fire failed", "err", err)
		}
		return
	}
	g.log.Debug("arrow fired", "x", a.Pos.X, "y", a.Pos.Y, "arrows", len(g.bow.Arrows()))
}

// SetRegistry swaps the prefabs used by later builds. The running level
// keeps its objects until the next Setup or Reload.
func (g *Game) SetRegistry(reg *prefabs.Registry) {
	if reg != nil {
		g.reg = reg
	}
}
