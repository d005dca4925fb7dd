package game

import (
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/obj"
)

// Tick advances the level by one fixed step. dt is the step length in
// seconds; the player, platforms and enemy AI move a fixed amount per call,
// timers and arrows scale by dt.
func (g *Game) Tick(dt float64) Outcome {
	if g.state != StatePlaying || g.level == nil {
		return Continue
	}
	g.ticks++
	lvl, p := g.level, g.player

	g.stepPlatforms()
	p.Step(lvl.Terrain)

	if out, hit := g.stepEnemies(dt); hit {
		return out
	}

	g.updateWeapons()
	g.sword.TickCooldown(dt)
	g.bow.TickCooldown(dt)
	g.swing()

	g.stepArrows(dt)

	if n := lvl.SyncGates(); n > 0 {
		g.log.Debug("gates synced", "changed", n)
	}

	g.collectCoins()

	p.TickInvincibility(dt)

	if reason, dead := g.lethal(); dead {
		g.log.Debug("player lost", "reason", reason, "map", lvl.Name)
		return g.reloadOutcome()
	}
	if g.atExit() {
		if err := g.Advance(); err != nil {
			g.log.Error("advance failed, reloading", "err", err)
			return g.reloadOutcome()
		}
		return LevelAdvance
	}

	g.camera.Update(cp.Vector{X: p.Pos.X, Y: p.Pos.Y - p.Vel.Y})
	return Continue
}

// stepPlatforms moves every platform and carries the player along with any
// solid platform it rides or was swept into.
func (g *Game) stepPlatforms() {
	p := g.player
	for _, pl := range g.level.Platforms {
		before := pl.Bounds()
		delta := pl.Step()
		if !pl.Solid() || delta == (cp.Vector{}) {
			continue
		}
		if p.StandingOn(before) || collision.Intersects(p.Bounds(), pl.Bounds()) {
			p.Carry(delta, g.level.Terrain)
		}
	}
}

// stepEnemies reports hit=true when an enemy touched the player, which
// ends the tick.
func (g *Game) stepEnemies(dt float64) (Outcome, bool) {
	lvl, p := g.level, g.player
	for _, e := range slices.Clone(lvl.Enemies) {
		e.Step(dt)
		if e.Base().Dead() {
			g.killEnemy(e)
			continue
		}
		if !collision.Intersects(p.Bounds(), e.Bounds()) {
			continue
		}

		landed := p.TakeDamage(g.cfg.Combat.ContactDamage)
		if !p.Invincible() {
			p.StartInvincibility(g.cfg.Combat.InvincibleSeconds)
		}
		p.Knockback(g.cfg.Combat.KnockbackDistance, dt, p.Pos.X > e.Base().Pos.X, lvl.Terrain)
		g.log.Debug("player hit", "enemy", e.Kind(), "landed", landed, "health", p.Health().Current)

		if p.Dead() {
			return g.reloadOutcome(), true
		}
		return PlayerHit, true
	}
	return Continue, false
}

// updateWeapons refreshes weapon transforms from the player and pointer.
// The bow is always updated so arrows leave from the right place.
func (g *Game) updateWeapons() {
	pos := g.player.Pos
	target := g.pointerWorld()
	if g.sword.Visible {
		g.sword.Update(pos, g.pointer.X, target)
	}
	g.bow.Update(pos, g.pointer.X, target)
}

// swing applies one sword strike when the sword is ready.
func (g *Game) swing() {
	if !g.sword.Ready() {
		return
	}
	box := g.sword.Bounds()
	for _, e := range collision.OverlapsAny(collision.Box(box), slices.Clone(g.level.Enemies)) {
		g.hitEnemy(e, g.sword.Damage, "sword")
	}
	for _, s := range collision.OverlapsAny(collision.Box(box), g.level.Switches) {
		s.Trigger()
		g.log.Debug("switch triggered", "switch", s.ID, "on", s.On(), "by", "sword")
	}
	g.sword.ResetCooldown()
}

// stepArrows moves every live arrow and resolves at most one collision per
// arrow: enemy, then switch, then terrain.
func (g *Game) stepArrows(dt float64) {
	lvl := g.level
	for _, a := range g.bow.Arrows() {
		a.Step(dt)
		if a.Expired() || a.Pos.Y < g.cfg.World.ArrowFloor {
			g.bow.Remove(a)
			continue
		}
		box := collision.Box(a.Bounds())
		if hits := collision.OverlapsAny(box, lvl.Enemies); len(hits) > 0 {
			g.hitEnemy(hits[0], a.Damage, "arrow")
			g.bow.Remove(a)
			continue
		}
		if hits := collision.OverlapsAny(box, lvl.Switches); len(hits) > 0 {
			hits[0].Trigger()
			g.log.Debug("switch triggered", "switch", hits[0].ID, "on", hits[0].On(), "by", "arrow")
			g.bow.Remove(a)
			continue
		}
		if lvl.Terrain.Collides(a.Bounds()) {
			g.bow.Remove(a)
		}
	}
}

func (g *Game) hitEnemy(e obj.Enemy, damage float64, by string) {
	e.TakeDamage(damage)
	g.log.Debug("enemy hit", "enemy", e.Kind(), "by", by, "health", e.Health().Current)
	if e.Base().Dead() {
		g.killEnemy(e)
	}
}

func (g *Game) killEnemy(e obj.Enemy) {
	if g.level.RemoveEnemy(e) {
		g.log.Debug("enemy killed", "enemy", e.Kind(), "remaining", len(g.level.Enemies))
	}
}

func (g *Game) collectCoins() {
	pb := g.player.Bounds()
	for _, c := range slices.Clone(g.level.Coins) {
		if collision.Intersects(pb, c.Box) {
			g.level.RemoveCoin(c)
			g.score++
			g.log.Debug("coin collected", "score", g.score)
		}
	}
}

// lethal reports why the player cannot continue, if it cannot.
func (g *Game) lethal() (string, bool) {
	p := g.player
	pb := p.Bounds()
	for _, h := range g.level.Hazards {
		if collision.Intersects(pb, h.Box) {
			return "hazard", true
		}
	}
	for _, pl := range g.level.Platforms {
		if pl.Deadly() && (collision.Intersects(pb, pl.Bounds()) || p.StandingOn(pl.Bounds())) {
			return "deadly platform", true
		}
	}
	if p.Dead() {
		return "health", true
	}
	if p.Pos.Y < g.cfg.World.PlayerFloor {
		return "fell", true
	}
	return "", false
}

func (g *Game) atExit() bool {
	pb := g.player.Bounds()
	for _, x := range g.level.Exits {
		if collision.Intersects(pb, x.Box) {
			return true
		}
	}
	for _, pl := range g.level.Platforms {
		if pl.IsExit() && (collision.Intersects(pb, pl.Bounds()) || g.player.StandingOn(pl.Bounds())) {
			return true
		}
	}
	return false
}

// reloadOutcome rebuilds the current level. A failed rebuild leaves the
// old level running.
func (g *Game) reloadOutcome() Outcome {
	if err := g.Reload(); err != nil {
		g.log.Error("reload failed", "err", err)
		return Continue
	}
	return LevelReload
}

func (g *Game) pointerWorld() cp.Vector {
	return g.camera.ScreenToWorld(g.pointer.X, g.pointer.Y)
}
