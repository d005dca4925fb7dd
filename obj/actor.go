package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/component"
)

// Actor is the state shared by the player and every enemy.
type Actor struct {
	Pos cp.Vector
	Vel cp.Vector
	// HalfW and HalfH are half the visual footprint; the collision box is
	// centered on Pos.
	HalfW, HalfH float64
	// Facing is +1 when looking right and -1 when looking left.
	Facing float64

	health     component.Health
	invincible component.Timer
}

func NewActor(pos cp.Vector, width, height, maxHealth float64) Actor {
	return Actor{
		Pos:    pos,
		HalfW:  width / 2,
		HalfH:  height / 2,
		Facing: 1,
		health: component.NewHealth(maxHealth),
	}
}

func (a *Actor) Bounds() cp.BB {
	return collision.BoxAt(a.Pos, a.HalfW, a.HalfH)
}

func (a *Actor) Health() *component.Health { return &a.health }

// OnDeath installs the callback fired when health reaches zero.
func (a *Actor) OnDeath(fn func()) {
	if fn == nil {
		a.health.OnDeath = nil
		return
	}
	a.health.OnDeath = func(*component.Health) { fn() }
}

func (a *Actor) Dead() bool { return !a.health.IsAlive() }

// TakeDamage removes amount from health unless the actor is invincible.
// It reports whether the hit landed.
func (a *Actor) TakeDamage(amount float64) bool {
	if a.invincible.Active() || amount <= 0 {
		return false
	}
	a.health.Damage(amount)
	return true
}

func (a *Actor) Heal(amount float64) { a.health.Heal(amount) }

func (a *Actor) Invincible() bool { return a.invincible.Active() }

func (a *Actor) InvincibleRemaining() float64 { return a.invincible.Remaining }

func (a *Actor) StartInvincibility(seconds float64) { a.invincible.Start(seconds) }

// TickInvincibility decays the invincibility window and reports whether it
// ended during this call.
func (a *Actor) TickInvincibility(dt float64) bool { return a.invincible.Tick(dt) }

// Reverse flips the facing.
func (a *Actor) Reverse() { a.Facing = -a.Facing }
