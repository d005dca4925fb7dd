package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/prefabs"
)

const groundEpsilon = 0.01

// playerState is the animation state derived from physics each step.
type playerState interface {
	Name() string
}

type idleState struct{}

func (idleState) Name() string { return "idle" }

type runningState struct{}

func (runningState) Name() string { return "running" }

type jumpingState struct{}

func (jumpingState) Name() string { return "jumping" }

type fallingState struct{}

func (fallingState) Name() string { return "falling" }

// singletons for each state to avoid allocating on every transition
var (
	stateIdle    playerState = idleState{}
	stateRunning playerState = runningState{}
	stateJumping playerState = jumpingState{}
	stateFalling playerState = fallingState{}
)

// Player is the controllable actor. Speeds are pixels per tick and gravity
// is pixels per tick squared, matching the fixed-step loop.
type Player struct {
	Actor
	Start     cp.Vector
	MoveSpeed float64
	JumpSpeed float64
	Gravity   float64

	left, right bool
	grounded    bool
	state       playerState
}

func NewPlayer(start cp.Vector, spec prefabs.PlayerSpec, gravity float64) *Player {
	w, h := spec.Sprite.Footprint()
	return &Player{
		Actor:     NewActor(start, w, h, spec.Health),
		Start:     start,
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
		Gravity:   gravity,
		state:     stateIdle,
	}
}

func (p *Player) SetMoveLeft(held bool)  { p.left = held }
func (p *Player) SetMoveRight(held bool) { p.right = held }

// MoveDir returns -1, 0 or +1 from the held direction keys.
func (p *Player) MoveDir() float64 {
	switch {
	case p.right && !p.left:
		return 1
	case p.left && !p.right:
		return -1
	}
	return 0
}

// Jump launches the player if it is standing on something.
func (p *Player) Jump() bool {
	if !p.grounded {
		return false
	}
	p.Vel.Y = p.JumpSpeed
	p.grounded = false
	return true
}

// Stop zeroes velocity and forgets held movement keys.
func (p *Player) Stop() {
	p.Vel = cp.Vector{}
	p.left, p.right = false, false
}

func (p *Player) Grounded() bool { return p.grounded }

func (p *Player) State() string { return p.state.Name() }

// Step integrates gravity and moves the player one axis at a time against
// the terrain set.
func (p *Player) Step(terrain *collision.Set) {
	dir := p.MoveDir()
	if dir != 0 {
		p.Facing = dir
	}
	p.Vel.X = dir * p.MoveSpeed
	p.Vel.Y -= p.Gravity

	if p.sweep(terrain, cp.Vector{X: p.Vel.X}) {
		p.Vel.X = 0
	}
	p.grounded = false
	if p.sweep(terrain, cp.Vector{Y: p.Vel.Y}) {
		if p.Vel.Y < 0 {
			p.grounded = true
		}
		p.Vel.Y = 0
	}
	p.updateState()
}

// Carry moves the player along with a platform it stands on.
func (p *Player) Carry(delta cp.Vector, terrain *collision.Set) {
	p.sweep(terrain, cp.Vector{X: delta.X})
	p.sweep(terrain, cp.Vector{Y: delta.Y})
}

// Knockback nudges the player away from a hit once: distance*dt sideways
// and the same upward, with velocity and held keys cleared. The nudge is
// resolved against terrain so it cannot push the player into a wall.
func (p *Player) Knockback(distance, dt float64, right bool, terrain *collision.Set) {
	dx := distance * dt
	if !right {
		dx = -dx
	}
	p.Stop()
	p.sweep(terrain, cp.Vector{X: dx})
	p.sweep(terrain, cp.Vector{Y: distance * dt})
	p.grounded = false
}

// StandingOn reports whether the player's feet rest on the top of box.
func (p *Player) StandingOn(box cp.BB) bool {
	b := p.Bounds()
	if math.Abs(b.B-box.T) > groundEpsilon {
		return false
	}
	return b.L < box.R && box.L < b.R
}

// Respawn puts the player back at its start with full health.
func (p *Player) Respawn() {
	p.Pos = p.Start
	p.Stop()
	p.grounded = false
	p.invincible.Stop()
	p.health.Set(p.health.Max)
	p.Facing = 1
	p.state = stateIdle
}

func (p *Player) Sprite() component.Sprite {
	return component.Sprite{
		Kind:    component.SpritePlayer,
		Variant: p.state.Name(),
		Bounds:  p.Bounds(),
		Visible: true,
		FlipX:   p.Facing < 0,
	}
}

func (p *Player) updateState() {
	switch {
	case !p.grounded && p.Vel.Y > 0:
		p.state = stateJumping
	case !p.grounded && p.Vel.Y < 0:
		p.state = stateFalling
	case p.Vel.X != 0:
		p.state = stateRunning
	default:
		p.state = stateIdle
	}
}

// sweep moves along a single axis and stops at the first body in the way.
// Bodies the player already overlaps are ignored so it can walk out of a
// gate that closed on it. It reports whether movement was cut short.
func (p *Player) sweep(terrain *collision.Set, delta cp.Vector) bool {
	if delta.X == 0 && delta.Y == 0 {
		return false
	}
	from := p.Bounds()
	to := from.Offset(delta)
	swept := cp.BB{
		L: math.Min(from.L, to.L),
		B: math.Min(from.B, to.B),
		R: math.Max(from.R, to.R),
		T: math.Max(from.T, to.T),
	}

	limit := delta
	blocked := false
	for _, body := range terrain.OverlapsAny(swept) {
		box := body.Box
		if collision.Intersects(from, box) {
			continue
		}
		switch {
		case delta.X > 0:
			if d := box.L - from.R; d < limit.X {
				limit.X, blocked = d, true
			}
		case delta.X < 0:
			if d := box.R - from.L; d > limit.X {
				limit.X, blocked = d, true
			}
		case delta.Y > 0:
			if d := box.B - from.T; d < limit.Y {
				limit.Y, blocked = d, true
			}
		case delta.Y < 0:
			if d := box.T - from.B; d > limit.Y {
				limit.Y, blocked = d, true
			}
		}
	}
	p.Pos = p.Pos.Add(limit)
	return blocked
}
