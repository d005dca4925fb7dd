// Package weapon holds the player's held weapons: the pivot-anchored aiming
// shared by all of them, the melee sword and the bow with its arrows.
package weapon

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/prefabs"
)

// ErrNotReady is returned when a weapon is asked to act while hidden or
// cooling down.
var ErrNotReady = errors.New("weapon: not ready")

// Weapon is a sprite held at the player's hand and rotated about its grip.
type Weapon struct {
	Name   string
	Center cp.Vector
	// Angle is clockwise degrees.
	Angle    float64
	Visible  bool
	Damage   float64
	Cooldown component.Cooldown

	pivotToCenter mgl64.Vec2
	hand          mgl64.Vec2
	angleOffset   float64
	halfW, halfH  float64
	screenMid     float64
}

// New builds a weapon from its prefab. screenWidth decides which half of the
// screen mirrors the hand offset.
func New(spec prefabs.WeaponSpec, screenWidth float64) Weapon {
	scale := spec.Sprite.Scale
	if scale == 0 {
		scale = 1
	}
	w, h := spec.Sprite.Footprint()
	return Weapon{
		Name:     spec.Name,
		Damage:   spec.Damage,
		Cooldown: component.NewCooldown(spec.Cooldown),
		pivotToCenter: mgl64.Vec2{
			(spec.Sprite.Width/2 - spec.Pivot.X) * scale,
			(spec.Sprite.Height/2 - spec.Pivot.Y) * scale,
		},
		hand:        mgl64.Vec2{spec.Hand.X, spec.Hand.Y},
		angleOffset: spec.AngleOffset,
		halfW:       w / 2,
		halfH:       h / 2,
		screenMid:   screenWidth / 2,
	}
}

// PivotToCenter is the unrotated offset from the grip to the sprite center.
func (w *Weapon) PivotToCenter() cp.Vector {
	return cp.Vector{X: w.pivotToCenter.X(), Y: w.pivotToCenter.Y()}
}

// HandPoint is where the grip sits, mirrored to the side of the screen the
// pointer is on.
func (w *Weapon) HandPoint(player cp.Vector, pointerScreenX float64) cp.Vector {
	dx := w.hand.X()
	if pointerScreenX < w.screenMid {
		dx = -dx
	}
	return cp.Vector{X: player.X + dx, Y: player.Y + w.hand.Y()}
}

// UpdateAngle aims the weapon from the hand toward pointerWorld.
func (w *Weapon) UpdateAngle(player cp.Vector, pointerScreenX float64, pointerWorld cp.Vector) {
	d := pointerWorld.Sub(w.HandPoint(player, pointerScreenX))
	w.Angle = -mgl64.RadToDeg(math.Atan2(d.Y, d.X)) + w.angleOffset
}

// UpdatePosition places the sprite center so the grip stays on the hand at
// the current angle.
func (w *Weapon) UpdatePosition(player cp.Vector, pointerScreenX float64) {
	hand := w.HandPoint(player, pointerScreenX)
	off := mgl64.Rotate2D(-mgl64.DegToRad(w.Angle)).Mul2x1(w.pivotToCenter)
	w.Center = cp.Vector{X: hand.X + off.X(), Y: hand.Y + off.Y()}
}

// Update aims and positions the weapon in one call.
func (w *Weapon) Update(player cp.Vector, pointerScreenX float64, pointerWorld cp.Vector) {
	w.UpdateAngle(player, pointerScreenX, pointerWorld)
	w.UpdatePosition(player, pointerScreenX)
}

// Ready reports whether the weapon is equipped and off cooldown.
func (w *Weapon) Ready() bool { return w.Visible && w.Cooldown.Elapsed() }

func (w *Weapon) TickCooldown(dt float64) { w.Cooldown.Tick(dt) }

func (w *Weapon) ResetCooldown() { w.Cooldown.Reset() }

// Bounds is the axis aligned box around the rotated sprite.
func (w *Weapon) Bounds() cp.BB {
	rot := mgl64.Rotate2D(-mgl64.DegToRad(w.Angle))
	corners := [4]mgl64.Vec2{
		{-w.halfW, -w.halfH}, {w.halfW, -w.halfH},
		{w.halfW, w.halfH}, {-w.halfW, w.halfH},
	}
	bb := cp.BB{L: math.Inf(1), B: math.Inf(1), R: math.Inf(-1), T: math.Inf(-1)}
	for _, c := range corners {
		p := rot.Mul2x1(c)
		bb.L = math.Min(bb.L, p.X())
		bb.R = math.Max(bb.R, p.X())
		bb.B = math.Min(bb.B, p.Y())
		bb.T = math.Max(bb.T, p.Y())
	}
	return bb.Offset(w.Center)
}

func (w *Weapon) sprite(kind component.SpriteKind) component.Sprite {
	return component.Sprite{
		Kind:    kind,
		Variant: w.Name,
		Bounds:  collision.BoxAt(w.Center, w.halfW, w.halfH),
		Angle:   w.Angle,
		Visible: w.Visible,
	}
}
