package weapon

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/component"
)

// Arrow is a projectile falling under gravity. Velocity is in pixels per
// second.
type Arrow struct {
	Pos     cp.Vector
	Vel     cp.Vector
	Angle   float64
	Life    float64
	Damage  float64
	Gravity float64

	angleOffset  float64
	halfW, halfH float64
}

// Step integrates one frame: position first, then gravity, then lifetime.
func (a *Arrow) Step(dt float64) {
	a.Pos = a.Pos.Add(a.Vel.Mult(dt))
	a.Vel.Y -= a.Gravity * dt
	a.Life -= dt
	a.face()
}

func (a *Arrow) face() {
	a.Angle = -mgl64.RadToDeg(math.Atan2(a.Vel.Y, a.Vel.X)) + a.angleOffset
}

func (a *Arrow) Expired() bool { return a.Life <= 0 }

func (a *Arrow) Bounds() cp.BB { return collision.BoxAt(a.Pos, a.halfW, a.halfH) }

func (a *Arrow) Sprite() component.Sprite {
	return component.Sprite{
		Kind:    component.SpriteArrow,
		Bounds:  a.Bounds(),
		Angle:   a.Angle,
		Visible: true,
	}
}
