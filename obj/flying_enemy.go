package obj

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/prefabs"
)

// Flyer wanders between random points around its spawn, ignoring terrain.
//
// Targets use a uniform angle and a uniform radius, which clusters them
// toward the spawn rather than spreading them evenly over the disk.
type Flyer struct {
	Actor
	Origin cp.Vector
	Radius float64
	Speed  float64
	Target cp.Vector

	rng     *rand.Rand
	terrain *collision.Set
}

func NewFlyer(pos cp.Vector, spec prefabs.FlyerSpec, rng *rand.Rand) *Flyer {
	w, h := spec.Sprite.Footprint()
	f := &Flyer{
		Actor:  NewActor(pos, w, h, spec.Health),
		Origin: pos,
		Radius: spec.Radius,
		Speed:  spec.Speed,
		rng:    rng,
	}
	f.pickTarget()
	return f
}

func (f *Flyer) Kind() EnemyKind { return KindFlyer }

func (f *Flyer) Base() *Actor { return &f.Actor }

func (f *Flyer) SetEnvironment(terrain *collision.Set) { f.terrain = terrain }

// Step flies toward the target, choosing a new one once it is within one
// stride or reached exactly.
func (f *Flyer) Step(dt float64) {
	if f.terrain == nil {
		panic(fmt.Errorf("flyer: %w", ErrNoEnvironment))
	}
	d := f.Target.Sub(f.Pos)
	dist := d.Length()
	if dist < f.Speed || dist == 0 {
		f.pickTarget()
		return
	}
	f.Pos = f.Pos.Add(d.Mult(f.Speed / dist))
}

func (f *Flyer) pickTarget() {
	angle := f.rng.Float64() * 2 * math.Pi
	r := f.rng.Float64() * f.Radius
	f.Target = cp.Vector{
		X: f.Origin.X + r*math.Cos(angle),
		Y: f.Origin.Y + r*math.Sin(angle),
	}
	dir := 1.0
	if f.Target.X < f.Pos.X {
		dir = -1
	}
	if dir != f.Facing {
		f.Reverse()
	}
}

func (f *Flyer) Sprite() component.Sprite {
	return component.Sprite{
		Kind:    component.SpriteFlyer,
		Bounds:  f.Bounds(),
		Visible: true,
		FlipX:   f.Facing < 0,
	}
}
