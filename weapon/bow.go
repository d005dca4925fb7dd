package weapon

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/prefabs"
)

// Bow fires arrows toward the pointer and owns them until they are removed.
type Bow struct {
	Weapon
	Arrow prefabs.ArrowSpec

	arrows []*Arrow
}

func NewBow(spec prefabs.BowSpec, screenWidth float64) *Bow {
	return &Bow{Weapon: New(spec.WeaponSpec, screenWidth), Arrow: spec.Arrow}
}

// Fire looses one arrow from the bow center toward target. It returns
// ErrNotReady while the bow is hidden or cooling down.
func (b *Bow) Fire(target cp.Vector) (*Arrow, error) {
	if !b.Ready() {
		return nil, fmt.Errorf("bow: fire: %w", ErrNotReady)
	}
	dir := target.Sub(b.Center)
	if l := dir.Length(); l > 0 {
		dir = dir.Mult(1 / l)
	} else {
		dir = cp.Vector{X: 1}
	}
	w, h := b.Arrow.Sprite.Footprint()
	a := &Arrow{
		Pos:         b.Center,
		Vel:         dir.Mult(b.Arrow.Speed),
		Life:        b.Arrow.Lifetime,
		Damage:      b.Arrow.Damage,
		Gravity:     b.Arrow.Gravity,
		angleOffset: b.Arrow.AngleOffset,
		halfW:       w / 2,
		halfH:       h / 2,
	}
	a.face()
	b.arrows = append(b.arrows, a)
	b.ResetCooldown()
	return a, nil
}

// Arrows returns a snapshot of the live arrows.
func (b *Bow) Arrows() []*Arrow {
	out := make([]*Arrow, len(b.arrows))
	copy(out, b.arrows)
	return out
}

// Remove drops a and reports whether it was live.
func (b *Bow) Remove(a *Arrow) bool {
	for i, live := range b.arrows {
		if live == a {
			b.arrows = append(b.arrows[:i], b.arrows[i+1:]...)
			return true
		}
	}
	return false
}

func (b *Bow) Has(a *Arrow) bool {
	for _, live := range b.arrows {
		if live == a {
			return true
		}
	}
	return false
}

func (b *Bow) Clear() { b.arrows = nil }

func (b *Bow) Sprite() component.Sprite { return b.sprite(component.SpriteBow) }
