package weapon

import (
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/prefabs"
)

// Sword hits whatever its blade overlaps while it is ready.
type Sword struct {
	Weapon
}

func NewSword(spec prefabs.WeaponSpec, screenWidth float64) *Sword {
	return &Sword{Weapon: New(spec, screenWidth)}
}

func (s *Sword) Sprite() component.Sprite { return s.sprite(component.SpriteSword) }
