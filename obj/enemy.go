package obj

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/collision"
	"github.com/milk9111/platformer/component"
	"github.com/milk9111/platformer/prefabs"
)

// ErrNoEnvironment is the panic value of an enemy stepped before its
// terrain was injected.
var ErrNoEnvironment = errors.New("obj: enemy stepped before SetEnvironment")

// EnemyKind tags the concrete enemy behind the Enemy interface.
type EnemyKind int

const (
	KindGroundPatroller EnemyKind = iota
	KindFlyer
)

func (k EnemyKind) String() string {
	switch k {
	case KindGroundPatroller:
		return "ground_patroller"
	case KindFlyer:
		return "flyer"
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

// Enemy is an autonomous actor driven by the simulation core.
type Enemy interface {
	component.Steppable
	component.Damageable
	component.Drawable
	collision.Shape

	Kind() EnemyKind
	Base() *Actor
	// SetEnvironment hands the enemy the terrain of the level it lives in.
	// It is called once per level build, before the first Step.
	SetEnvironment(terrain *collision.Set)
}

// GroundPatroller walks back and forth, turning around before it would
// walk into a wall or off a ledge. The look-ahead only holds for speeds up
// to a quarter tile per step; faster patrollers can skip past an edge.
type GroundPatroller struct {
	Actor
	Speed float64

	terrain *collision.Set
}

func NewGroundPatroller(pos cp.Vector, spec prefabs.PatrollerSpec) *GroundPatroller {
	w, h := spec.Sprite.Footprint()
	return &GroundPatroller{
		Actor: NewActor(pos, w, h, spec.Health),
		Speed: spec.Speed,
	}
}

func (g *GroundPatroller) Kind() EnemyKind { return KindGroundPatroller }

func (g *GroundPatroller) Base() *Actor { return &g.Actor }

func (g *GroundPatroller) SetEnvironment(terrain *collision.Set) { g.terrain = terrain }

// Step moves one stride forward or turns around in place.
func (g *GroundPatroller) Step(dt float64) {
	if g.terrain == nil {
		panic(fmt.Errorf("ground patroller: %w", ErrNoEnvironment))
	}
	delta := cp.Vector{X: g.Facing * g.Speed}
	next := g.Bounds().Offset(delta)
	if g.terrain.Collides(next) || !g.groundBeneath(next) {
		g.Reverse()
		return
	}
	g.Pos = g.Pos.Add(delta)
}

// GroundSamples returns the four points checked for footing under box,
// one pixel below its bottom edge, leading edge last.
func (g *GroundPatroller) GroundSamples(box cp.BB) [4]cp.Vector {
	w := box.R - box.L
	cx := (box.L + box.R) / 2
	y := box.B - 1
	offsets := [4]float64{-w / 4, 0, w / 4, w / 2}
	var pts [4]cp.Vector
	for i, off := range offsets {
		pts[i] = cp.Vector{X: cx + off*g.Facing, Y: y}
	}
	return pts
}

func (g *GroundPatroller) groundBeneath(box cp.BB) bool {
	for _, p := range g.GroundSamples(box) {
		if !g.terrain.Solid(p) {
			return false
		}
	}
	return true
}

func (g *GroundPatroller) Sprite() component.Sprite {
	return component.Sprite{
		Kind:    component.SpritePatroller,
		Bounds:  g.Bounds(),
		Visible: true,
		FlipX:   g.Facing < 0,
	}
}
