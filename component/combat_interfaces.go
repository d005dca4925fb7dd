package component

// Steppable advances private state by one simulation step.
type Steppable interface {
	Step(dt float64)
}

// Damageable exposes a health pool to combat resolution.
type Damageable interface {
	TakeDamage(amount float64) bool
	Health() *Health
}

// Drawable reports how an object should appear this frame.
type Drawable interface {
	Sprite() Sprite
}
