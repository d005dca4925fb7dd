package component

// Cooldown gates a repeated action to once per Duration seconds.
type Cooldown struct {
	Duration  float64
	Remaining float64
}

func NewCooldown(duration float64) Cooldown {
	return Cooldown{Duration: duration}
}

// Elapsed reports whether the action may run again.
func (c *Cooldown) Elapsed() bool { return c.Remaining <= 0 }

// Reset restarts the full cooldown.
func (c *Cooldown) Reset() { c.Remaining = c.Duration }

// Tick decays the remaining time, never below zero.
func (c *Cooldown) Tick(dt float64) {
	c.Remaining -= dt
	if c.Remaining < 0 {
		c.Remaining = 0
	}
}
