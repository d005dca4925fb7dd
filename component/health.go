package component

// Health is a reusable health pool for anything that can take damage.
// Current always stays within [0, Max].
type Health struct {
	Max     float64
	Current float64

	// OnDeath runs once, on the change that brings Current to zero.
	OnDeath func(h *Health)

	dead bool
}

// NewHealth creates a Health with Current initialized to max.
func NewHealth(max float64) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

// IsAlive reports whether any health remains.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// Damage subtracts amount and returns the health actually removed.
func (h *Health) Damage(amount float64) float64 {
	if h == nil || amount <= 0 {
		return 0
	}
	before := h.Current
	h.Set(h.Current - amount)
	return before - h.Current
}

// Heal restores health up to Max.
func (h *Health) Heal(amount float64) {
	if h == nil || amount <= 0 {
		return
	}
	h.Set(h.Current + amount)
}

// Set assigns Current clamped to [0, Max] and fires OnDeath when it lands on zero.
func (h *Health) Set(v float64) {
	if h == nil {
		return
	}
	if v < 0 {
		v = 0
	}
	if v > h.Max {
		v = h.Max
	}
	h.Current = v
	if h.Current > 0 {
		h.dead = false
		return
	}
	if !h.dead {
		h.dead = true
		if h.OnDeath != nil {
			h.OnDeath(h)
		}
	}
}

// Fraction returns Current/Max, used for health bars.
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}
