package component

// Timer counts seconds down to zero. A zero Timer is inactive.
type Timer struct {
	Remaining float64
}

// Start arms the timer for d seconds.
func (t *Timer) Start(d float64) {
	if d < 0 {
		d = 0
	}
	t.Remaining = d
}

func (t *Timer) Active() bool { return t.Remaining > 0 }

// Tick decays the timer by dt and reports whether it expired on this call.
func (t *Timer) Tick(dt float64) bool {
	if t.Remaining <= 0 {
		return false
	}
	t.Remaining -= dt
	if t.Remaining <= 0 {
		t.Remaining = 0
		return true
	}
	return false
}

// Stop clears the timer.
func (t *Timer) Stop() { t.Remaining = 0 }
