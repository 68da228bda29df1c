package entity

// Life tracks the hit points of a player or enemy.
// Remaining stays within [0, Max]; the transition to dead happens once.
type Life struct {
	Max       float64
	Remaining float64
	dead      bool
}

// NewLife creates a full life pool
func NewLife(maxLife float64) Life {
	return Life{Max: maxLife, Remaining: maxLife}
}

// Apply subtracts the damage summed for this tick.
// changed reports whether Remaining moved, died is true only on the tick
// the pool reaches zero.
func (l *Life) Apply(total float64) (changed, died bool) {
	if l.dead || total <= 0 {
		return false, false
	}

	l.Remaining -= total
	if l.Remaining <= 0 {
		l.Remaining = 0
		l.dead = true
		return true, true
	}
	return true, false
}

// IsAlive reports whether the pool has not been depleted
func (l Life) IsAlive() bool {
	return !l.dead
}

// Ratio returns remaining life as a fraction of max life
func (l Life) Ratio() float64 {
	if l.Max <= 0 {
		return 0
	}
	return l.Remaining / l.Max
}
