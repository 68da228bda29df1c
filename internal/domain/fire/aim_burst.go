package fire

import (
	"math"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

// AimBurst defaults
const (
	AimBurstCount    = 6
	AimBurstSpeed    = 2.1
	AimBurstInterval = 0.04
)

// AimBurst fires a fixed number of bullets at the player, one per interval,
// then goes quiet for good.
type AimBurst struct {
	Count    int
	Speed    float64
	Interval float64
	Visual   *entity.BulletVisual

	timer float64
	fired int
}

// NewAimBurst creates a burst with default parameters
func NewAimBurst(visual *entity.BulletVisual) *AimBurst {
	return &AimBurst{
		Count:    AimBurstCount,
		Speed:    AimBurstSpeed,
		Interval: AimBurstInterval,
		Visual:   visual,
	}
}

// Fired returns how many bullets have been emitted
func (a *AimBurst) Fired() int {
	return a.fired
}

// Done reports whether the burst is exhausted
func (a *AimBurst) Done() bool {
	return a.fired >= a.Count
}

// Execute advances the burst by dt, firing at most one bullet at target
func (a *AimBurst) Execute(dt float64, origin, target entity.Vec3) []entity.BulletSpawn {
	if a.Done() {
		return nil
	}

	a.timer += dt
	if a.timer < a.Interval {
		return nil
	}
	a.timer = 0
	a.fired++

	dir := target.Sub(origin).NormalizeOr(entity.UnitX)
	b := enemyBullet(origin, math.Atan2(dir.Y, dir.X), a.Speed, a.Visual)
	b.Velocity = dir.Scale(a.Speed)
	return []entity.BulletSpawn{b}
}
