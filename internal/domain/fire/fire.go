// Package fire implements per-enemy bullet emission state machines.
//
// A pattern is dormant until its enemy's motion says to start firing; from
// then on it is executed once per tick and returns the bullets to spawn.
// Patterns never spawn anything themselves.
package fire

import (
	"math"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

// Pattern emits bullets for one enemy. Each enemy owns its own instance.
type Pattern interface {
	Execute(dt float64, origin, target entity.Vec3) []entity.BulletSpawn
}

// New creates the pattern for kind using the shared visual of the enemy's bullet kind
func New(kind entity.FirePatternKind, visual *entity.BulletVisual) Pattern {
	switch kind {
	case entity.FireAimBurst:
		return NewAimBurst(visual)
	default:
		return NewSpiral(visual)
	}
}

// enemyBullet builds a spawn request travelling along angle at speed
func enemyBullet(origin entity.Vec3, angle, speed float64, visual *entity.BulletVisual) entity.BulletSpawn {
	return entity.BulletSpawn{
		Position: origin,
		Angle:    angle,
		Velocity: entity.Vec3{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Side:     entity.SideEnemy,
		Visual:   visual,
	}
}

// wrapAngle maps a into [0, 2π)
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
