package fire

import (
	"math"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

// Spiral defaults
const (
	SpiralArms     = 6
	SpiralSpeed    = 4.3
	SpiralInterval = 0.04
	SpiralRotation = 35 * math.Pi / 180 // rad/s

	// AimReference is the direction of the player's side of the field
	AimReference = math.Pi

	// Volleys whose iteration%SafeLaneCycle is below SafeLaneVolleys skip the
	// arm closest to AimReference.
	SafeLaneCycle   = 25
	SafeLaneVolleys = 5
)

// Spiral fires evenly spaced arms from a slowly rotating base angle.
// For a few volleys out of every cycle the arm pointing at the player is left
// out, opening a lane to pass through.
type Spiral struct {
	Arms          int
	Speed         float64
	Interval      float64
	RotationSpeed float64
	Visual        *entity.BulletVisual

	timer     float64
	baseAngle float64
	iteration int
}

// NewSpiral creates a spiral with default parameters
func NewSpiral(visual *entity.BulletVisual) *Spiral {
	return &Spiral{
		Arms:          SpiralArms,
		Speed:         SpiralSpeed,
		Interval:      SpiralInterval,
		RotationSpeed: SpiralRotation,
		Visual:        visual,
	}
}

// Iteration returns the number of volleys fired so far
func (s *Spiral) Iteration() int {
	return s.iteration
}

// BaseAngle returns the current base angle in [0, 2π)
func (s *Spiral) BaseAngle() float64 {
	return s.baseAngle
}

// Execute advances the spiral by dt, firing at most one volley
func (s *Spiral) Execute(dt float64, origin, _ entity.Vec3) []entity.BulletSpawn {
	var out []entity.BulletSpawn

	s.timer += dt
	if s.timer >= s.Interval {
		s.timer = 0
		out = s.volley(origin)
	}

	s.baseAngle = wrapAngle(s.baseAngle + s.RotationSpeed*dt)
	return out
}

func (s *Spiral) volley(origin entity.Vec3) []entity.BulletSpawn {
	if s.Arms <= 0 {
		return nil
	}

	delta := 2 * math.Pi / float64(s.Arms)
	angle := wrapAngle(s.baseAngle)
	aim := ClosestArm(angle, s.Arms, AimReference)

	s.iteration++
	safeLane := s.iteration%SafeLaneCycle < SafeLaneVolleys

	out := make([]entity.BulletSpawn, 0, s.Arms)
	for k := 0; k < s.Arms; k++ {
		if !safeLane || k != aim {
			out = append(out, enemyBullet(origin, angle, s.Speed, s.Visual))
		}
		angle = wrapAngle(angle + delta)
	}
	return out
}

// ClosestArm returns the index of the arm whose angle is nearest to ref.
// Ties go to the lowest index.
func ClosestArm(base float64, arms int, ref float64) int {
	delta := 2 * math.Pi / float64(arms)
	best := 0
	bestDist := math.Inf(1)
	for k := 0; k < arms; k++ {
		d := math.Abs(wrapAngle(base+delta*float64(k)) - ref)
		if d < bestDist {
			best = k
			bestDist = d
		}
	}
	return best
}
