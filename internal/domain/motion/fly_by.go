package motion

import (
	"github.com/tanema/gween/ease"

	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/tween"
)

// FlyBy timing, in seconds and world units
const (
	FlyByDuration = 5.0
	FlyByDistance = 6.0
	FlyByFireAt   = 0.3 // progress
	flyByForward  = -1.0
	flyByLift     = 0.25
)

// FlyBy crosses the field once in a straight line and opens fire after
// covering part of the way.
type FlyBy struct {
	Start     entity.Vec3
	Direction entity.Vec3
	started   bool
	fired     bool
}

// NewFlyBy creates a FlyBy from its spawn point.
// Spawning above the center line drifts up, otherwise down.
func NewFlyBy(start entity.Vec3) *FlyBy {
	dir := entity.Vec3{X: flyByForward, Y: -flyByLift}
	if start.Y > 0 {
		dir.Y = flyByLift
	}
	return &FlyBy{Start: start, Direction: dir}
}

// HasFired reports whether the start-fire signal was already given
func (m *FlyBy) HasFired() bool {
	return m.fired
}

// DoMotion advances the pattern by one tick
func (m *FlyBy) DoMotion(_ float64, tr *entity.Transform, anim *tween.Animator) Result {
	if !m.started {
		m.started = true
		tr.Position = m.Start
		anim.Play(tween.Tween{
			Start:    m.Start,
			End:      m.Start.Add(m.Direction.Scale(FlyByDistance)),
			Duration: FlyByDuration,
			Ease:     ease.OutQuad,
			Mode:     tween.Once,
		})
		return Continue
	}

	if !m.fired && anim.Progress() >= FlyByFireAt {
		m.fired = true
		return StartFire
	}
	return Continue
}
