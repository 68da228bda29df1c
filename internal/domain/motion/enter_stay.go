package motion

import (
	"github.com/tanema/gween/ease"

	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/tween"
)

// EnterStay timing and placement, in world units and seconds
const (
	EnterStartX   = 5.0
	EnterRestX    = 2.0
	EnterDuration = 5.0
	StayBobHeight = 0.6
	StayBobPeriod = 3.0
)

// EnterStayPhase is the state of an EnterStay pattern
type EnterStayPhase int

const (
	PhaseIdle EnterStayPhase = iota
	PhaseEntering
	PhaseStaying
)

// String returns the string representation of the phase
func (p EnterStayPhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseEntering:
		return "Entering"
	case PhaseStaying:
		return "Staying"
	default:
		return "Unknown"
	}
}

// EnterStay slides in from the right edge at a fixed height, stops, then
// bobs up and down forever. It starts firing when it stops.
type EnterStay struct {
	EnterHeight float64
	phase       EnterStayPhase
}

// NewEnterStay creates an EnterStay pattern entering at the given height
func NewEnterStay(enterHeight float64) *EnterStay {
	return &EnterStay{EnterHeight: enterHeight}
}

// Phase returns the current phase
func (m *EnterStay) Phase() EnterStayPhase {
	return m.phase
}

// DoMotion advances the pattern by one tick
func (m *EnterStay) DoMotion(_ float64, tr *entity.Transform, anim *tween.Animator) Result {
	switch m.phase {
	case PhaseIdle:
		tr.Position = entity.Vec3{X: EnterStartX, Y: m.EnterHeight}
		anim.Play(tween.Tween{
			Start:    tr.Position,
			End:      entity.Vec3{X: EnterRestX, Y: m.EnterHeight},
			Duration: EnterDuration,
			Ease:     ease.OutQuad,
			Mode:     tween.Once,
		})
		m.phase = PhaseEntering

	case PhaseEntering:
		if anim.Progress() < 1 {
			return Continue
		}
		m.phase = PhaseStaying
		anim.Play(tween.Tween{
			Start:    tr.Position,
			End:      tr.Position.Add(entity.UnitY.Scale(StayBobHeight)),
			Duration: StayBobPeriod,
			Ease:     ease.InOutQuad,
			Mode:     tween.PingPong,
		})
		return StartFire
	}

	return Continue
}
