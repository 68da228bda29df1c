// Package motion implements per-enemy movement state machines.
//
// A pattern moves its enemy through the shared position animator and tells
// the controller, exactly once, when the enemy should start firing.
package motion

import (
	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/tween"
)

// Result is the signal a pattern returns from a tick
type Result int

const (
	Continue Result = iota
	StartFire
)

// String returns the string representation of the result
func (r Result) String() string {
	switch r {
	case Continue:
		return "Continue"
	case StartFire:
		return "StartFire"
	default:
		return "Unknown"
	}
}

// Pattern moves one enemy. Each enemy owns its own instance.
type Pattern interface {
	DoMotion(dt float64, tr *entity.Transform, anim *tween.Animator) Result
}

// New creates the pattern for kind, parameterized from the spawn position
func New(kind entity.MotionPatternKind, spawn entity.Vec3) Pattern {
	switch kind {
	case entity.MotionFlyBy:
		return NewFlyBy(spawn)
	default:
		return NewEnterStay(spawn.Y)
	}
}
