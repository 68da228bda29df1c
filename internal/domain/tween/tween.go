// Package tween animates a vector from a start value to an end value over a
// fixed duration with an easing curve.
//
// The animator is polled: callers Tick it with the frame delta and read back
// Value, Progress and Done. Nothing here knows what the vector means
// (position, scale), so one implementation serves enemies and HUD bars alike.
//
// Easing runs on a 0→1 gween curve; the animator keeps its own clock so that
// progress checks stay exact across long repeating tweens.
package tween

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

// Mode controls what happens when the duration elapses
type Mode int

const (
	// Once stops at the end value
	Once Mode = iota
	// PingPong reverses direction at each end, forever
	PingPong
	// Loop jumps back to the start value, forever
	Loop
)

// Tween describes one animation
type Tween struct {
	Start    entity.Vec3
	End      entity.Vec3
	Duration float64 // seconds
	Ease     ease.TweenFunc
	Mode     Mode
}

// Animator plays a single tween at a time
type Animator struct {
	tween   Tween
	curve   *gween.Tween
	elapsed float64
	playing bool
}

// Play starts t from the beginning, replacing whatever was playing.
// A nil Ease is linear.
func (a *Animator) Play(t Tween) {
	if t.Ease == nil {
		t.Ease = ease.Linear
	}
	a.tween = t
	a.curve = gween.New(0, 1, float32(t.Duration), t.Ease)
	a.elapsed = 0
	a.playing = true
}

// Stop halts the animation where it is
func (a *Animator) Stop() {
	a.playing = false
}

// IsPlaying reports whether a tween is running and has not completed
func (a *Animator) IsPlaying() bool {
	return a.playing && !a.Done()
}

// Tick advances the animation by dt and returns the current value.
// ok is false when nothing is playing.
func (a *Animator) Tick(dt float64) (value entity.Vec3, ok bool) {
	if !a.playing {
		return entity.Vec3{}, false
	}

	a.elapsed += dt
	if a.tween.Mode == Once && a.elapsed > a.tween.Duration {
		a.elapsed = a.tween.Duration
	}
	return a.Value(), true
}

// Done reports whether a one-shot tween reached its end value.
// Repeating tweens are never done.
func (a *Animator) Done() bool {
	if a.tween.Mode != Once {
		return false
	}
	return a.playing && a.elapsed >= a.tween.Duration
}

// Progress returns linear progress through the current leg in [0,1].
// It is 0 when nothing has been played.
func (a *Animator) Progress() float64 {
	if !a.playing && a.elapsed == 0 {
		return 0
	}
	if a.tween.Duration <= 0 {
		return 1
	}

	ratio := a.elapsed / a.tween.Duration
	if a.tween.Mode == Once {
		return math.Min(ratio, 1)
	}
	return ratio - math.Floor(ratio)
}

// Value returns the eased value at the current time
func (a *Animator) Value() entity.Vec3 {
	if a.curve == nil {
		return a.tween.Start
	}
	if a.tween.Duration <= 0 {
		return a.tween.End
	}

	t := a.Progress()
	if a.tween.Mode == PingPong {
		leg := int(math.Floor(a.elapsed / a.tween.Duration))
		if leg%2 == 1 {
			t = 1 - t
		}
	}
	eased, _ := a.curve.Set(float32(t * a.tween.Duration))
	return a.tween.Start.Lerp(a.tween.End, float64(eased))
}

// Tween returns the tween being played
func (a *Animator) Tween() Tween {
	return a.tween
}
