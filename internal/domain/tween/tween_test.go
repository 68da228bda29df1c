package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

func TestAnimator_Easing(t *testing.T) {
	tests := []struct {
		name string
		ease ease.TweenFunc
		half float64
	}{
		{"linear", ease.Linear, 0.5},
		{"inQuad", ease.InQuad, 0.25},
		{"outQuad", ease.OutQuad, 0.75},
		{"inOutQuad", ease.InOutQuad, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Animator
			a.Play(Tween{End: entity.Vec3{X: 1}, Duration: 2, Ease: tt.ease})

			v, _ := a.Tick(1)
			assert.InDelta(t, tt.half, v.X, 1e-6)

			v, _ = a.Tick(1)
			assert.Equal(t, 1.0, v.X, "ends exactly on the end value")
		})
	}
}

func TestAnimator_DefaultEaseIsLinear(t *testing.T) {
	var a Animator
	a.Play(Tween{End: entity.Vec3{Y: 4}, Duration: 4})

	v, _ := a.Tick(1)
	assert.InDelta(t, 1.0, v.Y, 1e-6)
	assert.NotNil(t, a.Tween().Ease)
}

func TestAnimator_ZeroDuration(t *testing.T) {
	var a Animator
	a.Play(Tween{Start: entity.Vec3{X: 1}, End: entity.Vec3{X: 3}})

	v, ok := a.Tick(0)
	assert.True(t, ok)
	assert.Equal(t, entity.Vec3{X: 3}, v)
	assert.True(t, a.Done())
}

func TestAnimator_Once(t *testing.T) {
	var a Animator
	a.Play(Tween{
		Start:    entity.Vec3{X: 5},
		End:      entity.Vec3{X: 2},
		Duration: 2,
		Ease:     ease.Linear,
		Mode:     Once,
	})

	v, ok := a.Tick(1)
	assert.True(t, ok)
	assert.InDelta(t, 3.5, v.X, 1e-6)
	assert.InDelta(t, 0.5, a.Progress(), 1e-6)
	assert.False(t, a.Done())
	assert.True(t, a.IsPlaying())

	v, _ = a.Tick(5)
	assert.InDelta(t, 2.0, v.X, 1e-6)
	assert.InDelta(t, 1.0, a.Progress(), 1e-6)
	assert.True(t, a.Done())
	assert.False(t, a.IsPlaying())
}

func TestAnimator_PingPong(t *testing.T) {
	var a Animator
	a.Play(Tween{
		Start:    entity.Vec3{Y: 0},
		End:      entity.Vec3{Y: 1},
		Duration: 1,
		Ease:     ease.Linear,
		Mode:     PingPong,
	})

	v, _ := a.Tick(0.25)
	assert.InDelta(t, 0.25, v.Y, 1e-6)

	v, _ = a.Tick(1.0)
	assert.InDelta(t, 0.75, v.Y, 1e-6, "second leg runs backwards")

	v, _ = a.Tick(1.0)
	assert.InDelta(t, 0.25, v.Y, 1e-6)
	assert.False(t, a.Done())
}

func TestAnimator_Loop(t *testing.T) {
	var a Animator
	a.Play(Tween{End: entity.Vec3{X: 10}, Duration: 1, Mode: Loop})

	v, _ := a.Tick(1.5)
	assert.InDelta(t, 5.0, v.X, 1e-6)
	assert.False(t, a.Done())
}

func TestAnimator_NotPlaying(t *testing.T) {
	var a Animator

	_, ok := a.Tick(1)
	assert.False(t, ok)
	assert.Zero(t, a.Progress())
	assert.False(t, a.Done())
	assert.False(t, a.IsPlaying())
}

func TestAnimator_Stop(t *testing.T) {
	var a Animator
	a.Play(Tween{End: entity.Vec3{X: 1}, Duration: 1})
	a.Tick(0.5)
	a.Stop()

	_, ok := a.Tick(0.5)
	assert.False(t, ok)
	assert.False(t, a.IsPlaying())
}

func TestAnimator_PlayRestarts(t *testing.T) {
	var a Animator
	a.Play(Tween{End: entity.Vec3{X: 1}, Duration: 1})
	a.Tick(2)
	assert.True(t, a.Done())

	a.Play(Tween{End: entity.Vec3{X: 1}, Duration: 1})
	assert.False(t, a.Done())
	assert.Zero(t, a.Progress())
}
