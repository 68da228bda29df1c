package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

func TestInputState_Direction(t *testing.T) {
	tests := []struct {
		name     string
		input    InputState
		expected entity.Vec3
	}{
		{"idle", InputState{}, entity.Vec3{}},
		{"left", InputState{Left: true}, entity.Vec3{X: -1}},
		{"right", InputState{Right: true}, entity.Vec3{X: 1}},
		{"up is positive Y", InputState{Up: true}, entity.Vec3{Y: 1}},
		{"down", InputState{Down: true}, entity.Vec3{Y: -1}},
		{"opposites cancel", InputState{Left: true, Right: true}, entity.Vec3{}},
		{"diagonal", InputState{Right: true, Up: true}, entity.Vec3{X: 1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Direction())
		})
	}
}

func TestInputState_Intents(t *testing.T) {
	t.Run("idle produces nothing", func(t *testing.T) {
		assert.Empty(t, InputState{}.Intents(1))
	})

	t.Run("cancelled movement is dropped", func(t *testing.T) {
		intents := InputState{Up: true, Down: true, Fire: true}.Intents(1)
		require.Len(t, intents, 1)
		assert.Equal(t, FireIntent{EntityID: 1}, intents[0])
	})

	t.Run("move then fire", func(t *testing.T) {
		intents := InputState{Left: true, Fire: true}.Intents(4)
		require.Len(t, intents, 2)
		assert.Equal(t, MoveIntent{EntityID: 4, Direction: entity.Vec3{X: -1}}, intents[0])
		assert.Equal(t, FireIntent{EntityID: 4}, intents[1])
	})
}

func TestNewInputSystem(t *testing.T) {
	assert.NotNil(t, NewInputSystem())
}
