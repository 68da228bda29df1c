package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

const dt = 1.0 / 60.0

func TestBroadphase_AddRemove(t *testing.T) {
	b := New()

	b.Add(1, entity.Vec3{}, 0.1, entity.LayerPlayer)
	b.Add(2, entity.Vec3{X: 1}, 0.1, entity.LayerEnemy)
	assert.Equal(t, 2, b.Len())
	assert.True(t, b.Has(1))

	b.Add(1, entity.Vec3{}, 0.2, entity.LayerPlayer)
	assert.Equal(t, 2, b.Len(), "re-adding replaces")

	b.Remove(1)
	b.Remove(99)
	assert.False(t, b.Has(1))
	assert.Equal(t, 1, b.Len())
}

func TestBroadphase_Started(t *testing.T) {
	b := New()
	b.Add(7, entity.Vec3{X: 0.05}, 0.05, entity.LayerEnemyBullet)
	b.Add(3, entity.Vec3{}, 0.1, entity.LayerPlayer)

	events := b.Step(dt)

	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, Started, ev.Kind)
	assert.Equal(t, Contact{Entity: 3, Layer: entity.LayerPlayer}, ev.A)
	assert.Equal(t, Contact{Entity: 7, Layer: entity.LayerEnemyBullet}, ev.B)
	assert.Equal(t, ev.B, ev.Other(3))
	assert.Equal(t, ev.A, ev.Other(7))

	assert.Empty(t, b.Step(dt), "a lasting contact starts once")
}

func TestBroadphase_Stopped(t *testing.T) {
	b := New()
	b.Add(1, entity.Vec3{}, 0.1, entity.LayerEnemy)
	b.Add(2, entity.Vec3{}, 0.05, entity.LayerPlayerBullet)
	require.Len(t, b.Step(dt), 1)

	b.Move(2, entity.Vec3{X: 3})
	events := b.Step(dt)

	require.Len(t, events, 1)
	assert.Equal(t, Stopped, events[0].Kind)
}

func TestBroadphase_LayerMasks(t *testing.T) {
	tests := []struct {
		name    string
		a, b    entity.Layer
		collide bool
	}{
		{"enemy vs own bullet", entity.LayerEnemy, entity.LayerEnemyBullet, false},
		{"player vs own bullet", entity.LayerPlayer, entity.LayerPlayerBullet, false},
		{"bullet vs bullet", entity.LayerPlayerBullet, entity.LayerEnemyBullet, false},
		{"enemy vs enemy", entity.LayerEnemy, entity.LayerEnemy, false},
		{"player vs enemy bullet", entity.LayerPlayer, entity.LayerEnemyBullet, true},
		{"enemy vs player bullet", entity.LayerEnemy, entity.LayerPlayerBullet, true},
		{"player vs enemy", entity.LayerPlayer, entity.LayerEnemy, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			b.Add(1, entity.Vec3{}, 0.1, tt.a)
			b.Add(2, entity.Vec3{}, 0.1, tt.b)

			events := b.Step(dt)
			if tt.collide {
				assert.Len(t, events, 1)
			} else {
				assert.Empty(t, events)
			}
		})
	}
}

func TestBroadphase_RemoveIsSilent(t *testing.T) {
	b := New()
	b.Add(1, entity.Vec3{}, 0.1, entity.LayerPlayer)
	b.Add(2, entity.Vec3{}, 0.1, entity.LayerEnemyBullet)
	require.Len(t, b.Step(dt), 1)

	b.Remove(2)

	assert.Empty(t, b.Step(dt))
}

func TestBroadphase_OrderedEvents(t *testing.T) {
	b := New()
	b.Add(10, entity.Vec3{}, 0.3, entity.LayerPlayer)
	for i := entity.EntityID(20); i > 11; i-- {
		b.Add(i, entity.Vec3{X: 0.1}, 0.05, entity.LayerEnemyBullet)
	}

	events := b.Step(dt)

	require.Len(t, events, 9)
	for i := 1; i < len(events); i++ {
		assert.Less(t, events[i-1].B.Entity, events[i].B.Entity)
	}
}
