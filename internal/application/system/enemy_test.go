package system

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/fire"
	"github.com/younwookim/kaizen/internal/domain/motion"
	"github.com/younwookim/kaizen/internal/domain/timeline"
	"github.com/younwookim/kaizen/internal/ecs"
)

func createTestEnemySystem(t *testing.T) (*EnemySystem, *Level, *ecs.World) {
	t.Helper()
	settings := createTestSettings()
	level, err := LoadLevel(settings, createTestDatabase())
	require.NoError(t, err)

	w := ecs.NewWorld()
	w.CreatePlayer(entity.Vec3{X: -2.5}, settings.Player.MaxLife, settings.Player.Radius, 0)

	sys := NewEnemySystem(level.Registry, &settings.Combat, BoundsFrom(settings.Field), settings.Field.EnemyMargin)
	return sys, level, w
}

func spawnTestEnemy(t *testing.T, sys *EnemySystem, level *Level, w *ecs.World, name string, pos entity.Vec3) ecs.EntityID {
	t.Helper()
	desc, ok := level.Registry.Lookup(name)
	require.True(t, ok)
	id, err := sys.Spawn(w, entity.SpawnRequest{Descriptor: desc, Position: pos})
	require.NoError(t, err)
	return id
}

func TestEnemySystem_Spawn(t *testing.T) {
	sys, level, w := createTestEnemySystem(t)

	drone := spawnTestEnemy(t, sys, level, w, "drone", entity.Vec3{X: 4, Y: 1})
	boss := spawnTestEnemy(t, sys, level, w, "boss", entity.Vec3{X: 5})

	assert.Equal(t, 2, w.CountEnemies())
	assert.Equal(t, 0.25, w.Collider[drone].Radius)
	assert.Equal(t, 0.5, w.Collider[boss].Radius)
	assert.Equal(t, entity.LayerEnemy, w.Collider[boss].Layer)
	assert.Contains(t, w.IsBoss, boss)
	assert.NotContains(t, w.IsBoss, drone)
	assert.Equal(t, 3.0, w.Life[drone].Remaining)

	assert.IsType(t, &motion.FlyBy{}, w.EnemyData[drone].Motion)
	assert.IsType(t, &fire.AimBurst{}, w.EnemyData[drone].Fire)
	assert.IsType(t, &motion.EnterStay{}, w.EnemyData[boss].Motion)
	assert.IsType(t, &fire.Spiral{}, w.EnemyData[boss].Fire)
	assert.Equal(t, entity.Vec3{X: -1, Y: 0.25}, w.EnemyData[drone].Motion.(*motion.FlyBy).Direction)
	assert.False(t, w.EnemyData[boss].FireStarted)
}

func TestEnemySystem_SpawnErrors(t *testing.T) {
	sys, _, w := createTestEnemySystem(t)

	_, err := sys.Spawn(w, entity.SpawnRequest{})
	assert.Error(t, err)

	_, err = sys.Spawn(w, entity.SpawnRequest{Descriptor: &entity.EnemyDescriptor{Name: "x", MaxLife: 1, BulletKind: "beam"}})
	assert.True(t, errors.Is(err, timeline.ErrMissingBulletVisual))
	assert.Zero(t, w.CountEnemies())
}

func TestEnemySystem_MotionBeforeFire(t *testing.T) {
	sys, level, w := createTestEnemySystem(t)
	id := spawnTestEnemy(t, sys, level, w, "boss", entity.Vec3{X: 5, Y: 0.5})
	visual, _ := level.Registry.Visual("orb")

	// EnterStay needs 5s to arrive: 20 ticks of 0.25s after the start tick
	for tick := 0; tick < 20; tick++ {
		assert.Empty(t, sys.Update(w, 0.25), "tick %d", tick)
	}
	assert.False(t, w.EnemyData[id].FireStarted)

	spawns := sys.Update(w, 0.25)

	assert.True(t, w.EnemyData[id].FireStarted)
	require.NotEmpty(t, spawns, "fire runs in the tick motion starts it")
	for _, s := range spawns {
		assert.Equal(t, entity.SideEnemy, s.Side)
		assert.Same(t, visual, s.Visual)
		assert.Equal(t, w.Transform[id].Position, s.Position)
	}
	assert.InDelta(t, motion.EnterRestX, w.Transform[id].Position.X, 1e-9)
	assert.InDelta(t, 0.5, w.Transform[id].Position.Y, 1e-9)
}

func TestEnemySystem_AimsAtPlayer(t *testing.T) {
	sys, level, w := createTestEnemySystem(t)
	id := spawnTestEnemy(t, sys, level, w, "drone", entity.Vec3{X: 3, Y: 1})

	var spawns []entity.BulletSpawn
	for tick := 0; tick < 20 && len(spawns) == 0; tick++ {
		spawns = sys.Update(w, 0.25)
	}
	require.Len(t, spawns, 1)

	toPlayer := w.GetPlayerPosition().Sub(w.Transform[id].Position)
	dir := spawns[0].Velocity.NormalizeOr(entity.Vec3{})
	want := toPlayer.NormalizeOr(entity.Vec3{})
	assert.InDelta(t, want.X, dir.X, 1e-9)
	assert.InDelta(t, want.Y, dir.Y, 1e-9)
}

func TestEnemySystem_DeadEnemiesAreInert(t *testing.T) {
	sys, level, w := createTestEnemySystem(t)
	id := spawnTestEnemy(t, sys, level, w, "boss", entity.Vec3{X: 5})

	life := w.Life[id]
	life.Apply(life.Max)
	w.Life[id] = life
	before := w.Transform[id]

	for i := 0; i < 40; i++ {
		assert.Empty(t, sys.Update(w, 0.25))
	}
	assert.Equal(t, before, w.Transform[id])
	assert.False(t, w.EnemyData[id].FireStarted)
}

func TestEnemySystem_OutOfBounds(t *testing.T) {
	sys, level, w := createTestEnemySystem(t)
	inside := spawnTestEnemy(t, sys, level, w, "drone", entity.Vec3{X: 5.9})
	outside := spawnTestEnemy(t, sys, level, w, "drone", entity.Vec3{X: -6.1})
	below := spawnTestEnemy(t, sys, level, w, "drone", entity.Vec3{Y: -4.6})

	assert.Equal(t, []ecs.EntityID{outside, below}, sys.OutOfBounds(w))
	assert.NotContains(t, sys.OutOfBounds(w), inside)
}
