package timeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

func createTestRegistry() *Registry {
	r := NewRegistry()
	r.RegisterVisual(entity.BulletVisual{Kind: "orb", Radius: 0.05})
	r.Register(entity.EnemyDescriptor{Name: "drone", MaxLife: 3, Fire: entity.FireAimBurst, Motion: entity.MotionFlyBy, BulletKind: "orb"})
	r.Register(entity.EnemyDescriptor{Name: "turret", MaxLife: 10, Fire: entity.FireSpiral, Motion: entity.MotionEnterStay, BulletKind: "orb"})
	r.Register(entity.EnemyDescriptor{Name: "boss", MaxLife: 40, IsBoss: true, Fire: entity.FireSpiral, Motion: entity.MotionEnterStay, BulletKind: "orb"})
	return r
}

func createTestEvents() []Event {
	return []Event{
		{Time: 0.5, EnemyName: "drone", Position: entity.Vec3{X: 4, Y: 1}},
		{Time: 0.5, EnemyName: "drone", Position: entity.Vec3{X: 4, Y: -1}},
		{Time: 1.0, EnemyName: "turret", Position: entity.Vec3{X: 4, Y: 0}},
		{Time: 2.25, EnemyName: "boss", Position: entity.Vec3{X: 4, Y: 0.5}},
	}
}

func names(reqs []entity.SpawnRequest) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.Descriptor.Name
	}
	return out
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Register(entity.EnemyDescriptor{Name: "drone", MaxLife: 3})
	r.Register(entity.EnemyDescriptor{Name: "drone", MaxLife: 7})

	d, ok := r.Lookup("drone")
	require.True(t, ok)
	assert.Equal(t, 7.0, d.MaxLife)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"drone"}, r.Names())

	_, ok = r.Lookup("ghost")
	assert.False(t, ok)
}

func TestRegistry_FirstBoss(t *testing.T) {
	r := createTestRegistry()

	d, ok := r.FirstBoss()
	require.True(t, ok)
	assert.Equal(t, "boss", d.Name)

	_, ok = NewRegistry().FirstBoss()
	assert.False(t, ok)
}

func TestRegistry_SharedVisual(t *testing.T) {
	r := createTestRegistry()

	a, ok := r.Visual("orb")
	require.True(t, ok)
	b, _ := r.Visual("orb")
	assert.Same(t, a, b)
}

func TestRegistry_Validate(t *testing.T) {
	r := createTestRegistry()
	require.NoError(t, r.Validate())

	r.Register(entity.EnemyDescriptor{Name: "laser", MaxLife: 1, BulletKind: "beam"})
	err := r.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingBulletVisual))
	assert.Contains(t, err.Error(), "laser")
}

func TestSequencer_SortsStable(t *testing.T) {
	r := createTestRegistry()
	events := []Event{
		{Time: 2, EnemyName: "boss"},
		{Time: 1, EnemyName: "turret"},
		{Time: 1, EnemyName: "drone"},
	}

	s := NewSequencer(r, events)
	got := s.Advance(5)

	assert.Equal(t, []string{"turret", "drone", "boss"}, names(got))
	assert.Equal(t, "boss", events[0].EnemyName, "input is not reordered")
}

func TestSequencer_Advance(t *testing.T) {
	s := NewSequencer(createTestRegistry(), createTestEvents())

	assert.Empty(t, s.Advance(0.25))
	assert.Equal(t, 0, s.NextIndex())

	got := s.Advance(0.25)
	require.Len(t, got, 2)
	assert.Equal(t, entity.Vec3{X: 4, Y: 1}, got[0].Position)
	assert.Equal(t, entity.Vec3{X: 4, Y: -1}, got[1].Position)
	assert.Equal(t, 2, s.NextIndex())

	assert.Equal(t, []string{"turret"}, names(s.Advance(0.5)))
	assert.False(t, s.Exhausted())

	assert.Equal(t, []string{"boss"}, names(s.Advance(10)))
	assert.True(t, s.Exhausted())
	assert.Equal(t, 4, s.NextIndex())
}

func TestSequencer_InertWhenExhausted(t *testing.T) {
	s := NewSequencer(createTestRegistry(), createTestEvents())
	s.Advance(100)
	elapsed := s.Elapsed()

	for i := 0; i < 10; i++ {
		assert.Empty(t, s.Advance(1))
	}
	assert.Equal(t, elapsed, s.Elapsed())
	assert.Equal(t, 4, s.NextIndex())
}

func TestSequencer_Empty(t *testing.T) {
	s := NewSequencer(createTestRegistry(), nil)

	assert.True(t, s.Exhausted())
	assert.Empty(t, s.Advance(1))
}

func repeatStep(dt float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = dt
	}
	return out
}

func TestSequencer_Rechunking(t *testing.T) {
	tests := []struct {
		name string
		dts  []float64
	}{
		{"single", []float64{3.0}},
		{"halves", []float64{1.5, 1.5}},
		{"quarter", repeatStep(0.25, 12)},
		{"uneven", []float64{0.125, 2.0, 0.375, 0.5}},
		{"zeros", []float64{0, 0, 1, 0, 2, 0}},
		{"tenths", repeatStep(0.1, 30)},
		{"frames", repeatStep(1.0/60.0, 180)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSequencer(createTestRegistry(), createTestEvents())

			var all []string
			for _, dt := range tt.dts {
				all = append(all, names(s.Advance(dt))...)
			}

			assert.Equal(t, []string{"drone", "drone", "turret", "boss"}, all)
			assert.True(t, s.Exhausted())
		})
	}
}

func TestSequencer_AccumulatedStepsReachEventTime(t *testing.T) {
	tests := []struct {
		name  string
		dt    float64
		steps int
	}{
		{"tenths", 0.1, 10},
		{"frames", 1.0 / 60.0, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []Event{{Time: 1.0, EnemyName: "turret"}}
			s := NewSequencer(createTestRegistry(), events)

			for i := 0; i < tt.steps-1; i++ {
				require.Empty(t, s.Advance(tt.dt), "step %d", i)
			}
			assert.Equal(t, []string{"turret"}, names(s.Advance(tt.dt)), "due on the step that reaches 1s")
		})
	}
}

func TestSequencer_UnknownEnemy(t *testing.T) {
	events := []Event{
		{Time: 0, EnemyName: "ghost"},
		{Time: 0, EnemyName: "drone"},
		{Time: 1, EnemyName: "phantom"},
	}
	s := NewSequencer(createTestRegistry(), events)

	var unknown []string
	s.OnUnknownEnemy = func(name string, _ float64) {
		unknown = append(unknown, name)
	}

	assert.Equal(t, []string{"drone"}, names(s.Advance(0.5)))
	assert.Empty(t, s.Advance(1))

	assert.Equal(t, []string{"ghost", "phantom"}, unknown)
	assert.Equal(t, 2, s.Dropped())
	assert.True(t, s.Exhausted())
}

func TestSequencer_UnknownEnemyLogsByDefault(t *testing.T) {
	s := NewSequencer(createTestRegistry(), []Event{{Time: 0, EnemyName: "ghost"}})

	assert.NotPanics(t, func() { s.Advance(0.1) })
	assert.Equal(t, 1, s.Dropped())
}
