package system

import (
	"fmt"

	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/fire"
	"github.com/younwookim/kaizen/internal/domain/motion"
	"github.com/younwookim/kaizen/internal/domain/timeline"
	"github.com/younwookim/kaizen/internal/ecs"
	"github.com/younwookim/kaizen/internal/infrastructure/config"
)

// EnemySystem spawns enemies and runs their motion and fire patterns
type EnemySystem struct {
	registry *timeline.Registry
	config   *config.CombatConfig
	bounds   Bounds
	margin   float64
}

// NewEnemySystem creates a new enemy system. Enemies farther than margin
// outside bounds are reported by OutOfBounds.
func NewEnemySystem(reg *timeline.Registry, cfg *config.CombatConfig, bounds Bounds, margin float64) *EnemySystem {
	return &EnemySystem{
		registry: reg,
		config:   cfg,
		bounds:   bounds,
		margin:   margin,
	}
}

// Spawn creates an enemy from a spawn request. The motion pattern is
// parameterized from the spawn position and the fire pattern shares the
// visual of the descriptor's bullet kind.
func (s *EnemySystem) Spawn(w *ecs.World, req entity.SpawnRequest) (ecs.EntityID, error) {
	desc := req.Descriptor
	if desc == nil {
		return 0, fmt.Errorf("spawn request without descriptor")
	}
	visual, ok := s.registry.Visual(desc.BulletKind)
	if !ok {
		return 0, fmt.Errorf("failed to spawn %q: %w", desc.Name, timeline.ErrMissingBulletVisual)
	}

	radius := s.config.EnemyRadius
	if desc.IsBoss {
		radius = s.config.BossRadius
	}

	ctrl := &ecs.Enemy{
		Descriptor: desc,
		Motion:     motion.New(desc.Motion, req.Position),
		Fire:       fire.New(desc.Fire, visual),
	}
	return w.CreateEnemy(req.Position, radius, ctrl), nil
}

// Update runs every live enemy for one tick, motion before fire, and
// returns the bullets they emitted. Fire starts in the same tick motion
// signals it.
func (s *EnemySystem) Update(w *ecs.World, dt float64) []entity.BulletSpawn {
	target := w.GetPlayerPosition()

	var out []entity.BulletSpawn
	for _, id := range ecs.SortedIDs(w.EnemyData) {
		if life, ok := w.Life[id]; !ok || !life.IsAlive() {
			continue
		}
		ctrl := w.EnemyData[id]
		anim := w.Animator[id]
		tr := w.Transform[id]

		if v, ok := anim.Tick(dt); ok {
			tr.Position = v
		}
		if ctrl.Motion.DoMotion(dt, &tr, anim) == motion.StartFire {
			ctrl.FireStarted = true
		}
		w.Transform[id] = tr

		if ctrl.FireStarted {
			out = append(out, ctrl.Fire.Execute(dt, tr.Position, target)...)
		}
	}
	return out
}

// OutOfBounds returns the enemies that left the field
func (s *EnemySystem) OutOfBounds(w *ecs.World) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range ecs.SortedIDs(w.IsEnemy) {
		if !s.bounds.Contains(w.Transform[id].Position, s.margin) {
			out = append(out, id)
		}
	}
	return out
}
