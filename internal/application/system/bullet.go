package system

import (
	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/ecs"
)

// Despawn pairs an entity with the reason it must leave the simulation
type Despawn struct {
	ID     ecs.EntityID
	Reason entity.DespawnReason
}

// BulletSystem moves bullets and ages them
type BulletSystem struct {
	bounds   Bounds
	margin   float64
	lifetime float64
}

// NewBulletSystem creates a new bullet system. A lifetime of 0 keeps
// bullets until they leave the field.
func NewBulletSystem(bounds Bounds, margin, lifetime float64) *BulletSystem {
	return &BulletSystem{
		bounds:   bounds,
		margin:   margin,
		lifetime: lifetime,
	}
}

// Spawn creates bullets from requests, in order
func (s *BulletSystem) Spawn(w *ecs.World, spawns []entity.BulletSpawn) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(spawns))
	for _, spawn := range spawns {
		ids = append(ids, w.CreateBullet(spawn))
	}
	return ids
}

// Update integrates bullet velocities
func (s *BulletSystem) Update(w *ecs.World, dt float64) {
	for _, id := range ecs.SortedIDs(w.BulletData) {
		b := w.BulletData[id]
		tr := w.Transform[id]

		tr.Position = tr.Position.Add(b.Velocity.Scale(dt))
		b.Age += dt

		w.Transform[id] = tr
		w.BulletData[id] = b
	}
}

// Expired returns bullets that left the field or outlived their lifetime
func (s *BulletSystem) Expired(w *ecs.World) []Despawn {
	var out []Despawn
	for _, id := range ecs.SortedIDs(w.BulletData) {
		switch {
		case !s.bounds.Contains(w.Transform[id].Position, s.margin):
			out = append(out, Despawn{ID: id, Reason: entity.DespawnOutOfBounds})
		case s.lifetime > 0 && w.BulletData[id].Age >= s.lifetime:
			out = append(out, Despawn{ID: id, Reason: entity.DespawnExpired})
		}
	}
	return out
}
