package system

import (
	"slices"

	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/ecs"
	"github.com/younwookim/kaizen/internal/infrastructure/collision"
	"github.com/younwookim/kaizen/internal/infrastructure/config"
)

// DamageResult is the outcome of the damage one entity took in a tick
type DamageResult struct {
	Target    ecs.EntityID
	Amount    float64
	Remaining float64
	Died      bool
}

// DamageSystem turns collisions into damage events and applies them once per tick
type DamageSystem struct {
	config  *config.CombatConfig
	pending []entity.DamageEvent

	// Event callbacks
	OnDamage func(result DamageResult)
}

// NewDamageSystem creates a new damage system
func NewDamageSystem(cfg *config.CombatConfig) *DamageSystem {
	return &DamageSystem{
		config:  cfg,
		pending: make([]entity.DamageEvent, 0, 32),
	}
}

// Translate queues damage for every ship involved in a collision start and
// returns the bullets that hit something, in ID order. Stops are ignored.
func (s *DamageSystem) Translate(events []collision.Event) []ecs.EntityID {
	var hits []ecs.EntityID
	for _, ev := range events {
		if ev.Kind != collision.Started {
			continue
		}
		for _, c := range [2]collision.Contact{ev.A, ev.B} {
			switch c.Layer {
			case entity.LayerPlayer, entity.LayerEnemy:
				s.Queue(entity.DamageEvent{Target: c.Entity, Amount: s.config.CollisionDamage})
			case entity.LayerPlayerBullet, entity.LayerEnemyBullet:
				if !slices.Contains(hits, c.Entity) {
					hits = append(hits, c.Entity)
				}
			}
		}
	}
	slices.Sort(hits)
	return hits
}

// Queue adds a damage event to be applied on the next Apply
func (s *DamageSystem) Queue(ev entity.DamageEvent) {
	s.pending = append(s.pending, ev)
}

// Pending returns the number of queued damage events
func (s *DamageSystem) Pending() int {
	return len(s.pending)
}

// Apply sums queued damage per entity, reduces life and returns what
// changed in ID order. Entities that are gone or already dead are skipped.
// The queue is emptied.
func (s *DamageSystem) Apply(w *ecs.World) []DamageResult {
	if len(s.pending) == 0 {
		return nil
	}

	totals := make(map[ecs.EntityID]float64, len(s.pending))
	for _, ev := range s.pending {
		totals[ev.Target] += ev.Amount
	}
	s.pending = s.pending[:0]

	var results []DamageResult
	for _, id := range ecs.SortedIDs(totals) {
		life, ok := w.Life[id]
		if !ok {
			continue
		}
		changed, died := life.Apply(totals[id])
		w.Life[id] = life
		if !changed {
			continue
		}

		result := DamageResult{
			Target:    id,
			Amount:    totals[id],
			Remaining: life.Remaining,
			Died:      died,
		}
		results = append(results, result)
		if s.OnDamage != nil {
			s.OnDamage(result)
		}
	}
	return results
}
