package system

import (
	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/ecs"
	"github.com/younwookim/kaizen/internal/infrastructure/config"
)

// PlayerSystem moves the player and fires its primary weapon
type PlayerSystem struct {
	config *config.PlayerConfig
	bounds Bounds
	visual *entity.BulletVisual
}

// NewPlayerSystem creates a new player system. visual is the shared look of
// the player's bullets.
func NewPlayerSystem(cfg *config.PlayerConfig, bounds Bounds, visual *entity.BulletVisual) *PlayerSystem {
	return &PlayerSystem{
		config: cfg,
		bounds: bounds,
		visual: visual,
	}
}

// Update applies the intents addressed to the player and returns the bullets it fired
func (s *PlayerSystem) Update(w *ecs.World, intents []Intent, dt float64) []entity.BulletSpawn {
	id := w.PlayerID
	if !w.PlayerAlive() {
		return nil
	}

	var dir entity.Vec3
	firing := false
	for _, intent := range intents {
		switch i := intent.(type) {
		case MoveIntent:
			if i.EntityID == id {
				dir = dir.Add(i.Direction)
			}
		case FireIntent:
			if i.EntityID == id {
				firing = true
			}
		}
	}

	tr := w.Transform[id]
	if dir != (entity.Vec3{}) {
		step := dir.NormalizeOr(entity.Vec3{}).Scale(s.config.Speed * dt)
		tr.Position = s.bounds.Clamp(tr.Position.Add(step))
		w.Transform[id] = tr
	}

	player := w.PlayerData[id]
	defer func() { w.PlayerData[id] = player }()

	// held fire carries the overshoot of the last shot, a fresh press starts from zero
	wasCooling := player.Cooldown > 0
	player.Cooldown -= dt
	if !firing || player.Cooldown > 0 {
		return nil
	}
	if !wasCooling {
		player.Cooldown = 0
	}
	player.Cooldown += s.config.FireDelay

	return []entity.BulletSpawn{{
		Position: tr.Position.Add(ToVec3(s.config.FireOffset)),
		Velocity: entity.UnitX.Scale(s.config.BulletSpeed),
		Side:     entity.SidePlayer,
		Visual:   s.visual,
	}}
}
