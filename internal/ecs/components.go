package ecs

import (
	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/fire"
	"github.com/younwookim/kaizen/internal/domain/motion"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// Collider is the collision circle of an entity
type Collider struct {
	Radius float64
	Layer  entity.Layer
}

// Enemy is the per-instance controller of a spawned enemy.
// Fire stays dormant until Motion signals start-fire.
type Enemy struct {
	Descriptor  *entity.EnemyDescriptor
	Motion      motion.Pattern
	Fire        fire.Pattern
	FireStarted bool
}

// Player holds the primary weapon state
type Player struct {
	Cooldown float64 // seconds until the next shot, may go negative while idle
	Lifebar  EntityID
}

// Bullet is a projectile in flight
type Bullet struct {
	Side     entity.Side
	Visual   *entity.BulletVisual
	Velocity entity.Vec3
	Age      float64
}
