package system

import "github.com/younwookim/kaizen/internal/domain/entity"

// Intent represents an action that an entity wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a movement intention.
// Direction is raw input and is normalized by the player system.
type MoveIntent struct {
	EntityID  entity.EntityID
	Direction entity.Vec3
}

func (MoveIntent) isIntent() {}

// FireIntent represents the primary weapon being held this frame
type FireIntent struct {
	EntityID entity.EntityID
}

func (FireIntent) isIntent() {}
