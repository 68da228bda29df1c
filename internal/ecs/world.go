package ecs

import (
	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/hud"
	"github.com/younwookim/kaizen/internal/domain/tween"
)

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Transform  map[EntityID]entity.Transform
	Animator   map[EntityID]*tween.Animator
	Life       map[EntityID]entity.Life
	Collider   map[EntityID]Collider
	EnemyData  map[EntityID]*Enemy
	PlayerData map[EntityID]Player
	BulletData map[EntityID]Bullet
	Lifebar    map[EntityID]*hud.Lifebar

	// Tags
	IsPlayer map[EntityID]struct{}
	IsEnemy  map[EntityID]struct{}
	IsBoss   map[EntityID]struct{}
	IsBullet map[EntityID]struct{}

	// Singleton references
	PlayerID    EntityID
	BossLifebar EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Transform:  make(map[EntityID]entity.Transform),
		Animator:   make(map[EntityID]*tween.Animator),
		Life:       make(map[EntityID]entity.Life),
		Collider:   make(map[EntityID]Collider),
		EnemyData:  make(map[EntityID]*Enemy),
		PlayerData: make(map[EntityID]Player),
		BulletData: make(map[EntityID]Bullet),
		Lifebar:    make(map[EntityID]*hud.Lifebar),
		IsPlayer:   make(map[EntityID]struct{}),
		IsEnemy:    make(map[EntityID]struct{}),
		IsBoss:     make(map[EntityID]struct{}),
		IsBullet:   make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Transform, id)
	delete(w.Animator, id)
	delete(w.Life, id)
	delete(w.Collider, id)
	delete(w.EnemyData, id)
	delete(w.PlayerData, id)
	delete(w.BulletData, id)
	delete(w.Lifebar, id)
	delete(w.IsPlayer, id)
	delete(w.IsEnemy, id)
	delete(w.IsBoss, id)
	delete(w.IsBullet, id)
}

// Exists checks if an entity has a Transform component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Transform[id]
	return ok
}

// CreatePlayer creates the player entity
func (w *World) CreatePlayer(pos entity.Vec3, maxLife, radius float64, lifebar EntityID) EntityID {
	id := w.NewEntity()

	w.Transform[id] = entity.NewTransform(pos)
	w.Life[id] = entity.NewLife(maxLife)
	w.Collider[id] = Collider{Radius: radius, Layer: entity.LayerPlayer}
	w.PlayerData[id] = Player{Lifebar: lifebar}
	w.IsPlayer[id] = struct{}{}

	w.PlayerID = id
	return id
}

// CreateEnemy creates an enemy entity driven by ctrl
func (w *World) CreateEnemy(pos entity.Vec3, radius float64, ctrl *Enemy) EntityID {
	id := w.NewEntity()

	w.Transform[id] = entity.NewTransform(pos)
	w.Animator[id] = &tween.Animator{}
	w.Life[id] = entity.NewLife(ctrl.Descriptor.MaxLife)
	w.Collider[id] = Collider{Radius: radius, Layer: entity.LayerEnemy}
	w.EnemyData[id] = ctrl
	w.IsEnemy[id] = struct{}{}
	if ctrl.Descriptor.IsBoss {
		w.IsBoss[id] = struct{}{}
	}

	return id
}

// CreateBullet creates a bullet entity from a spawn request
func (w *World) CreateBullet(spawn entity.BulletSpawn) EntityID {
	id := w.NewEntity()

	tr := entity.NewTransform(spawn.Position)
	tr.Angle = spawn.Angle
	w.Transform[id] = tr

	radius := 0.0
	if spawn.Visual != nil {
		radius = spawn.Visual.Radius
	}
	w.Collider[id] = Collider{Radius: radius, Layer: entity.BulletLayer(spawn.Side)}
	w.BulletData[id] = Bullet{
		Side:     spawn.Side,
		Visual:   spawn.Visual,
		Velocity: spawn.Velocity,
	}
	w.IsBullet[id] = struct{}{}

	return id
}

// CreateLifebar creates a HUD entity holding bar
func (w *World) CreateLifebar(bar *hud.Lifebar) EntityID {
	id := w.NewEntity()

	w.Transform[id] = entity.NewTransform(bar.Position())
	w.Lifebar[id] = bar

	return id
}

// GetPlayerPosition returns the player's position
func (w *World) GetPlayerPosition() entity.Vec3 {
	return w.Transform[w.PlayerID].Position
}

// PlayerAlive reports whether the player exists and has life left
func (w *World) PlayerAlive() bool {
	life, ok := w.Life[w.PlayerID]
	return ok && life.IsAlive()
}

// CountEnemies returns the number of active enemies
func (w *World) CountEnemies() int {
	return len(w.IsEnemy)
}

// CountBullets returns the number of bullets in flight
func (w *World) CountBullets() int {
	return len(w.IsBullet)
}
