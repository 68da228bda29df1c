package entity

// Layer is a collision layer bit
type Layer uint

const (
	LayerWorld Layer = 1 << iota
	LayerPlayer
	LayerPlayerBullet
	LayerEnemy
	LayerEnemyBullet
)

// Has reports whether l includes every bit of o
func (l Layer) Has(o Layer) bool {
	return l&o == o && o != 0
}

// String returns the string representation of a single layer
func (l Layer) String() string {
	switch l {
	case LayerWorld:
		return "World"
	case LayerPlayer:
		return "Player"
	case LayerPlayerBullet:
		return "PlayerBullet"
	case LayerEnemy:
		return "Enemy"
	case LayerEnemyBullet:
		return "EnemyBullet"
	default:
		return "Mixed"
	}
}

// Mask returns the layers l may collide with.
// Player bullets never reach the player and enemy bullets never reach
// enemies, so friendly fire cannot happen.
func (l Layer) Mask() Layer {
	switch l {
	case LayerPlayer:
		return LayerWorld | LayerEnemy | LayerEnemyBullet
	case LayerPlayerBullet:
		return LayerWorld | LayerEnemy
	case LayerEnemy:
		return LayerWorld | LayerPlayer | LayerPlayerBullet
	case LayerEnemyBullet:
		return LayerWorld | LayerPlayer
	case LayerWorld:
		return LayerPlayer | LayerPlayerBullet | LayerEnemy | LayerEnemyBullet
	default:
		return 0
	}
}

// BulletLayer returns the layer of a bullet fired by side
func BulletLayer(side Side) Layer {
	if side == SidePlayer {
		return LayerPlayerBullet
	}
	return LayerEnemyBullet
}

// CanCollide reports whether two layers are allowed to touch
func CanCollide(a, b Layer) bool {
	return a&b.Mask() != 0 && b&a.Mask() != 0
}
