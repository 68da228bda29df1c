package entity

// SpawnRequest asks for an enemy to be created from a descriptor
type SpawnRequest struct {
	Descriptor *EnemyDescriptor
	Position   Vec3
}

// BulletSpawn asks for a bullet to be created.
// Angle is the rotation about Z; Velocity is in world units per second.
type BulletSpawn struct {
	Position Vec3
	Angle    float64
	Velocity Vec3
	Side     Side
	Visual   *BulletVisual
}

// DamageEvent targets a single entity with an amount of damage
type DamageEvent struct {
	Target EntityID
	Amount float64
}

// DespawnReason explains why an entity left the simulation
type DespawnReason int

const (
	DespawnDeath DespawnReason = iota
	DespawnOutOfBounds
	DespawnExpired
	DespawnHit
)

// String returns the string representation of the reason
func (r DespawnReason) String() string {
	switch r {
	case DespawnDeath:
		return "death"
	case DespawnOutOfBounds:
		return "out_of_bounds"
	case DespawnExpired:
		return "expired"
	case DespawnHit:
		return "hit"
	default:
		return "unknown"
	}
}
