package system

import (
	"math"

	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/infrastructure/config"
)

// Bounds is the play field, centered on the origin
type Bounds struct {
	HalfWidth  float64
	HalfHeight float64
}

// BoundsFrom creates bounds from the field config
func BoundsFrom(cfg config.FieldConfig) Bounds {
	return Bounds{HalfWidth: cfg.HalfWidth, HalfHeight: cfg.HalfHeight}
}

// Contains reports whether p lies inside the bounds grown by margin on every side
func (b Bounds) Contains(p entity.Vec3, margin float64) bool {
	return math.Abs(p.X) <= b.HalfWidth+margin && math.Abs(p.Y) <= b.HalfHeight+margin
}

// Clamp moves p onto the nearest point inside the bounds
func (b Bounds) Clamp(p entity.Vec3) entity.Vec3 {
	p.X = math.Max(-b.HalfWidth, math.Min(b.HalfWidth, p.X))
	p.Y = math.Max(-b.HalfHeight, math.Min(b.HalfHeight, p.Y))
	return p
}
