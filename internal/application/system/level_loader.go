package system

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/hud"
	"github.com/younwookim/kaizen/internal/domain/timeline"
	"github.com/younwookim/kaizen/internal/infrastructure/config"
)

// Level is a loaded enemy database ready to be played
type Level struct {
	Registry *timeline.Registry
	Events   []timeline.Event
}

// LoadLevel converts settings and an enemy database into a Level.
// Every bullet kind in settings gets a shared visual; every enemy gets a
// descriptor. Timeline events naming unknown enemies are kept and dropped
// by the sequencer when they come due.
func LoadLevel(settings *config.SettingsConfig, db *config.DatabaseConfig) (*Level, error) {
	reg := timeline.NewRegistry()

	visuals, err := LoadBulletVisuals(settings)
	if err != nil {
		return nil, err
	}
	for _, v := range visuals {
		reg.RegisterVisual(v)
	}

	for _, ec := range db.Enemies {
		desc, err := LoadDescriptor(ec)
		if err != nil {
			return nil, err
		}
		reg.Register(desc)
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrMissingBulletAssets, err)
	}

	events := make([]timeline.Event, 0, len(db.Timeline))
	for _, ev := range db.Timeline {
		events = append(events, timeline.Event{
			Time:      ev.Time,
			EnemyName: ev.Enemy,
			Position:  ToVec3(ev.Position()),
		})
	}

	return &Level{Registry: reg, Events: events}, nil
}

// LoadDescriptor converts one database record into a descriptor
func LoadDescriptor(ec config.EnemyConfig) (entity.EnemyDescriptor, error) {
	fireKind, err := entity.ParseFirePatternKind(ec.FirePatternKind)
	if err != nil {
		return entity.EnemyDescriptor{}, fmt.Errorf("enemy %q: %w: %v", ec.Name, config.ErrUnknownKind, err)
	}
	motionKind, err := entity.ParseMotionPatternKind(ec.MotionPatternKind)
	if err != nil {
		return entity.EnemyDescriptor{}, fmt.Errorf("enemy %q: %w: %v", ec.Name, config.ErrUnknownKind, err)
	}
	if ec.Life <= 0 {
		return entity.EnemyDescriptor{}, fmt.Errorf("enemy %q: %w: life must be positive", ec.Name, config.ErrInvalidDescriptor)
	}

	return entity.EnemyDescriptor{
		Name:       ec.Name,
		MaxLife:    ec.Life,
		IsBoss:     ec.IsBoss,
		Fire:       fireKind,
		Motion:     motionKind,
		BulletKind: entity.BulletKind(ec.BulletKind),
	}, nil
}

// LoadBulletVisuals converts the bullet table, sorted by kind
func LoadBulletVisuals(settings *config.SettingsConfig) ([]entity.BulletVisual, error) {
	kinds := make([]string, 0, len(settings.Bullets))
	for kind := range settings.Bullets {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	visuals := make([]entity.BulletVisual, 0, len(kinds))
	for _, kind := range kinds {
		bc := settings.Bullets[kind]
		c, err := config.ParseColor(bc.Color)
		if err != nil {
			return nil, fmt.Errorf("bullet kind %q: %w", kind, err)
		}
		visuals = append(visuals, entity.BulletVisual{
			Kind:   entity.BulletKind(kind),
			Radius: bc.Radius,
			Color:  c,
		})
	}
	return visuals, nil
}

// LoadLifebar converts a HUD entry into a lifebar layout and segment colors
func LoadLifebar(cfg config.LifebarConfig) (hud.Layout, []color.RGBA, error) {
	orientation := hud.Horizontal
	switch cfg.Orientation {
	case "horizontal", "":
	case "vertical":
		orientation = hud.Vertical
	default:
		return hud.Layout{}, nil, fmt.Errorf("unknown lifebar orientation %q", cfg.Orientation)
	}

	colors, err := config.ParseColors(cfg.Colors)
	if err != nil {
		return hud.Layout{}, nil, err
	}

	return hud.Layout{
		Orientation:   orientation,
		Visible:       ToVec3(cfg.Visible),
		Hidden:        ToVec3(cfg.Hidden),
		SlideDuration: cfg.SlideDuration,
		FillDuration:  cfg.FillDuration,
	}, colors, nil
}

// SegmentLife returns how much life one segment of a bar holds for a pool
// of maxLife. A configured value wins; otherwise life is split evenly.
func SegmentLife(configured, maxLife float64, segments int) float64 {
	if configured > 0 {
		return configured
	}
	if segments <= 0 {
		return maxLife
	}
	return maxLife / float64(segments)
}

// ToVec3 converts a config vector
func ToVec3(v config.Vec3Config) entity.Vec3 {
	return entity.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
