package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

var (
	ErrUnknownKind         = errors.New("unknown pattern kind")
	ErrMissingBulletAssets = errors.New("missing bullet assets")
	ErrInvalidDescriptor   = errors.New("invalid enemy descriptor")
	ErrInvalidTimeline     = errors.New("invalid timeline event")
	ErrInvalidSettings     = errors.New("invalid settings")
)

// ValidateDatabase checks every descriptor and timeline event.
// Bullet kinds are checked against settings.Bullets when settings is given.
// Timeline events naming unknown enemies are allowed; they are skipped at
// run time.
func ValidateDatabase(db *DatabaseConfig, settings *SettingsConfig) error {
	for i, e := range db.Enemies {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("enemy #%d has no name: %w", i, ErrInvalidDescriptor)
		}
		if e.Life <= 0 {
			return fmt.Errorf("enemy %q has life %v: %w", e.Name, e.Life, ErrInvalidDescriptor)
		}
		if _, err := entity.ParseFirePatternKind(e.FirePatternKind); err != nil {
			return fmt.Errorf("enemy %q: %v: %w", e.Name, err, ErrUnknownKind)
		}
		if _, err := entity.ParseMotionPatternKind(e.MotionPatternKind); err != nil {
			return fmt.Errorf("enemy %q: %v: %w", e.Name, err, ErrUnknownKind)
		}
		if e.BulletKind == "" {
			return fmt.Errorf("enemy %q has no bullet kind: %w", e.Name, ErrMissingBulletAssets)
		}
		if settings != nil {
			if _, ok := settings.Bullets[e.BulletKind]; !ok {
				return fmt.Errorf("enemy %q uses bullet kind %q: %w", e.Name, e.BulletKind, ErrMissingBulletAssets)
			}
		}
	}

	for i, ev := range db.Timeline {
		if ev.Time < 0 {
			return fmt.Errorf("timeline #%d (%s) at negative time %v: %w", i, ev.Enemy, ev.Time, ErrInvalidTimeline)
		}
		if n := len(ev.StartPos); n != 2 && n != 3 {
			return fmt.Errorf("timeline #%d (%s) start_pos has %d components: %w", i, ev.Enemy, n, ErrInvalidTimeline)
		}
	}

	return nil
}

// ValidateSettings checks values the game cannot run without
func ValidateSettings(s *SettingsConfig) error {
	if s.Display.Framerate <= 0 {
		return fmt.Errorf("framerate %d: %w", s.Display.Framerate, ErrInvalidSettings)
	}
	if s.Display.PixelsPerUnit <= 0 {
		return fmt.Errorf("pixelsPerUnit %v: %w", s.Display.PixelsPerUnit, ErrInvalidSettings)
	}
	if s.Player.MaxLife <= 0 {
		return fmt.Errorf("player maxLife %v: %w", s.Player.MaxLife, ErrInvalidSettings)
	}
	if _, ok := s.Bullets[s.Player.BulletKind]; !ok {
		return fmt.Errorf("player bullet kind %q: %w", s.Player.BulletKind, ErrMissingBulletAssets)
	}

	for kind, b := range s.Bullets {
		if _, err := ParseColor(b.Color); err != nil {
			return fmt.Errorf("bullet %q: %v: %w", kind, err, ErrInvalidSettings)
		}
	}

	bars := map[string]LifebarConfig{"player": s.HUD.Player, "boss": s.HUD.Boss}
	for name, bar := range bars {
		if bar.Orientation != "horizontal" && bar.Orientation != "vertical" {
			return fmt.Errorf("%s lifebar orientation %q: %w", name, bar.Orientation, ErrInvalidSettings)
		}
		if len(bar.Colors) == 0 {
			return fmt.Errorf("%s lifebar has no segments: %w", name, ErrInvalidSettings)
		}
		if _, err := ParseColors(bar.Colors); err != nil {
			return fmt.Errorf("%s lifebar: %v: %w", name, err, ErrInvalidSettings)
		}
	}

	return nil
}

// ParseColor parses a CSS color: "#RGB", "#RRGGBB", "#RRGGBBAA",
// rgb()/hsl() forms or a color name
func ParseColor(s string) (color.RGBA, error) {
	c, err := csscolorparser.Parse(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// ParseColors parses a list of colors in order
func ParseColors(list []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(list))
	for _, s := range list {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Position returns start_pos as a vector; a missing Z is zero
func (e TimelineEventConfig) Position() Vec3Config {
	var v Vec3Config
	if len(e.StartPos) > 0 {
		v.X = e.StartPos[0]
	}
	if len(e.StartPos) > 1 {
		v.Y = e.StartPos[1]
	}
	if len(e.StartPos) > 2 {
		v.Z = e.StartPos[2]
	}
	return v
}
