package config

// DatabaseConfig is the root of an enemy database (JSON or YAML)
type DatabaseConfig struct {
	Enemies  []EnemyConfig         `json:"enemies" yaml:"enemies"`
	Timeline []TimelineEventConfig `json:"timeline" yaml:"timeline"`
}

type EnemyConfig struct {
	Name              string  `json:"name" yaml:"name"`
	Life              float64 `json:"life" yaml:"life"`
	IsBoss            bool    `json:"is_boss,omitempty" yaml:"is_boss,omitempty"`
	FirePatternKind   string  `json:"fire_pattern_kind" yaml:"fire_pattern_kind"`
	MotionPatternKind string  `json:"motion_pattern_kind" yaml:"motion_pattern_kind"`
	BulletKind        string  `json:"bullet_kind" yaml:"bullet_kind"`
}

type TimelineEventConfig struct {
	Time     float64   `json:"time" yaml:"time"`
	Enemy    string    `json:"enemy" yaml:"enemy"`
	StartPos []float64 `json:"start_pos" yaml:"start_pos"` // [x, y] or [x, y, z]
}
