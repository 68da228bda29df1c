package config

// SettingsConfig is the root config for settings.json
type SettingsConfig struct {
	Display DisplayConfig                 `json:"display"`
	Field   FieldConfig                   `json:"field"`
	Player  PlayerConfig                  `json:"player"`
	Combat  CombatConfig                  `json:"combat"`
	HUD     HUDConfig                     `json:"hud"`
	Bullets map[string]BulletVisualConfig `json:"bullets"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight"`
	Scale         int     `json:"scale"`
	Framerate     int     `json:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"` // world unit -> screen pixels
}

// FieldConfig bounds the play field, centered on the origin (world units)
type FieldConfig struct {
	HalfWidth    float64 `json:"halfWidth"`
	HalfHeight   float64 `json:"halfHeight"`
	BulletMargin float64 `json:"bulletMargin"` // bullets beyond bounds+margin are culled
	EnemyMargin  float64 `json:"enemyMargin"`  // enemies beyond bounds+margin are culled
}

type PlayerConfig struct {
	MaxLife     float64    `json:"maxLife"`
	Speed       float64    `json:"speed"`     // units/sec
	FireDelay   float64    `json:"fireDelay"` // seconds between shots
	FireOffset  Vec3Config `json:"fireOffset"`
	BulletSpeed float64    `json:"bulletSpeed"`
	BulletKind  string     `json:"bulletKind"`
	Radius      float64    `json:"radius"`
	Spawn       Vec3Config `json:"spawn"`
}

type CombatConfig struct {
	CollisionDamage float64 `json:"collisionDamage"`
	BulletLifetime  float64 `json:"bulletLifetime"` // seconds, 0 = unlimited
	EnemyRadius     float64 `json:"enemyRadius"`
	BossRadius      float64 `json:"bossRadius"`
}

type HUDConfig struct {
	Player LifebarConfig `json:"player"`
	Boss   LifebarConfig `json:"boss"`
}

type LifebarConfig struct {
	Orientation   string     `json:"orientation"` // "horizontal" | "vertical"
	Visible       Vec3Config `json:"visible"`
	Hidden        Vec3Config `json:"hidden"`
	Width         float64    `json:"width"`  // world units
	Height        float64    `json:"height"` // world units
	SlideDuration float64    `json:"slideDuration"`
	FillDuration  float64    `json:"fillDuration"`
	SegmentLife   float64    `json:"segmentLife"` // 0 = max life / segment count
	Colors        []string   `json:"colors"`      // lowest segment first, "#RRGGBB[AA]"
}

type BulletVisualConfig struct {
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
}

type Vec3Config struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}
