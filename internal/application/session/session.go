// Package session runs one play-through of a level.
//
// A Session owns the entity world, the collision broad-phase and the timeline
// sequencer, and advances them in a fixed order each tick. Every channel
// between systems (spawn requests, bullet requests, damage events, HUD
// notifications) is collected in full before it is applied.
package session

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/younwookim/kaizen/internal/application/state"
	"github.com/younwookim/kaizen/internal/application/system"
	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/hud"
	"github.com/younwookim/kaizen/internal/domain/motion"
	"github.com/younwookim/kaizen/internal/domain/timeline"
	"github.com/younwookim/kaizen/internal/ecs"
	"github.com/younwookim/kaizen/internal/infrastructure/collision"
	"github.com/younwookim/kaizen/internal/infrastructure/config"
)

// ErrNoBoss is returned by SpawnBoss when the level has no boss descriptor
var ErrNoBoss = errors.New("level has no boss")

// Stats counts what happened during a session
type Stats struct {
	Frames     int
	Elapsed    float64
	Spawned    int
	Killed     int
	Escaped    int
	Dropped    int
	ShotsFired int
	PlayerLife float64
	FinalState state.GameState
}

// Session is a level being played
type Session struct {
	settings *config.SettingsConfig
	level    *system.Level

	world      *ecs.World
	broadphase *collision.Broadphase
	sequencer  *timeline.Sequencer

	players *system.PlayerSystem
	enemies *system.EnemySystem
	bullets *system.BulletSystem
	damage  *system.DamageSystem
	hud     *system.HudSystem

	playerBar    ecs.EntityID
	bossBar      ecs.EntityID
	playerColors []color.RGBA
	bossColors   []color.RGBA
	boss         ecs.EntityID // enemy shown on the boss lifebar, 0 if none

	state state.GameState
	stats Stats

	// Event callbacks
	OnSpawn   func(id ecs.EntityID, desc *entity.EnemyDescriptor)
	OnDespawn func(id ecs.EntityID, reason entity.DespawnReason)
	OnState   func(from, to state.GameState)
}

// New creates a session for level and starts it
func New(settings *config.SettingsConfig, level *system.Level) (*Session, error) {
	s := &Session{
		settings: settings,
		level:    level,
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart rebuilds the session from the current level
func (s *Session) Restart() error {
	return s.reset()
}

// SetLevel replaces the level used by the next Restart
func (s *Session) SetLevel(level *system.Level) {
	s.level = level
}

func (s *Session) reset() error {
	cfg := s.settings
	reg := s.level.Registry
	bounds := system.BoundsFrom(cfg.Field)

	shot, ok := reg.Visual(entity.BulletKind(cfg.Player.BulletKind))
	if !ok {
		return fmt.Errorf("player bullet kind %q: %w", cfg.Player.BulletKind, config.ErrMissingBulletAssets)
	}

	playerLayout, playerColors, err := system.LoadLifebar(cfg.HUD.Player)
	if err != nil {
		return fmt.Errorf("failed to load player lifebar: %w", err)
	}
	bossLayout, bossColors, err := system.LoadLifebar(cfg.HUD.Boss)
	if err != nil {
		return fmt.Errorf("failed to load boss lifebar: %w", err)
	}

	s.world = ecs.NewWorld()
	s.broadphase = collision.New()
	s.sequencer = timeline.NewSequencer(reg, s.level.Events)

	s.players = system.NewPlayerSystem(&cfg.Player, bounds, shot)
	s.enemies = system.NewEnemySystem(reg, &cfg.Combat, bounds, cfg.Field.EnemyMargin)
	s.bullets = system.NewBulletSystem(bounds, cfg.Field.BulletMargin, cfg.Combat.BulletLifetime)
	s.damage = system.NewDamageSystem(&cfg.Combat)
	s.hud = system.NewHudSystem()

	s.playerColors = playerColors
	s.bossColors = bossColors
	s.playerBar = s.world.CreateLifebar(hud.New(playerLayout))
	s.bossBar = s.world.CreateLifebar(hud.New(bossLayout))
	s.world.BossLifebar = s.bossBar
	s.boss = 0

	player := s.world.CreatePlayer(system.ToVec3(cfg.Player.Spawn), cfg.Player.MaxLife, cfg.Player.Radius, s.playerBar)
	s.track(player)

	s.hud.Init(s.playerBar, system.SegmentLife(cfg.HUD.Player.SegmentLife, cfg.Player.MaxLife, len(playerColors)), playerColors)
	s.hud.Show(s.playerBar)
	s.hud.UpdateLife(s.playerBar, cfg.Player.MaxLife)

	s.stats = Stats{}
	s.setState(state.StatePlaying)
	return nil
}

// Update advances the session by one tick with the player's input
func (s *Session) Update(input system.InputState, dt float64) {
	switch {
	case s.state == state.StatePaused:
		return
	case s.state.Finished():
		s.hud.Update(s.world, dt)
		return
	}

	w := s.world
	s.stats.Frames++
	s.stats.Elapsed += dt

	for _, req := range s.sequencer.Advance(dt) {
		s.spawn(req)
	}

	shots := s.players.Update(w, input.Intents(w.PlayerID), dt)
	s.stats.ShotsFired += len(shots)

	s.bullets.Update(w, dt)

	s.syncBroadphase()
	for _, id := range s.damage.Translate(s.broadphase.Step(dt)) {
		s.despawn(id, entity.DespawnHit)
	}

	for _, r := range s.damage.Apply(w) {
		s.applyDamage(r)
	}

	spawns := append(shots, s.enemies.Update(w, dt)...)
	for _, id := range s.bullets.Spawn(w, spawns) {
		s.track(id)
	}

	for _, d := range s.bullets.Expired(w) {
		s.despawn(d.ID, d.Reason)
	}
	for _, id := range s.enemies.OutOfBounds(w) {
		s.despawn(id, entity.DespawnOutOfBounds)
	}

	s.hud.Update(w, dt)

	switch {
	case !w.PlayerAlive():
		s.setState(state.StateGameOver)
	case s.sequencer.Exhausted() && w.CountEnemies() == 0:
		s.setState(state.StateLevelClear)
	}
}

// TogglePause pauses a running session or resumes a paused one
func (s *Session) TogglePause() {
	switch s.state {
	case state.StatePlaying:
		s.setState(state.StatePaused)
	case state.StatePaused:
		s.setState(state.StatePlaying)
	}
}

// SpawnBoss spawns the first boss of the level at the right edge
func (s *Session) SpawnBoss() (ecs.EntityID, error) {
	desc, ok := s.level.Registry.FirstBoss()
	if !ok {
		return 0, ErrNoBoss
	}
	id := s.spawn(entity.SpawnRequest{Descriptor: desc, Position: entity.Vec3{X: motion.EnterStartX}})
	if id == 0 {
		return 0, fmt.Errorf("failed to spawn boss %q", desc.Name)
	}
	return id, nil
}

func (s *Session) spawn(req entity.SpawnRequest) ecs.EntityID {
	id, err := s.enemies.Spawn(s.world, req)
	if err != nil {
		log.Printf("Failed to spawn enemy: %v", err)
		return 0
	}
	s.track(id)
	s.stats.Spawned++

	desc := req.Descriptor
	if desc.IsBoss {
		s.boss = id
		segment := system.SegmentLife(s.settings.HUD.Boss.SegmentLife, desc.MaxLife, len(s.bossColors))
		s.hud.Init(s.bossBar, segment, s.bossColors)
		s.hud.Show(s.bossBar)
		s.hud.UpdateLife(s.bossBar, desc.MaxLife)
		log.Printf("Boss %s entered (life %.0f)", desc.Name, desc.MaxLife)
	}

	if s.OnSpawn != nil {
		s.OnSpawn(id, desc)
	}
	return id
}

func (s *Session) applyDamage(r system.DamageResult) {
	w := s.world
	switch {
	case r.Target == w.PlayerID:
		s.hud.UpdateLife(s.playerBar, r.Remaining)
	case r.Target == s.boss:
		s.hud.UpdateLife(s.bossBar, r.Remaining)
	}

	if r.Died {
		if _, ok := w.IsEnemy[r.Target]; ok {
			s.stats.Killed++
		}
		s.despawn(r.Target, entity.DespawnDeath)
	}
}

// track adds an entity's collider to the broad-phase
func (s *Session) track(id ecs.EntityID) {
	c, ok := s.world.Collider[id]
	if !ok {
		return
	}
	s.broadphase.Add(id, s.world.Transform[id].Position, c.Radius, c.Layer)
}

func (s *Session) syncBroadphase() {
	for _, id := range ecs.SortedIDs(s.world.Collider) {
		s.broadphase.Move(id, s.world.Transform[id].Position)
	}
}

func (s *Session) despawn(id ecs.EntityID, reason entity.DespawnReason) {
	w := s.world
	if !w.Exists(id) {
		return
	}

	if id == s.boss {
		s.hud.Hide(s.bossBar)
		s.boss = 0
	}
	if ctrl, ok := w.EnemyData[id]; ok {
		if reason == entity.DespawnOutOfBounds {
			s.stats.Escaped++
		}
		log.Printf("Enemy %s #%d despawned (%s)", ctrl.Descriptor.Name, id, reason)
	}

	s.broadphase.Remove(id)
	w.DestroyEntity(id)

	if s.OnDespawn != nil {
		s.OnDespawn(id, reason)
	}
}

func (s *Session) setState(next state.GameState) {
	prev := s.state
	s.state = next
	if prev != next && s.OnState != nil {
		s.OnState(prev, next)
	}
}

// State returns the current session state
func (s *Session) State() state.GameState {
	return s.state
}

// World returns the entity world
func (s *Session) World() *ecs.World {
	return s.world
}

// Sequencer returns the level timeline
func (s *Session) Sequencer() *timeline.Sequencer {
	return s.sequencer
}

// Level returns the level being played
func (s *Session) Level() *system.Level {
	return s.level
}

// Settings returns the settings the session was created with
func (s *Session) Settings() *config.SettingsConfig {
	return s.settings
}

// PlayerLifebar returns the player's lifebar
func (s *Session) PlayerLifebar() *hud.Lifebar {
	return s.world.Lifebar[s.playerBar]
}

// BossLifebar returns the boss lifebar
func (s *Session) BossLifebar() *hud.Lifebar {
	return s.world.Lifebar[s.bossBar]
}

// Boss returns the enemy shown on the boss lifebar, 0 if none
func (s *Session) Boss() ecs.EntityID {
	return s.boss
}

// Stats returns the session counters
func (s *Session) Stats() Stats {
	st := s.stats
	st.Dropped = s.sequencer.Dropped()
	st.FinalState = s.state
	if life, ok := s.world.Life[s.world.PlayerID]; ok {
		st.PlayerLife = life.Remaining
	}
	return st
}
