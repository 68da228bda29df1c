// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/kaizen/internal/application/replay"
	"github.com/younwookim/kaizen/internal/application/scene"
	"github.com/younwookim/kaizen/internal/application/session"
	"github.com/younwookim/kaizen/internal/application/state"
	"github.com/younwookim/kaizen/internal/application/system"
	"github.com/younwookim/kaizen/internal/domain/entity"
	"github.com/younwookim/kaizen/internal/domain/hud"
	"github.com/younwookim/kaizen/internal/ecs"
	"github.com/younwookim/kaizen/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{16, 16, 32, 255}
	colorField   = color.RGBA{60, 60, 90, 255}
	colorPlayer  = color.RGBA{100, 200, 100, 255}
	colorEnemy   = color.RGBA{200, 100, 100, 255}
	colorBoss    = color.RGBA{220, 80, 200, 255}
	colorBarEdge = color.RGBA{200, 200, 200, 255}
)

// Options are the optional collaborators of the scene
type Options struct {
	// RecordPath enables input recording. The file is written on game over,
	// level clear, F5 and scene exit.
	RecordPath string

	// Replayer feeds recorded input instead of the keyboard
	Replayer *replay.Replayer

	// Loader and Watcher reload the enemy database when it changes on disk
	Loader   *config.Loader
	Watcher  *config.Watcher
	Database string
}

// Playing is the main gameplay scene
type Playing struct {
	session     *session.Session
	settings    *config.SettingsConfig
	inputSystem *system.InputSystem
	screenW     int
	screenH     int
	ppu         float64
	dt          float64

	// Hot reload
	loader   *config.Loader
	watcher  *config.Watcher
	database string

	// Input playback
	replayer    *replay.Replayer
	replayEnded bool

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene for level.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(settings *config.SettingsConfig, level *system.Level, opts Options) (*Playing, error) {
	s, err := session.New(settings, level)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	database := opts.Database
	if database == "" {
		database = config.DefaultDatabase
	}

	p := &Playing{
		session:        s,
		settings:       settings,
		inputSystem:    system.NewInputSystem(),
		screenW:        settings.Display.ScreenWidth,
		screenH:        settings.Display.ScreenHeight,
		ppu:            settings.Display.PixelsPerUnit,
		dt:             1.0 / float64(settings.Display.Framerate),
		loader:         opts.Loader,
		watcher:        opts.Watcher,
		database:       database,
		replayer:       opts.Replayer,
		recordFilename: opts.RecordPath,
	}

	if p.replayer != nil && p.replayer.DT() > 0 {
		p.dt = p.replayer.DT()
	}

	// Initialize recorder if recording is enabled
	if p.recordFilename != "" {
		p.recorder = NewRecorder(database, p.dt)
		log.Printf("Recording enabled: %s", p.recordFilename)
	}

	s.OnState = func(from, to state.GameState) {
		if to.Finished() {
			st := s.Stats()
			log.Printf("%s after %.1fs: %d killed, %d escaped", to, st.Elapsed, st.Killed, st.Escaped)
			// Auto-save recording when the run ends
			p.saveRecording()
		}
	}

	return p, nil
}

// Update proceeds the game state (implements scene.Scene).
// The session always steps by the fixed framerate so recordings replay exactly.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.pollReload()
	p.step(p.inputSystem.GetInput(), p.inputSystem.GetCommands())
	return nil, nil // nil = stay on this scene
}

func (p *Playing) step(input system.InputState, cmds system.Commands) {
	if cmds.SaveRecording {
		p.saveRecording()
	}
	if cmds.Pause {
		p.session.TogglePause()
	}
	if cmds.Restart {
		p.restart()
		return
	}
	if cmds.DebugSpawn && p.session.State() == state.StatePlaying {
		if _, err := p.session.SpawnBoss(); err != nil {
			log.Printf("Debug spawn failed: %v", err)
		}
	}

	if p.session.State() != state.StatePlaying {
		p.session.Update(input, p.dt)
		return
	}

	if p.replayer != nil {
		input = p.replayInput()
	}

	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.session.Update(input, p.dt)
}

// replayInput returns the next recorded frame, then idle input once the
// recording runs out
func (p *Playing) replayInput() system.InputState {
	input, ok := p.replayer.GetInput()
	if !ok && !p.replayEnded {
		p.replayEnded = true
		log.Printf("Replay finished (%d frames)", p.replayer.TotalFrames())
	}
	return input
}

// pollReload drains pending database change notifications without blocking
func (p *Playing) pollReload() {
	if p.watcher == nil {
		return
	}

	for {
		select {
		case name, ok := <-p.watcher.Events:
			if !ok {
				p.watcher = nil
				return
			}
			p.reload(name)
		case err, ok := <-p.watcher.Errors:
			if !ok {
				p.watcher = nil
				return
			}
			log.Printf("Config watcher error: %v", err)
		default:
			return
		}
	}
}

// reload reparses the enemy database. The new level applies on restart.
func (p *Playing) reload(name string) {
	if p.loader == nil || filepath.Base(name) != filepath.Base(p.database) {
		return
	}

	cfg, err := p.loader.LoadAll(p.database)
	if err != nil {
		log.Printf("Failed to reload enemy database: %v", err)
		return
	}
	level, err := system.LoadLevel(p.settings, cfg.Database)
	if err != nil {
		log.Printf("Failed to reload enemy database: %v", err)
		return
	}

	p.session.SetLevel(level)
	log.Printf("Enemy database reloaded from %s (%d enemies, %d events), applies on restart",
		p.database, level.Registry.Len(), len(level.Events))
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename(p.database)
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	if err := p.session.Restart(); err != nil {
		log.Printf("Failed to restart: %v", err)
		return
	}

	if p.replayer != nil {
		p.replayer.Reset()
		p.replayEnded = false
	}

	if p.recorder != nil {
		p.recorder.Restart()
		log.Printf("Recording restarted")
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	// Fill background
	screen.Fill(colorBG)

	p.drawField(screen)
	p.drawEnemies(screen)
	p.drawBullets(screen)
	p.drawPlayer(screen)

	// HUD is always on top of the field
	p.drawLifebar(screen, p.session.PlayerLifebar(), p.settings.HUD.Player)
	p.drawLifebar(screen, p.session.BossLifebar(), p.settings.HUD.Boss)
	p.drawUI(screen)

	// Draw state overlays
	switch p.session.State() {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StateGameOver:
		st := p.session.Stats()
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nEnemies shot down: %d\n\nPress R to restart", st.Killed))
	case state.StateLevelClear:
		st := p.session.Stats()
		p.drawOverlay(screen, color.RGBA{0, 60, 100, 180},
			fmt.Sprintf("LEVEL CLEAR\n\nTime: %.1fs\nLife left: %.0f\n\nPress R to play again", st.Elapsed, st.PlayerLife))
	}
}

// toScreen maps world units (origin at the center, Y up) to screen pixels
func (p *Playing) toScreen(v entity.Vec3) (float32, float32) {
	x := float64(p.screenW)/2 + v.X*p.ppu
	y := float64(p.screenH)/2 - v.Y*p.ppu
	return float32(x), float32(y)
}

func (p *Playing) drawField(screen *ebiten.Image) {
	f := p.settings.Field
	x, y := p.toScreen(entity.Vec3{X: -f.HalfWidth, Y: f.HalfHeight})
	w := float32(2 * f.HalfWidth * p.ppu)
	h := float32(2 * f.HalfHeight * p.ppu)
	vector.StrokeRect(screen, x, y, w, h, 1, colorField, false)
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	w := p.session.World()
	if !w.PlayerAlive() {
		return
	}

	x, y := p.toScreen(w.GetPlayerPosition())
	r := float32(w.Collider[w.PlayerID].Radius * p.ppu)
	vector.DrawFilledCircle(screen, x, y, r, colorPlayer, true)
}

func (p *Playing) drawEnemies(screen *ebiten.Image) {
	w := p.session.World()
	for _, id := range ecs.SortedIDs(w.EnemyData) {
		x, y := p.toScreen(w.Transform[id].Position)
		r := float32(w.Collider[id].Radius * p.ppu)

		c := colorEnemy
		if _, ok := w.IsBoss[id]; ok {
			c = colorBoss
		}
		vector.DrawFilledCircle(screen, x, y, r, c, true)
	}
}

func (p *Playing) drawBullets(screen *ebiten.Image) {
	w := p.session.World()
	for _, id := range ecs.SortedIDs(w.BulletData) {
		b := w.BulletData[id]
		x, y := p.toScreen(w.Transform[id].Position)
		vector.DrawFilledCircle(screen, x, y, float32(b.Visual.Radius*p.ppu), b.Visual.Color, true)
	}
}

// drawLifebar draws the under layer at full size and the over layer scaled
// along the fill axis, anchored at the empty end
func (p *Playing) drawLifebar(screen *ebiten.Image, bar *hud.Lifebar, cfg config.LifebarConfig) {
	if bar == nil || !bar.Visible() {
		return
	}

	pos := bar.Position()
	corner := entity.Vec3{X: pos.X - cfg.Width/2, Y: pos.Y + cfg.Height/2}
	x, y := p.toScreen(corner)
	bw := float32(cfg.Width * p.ppu)
	bh := float32(cfg.Height * p.ppu)

	under, over := bar.Colors()
	vector.DrawFilledRect(screen, x, y, bw, bh, under, false)

	scale := bar.OverScale()
	if bar.Layout().Orientation == hud.Vertical {
		fh := bh * float32(scale.Y)
		vector.DrawFilledRect(screen, x, y+bh-fh, bw, fh, over, false)
	} else {
		vector.DrawFilledRect(screen, x, y, bw*float32(scale.X), bh, over, false)
	}

	vector.StrokeRect(screen, x, y, bw, bh, 1, colorBarEdge, false)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	w := p.session.World()
	st := p.session.Stats()

	status := fmt.Sprintf("Time: %.1fs  Enemies: %d  Bullets: %d  Life: %.0f",
		st.Elapsed, w.CountEnemies(), w.CountBullets(), st.PlayerLife)
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-20)

	// Controls
	debugText := "Arrows/WASD: Move | Z/Space: Fire | ESC: Pause | R: Restart | F1: Boss"
	if p.replayer != nil {
		debugText = fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	}
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), c, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Session returns the session being played
func (p *Playing) Session() *session.Session {
	return p.session
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
