// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/kaizen/internal/application/scene"
)

// ErrQuit is returned by a scene to end the game normally
var ErrQuit = errors.New("quit")

// layouter is implemented by scenes that pick their own logical screen size
type layouter interface {
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64

	closers []io.Closer
	closed  bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return fmt.Errorf("scene update failed: %w", err)
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions, asking the current
// scene first. Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if l, ok := g.current.(layouter); ok {
		return l.Layout(outsideWidth, outsideHeight)
	}
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// AddCloser registers a resource released by Close, such as a file watcher
func (g *Game) AddCloser(c io.Closer) {
	g.closers = append(g.closers, c)
}

// Close exits the current scene and releases registered resources in
// reverse order. Calling Close again does nothing.
func (g *Game) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	g.current.OnExit()

	var errs []error
	for i := len(g.closers) - 1; i >= 0; i-- {
		if err := g.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
