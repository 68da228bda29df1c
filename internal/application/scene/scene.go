// Package scene defines the Scene interface for game screens.
//
// The playing scene owns a gameplay session. Other screens (a replay viewer,
// a level select) plug in the same way and hand over by returning the next
// scene from Update.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen driven by the game loop
type Scene interface {
	// Update advances the scene by one frame.
	// dt is the loop's frame time in seconds. Scenes that step a
	// deterministic simulation may use their own fixed step instead.
	// Returns the next scene to switch to, or nil to stay.
	// Returns an error to end the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is replaced or the game closes.
	// Scenes flush recordings and release resources here.
	OnExit()
}
