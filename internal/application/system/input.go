package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/kaizen/internal/domain/entity"
)

// InputSystem reads the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the gameplay input of one frame.
// Only these fields are recorded in replays.
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
}

// Commands holds the one-shot keys the playing scene reacts to
type Commands struct {
	Pause         bool
	Restart       bool
	DebugSpawn    bool
	SaveRecording bool
}

// GetInput reads the current input state (arrows or WASD, Z or Space to fire)
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Fire:  ebiten.IsKeyPressed(ebiten.KeyZ) || ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// GetCommands reads keys pressed this frame
func (s *InputSystem) GetCommands() Commands {
	return Commands{
		Pause:         inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart:       inpututil.IsKeyJustPressed(ebiten.KeyR),
		DebugSpawn:    inpututil.IsKeyJustPressed(ebiten.KeyF1),
		SaveRecording: inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}

// Direction returns the raw movement vector, Y up
func (in InputState) Direction() entity.Vec3 {
	var d entity.Vec3
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	if in.Up {
		d.Y++
	}
	if in.Down {
		d.Y--
	}
	return d
}

// Intents converts the input into intents for the entity id
func (in InputState) Intents(id entity.EntityID) []Intent {
	intents := make([]Intent, 0, 2)
	if dir := in.Direction(); dir != (entity.Vec3{}) {
		intents = append(intents, MoveIntent{EntityID: id, Direction: dir})
	}
	if in.Fire {
		intents = append(intents, FireIntent{EntityID: id})
	}
	return intents
}
