package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/kaizen/internal/application/system"
)

// Version is written into every recording
const Version = "1.0"

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return FromFrame(fi), true
}

// FromFrame converts a recorded frame into input
func FromFrame(fi FrameInput) system.InputState {
	return system.InputState{
		Left:  fi.L,
		Right: fi.R,
		Up:    fi.U,
		Down:  fi.D,
		Fire:  fi.X,
	}
}

// ToFrame converts input into a recorded frame
func ToFrame(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F: frame,
		L: in.Left,
		R: in.Right,
		U: in.Up,
		D: in.Down,
		X: in.Fire,
	}
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// DT returns the time step the replay was recorded with
func (r *Replayer) DT() float64 {
	return r.data.DT
}

// Level returns the name of the database the replay was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: the player holds
// fire and weaves up and down.
func CreateTestReplayData(frames int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Level:     "test",
		DT:        1.0 / 60.0,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			U: i%120 < 40,
			D: i%120 >= 80,
			X: true,
		}
	}

	return data
}
