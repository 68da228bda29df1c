package playing

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/younwookim/kaizen/internal/application/replay"
	"github.com/younwookim/kaizen/internal/application/system"
)

// ErrNothingRecorded is returned when saving a recording without frames
var ErrNothingRecorded = errors.New("no frames to save")

// framesPerMinute sizes the initial frame buffer
const framesPerMinute = 3600

// Recorder captures the player's input for replay. The frame number of each
// entry is its index since the last Restart.
type Recorder struct {
	data   replay.ReplayData
	active bool
}

// NewRecorder starts recording a session of level stepped by dt
func NewRecorder(level string, dt float64) *Recorder {
	r := &Recorder{
		data: replay.ReplayData{
			Version: replay.Version,
			Level:   level,
			DT:      dt,
		},
	}
	r.Restart()
	return r
}

// Restart drops every recorded frame and resumes recording
func (r *Recorder) Restart() {
	r.data.StartTime = time.Now().Format(time.RFC3339)
	r.data.Frames = make([]replay.FrameInput, 0, framesPerMinute)
	r.active = true
}

// RecordFrame appends one frame of input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.active {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.ToFrame(len(r.data.Frames), input))
}

// Save writes the recording to filename. The file is replaced in one step,
// so a reader never sees a partial replay.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNothingRecorded
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".replay-*.json")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := json.NewEncoder(tmp).Encode(r.data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	return nil
}

// Stop stops recording, keeping the frames so far
func (r *Recorder) Stop() {
	r.active = false
}

// IsRecording returns whether frames are being captured
func (r *Recorder) IsRecording() bool {
	return r.active
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// GenerateFilename names a recording after its level and the current time
func GenerateFilename(level string) string {
	name := strings.TrimSuffix(filepath.Base(level), filepath.Ext(level))
	if name == "" || name == "." {
		name = "session"
	}
	return fmt.Sprintf("replay_%s_%s.json", name, time.Now().Format("20060102_150405"))
}
