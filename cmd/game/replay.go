package main

import (
	"fmt"
	"io"

	"github.com/younwookim/kaizen/internal/application/replay"
	"github.com/younwookim/kaizen/internal/application/session"
	"github.com/younwookim/kaizen/internal/application/system"
	"github.com/younwookim/kaizen/internal/infrastructure/config"
)

// runReplay plays data through a fresh session without a window. It stops
// when the recording runs out or the session finishes.
func runReplay(settings *config.SettingsConfig, level *system.Level, data *replay.ReplayData) (session.Stats, error) {
	s, err := session.New(settings, level)
	if err != nil {
		return session.Stats{}, err
	}

	dt := data.DT
	if dt <= 0 {
		dt = 1.0 / float64(settings.Display.Framerate)
	}

	replayer := replay.NewReplayer(*data)
	for !s.State().Finished() {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		s.Update(input, dt)
	}

	return s.Stats(), nil
}

// printStats writes a one-run summary
func printStats(w io.Writer, st session.Stats) {
	_, _ = fmt.Fprintf(w, "result:  %s\n", st.FinalState)
	_, _ = fmt.Fprintf(w, "frames:  %d (%.2fs)\n", st.Frames, st.Elapsed)
	_, _ = fmt.Fprintf(w, "enemies: %d spawned, %d killed, %d escaped, %d dropped\n", st.Spawned, st.Killed, st.Escaped, st.Dropped)
	_, _ = fmt.Fprintf(w, "shots:   %d\n", st.ShotsFired)
	_, _ = fmt.Fprintf(w, "life:    %.0f\n", st.PlayerLife)
}
