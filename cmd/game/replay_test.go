package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/kaizen/internal/application/replay"
	"github.com/younwookim/kaizen/internal/application/scene/playing"
	"github.com/younwookim/kaizen/internal/application/session"
	"github.com/younwookim/kaizen/internal/application/state"
	"github.com/younwookim/kaizen/internal/application/system"
	"github.com/younwookim/kaizen/internal/infrastructure/config"
)

// loadTestLevel loads the embedded configs the binary ships with
func loadTestLevel(t *testing.T, database string) (*config.SettingsConfig, *system.Level) {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	cfg, err := loader.LoadAll(database)
	require.NoError(t, err)
	level, err := system.LoadLevel(cfg.Settings, cfg.Database)
	require.NoError(t, err)
	return cfg.Settings, level
}

func TestEmbeddedConfigs(t *testing.T) {
	for _, db := range []string{"", "enemy_db.json", "enemy_db.yaml"} {
		t.Run("db="+db, func(t *testing.T) {
			settings, level := loadTestLevel(t, db)
			assert.Equal(t, 60, settings.Display.Framerate)
			assert.NotEmpty(t, level.Events)
			_, ok := level.Registry.FirstBoss()
			assert.True(t, ok)
		})
	}
}

func TestNewLoader_Dir(t *testing.T) {
	loader, err := newLoader("configs")
	require.NoError(t, err)
	assert.Equal(t, "configs", loader.BasePath())

	_, err = loader.LoadAll("enemy_db.yaml")
	assert.NoError(t, err)
}

func TestReplayDeterminism(t *testing.T) {
	settings, level := loadTestLevel(t, "")
	data := replay.CreateTestReplayData(600)

	stats1, err := runReplay(settings, level, &data)
	require.NoError(t, err)
	stats2, err := runReplay(settings, level, &data)
	require.NoError(t, err)

	assert.Equal(t, stats1, stats2, "two runs of one replay must match")
	assert.Equal(t, 600, stats1.Frames)
	assert.Positive(t, stats1.Spawned)
	assert.Positive(t, stats1.ShotsFired)
}

func TestReplayStopsWhenFinished(t *testing.T) {
	settings, level := loadTestLevel(t, "")
	settings.Player.MaxLife = 1

	// standing still in front of the popcorn wave with fire released
	data := replay.ReplayData{DT: 1.0 / 60.0, Frames: make([]replay.FrameInput, 60*60)}
	for i := range data.Frames {
		data.Frames[i].F = i
	}

	stats, err := runReplay(settings, level, &data)
	require.NoError(t, err)

	assert.True(t, stats.FinalState.Finished())
	assert.Less(t, stats.Frames, len(data.Frames))
}

func TestReplayEmpty(t *testing.T) {
	settings, level := loadTestLevel(t, "")

	stats, err := runReplay(settings, level, &replay.ReplayData{})
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Frames)
	assert.Equal(t, state.StatePlaying, stats.FinalState)
}

func TestReplayFromRecording(t *testing.T) {
	settings, level := loadTestLevel(t, "enemy_db.yaml")

	rec := playing.NewRecorder("enemy_db.yaml", 1.0/60.0)
	for i := 0; i < 180; i++ {
		rec.RecordFrame(system.InputState{Up: i < 30, Fire: true})
	}
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "enemy_db.yaml", data.Level)

	stats, err := runReplay(settings, level, data)
	require.NoError(t, err)
	assert.Equal(t, 180, stats.Frames)
	assert.Equal(t, 2, stats.Spawned, "both popcorn spawn at 0.5s")
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, session.Stats{
		Frames:     120,
		Elapsed:    2,
		Spawned:    3,
		Killed:     2,
		Escaped:    1,
		PlayerLife: 40,
		FinalState: state.StateLevelClear,
	})

	out := buf.String()
	assert.Contains(t, out, "result:  LevelClear")
	assert.Contains(t, out, "frames:  120 (2.00s)")
	assert.Contains(t, out, "3 spawned, 2 killed, 1 escaped, 0 dropped")
}
