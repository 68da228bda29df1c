package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/kaizen/internal/application/game"
	"github.com/younwookim/kaizen/internal/application/replay"
	"github.com/younwookim/kaizen/internal/application/scene/playing"
	"github.com/younwookim/kaizen/internal/application/system"
	"github.com/younwookim/kaizen/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load configs from a directory instead of the embedded defaults")
	dbFlag := flag.String("db", "", "Enemy database file (e.g., -db enemy_db.yaml)")
	watchFlag := flag.Bool("watch", false, "Reload the enemy database when it changes (requires -config)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headless := flag.Bool("headless", false, "Run -replay without a window and print the result")
	flag.Parse()

	var replayData *replay.ReplayData
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayData = data
	}

	database := *dbFlag
	if database == "" && replayData != nil {
		database = replayData.Level
	}

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.LoadAll(database)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	level, err := system.LoadLevel(cfg.Settings, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if *headless {
		if replayData == nil {
			log.Fatalf("-headless requires -replay")
		}
		stats, err := runReplay(cfg.Settings, level, replayData)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		printStats(os.Stdout, stats)
		return
	}

	opts := playing.Options{
		RecordPath: *recordFlag,
		Loader:     loader,
		Database:   database,
	}
	if replayData != nil {
		opts.Replayer = replay.NewReplayer(*replayData)
	}

	var watcher *config.Watcher
	if *watchFlag {
		if *configDir == "" {
			log.Printf("-watch needs -config, embedded configs cannot change")
		} else if watcher, err = config.NewWatcher(*configDir); err != nil {
			log.Printf("Failed to watch %s: %v", *configDir, err)
		} else {
			opts.Watcher = watcher
			log.Printf("Watching %s for enemy database changes", *configDir)
		}
	}

	scn, err := playing.New(cfg.Settings, level, opts)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	display := cfg.Settings.Display
	g := game.New(scn, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))
	if watcher != nil {
		g.AddCloser(watcher)
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Kaizen")
	ebiten.SetTPS(display.Framerate)

	// Run game
	runErr := ebiten.RunGame(g)
	if err := g.Close(); err != nil {
		log.Printf("Shutdown: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}

// newLoader reads configs from dir, or from the embedded defaults when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
