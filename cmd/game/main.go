// Command game runs the first-person simulation in a window, or replays a
// recorded session headless.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/fpcore/internal/application/game"
	"github.com/younwookim/fpcore/internal/application/replay"
	"github.com/younwookim/fpcore/internal/application/scene/playing"
	"github.com/younwookim/fpcore/internal/application/simulation"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
	"github.com/younwookim/fpcore/internal/infrastructure/device"
	"github.com/younwookim/fpcore/internal/infrastructure/logger"
)

func main() {
	recordFlag := flag.String("record", "", `record input to file (e.g. -record replay.json, or "auto")`)
	replayFlag := flag.String("replay", "", "replay a recorded session headless and exit")
	watchFlag := flag.Bool("watch", false, "with -replay, play the session back in the window")
	configFlag := flag.String("config", "", "load configs from this directory instead of the embedded set")
	levelFlag := flag.String("log-level", "", "override logging.level")
	playerFlag := flag.String("player", "hero1", "character to control")
	stageFlag := flag.Int("stage", 0, "stage index to start on")
	keyboardFlag := flag.Bool("keyboard", true, "use the keyboard while no gamepad is connected")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Settings.Logging.Level
	if *levelFlag != "" {
		level = *levelFlag
	}
	log := logger.Init(logger.Config{Level: level, Format: cfg.Settings.Logging.Format})

	switch {
	case *replayFlag != "" && !*watchFlag:
		res, err := runReplay(cfg, *replayFlag, log)
		if err != nil {
			log.Error("replay failed", "file", *replayFlag, "error", err)
			os.Exit(1)
		}
		res.Log(log)
	case *replayFlag != "":
		err = watchReplay(cfg, *replayFlag, log)
	default:
		src := device.NewGamepad(*keyboardFlag, log)
		err = run(cfg, *playerFlag, *stageFlag, src, *recordFlag, log)
	}
	if err != nil {
		log.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// run opens the window and plays until it is closed
func run(cfg *config.GameConfig, player string, stage int, src device.Source, record string, log *slog.Logger) error {
	sim, err := simulation.New(cfg, player, log)
	if err != nil {
		return err
	}
	defer sim.Dispose()

	if err := sim.StartStage(stage); err != nil {
		return err
	}

	g := cfg.Settings.Game
	ebiten.SetWindowSize(g.ScreenWidth, g.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("First Person Action")
	ebiten.SetTPS(g.Framerate)

	return ebiten.RunGame(game.New(playing.New(sim, src, record, log), g, log))
}

func watchReplay(cfg *config.GameConfig, filename string, log *slog.Logger) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}
	log.Info("watching replay", "session", data.Session, "frames", len(data.Frames))
	return run(cfg, data.Player, data.StageIndex, replay.NewReplayer(*data), "", log)
}
