package main

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/fpcore/internal/application/replay"
	"github.com/younwookim/fpcore/internal/application/simulation"
	"github.com/younwookim/fpcore/internal/application/state"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
)

// ReplayResult is the simulation state after a headless replay
type ReplayResult struct {
	Session  string
	Frames   int
	Mode     state.Mode
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Facing   float64
	Health   int
}

func (r ReplayResult) Log(log *slog.Logger) {
	log.Info("replay finished",
		"session", r.Session,
		"frames", r.Frames,
		"mode", r.Mode,
		"position", r.Position,
		"health", r.Health,
	)
}

func runReplay(cfg *config.GameConfig, filename string, log *slog.Logger) (ReplayResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return ReplayResult{}, err
	}
	return simulateReplay(cfg, *data, log)
}

// simulateReplay feeds every recorded frame to a fresh simulation
func simulateReplay(cfg *config.GameConfig, data replay.ReplayData, log *slog.Logger) (ReplayResult, error) {
	sim, err := simulation.New(cfg, data.Player, log)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("failed to create simulation: %w", err)
	}
	defer sim.Dispose()

	if err := sim.StartStage(data.StageIndex); err != nil {
		return ReplayResult{}, fmt.Errorf("failed to start stage %d: %w", data.StageIndex, err)
	}

	res := ReplayResult{Session: data.Session}
	replayer := replay.NewReplayer(data)
	for {
		s, ok := replayer.Next()
		if !ok {
			break
		}
		if err := sim.Tick(data.FrameDt, s); err != nil {
			return res, fmt.Errorf("frame %d: %w", replayer.CurrentFrame()-1, err)
		}
		res.Frames++
	}

	p := sim.Player()
	res.Mode = sim.Mode()
	res.Position = p.Position()
	res.Velocity = p.Velocity
	res.Facing = p.Facing
	res.Health = p.Health
	return res, nil
}
