// Package simulation drives one player through the stages of a data set.
//
// A Simulation owns the event bus and every system. The host feeds it one
// device snapshot per frame through Tick; everything else happens inside.
package simulation

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/fpcore/internal/application/event"
	"github.com/younwookim/fpcore/internal/application/state"
	"github.com/younwookim/fpcore/internal/application/system"
	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/domain/input"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
	"github.com/younwookim/fpcore/internal/infrastructure/logger"
)

// ErrDisposed is returned by Tick and stage navigation after Dispose
var ErrDisposed = errors.New("simulation disposed")

// Simulation is the per-frame update loop with its mode and stage state
type Simulation struct {
	settings *config.Settings
	log      *slog.Logger

	bus        *event.Bus
	factory    *system.Factory
	registry   *system.Registry
	classifier *system.InputClassifier
	pov        *system.POV
	motion     *system.MotionController
	tweens     *system.TweenScheduler
	combat     *system.CombatSystem

	player     *entity.Character
	stage      *system.Stage
	stageIndex int
	mode       state.Mode
	frame      uint64
	disposed   bool
}

// New builds a simulation for cfg with playerName as the controlled character.
// The simulation starts in loading mode with no stage; call StartStage to play.
func New(cfg *config.GameConfig, playerName string, log *slog.Logger) (*Simulation, error) {
	if log == nil {
		log = logger.L()
	}

	factory, err := system.NewFactory(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to build factory: %w", err)
	}
	player, err := factory.NewCharacter(playerName)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	st := cfg.Settings
	bus := event.NewBus()
	registry := system.NewRegistry(bus, nil, st.World.Gravity)

	s := &Simulation{
		settings:   st,
		log:        log,
		bus:        bus,
		factory:    factory,
		registry:   registry,
		classifier: system.NewInputClassifier(bus, st.Controls.InputEpsilon, st.Controls.StickSpeed),
		pov:        system.NewPOV(bus, st.Controls, player.ID, st.Game.ScreenWidth, st.Game.ScreenHeight),
		motion:     system.NewMotionController(player, bus, st.Controls.UrgencyDuration),
		tweens:     system.NewTweenScheduler(registry, bus),
		combat:     system.NewCombatSystem(registry, bus, log),
		player:     player,
		mode:       state.ModeLoading,
	}
	s.combat.OnKill = s.onKill
	s.combat.OnPickup = func(c *entity.Character, item *entity.Item) {
		s.log.Info("item picked up", "item", item.Name, "by", c.Name)
	}
	return s, nil
}

func (s *Simulation) onKill(c *entity.Character) {
	if c == s.player && s.mode == state.ModePlay {
		s.setMode(state.ModeGameOver)
	}
}

// Tick advances the simulation by one frame of frameDt seconds.
// The snapshot is classified once; physics runs StepsPerFrame sub-steps.
// Outside play mode Tick does nothing.
func (s *Simulation) Tick(frameDt float64, snapshot input.DeviceSnapshot) error {
	if s.disposed {
		return ErrDisposed
	}
	if frameDt < 0 || math.IsNaN(frameDt) || math.IsInf(frameDt, 0) {
		return fmt.Errorf("invalid frame time %v", frameDt)
	}
	if !s.mode.Ticks() {
		return nil
	}
	s.frame++

	s.classifier.Classify(snapshot)

	steps := s.settings.Game.StepsPerFrame
	dt := frameDt / float64(steps)
	damping := system.NewDampingTable(s.settings.World.Resistance, dt)

	for i := 0; i < steps && s.mode.Ticks(); i++ {
		s.pov.Update(dt)
		s.motion.Update(dt)
		s.registry.Update(dt, damping)
		s.combat.Update(dt)
		s.tweens.Update(dt)
	}

	if !s.player.IsAlive() && s.mode == state.ModePlay {
		s.setMode(state.ModeGameOver)
	}
	return nil
}

// SetMode switches mode and runs that mode's entry action only:
// loading clears the stage, initial respawns the player at the first check
// point, play loads the current stage if none is installed, game over freezes.
func (s *Simulation) SetMode(m state.Mode) error {
	if s.disposed {
		return ErrDisposed
	}
	if !m.Valid() {
		return fmt.Errorf("invalid mode %d", m)
	}
	if m == state.ModePlay && s.stage == nil {
		return s.StartStage(s.stageIndex)
	}
	s.setMode(m)
	return nil
}

func (s *Simulation) setMode(m state.Mode) {
	prev := s.mode
	s.mode = m

	switch m {
	case state.ModeLoading:
		s.clearStage()
	case state.ModeInitial:
		s.respawn()
	case state.ModePlay:
	case state.ModeGameOver:
		s.log.Info("game over", "stage", s.stageName(), "frame", s.frame)
	}
	s.log.Debug("mode changed", "from", prev, "to", m)
}

// StartStage builds the stage at index and starts playing it.
// On error the current stage and mode are left as they were.
func (s *Simulation) StartStage(index int) error {
	if s.disposed {
		return ErrDisposed
	}
	stage, err := system.LoadStage(s.factory, index)
	if err != nil {
		return err
	}

	s.setMode(state.ModeLoading)
	if err := s.install(stage); err != nil {
		s.clearStage()
		return fmt.Errorf("stage %q: %w", stage.Name, err)
	}
	s.stage = stage
	s.stageIndex = index

	s.setMode(state.ModeInitial)
	s.setMode(state.ModePlay)
	s.log.Info("stage started", "stage", stage.Name, "index", index)
	return nil
}

// NextStage starts the stage after the current one
func (s *Simulation) NextStage() error {
	return s.StartStage(s.stageIndex + 1)
}

// PreviousStage starts the stage before the current one
func (s *Simulation) PreviousStage() error {
	return s.StartStage(s.stageIndex - 1)
}

// Restart respawns the player on the current stage and resumes play
func (s *Simulation) Restart() error {
	if s.stage == nil {
		return s.StartStage(s.stageIndex)
	}
	if err := s.SetMode(state.ModeInitial); err != nil {
		return err
	}
	return s.SetMode(state.ModePlay)
}

func (s *Simulation) install(stage *system.Stage) error {
	s.registry.SetIndex(stage.World)

	if err := s.registry.Add(s.player); err != nil {
		return err
	}
	for _, pool := range s.factory.Pools() {
		pool.SetActive(false)
		for _, b := range pool.Bullets() {
			if err := s.registry.Add(b); err != nil {
				return err
			}
		}
	}
	for _, p := range stage.Obstacles {
		if err := s.registry.Add(p.Obstacle); err != nil {
			return err
		}
		for _, tf := range p.Tweeners {
			s.tweens.Attach(p.Obstacle, tf)
		}
	}
	for _, item := range stage.Items {
		if err := s.registry.Add(item); err != nil {
			return err
		}
	}
	for _, c := range stage.Characters {
		if err := s.registry.Add(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulation) clearStage() {
	s.registry.Clear()
	s.registry.SetIndex(nil)
	s.stage = nil
}

func (s *Simulation) respawn() {
	if s.stage == nil {
		return
	}
	p := s.player
	p.SetPosition(s.stage.CheckPoint(0))
	p.Velocity = mgl64.Vec3{}
	p.Facing = 0
	p.Health = p.Stats.MaxHealth
	p.Alive = true
	p.Active = true
	p.Grounded = false

	s.pov.Reset()
	s.pov.SetCharacterYaw(0)
	s.classifier.Reset()
}

func (s *Simulation) stageName() string {
	if s.stage == nil {
		return ""
	}
	return s.stage.Name
}

// HandleResize forwards new viewport dimensions to the POV indicators
func (s *Simulation) HandleResize(w, h int) {
	s.pov.HandleResize(w, h)
}

// Dispose releases every subscription and entity. It is safe to call twice.
func (s *Simulation) Dispose() {
	if s.disposed {
		return
	}
	s.registry.Clear()
	s.tweens.Dispose()
	s.combat.Dispose()
	s.motion.Dispose()
	s.pov.Dispose()
	s.bus.Clear()
	s.stage = nil
	s.disposed = true
}

// Player returns the controlled character
func (s *Simulation) Player() *entity.Character {
	return s.player
}

func (s *Simulation) POV() *system.POV {
	return s.pov
}

func (s *Simulation) Registry() *system.Registry {
	return s.registry
}

// Stage returns the installed stage, or nil while loading
func (s *Simulation) Stage() *system.Stage {
	return s.stage
}

func (s *Simulation) Mode() state.Mode {
	return s.mode
}

func (s *Simulation) StageIndex() int {
	return s.stageIndex
}

func (s *Simulation) Bus() *event.Bus {
	return s.bus
}

// Frame returns the number of frames ticked in play mode
func (s *Simulation) Frame() uint64 {
	return s.frame
}

func (s *Simulation) Settings() *config.Settings {
	return s.settings
}
