package simulation

import (
	"errors"
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/fpcore/internal/application/state"
	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/domain/input"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
	"github.com/younwookim/fpcore/internal/infrastructure/logger"
)

const frameDt = 1.0 / 60.0

func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Settings: config.DefaultSettings(),
		Data: &config.Data{
			Characters: map[string]config.CharacterConfig{
				"hero": {
					Radius: 5, Weight: 1, MaxHealth: 100,
					Speed: 600, AirSpeed: 300, TurnSpeed: 1, Sprint: 2.5,
					UrgencyMove: 250, UrgencyTurn: 1.5, JumpPower: 140,
					Ammo: "pellet",
				},
				"dummy": {Radius: 5, Weight: 2, MaxHealth: 20},
			},
			Obstacles: map[string]config.ObstacleConfig{
				"rock": {Radius: 10, Weight: 4, GravityScale: 1},
			},
			Ammo: map[string]config.AmmoConfig{
				"pellet": {Radius: 1, Speed: 100, Damage: 10, NumAmmo: 4, LifetimeMs: 500, Impulse: 40},
			},
			Items: map[string]config.ItemConfig{
				"potion": {Radius: 2, Heal: 20},
			},
			Tweeners: map[string]config.TweenerConfig{
				"drift": {Kind: "shift", Vector: mgl64.Vec3{6, 0, 0}},
				"turn":  {Kind: "spin", Speed: 2},
			},
			Stages: map[string]config.StageConfig{
				"one": {
					CheckPoints: []mgl64.Vec3{{0, 5, 0}},
					Obstacles:   []config.PlacementConfig{{Name: "rock", Position: mgl64.Vec3{-50, 10, 0}, Tweeners: []string{"drift", "turn"}}},
					Items:       []config.PlacementConfig{{Name: "potion", Position: mgl64.Vec3{0, 2, 40}}},
					Characters:  []config.PlacementConfig{{Name: "dummy", Position: mgl64.Vec3{0, 5, -60}}},
				},
				"two": {
					CheckPoints: []mgl64.Vec3{{0, 5, 0}},
				},
			},
			Compositions: map[string][]string{
				"stage": {"one", "two"},
			},
		},
	}
}

func createTestSimulation(t *testing.T) *Simulation {
	t.Helper()
	sim, err := New(createTestConfig(), "hero", logger.New(logger.Config{Output: io.Discard}))
	require.NoError(t, err)
	t.Cleanup(sim.Dispose)
	return sim
}

func createPlayingSimulation(t *testing.T) *Simulation {
	t.Helper()
	sim := createTestSimulation(t)
	require.NoError(t, sim.StartStage(0))
	return sim
}

func tickN(t *testing.T, sim *Simulation, n int, s input.DeviceSnapshot) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, sim.Tick(frameDt, s))
	}
}

func TestNew_UnknownPlayer(t *testing.T) {
	_, err := New(createTestConfig(), "ghost", nil)

	var unknown *entity.UnknownEntityError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "ghost", unknown.Name)
}

func TestSimulation_LoadingDoesNotTick(t *testing.T) {
	sim := createTestSimulation(t)
	assert.Equal(t, state.ModeLoading, sim.Mode())
	assert.Nil(t, sim.Stage())

	start := sim.Player().Position()
	tickN(t, sim, 5, input.NewSnapshot())
	assert.Equal(t, start, sim.Player().Position())
	assert.Zero(t, sim.Frame())
}

func TestSimulation_StartStage(t *testing.T) {
	sim := createPlayingSimulation(t)

	assert.Equal(t, state.ModePlay, sim.Mode())
	require.NotNil(t, sim.Stage())
	assert.Equal(t, "one", sim.Stage().Name)
	assert.Equal(t, mgl64.Vec3{0, 5, 0}, sim.Player().Position())

	r := sim.Registry()
	assert.Equal(t, 2, r.Len(entity.CategoryCharacter), "player and dummy")
	assert.Equal(t, 1, r.Len(entity.CategoryObstacle))
	assert.Equal(t, 4, r.Len(entity.CategoryAmmo), "the player's pool is registered")
	assert.Equal(t, 1, r.Len(entity.CategoryItem))
	assert.Equal(t, 2, sim.Stage().Obstacles[0].Obstacle.Tweeners())
}

func TestSimulation_InvalidFrameTime(t *testing.T) {
	sim := createPlayingSimulation(t)

	assert.Error(t, sim.Tick(-frameDt, input.NewSnapshot()))
	assert.NoError(t, sim.Tick(0, input.NewSnapshot()))
}

func TestSimulation_PlayerRestsOnGround(t *testing.T) {
	sim := createPlayingSimulation(t)

	tickN(t, sim, 60, input.NewSnapshot())

	p := sim.Player()
	assert.True(t, p.Grounded)
	assert.InDelta(t, 5.0, p.Position()[1], 1e-6)
	assert.Equal(t, uint64(60), sim.Frame())
}

func TestSimulation_Jump(t *testing.T) {
	sim := createPlayingSimulation(t)
	tickN(t, sim, 1, input.NewSnapshot())
	require.True(t, sim.Player().Grounded)

	tickN(t, sim, 1, input.NewSnapshot().With(map[string]float64{"a": 1}))
	assert.Greater(t, sim.Player().Position()[1], 5.0)
	assert.False(t, sim.Player().Grounded)

	// holding a does not jump again
	tickN(t, sim, 90, input.NewSnapshot().With(map[string]float64{"a": 1}))
	assert.True(t, sim.Player().Grounded)
	assert.InDelta(t, 5.0, sim.Player().Position()[1], 1e-6)
}

func TestSimulation_MoveForward(t *testing.T) {
	sim := createPlayingSimulation(t)
	tickN(t, sim, 1, input.NewSnapshot())

	tickN(t, sim, 10, input.NewSnapshot().With(map[string]float64{"lsy": -1}))
	p := sim.Player().Position()
	assert.Less(t, p[2], 0.0, "forward is -z at zero facing")
	assert.InDelta(t, 0, p[0], 1e-9)
}

func TestSimulation_Fire(t *testing.T) {
	sim := createPlayingSimulation(t)

	tickN(t, sim, 1, input.NewSnapshot().With(map[string]float64{"b": 1}))
	assert.Equal(t, 1, sim.Player().Ammo.InFlight())
	assert.Equal(t, 100, sim.Player().Health, "own bullets never hurt")

	tickN(t, sim, 1, input.NewSnapshot().With(map[string]float64{"b": 1}))
	assert.Equal(t, 1, sim.Player().Ammo.InFlight(), "holding b fires once")
}

func TestSimulation_TweenersRun(t *testing.T) {
	sim := createPlayingSimulation(t)
	rock := sim.Stage().Obstacles[0].Obstacle

	tickN(t, sim, 60, input.NewSnapshot())
	assert.InDelta(t, -44.0, rock.Position()[0], 1e-6)
	assert.InDelta(t, 2.0, rock.Rotation[1], 1e-6)
}

func TestSimulation_GameOverAndRestart(t *testing.T) {
	sim := createPlayingSimulation(t)
	tickN(t, sim, 1, input.NewSnapshot())

	sim.Player().TakeDamage(1000)
	tickN(t, sim, 1, input.NewSnapshot())
	assert.Equal(t, state.ModeGameOver, sim.Mode())

	frame := sim.Frame()
	tickN(t, sim, 5, input.NewSnapshot())
	assert.Equal(t, frame, sim.Frame(), "game over freezes the simulation")

	require.NoError(t, sim.Restart())
	assert.Equal(t, state.ModePlay, sim.Mode())
	assert.Equal(t, 100, sim.Player().Health)
	assert.True(t, sim.Player().IsAlive())
	assert.Equal(t, mgl64.Vec3{0, 5, 0}, sim.Player().Position())
}

func TestSimulation_StageNavigation(t *testing.T) {
	sim := createPlayingSimulation(t)
	rock := sim.Stage().Obstacles[0].Obstacle

	err := sim.PreviousStage()
	var unknown *entity.UnknownStageError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, -1, unknown.Index)
	assert.Equal(t, "one", sim.Stage().Name, "a failed load keeps the current stage")

	require.NoError(t, sim.NextStage())
	assert.Equal(t, 1, sim.StageIndex())
	assert.Equal(t, "two", sim.Stage().Name)
	assert.Zero(t, rock.Tweeners(), "removed obstacles lose their tweeners")
	assert.Zero(t, sim.Registry().Len(entity.CategoryObstacle))
	assert.Equal(t, 1, sim.Registry().Len(entity.CategoryCharacter))
	assert.Equal(t, state.ModePlay, sim.Mode())

	err = sim.NextStage()
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, 2, unknown.Index)
	assert.Equal(t, 1, sim.StageIndex())
	assert.Equal(t, state.ModePlay, sim.Mode())

	require.NoError(t, sim.PreviousStage())
	assert.Equal(t, "one", sim.Stage().Name)
}

func TestSimulation_SetMode(t *testing.T) {
	sim := createPlayingSimulation(t)

	require.NoError(t, sim.SetMode(state.ModeLoading))
	assert.Nil(t, sim.Stage())
	assert.Zero(t, sim.Registry().Len(entity.CategoryCharacter))
	assert.Zero(t, sim.Registry().Len(entity.CategoryAmmo))

	require.NoError(t, sim.SetMode(state.ModeInitial))
	assert.Equal(t, state.ModeInitial, sim.Mode(), "initial without a stage only records the mode")

	require.NoError(t, sim.SetMode(state.ModePlay))
	assert.Equal(t, state.ModePlay, sim.Mode())
	assert.Equal(t, "one", sim.Stage().Name, "play reloads the current stage")

	assert.Error(t, sim.SetMode(state.Mode(42)))
	assert.Equal(t, state.ModePlay, sim.Mode())
}

func TestSimulation_HandleResize(t *testing.T) {
	sim := createTestSimulation(t)
	sim.HandleResize(1280, 720)

	in := sim.POV().Indicators()
	assert.Equal(t, 640.0, in.ViewHalfX)
	assert.Equal(t, 360.0, in.ViewHalfY)
}

func TestSimulation_Dispose(t *testing.T) {
	sim := createPlayingSimulation(t)
	sim.Dispose()
	sim.Dispose()

	assert.ErrorIs(t, sim.Tick(frameDt, input.NewSnapshot()), ErrDisposed)
	assert.ErrorIs(t, sim.StartStage(0), ErrDisposed)
	assert.ErrorIs(t, sim.SetMode(state.ModePlay), ErrDisposed)
	assert.Zero(t, sim.Bus().Input.Len())
	assert.Zero(t, sim.Registry().Len(entity.CategoryCharacter))
}
