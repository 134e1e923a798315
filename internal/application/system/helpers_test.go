package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/fpcore/internal/application/event"
	"github.com/younwookim/fpcore/internal/domain/entity"
	"github.com/younwookim/fpcore/internal/infrastructure/config"
)

const testDt = 1.0 / 60.0

func createTestData() *config.Data {
	return &config.Data{
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
			"rock": {Radius: 10, Weight: 4, RotateSpeed: 1, GravityScale: 1},
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
				Ground:      0,
				CheckPoints: []mgl64.Vec3{{0, 5, 0}, {0, 5, -100}},
				Blocks:      []config.BlockConfig{{Min: mgl64.Vec3{20, 0, -5}, Max: mgl64.Vec3{30, 10, 5}}},
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
	}
}

func createTestFactory() *Factory {
	f, err := NewFactory(createTestData())
	if err != nil {
		panic(err)
	}
	return f
}

func createTestControls() config.ControlSettings {
	return config.DefaultSettings().Controls
}

func createTestCharacter(id entity.EntityID) *entity.Character {
	c := entity.NewCharacter(id, "hero", entity.CharacterStats{
		Radius: 5, Weight: 1, MaxHealth: 100,
		Speed: 600, AirSpeed: 300, TurnSpeed: 1, Sprint: 2.5,
		UrgencyMove: 250, UrgencyTurn: 1.5, JumpPower: 140,
	})
	return c
}

// recorder collects every event published on a bus
type recorder struct {
	collisions []event.CollisionEvent
	worldHits  []event.WorldHitEvent
	removed    []event.RemovedEvent
	facing     []event.FacingEvent
	pov        []event.POVEvent
	inputs     []event.InputEvent
}

func newRecorder(bus *event.Bus) *recorder {
	r := &recorder{}
	bus.Collision.Subscribe(func(e event.CollisionEvent) { r.collisions = append(r.collisions, e) })
	bus.WorldHit.Subscribe(func(e event.WorldHitEvent) { r.worldHits = append(r.worldHits, e) })
	bus.Removed.Subscribe(func(e event.RemovedEvent) { r.removed = append(r.removed, e) })
	bus.Facing.Subscribe(func(e event.FacingEvent) { r.facing = append(r.facing, e) })
	bus.POV.Subscribe(func(e event.POVEvent) { r.pov = append(r.pov, e) })
	bus.Input.Subscribe(func(e event.InputEvent) { r.inputs = append(r.inputs, e) })
	return r
}
